// Package metrics holds the prometheus collectors of the catalog service.
package metrics

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	// AssociationOperations counts product/store association operations by outcome.
	AssociationOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "catalog",
		Name:      "association_operations_total",
		Help:      "Product/store association operations by operation and outcome.",
	}, []string{"operation", "outcome"})

	// HTTPRequests counts served HTTP requests.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "catalog",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})
)

// ObserveAssociation records one association operation.
func ObserveAssociation(operation string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	AssociationOperations.WithLabelValues(operation, outcome).Inc()
}

// Middleware counts every request by its matched route pattern.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		HTTPRequests.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).Inc()
		return err
	}
}
