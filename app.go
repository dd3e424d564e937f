package main

import (
	"time"

	"catalog/internal/handlers"
	"catalog/internal/metrics"
	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the collaborators the HTTP app is built from.
type Dependencies struct {
	StoreRepo   repositories.StoreRepository
	ProductRepo repositories.ProductRepository
	Publisher   services.EventPublisher // nil disables association events
	Exchange    string
}

// NewApp wires services and handlers into a Fiber app.
func NewApp(deps Dependencies) *fiber.App {
	storeService := services.NewStoreService(deps.StoreRepo)
	productService := services.NewProductService(deps.ProductRepo)
	productStoreService := services.NewProductStoreService(deps.StoreRepo, deps.ProductRepo, deps.Publisher, deps.Exchange)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(metrics.Middleware())

	apiV1 := app.Group("/api/v1")
	handlers.NewStoreHandler(storeService).RegisterRoutes(apiV1)
	handlers.NewProductHandler(productService).RegisterRoutes(apiV1)
	handlers.NewProductStoreHandler(productStoreService).RegisterRoutes(apiV1)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"events": deps.Publisher != nil,
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return app
}
