package handlers

import (
	"errors"

	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// respondError maps a service error to its HTTP status: missing records are 404,
// violated invariants 412, anything else 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return sendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrPreconditionFailed):
		return sendError(c, fiber.StatusPreconditionFailed, err.Error())
	default:
		zap.L().Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
		return sendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

func sendError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"statusCode": status,
		"message":    message,
	})
}
