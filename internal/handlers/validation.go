package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"catalog/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const productTypeTag = "product_type"

// newValidator returns a validator that reports JSON field names and knows the product_type rule.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for an empty tag or a nil function.
	_ = v.RegisterValidation(productTypeTag, func(fl validator.FieldLevel) bool {
		return models.IsValidProductType(fl.Field().String())
	})
	return v
}

// parseAndValidate binds the request body into dst and validates it. On failure it writes
// the 400 response and returns ok=false.
func parseAndValidate(c *fiber.Ctx, v *validator.Validate, dst interface{}) (ok bool, err error) {
	if err := c.BodyParser(dst); err != nil {
		return false, sendError(c, fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	if err := v.Struct(dst); err != nil {
		return false, validationFailed(c, err)
	}
	return true, nil
}

func validationFailed(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return sendError(c, fiber.StatusBadRequest, err.Error())
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		if e.Tag() == productTypeTag {
			errorMessages[e.Field()] = fmt.Sprintf("the allowed product types are: %s and %s",
				models.ProductTypePerishable, models.ProductTypeNonPerishable)
			continue
		}
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"statusCode": fiber.StatusBadRequest,
		"message":    "Validation failed",
		"errors":     errorMessages,
	})
}
