package handlers

import (
	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductRequest is the payload for creating a product.
type ProductRequest struct {
	Name  string   `json:"name" validate:"required"`
	Price *float64 `json:"price" validate:"required"`
	Type  string   `json:"type" validate:"required,product_type"`
}

// ProductPatchRequest is the payload for updating a product. Omitted fields keep their value.
type ProductPatchRequest struct {
	Name  *string  `json:"name" validate:"omitempty,min=1"`
	Price *float64 `json:"price"`
	Type  *string  `json:"type" validate:"omitempty,product_type"`
}

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:productId", h.HandleGetProduct)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:productId", h.HandleUpdateProduct)
	productRoutes.Delete("/:productId", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// HandleGetProduct retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.FindOne(c.UserContext(), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	product, err := h.service.Create(c.UserContext(), &models.Product{
		Name:  req.Name,
		Price: *req.Price,
		Type:  req.Type,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial update to a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req ProductPatchRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	product, err := h.service.Update(c.UserContext(), c.Params("productId"), models.ProductPatch{
		Name:  req.Name,
		Price: req.Price,
		Type:  req.Type,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("productId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
