package handlers

import (
	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// StoreReference identifies a store in a replace request.
type StoreReference struct {
	ID string `json:"id" validate:"required"`
}

// ProductStoreHandler handles HTTP requests for the stores of a product.
type ProductStoreHandler struct {
	service  *services.ProductStoreService
	validate *validator.Validate
}

// NewProductStoreHandler creates a new ProductStoreHandler.
func NewProductStoreHandler(service *services.ProductStoreService) *ProductStoreHandler {
	return &ProductStoreHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the association routes with the Fiber app.
func (h *ProductStoreHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/products/:productId/stores")
	routes.Post("/:storeId", h.HandleAttachStore)
	routes.Get("/:storeId", h.HandleGetStore)
	routes.Get("/", h.HandleGetStores)
	routes.Put("/", h.HandleReplaceStores)
	routes.Delete("/:storeId", h.HandleDetachStore)
}

// HandleAttachStore links a store to a product.
func (h *ProductStoreHandler) HandleAttachStore(c *fiber.Ctx) error {
	product, err := h.service.AttachStore(c.UserContext(), c.Params("productId"), c.Params("storeId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleGetStore retrieves one store linked to a product.
func (h *ProductStoreHandler) HandleGetStore(c *fiber.Ctx) error {
	store, err := h.service.FindStore(c.UserContext(), c.Params("productId"), c.Params("storeId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(store)
}

// HandleGetStores retrieves all stores linked to a product.
func (h *ProductStoreHandler) HandleGetStores(c *fiber.Ctx) error {
	stores, err := h.service.FindStores(c.UserContext(), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stores)
}

// HandleReplaceStores replaces every store of a product with the ones in the body.
func (h *ProductStoreHandler) HandleReplaceStores(c *fiber.Ctx) error {
	var refs []StoreReference
	if err := c.BodyParser(&refs); err != nil {
		return sendError(c, fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	stores := make([]models.Store, 0, len(refs))
	for i := range refs {
		if err := h.validate.Struct(refs[i]); err != nil {
			return validationFailed(c, err)
		}
		stores = append(stores, models.Store{ID: refs[i].ID})
	}

	product, err := h.service.ReplaceStores(c.UserContext(), c.Params("productId"), stores)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleDetachStore unlinks a store from a product.
func (h *ProductStoreHandler) HandleDetachStore(c *fiber.Ctx) error {
	if err := h.service.DetachStore(c.UserContext(), c.Params("productId"), c.Params("storeId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
