package handlers

import (
	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// StoreRequest is the payload for creating a store.
type StoreRequest struct {
	Name    string `json:"name" validate:"required"`
	City    string `json:"city" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// StorePatchRequest is the payload for updating a store. Omitted fields keep their value.
type StorePatchRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	City    *string `json:"city" validate:"omitempty,min=1"`
	Address *string `json:"address" validate:"omitempty,min=1"`
}

// StoreHandler handles HTTP requests for stores.
type StoreHandler struct {
	service  *services.StoreService
	validate *validator.Validate
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(service *services.StoreService) *StoreHandler {
	return &StoreHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the store routes with the Fiber app.
func (h *StoreHandler) RegisterRoutes(router fiber.Router) {
	storeRoutes := router.Group("/stores")
	storeRoutes.Get("/", h.HandleGetStores)
	storeRoutes.Get("/:storeId", h.HandleGetStore)
	storeRoutes.Post("/", h.HandleCreateStore)
	storeRoutes.Put("/:storeId", h.HandleUpdateStore)
	storeRoutes.Delete("/:storeId", h.HandleDeleteStore)
}

// HandleGetStores retrieves all stores.
func (h *StoreHandler) HandleGetStores(c *fiber.Ctx) error {
	stores, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stores)
}

// HandleGetStore retrieves a single store by its ID.
func (h *StoreHandler) HandleGetStore(c *fiber.Ctx) error {
	store, err := h.service.FindOne(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(store)
}

// HandleCreateStore creates a new store.
func (h *StoreHandler) HandleCreateStore(c *fiber.Ctx) error {
	var req StoreRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	store, err := h.service.Create(c.UserContext(), &models.Store{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(store)
}

// HandleUpdateStore applies a partial update to a store.
func (h *StoreHandler) HandleUpdateStore(c *fiber.Ctx) error {
	var req StorePatchRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	store, err := h.service.Update(c.UserContext(), c.Params("storeId"), models.StorePatch{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(store)
}

// HandleDeleteStore deletes a store.
func (h *StoreHandler) HandleDeleteStore(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("storeId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
