package repositories

import (
	"context"

	"catalog/internal/models"
)

// ProductRepository defines the interface for product data access.
//
// A product's Stores slice is only written by Save when it is non-nil, so a product loaded
// without its stores can be saved without touching its associations.
type ProductRepository interface {
	FindAll(ctx context.Context, withStores bool) ([]models.Product, error)
	FindByID(ctx context.Context, id string, withStores bool) (*models.Product, error)
	Save(ctx context.Context, product *models.Product) error
	Remove(ctx context.Context, product *models.Product) error
	Clear(ctx context.Context) error
}
