package repositories

import (
	"context"
	"errors"

	"catalog/internal/models"
)

// ErrNotFound is wrapped by every repository error caused by a missing record.
var ErrNotFound = errors.New("record not found")

// StoreRepository defines the interface for store data access.
// The products side of the relation is read-only: Save never writes it.
type StoreRepository interface {
	FindAll(ctx context.Context, withProducts bool) ([]models.Store, error)
	FindByID(ctx context.Context, id string, withProducts bool) (*models.Store, error)
	Save(ctx context.Context, store *models.Store) error
	Remove(ctx context.Context, store *models.Store) error
	Clear(ctx context.Context) error
}
