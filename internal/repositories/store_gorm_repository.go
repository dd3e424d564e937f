package repositories

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// joinTable holds the product/store links of both models.
const joinTable = "product_stores"

// GORMStoreRepository is a GORM implementation of StoreRepository.
type GORMStoreRepository struct {
	db *gorm.DB
}

// NewGORMStoreRepository creates a new instance of GORMStoreRepository.
func NewGORMStoreRepository(db *gorm.DB) *GORMStoreRepository {
	return &GORMStoreRepository{
		db: db,
	}
}

var _ StoreRepository = (*GORMStoreRepository)(nil)

func (r *GORMStoreRepository) query(ctx context.Context, withProducts bool) *gorm.DB {
	q := r.db.WithContext(ctx)
	if withProducts {
		q = q.Preload("Products")
	}
	return q
}

// FindAll retrieves all stores from the database.
func (r *GORMStoreRepository) FindAll(ctx context.Context, withProducts bool) ([]models.Store, error) {
	var stores []models.Store
	if err := r.query(ctx, withProducts).Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("failed to get all stores: %w", err)
	}
	return stores, nil
}

// FindByID retrieves a single store by its ID from the database.
func (r *GORMStoreRepository) FindByID(ctx context.Context, id string, withProducts bool) (*models.Store, error) {
	var store models.Store
	if err := r.query(ctx, withProducts).First(&store, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("store with ID %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get store by ID %s: %w", id, err)
	}
	return &store, nil
}

// Save creates the store when it has no ID yet, otherwise updates all of its columns.
func (r *GORMStoreRepository) Save(ctx context.Context, store *models.Store) error {
	db := r.db.WithContext(ctx).Omit(clause.Associations)
	if store.ID == "" {
		store.ID = uuid.New().String()
		if err := db.Create(store).Error; err != nil {
			return fmt.Errorf("failed to create store: %w", err)
		}
		return nil
	}
	if err := db.Save(store).Error; err != nil {
		return fmt.Errorf("failed to update store %s: %w", store.ID, err)
	}
	return nil
}

// Remove deletes a store and its association rows.
func (r *GORMStoreRepository) Remove(ctx context.Context, store *models.Store) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(store).Association("Products").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&models.Store{}, "id = ?", store.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("store with ID %s not found for deletion: %w", store.ID, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}
	return nil
}

// Clear deletes every store and every association row.
func (r *GORMStoreRepository) Clear(ctx context.Context) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM " + joinTable).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Store{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to clear stores: %w", err)
	}
	return nil
}
