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

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

var _ ProductRepository = (*GORMProductRepository)(nil)

func (r *GORMProductRepository) query(ctx context.Context, withStores bool) *gorm.DB {
	q := r.db.WithContext(ctx)
	if withStores {
		q = q.Preload("Stores")
	}
	return q
}

// FindAll retrieves all products from the database.
func (r *GORMProductRepository) FindAll(ctx context.Context, withStores bool) ([]models.Product, error) {
	var products []models.Product
	if err := r.query(ctx, withStores).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	if withStores {
		for i := range products {
			if products[i].Stores == nil {
				products[i].Stores = []models.Store{}
			}
		}
	}
	return products, nil
}

// FindByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) FindByID(ctx context.Context, id string, withStores bool) (*models.Product, error) {
	var product models.Product
	if err := r.query(ctx, withStores).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	if withStores && product.Stores == nil {
		product.Stores = []models.Store{}
	}
	return &product, nil
}

// Save creates or updates a product. When product.Stores is non-nil the association rows
// are replaced by it in the same transaction.
func (r *GORMProductRepository) Save(ctx context.Context, product *models.Product) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if product.ID == "" {
			product.ID = uuid.New().String()
			if err := tx.Omit(clause.Associations).Create(product).Error; err != nil {
				return err
			}
		} else if err := tx.Omit(clause.Associations).Save(product).Error; err != nil {
			return err
		}

		if product.Stores == nil {
			return nil
		}
		association := tx.Model(product).Association("Stores")
		if len(product.Stores) == 0 {
			return association.Clear()
		}
		return association.Replace(product.Stores)
	})
	if err != nil {
		return fmt.Errorf("failed to save product %s: %w", product.ID, err)
	}
	return nil
}

// Remove deletes a product and its association rows.
func (r *GORMProductRepository) Remove(ctx context.Context, product *models.Product) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(product).Association("Stores").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&models.Product{}, "id = ?", product.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product with ID %s not found for deletion: %w", product.ID, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// Clear deletes every product and every association row.
func (r *GORMProductRepository) Clear(ctx context.Context) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM " + joinTable).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Product{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}
	return nil
}
