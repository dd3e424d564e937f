package repositories

import (
	"context"
	"fmt"

	"catalog/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	c *MockCatalog
}

var _ ProductRepository = (*MockProductRepository)(nil)

// FindAll returns all products in insertion order.
func (r *MockProductRepository) FindAll(ctx context.Context, withStores bool) ([]models.Product, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()

	products := make([]models.Product, 0, len(r.c.productIDs))
	for _, id := range r.c.productIDs {
		p := r.c.products[id]
		if withStores {
			p.Stores = r.c.storesOf(id)
		}
		products = append(products, p)
	}
	return products, nil
}

// FindByID returns a product by its ID.
func (r *MockProductRepository) FindByID(ctx context.Context, id string, withStores bool) (*models.Product, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()

	product, ok := r.c.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s not found: %w", id, ErrNotFound)
	}
	if withStores {
		product.Stores = r.c.storesOf(id)
	}
	return &product, nil
}

// Save adds a new product or overwrites an existing one. A non-nil Stores slice replaces
// the product's links, duplicates included.
func (r *MockProductRepository) Save(ctx context.Context, product *models.Product) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	var ids []string
	if product.Stores != nil {
		ids = make([]string, 0, len(product.Stores))
		for _, s := range product.Stores {
			if _, ok := r.c.stores[s.ID]; !ok {
				return fmt.Errorf("failed to link store %s: %w", s.ID, ErrNotFound)
			}
			ids = append(ids, s.ID)
		}
	}

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if _, exists := r.c.products[product.ID]; !exists {
		r.c.productIDs = append(r.c.productIDs, product.ID)
	}
	stored := *product
	stored.Stores = nil
	r.c.products[product.ID] = stored
	if ids != nil {
		r.c.links[product.ID] = ids
	}
	return nil
}

// Remove deletes a product and its links.
func (r *MockProductRepository) Remove(ctx context.Context, product *models.Product) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	if _, ok := r.c.products[product.ID]; !ok {
		return fmt.Errorf("product with ID %s not found for deletion: %w", product.ID, ErrNotFound)
	}
	delete(r.c.products, product.ID)
	delete(r.c.links, product.ID)
	r.c.productIDs = removeID(r.c.productIDs, product.ID)
	return nil
}

// Clear removes every product and every link.
func (r *MockProductRepository) Clear(ctx context.Context) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	r.c.products = make(map[string]models.Product)
	r.c.productIDs = nil
	r.c.links = make(map[string][]string)
	return nil
}
