package repositories

import (
	"context"
	"fmt"

	"catalog/internal/models"

	"github.com/google/uuid"
)

// MockStoreRepository is an in-memory implementation of StoreRepository.
type MockStoreRepository struct {
	c *MockCatalog
}

var _ StoreRepository = (*MockStoreRepository)(nil)

// FindAll returns all stores in insertion order.
func (r *MockStoreRepository) FindAll(ctx context.Context, withProducts bool) ([]models.Store, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()

	stores := make([]models.Store, 0, len(r.c.storeIDs))
	for _, id := range r.c.storeIDs {
		s := r.c.stores[id]
		if withProducts {
			s.Products = r.c.productsOf(id)
		}
		stores = append(stores, s)
	}
	return stores, nil
}

// FindByID returns a store by its ID.
func (r *MockStoreRepository) FindByID(ctx context.Context, id string, withProducts bool) (*models.Store, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()

	store, ok := r.c.stores[id]
	if !ok {
		return nil, fmt.Errorf("store with ID %s not found: %w", id, ErrNotFound)
	}
	if withProducts {
		store.Products = r.c.productsOf(id)
	}
	return &store, nil
}

// Save adds a new store or overwrites an existing one.
func (r *MockStoreRepository) Save(ctx context.Context, store *models.Store) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	if store.ID == "" {
		store.ID = uuid.New().String()
	}
	if _, exists := r.c.stores[store.ID]; !exists {
		r.c.storeIDs = append(r.c.storeIDs, store.ID)
	}
	stored := *store
	stored.Products = nil
	r.c.stores[store.ID] = stored
	return nil
}

// Remove deletes a store and unlinks it from every product.
func (r *MockStoreRepository) Remove(ctx context.Context, store *models.Store) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	if _, ok := r.c.stores[store.ID]; !ok {
		return fmt.Errorf("store with ID %s not found for deletion: %w", store.ID, ErrNotFound)
	}
	delete(r.c.stores, store.ID)
	r.c.storeIDs = removeID(r.c.storeIDs, store.ID)
	for pid, ids := range r.c.links {
		r.c.links[pid] = removeID(ids, store.ID)
	}
	return nil
}

// Clear removes every store and every link.
func (r *MockStoreRepository) Clear(ctx context.Context) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	r.c.stores = make(map[string]models.Store)
	r.c.storeIDs = nil
	r.c.links = make(map[string][]string)
	return nil
}
