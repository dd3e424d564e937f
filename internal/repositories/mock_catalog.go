package repositories

import (
	"sync"

	"catalog/internal/models"
)

// MockCatalog is the shared in-memory state behind MockStoreRepository and MockProductRepository.
// Links are stored once, product ID to ordered store IDs, and the store side is derived from them.
type MockCatalog struct {
	mu         sync.RWMutex
	stores     map[string]models.Store
	products   map[string]models.Product
	links      map[string][]string
	storeIDs   []string // insertion order
	productIDs []string // insertion order
}

// NewMockCatalog creates an empty in-memory catalog.
func NewMockCatalog() *MockCatalog {
	return &MockCatalog{
		stores:   make(map[string]models.Store),
		products: make(map[string]models.Product),
		links:    make(map[string][]string),
	}
}

// Stores returns a StoreRepository backed by the catalog.
func (c *MockCatalog) Stores() *MockStoreRepository {
	return &MockStoreRepository{c: c}
}

// Products returns a ProductRepository backed by the catalog.
func (c *MockCatalog) Products() *MockProductRepository {
	return &MockProductRepository{c: c}
}

// storesOf resolves the linked stores of a product. Callers hold c.mu.
func (c *MockCatalog) storesOf(productID string) []models.Store {
	ids := c.links[productID]
	stores := make([]models.Store, 0, len(ids))
	for _, id := range ids {
		stores = append(stores, c.stores[id])
	}
	return stores
}

// productsOf resolves the products linked to a store, each once. Callers hold c.mu.
func (c *MockCatalog) productsOf(storeID string) []models.Product {
	products := make([]models.Product, 0)
	for _, pid := range c.productIDs {
		for _, sid := range c.links[pid] {
			if sid == storeID {
				products = append(products, c.products[pid])
				break
			}
		}
	}
	return products
}

func removeID(ids []string, id string) []string {
	kept := ids[:0]
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}
