package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catalog/internal/metrics"
	"catalog/internal/models"
	"catalog/internal/repositories"

	"go.uber.org/zap"
)

// Routing keys of the association events.
const (
	EventStoreAttached  = "product.store.attached"
	EventStoresReplaced = "product.stores.replaced"
	EventStoreDetached  = "product.store.detached"
)

// EventPublisher sends a message to a broker exchange. *rabbitmq.Client implements it.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// AssociationEvent is the payload published after a product's store links change.
type AssociationEvent struct {
	Type       string    `json:"type"`
	ProductID  string    `json:"product_id"`
	StoreIDs   []string  `json:"store_ids"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ProductStoreService manages the links between a product and its stores.
//
// Single-store operations resolve the store before the product, so when both IDs are unknown
// the caller gets the store error. ReplaceStores resolves the product first.
type ProductStoreService struct {
	storeRepo   repositories.StoreRepository
	productRepo repositories.ProductRepository
	publisher   EventPublisher // nil disables events
	exchange    string
}

// NewProductStoreService creates a new ProductStoreService. publisher may be nil.
func NewProductStoreService(storeRepo repositories.StoreRepository, productRepo repositories.ProductRepository, publisher EventPublisher, exchange string) *ProductStoreService {
	return &ProductStoreService{
		storeRepo:   storeRepo,
		productRepo: productRepo,
		publisher:   publisher,
		exchange:    exchange,
	}
}

// AttachStore appends the store to the product's stores and returns the updated product.
// Attaching an already linked store is not rejected.
func (s *ProductStoreService) AttachStore(ctx context.Context, productID, storeID string) (product *models.Product, err error) {
	defer func() { metrics.ObserveAssociation("attach", err) }()

	store, err := loadStore(ctx, s.storeRepo, storeID, false)
	if err != nil {
		return nil, err
	}
	product, err = loadProduct(ctx, s.productRepo, productID, true)
	if err != nil {
		return nil, err
	}

	product.Stores = append(product.Stores, *store)
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to attach store %s to product %s: %w", storeID, productID, err)
	}

	s.publish(EventStoreAttached, productID, []string{storeID})
	return product, nil
}

// FindStore returns the linked store with the given ID.
func (s *ProductStoreService) FindStore(ctx context.Context, productID, storeID string) (found *models.Store, err error) {
	defer func() { metrics.ObserveAssociation("find_one", err) }()

	store, err := loadStore(ctx, s.storeRepo, storeID, false)
	if err != nil {
		return nil, err
	}
	product, err := loadProduct(ctx, s.productRepo, productID, true)
	if err != nil {
		return nil, err
	}

	for i := range product.Stores {
		if product.Stores[i].ID == store.ID {
			return &product.Stores[i], nil
		}
	}
	return nil, storeNotAssociated()
}

// FindStores returns the product's stores in persisted order. The slice is empty, not nil,
// when the product has none.
func (s *ProductStoreService) FindStores(ctx context.Context, productID string) (stores []models.Store, err error) {
	defer func() { metrics.ObserveAssociation("find_all", err) }()

	product, err := loadProduct(ctx, s.productRepo, productID, true)
	if err != nil {
		return nil, err
	}
	return product.Stores, nil
}

// ReplaceStores overwrites the product's stores with the given ones. Every store must exist;
// the first unknown ID aborts the call before anything is written.
func (s *ProductStoreService) ReplaceStores(ctx context.Context, productID string, stores []models.Store) (product *models.Product, err error) {
	defer func() { metrics.ObserveAssociation("replace", err) }()

	product, err = loadProduct(ctx, s.productRepo, productID, true)
	if err != nil {
		return nil, err
	}

	resolved := make([]models.Store, 0, len(stores))
	ids := make([]string, 0, len(stores))
	for _, in := range stores {
		store, err := loadStore(ctx, s.storeRepo, in.ID, false)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, *store)
		ids = append(ids, store.ID)
	}

	product.Stores = resolved
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to replace stores of product %s: %w", productID, err)
	}

	s.publish(EventStoresReplaced, productID, ids)
	return product, nil
}

// DetachStore removes every link between the product and the store.
func (s *ProductStoreService) DetachStore(ctx context.Context, productID, storeID string) (err error) {
	defer func() { metrics.ObserveAssociation("detach", err) }()

	store, err := loadStore(ctx, s.storeRepo, storeID, false)
	if err != nil {
		return err
	}
	product, err := loadProduct(ctx, s.productRepo, productID, true)
	if err != nil {
		return err
	}
	if !product.HasStore(store.ID) {
		return storeNotAssociated()
	}

	kept := make([]models.Store, 0, len(product.Stores))
	for _, linked := range product.Stores {
		if linked.ID != storeID {
			kept = append(kept, linked)
		}
	}
	product.Stores = kept
	if err := s.productRepo.Save(ctx, product); err != nil {
		return fmt.Errorf("failed to detach store %s from product %s: %w", storeID, productID, err)
	}

	s.publish(EventStoreDetached, productID, []string{storeID})
	return nil
}

// publish is best effort: failures are logged and never returned to the caller.
func (s *ProductStoreService) publish(eventType, productID string, storeIDs []string) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(AssociationEvent{
		Type:       eventType,
		ProductID:  productID,
		StoreIDs:   storeIDs,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		zap.L().Error("failed to marshal association event", zap.String("type", eventType), zap.Error(err))
		return
	}
	if err := s.publisher.Publish(s.exchange, eventType, body); err != nil {
		zap.L().Warn("failed to publish association event",
			zap.String("type", eventType),
			zap.String("product_id", productID),
			zap.Error(err))
	}
}
