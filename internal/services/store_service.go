package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"go.uber.org/zap"
)

// StoreService handles business logic related to stores.
type StoreService struct {
	repo repositories.StoreRepository
}

// NewStoreService creates a new StoreService.
func NewStoreService(repo repositories.StoreRepository) *StoreService {
	return &StoreService{
		repo: repo,
	}
}

// FindAll retrieves all stores with their products.
func (s *StoreService) FindAll(ctx context.Context) ([]models.Store, error) {
	return s.repo.FindAll(ctx, true)
}

// FindOne retrieves a single store, with its products, by its ID.
func (s *StoreService) FindOne(ctx context.Context, id string) (*models.Store, error) {
	return loadStore(ctx, s.repo, id, true)
}

// Create validates the city code and persists a new store.
func (s *StoreService) Create(ctx context.Context, store *models.Store) (*models.Store, error) {
	if !validCityCode(store.City) {
		return nil, invalidCityCode()
	}
	store.ID = "" // generated by the repository
	store.Products = nil
	if err := s.repo.Save(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	zap.L().Debug("store created", zap.String("store_id", store.ID))
	return store, nil
}

// Update applies patch on top of the persisted store.
func (s *StoreService) Update(ctx context.Context, id string, patch models.StorePatch) (*models.Store, error) {
	store, err := loadStore(ctx, s.repo, id, false)
	if err != nil {
		return nil, err
	}
	if patch.City != nil && !validCityCode(*patch.City) {
		return nil, invalidCityCode()
	}

	patch.Apply(store)
	if err := s.repo.Save(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to update store %s: %w", id, err)
	}
	return store, nil
}

// Delete removes a store and its links to products.
func (s *StoreService) Delete(ctx context.Context, id string) error {
	store, err := loadStore(ctx, s.repo, id, false)
	if err != nil {
		return err
	}
	if err := s.repo.Remove(ctx, store); err != nil {
		return fmt.Errorf("failed to delete store %s: %w", id, err)
	}
	zap.L().Debug("store deleted", zap.String("store_id", id))
	return nil
}

// validCityCode only bounds the length from above; shorter codes are accepted.
func validCityCode(city string) bool {
	return utf8.RuneCountInString(city) <= models.CityCodeLength
}
