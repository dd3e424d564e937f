package services

import (
	"context"
	"fmt"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"go.uber.org/zap"
)

// ProductService handles business logic related to products.
// Field values, including the product type, are validated by the caller.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// FindAll retrieves all products with their stores.
func (s *ProductService) FindAll(ctx context.Context) ([]models.Product, error) {
	return s.repo.FindAll(ctx, true)
}

// FindOne retrieves a single product, with its stores, by its ID.
func (s *ProductService) FindOne(ctx context.Context, id string) (*models.Product, error) {
	return loadProduct(ctx, s.repo, id, true)
}

// Create persists a new product.
func (s *ProductService) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	product.ID = ""
	product.Stores = nil
	if err := s.repo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	zap.L().Debug("product created", zap.String("product_id", product.ID))
	return product, nil
}

// Update applies patch on top of the persisted product. Its store links are left untouched.
func (s *ProductService) Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	product, err := loadProduct(ctx, s.repo, id, false)
	if err != nil {
		return nil, err
	}
	patch.Apply(product)
	if err := s.repo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	return product, nil
}

// Delete removes a product and its links to stores.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	product, err := loadProduct(ctx, s.repo, id, false)
	if err != nil {
		return err
	}
	if err := s.repo.Remove(ctx, product); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	zap.L().Debug("product deleted", zap.String("product_id", id))
	return nil
}
