package services

import (
	"context"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

func loadStore(ctx context.Context, repo repositories.StoreRepository, id string, withProducts bool) (*models.Store, error) {
	store, err := repo.FindByID(ctx, id, withProducts)
	if err != nil {
		return nil, translate(err, storeNotFound, "store "+id)
	}
	return store, nil
}

func loadProduct(ctx context.Context, repo repositories.ProductRepository, id string, withStores bool) (*models.Product, error) {
	product, err := repo.FindByID(ctx, id, withStores)
	if err != nil {
		return nil, translate(err, productNotFound, "product "+id)
	}
	if withStores && product.Stores == nil {
		product.Stores = []models.Store{}
	}
	return product, nil
}
