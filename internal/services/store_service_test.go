package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestStoreService_FindAll(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)

	expected := []models.Store{
		{ID: "1", Name: "Main", City: "BOG", Address: "1"},
		{ID: "2", Name: "North", City: "MED", Address: "2"},
	}
	mockRepo.On("FindAll", mock.Anything, true).Return(expected, nil).Once()

	stores, err := service.FindAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, stores)
	mockRepo.AssertExpectations(t)
}

func TestStoreService_FindOne(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)
	ctx := context.Background()

	expected := &models.Store{ID: "1", Name: "Main", City: "BOG", Address: "1"}
	mockRepo.On("FindByID", mock.Anything, "1", true).Return(expected, nil).Once()
	store, err := service.FindOne(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, expected, store)

	mockRepo.On("FindByID", mock.Anything, "0", true).
		Return(nil, fmt.Errorf("store with ID 0 not found: %w", repositories.ErrNotFound)).Once()
	store, err = service.FindOne(ctx, "0")
	assert.Nil(t, store)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.EqualError(t, err, services.MsgStoreNotFound)

	var be *services.BusinessError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "store", be.Entity)
	mockRepo.AssertExpectations(t)
}

func TestStoreService_FindOneRepositoryFailure(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)

	mockRepo.On("FindByID", mock.Anything, "1", true).Return(nil, errors.New("connection refused")).Once()

	_, err := service.FindOne(context.Background(), "1")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrNotFound)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestStoreService_Create(t *testing.T) {
	for _, city := range []string{"BOG", "CA", "B", ""} {
		t.Run("accepts "+city, func(t *testing.T) {
			mockRepo := new(MockStoreRepository)
			service := services.NewStoreService(mockRepo)

			store := &models.Store{ID: "client-id", Name: "Main", City: city, Address: "1"}
			mockRepo.On("Save", mock.Anything, store).Run(func(args mock.Arguments) {
				args.Get(1).(*models.Store).ID = "generated"
			}).Return(nil).Once()

			created, err := service.Create(context.Background(), store)

			require.NoError(t, err)
			assert.Equal(t, "generated", created.ID)
			assert.Equal(t, city, created.City)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestStoreService_CreateRejectsLongCity(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)

	_, err := service.Create(context.Background(), &models.Store{Name: "Main", City: "BOGO", Address: "1"})

	assert.ErrorIs(t, err, services.ErrPreconditionFailed)
	assert.EqualError(t, err, services.MsgInvalidCityCodeSize)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestStoreService_CreateCountsRunes(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := service.Create(context.Background(), &models.Store{Name: "Main", City: "BÓG", Address: "1"})

	assert.NoError(t, err)
}

func TestStoreService_Update(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)

	persisted := &models.Store{ID: "1", Name: "Main", City: "BOG", Address: "1"}
	mockRepo.On("FindByID", mock.Anything, "1", false).Return(persisted, nil).Once()
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*models.Store")).Return(nil).Once()

	updated, err := service.Update(context.Background(), "1", models.StorePatch{Name: strPtr("New name"), City: strPtr("CAR")})

	require.NoError(t, err)
	assert.Equal(t, &models.Store{ID: "1", Name: "New name", City: "CAR", Address: "1"}, updated)
	mockRepo.AssertExpectations(t)
}

func TestStoreService_UpdateNotFound(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)

	mockRepo.On("FindByID", mock.Anything, "0", false).Return(nil, repositories.ErrNotFound).Once()

	_, err := service.Update(context.Background(), "0", models.StorePatch{City: strPtr("TOO LONG")})

	// Existence is checked before the city code.
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestStoreService_UpdateRejectsLongCity(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)

	persisted := &models.Store{ID: "1", Name: "Main", City: "BOG", Address: "1"}
	mockRepo.On("FindByID", mock.Anything, "1", false).Return(persisted, nil).Once()

	_, err := service.Update(context.Background(), "1", models.StorePatch{City: strPtr("BOGOTA")})

	assert.ErrorIs(t, err, services.ErrPreconditionFailed)
	assert.Equal(t, "BOG", persisted.City)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestStoreService_Delete(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)
	ctx := context.Background()

	persisted := &models.Store{ID: "1", Name: "Main", City: "BOG", Address: "1"}
	mockRepo.On("FindByID", mock.Anything, "1", false).Return(persisted, nil).Once()
	mockRepo.On("Remove", mock.Anything, persisted).Return(nil).Once()
	assert.NoError(t, service.Delete(ctx, "1"))

	mockRepo.On("FindByID", mock.Anything, "0", false).Return(nil, repositories.ErrNotFound).Once()
	err := service.Delete(ctx, "0")
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestStoreService_WithMemoryRepository(t *testing.T) {
	ctx := context.Background()
	catalog := repositories.NewMockCatalog()
	service := services.NewStoreService(catalog.Stores())

	created, err := service.Create(ctx, &models.Store{Name: "Main", City: "BOG", Address: "1"})
	require.NoError(t, err)

	stored, err := service.FindOne(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Main", stored.Name)
	assert.Equal(t, "BOG", stored.City)
	assert.Equal(t, "1", stored.Address)

	_, err = service.Create(ctx, &models.Store{Name: "Other", City: "BOGOTA", Address: "2"})
	assert.ErrorIs(t, err, services.ErrPreconditionFailed)
	all, err := service.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = service.Update(ctx, "missing", models.StorePatch{Name: strPtr("x")})
	assert.ErrorIs(t, err, services.ErrNotFound)
	stored, err = service.FindOne(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Main", stored.Name)

	require.NoError(t, service.Delete(ctx, created.ID))
	_, err = service.FindOne(ctx, created.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
