package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() (*repositories.MockCatalog, Dependencies) {
	catalog := repositories.NewMockCatalog()
	return catalog, Dependencies{
		StoreRepo:   catalog.Stores(),
		ProductRepo: catalog.Products(),
		Exchange:    "catalog",
	}
}

func TestHealthCheck(t *testing.T) {
	_, deps := newTestApp()
	app := NewApp(deps)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"status":"healthy"`)
	assert.Contains(t, string(body), `"events":false`)
}

func TestMetricsEndpoint(t *testing.T) {
	_, deps := newTestApp()
	app := NewApp(deps)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/products", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "catalog_http_requests_total")
}

func TestSeed(t *testing.T) {
	catalog, _ := newTestApp()
	ctx := context.Background()

	require.NoError(t, seed(ctx, catalog.Stores(), catalog.Products()))

	stores, err := catalog.Stores().FindAll(ctx, false)
	require.NoError(t, err)
	assert.Len(t, stores, 5)
	for _, s := range stores {
		assert.Equal(t, "BOG", s.City)
	}

	products, err := catalog.Products().FindAll(ctx, true)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Len(t, products[0].Stores, 2)
	assert.Len(t, products[1].Stores, 3)
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()

	names := []string{}
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "seed"}, names)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("database-driver"))
}
