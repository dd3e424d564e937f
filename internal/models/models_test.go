package models_test

import (
	"testing"

	"catalog/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestIsValidProductType(t *testing.T) {
	valid := []string{"Perecedero", "perecedero", "PERECEDERO", "No perecedero", "no PERECEDERO"}
	for _, v := range valid {
		assert.True(t, models.IsValidProductType(v), v)
	}

	invalid := []string{"", "Perecederos", "No perecederos", "Perecedero extra", "x Perecedero", "No-perecedero"}
	for _, v := range invalid {
		assert.False(t, models.IsValidProductType(v), v)
	}
}

func TestStorePatch_Apply(t *testing.T) {
	store := models.Store{ID: "s1", Name: "Main", City: "BOG", Address: "1"}
	city := "MED"

	models.StorePatch{City: &city}.Apply(&store)

	assert.Equal(t, models.Store{ID: "s1", Name: "Main", City: "MED", Address: "1"}, store)
}

func TestProductPatch_Apply(t *testing.T) {
	product := models.Product{ID: "p1", Name: "Milk", Price: 10, Type: models.ProductTypePerishable}
	name := "Rice"
	price := -2.5

	models.ProductPatch{Name: &name, Price: &price}.Apply(&product)

	assert.Equal(t, "Rice", product.Name)
	assert.Equal(t, -2.5, product.Price)
	assert.Equal(t, models.ProductTypePerishable, product.Type)
	assert.Equal(t, "p1", product.ID)
}

func TestProduct_HasStore(t *testing.T) {
	product := models.Product{Stores: []models.Store{{ID: "a"}, {ID: "b"}}}

	assert.True(t, product.HasStore("b"))
	assert.False(t, product.HasStore("c"))
	assert.False(t, (&models.Product{}).HasStore("a"))
}
