package models

import "strings"

// Product types accepted by the catalog.
const (
	ProductTypePerishable    = "Perecedero"
	ProductTypeNonPerishable = "No perecedero"
)

// Product represents a product in the catalog.
type Product struct {
	ID     string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name   string  `json:"name" gorm:"not null"`
	Price  float64 `json:"price"`
	Type   string  `json:"type" gorm:"not null"`
	Stores []Store `json:"stores,omitempty" gorm:"many2many:product_stores;"` // nil when the relation was not loaded
}

// ProductPatch carries the fields of a partial product update. Nil fields keep the persisted value.
type ProductPatch struct {
	Name  *string
	Price *float64
	Type  *string
}

// Apply overwrites the fields of p that are present in the patch.
func (patch ProductPatch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
}

// IsValidProductType reports whether t names one of the product types, ignoring case.
func IsValidProductType(t string) bool {
	return strings.EqualFold(t, ProductTypePerishable) || strings.EqualFold(t, ProductTypeNonPerishable)
}

// HasStore reports whether a store with the given ID is linked to the product.
func (p *Product) HasStore(storeID string) bool {
	for _, s := range p.Stores {
		if s.ID == storeID {
			return true
		}
	}
	return false
}
