package models

// CityCodeLength is the maximum length of a store's city code, e.g. "BOG".
const CityCodeLength = 3

// Store represents a physical store that can carry products.
type Store struct {
	ID       string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name     string    `json:"name" gorm:"not null"`
	City     string    `json:"city" gorm:"size:3;not null"`
	Address  string    `json:"address" gorm:"not null"`
	Products []Product `json:"products,omitempty" gorm:"many2many:product_stores;"`
}

// StorePatch carries the fields of a partial store update. Nil fields keep the persisted value.
type StorePatch struct {
	Name    *string
	City    *string
	Address *string
}

// Apply overwrites the fields of s that are present in the patch.
func (patch StorePatch) Apply(s *Store) {
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.City != nil {
		s.City = *patch.City
	}
	if patch.Address != nil {
		s.Address = *patch.Address
	}
}
