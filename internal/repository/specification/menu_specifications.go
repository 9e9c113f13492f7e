package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByRestaurantId scopes a query to a single restaurant. Retrieval
// correctness depends on this filter: results must never cross restaurant
// boundaries.
type ByRestaurantId struct {
	RestaurantId uuid.UUID
}

func (s ByRestaurantId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("restaurant_id = ?", s.RestaurantId)
}

// ByNameInsensitive matches a dish by exact name, case-insensitively.
type ByNameInsensitive struct {
	Name string
}

func (s ByNameInsensitive) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(name) = LOWER(?)", s.Name)
}

// ActiveOnly excludes dishes hidden from the menu.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
