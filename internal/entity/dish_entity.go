package entity

import (
	"time"

	"github.com/google/uuid"
)

type Dish struct {
	Id           uuid.UUID
	RestaurantId uuid.UUID
	Name         string
	Description  string
	Price        float64
	Calories     int
	Category     string
	Tags         []string
	Ingredients  []string
	ChefSpecial  bool
	ImageURL     string
	VideoURL     string
	Model3DURL   string
	IsActive     bool
	// Carried as data for the invoicing side; never computed here.
	GstRate         float64
	DiscountPercent float64
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
