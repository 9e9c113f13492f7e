package entity

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	Id           uuid.UUID
	RestaurantId uuid.UUID
	Items        []OrderItem
	Total        float64
	Status       string
	CustomerName string
	TableLabel   string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// OrderItem snapshots name and price at confirmation time so later menu
// edits never rewrite order history.
type OrderItem struct {
	Id       uuid.UUID
	OrderId  uuid.UUID
	DishId   uuid.UUID
	Name     string
	Price    float64
	Quantity int
}
