package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review targets either a dish or a restaurant; exactly one of the two ids
// is set.
type Review struct {
	Id           uuid.UUID
	RestaurantId *uuid.UUID
	DishId       *uuid.UUID
	Rating       int
	Comment      string
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// RatingAggregate caches the average so list views never re-aggregate.
type RatingAggregate struct {
	Id            uuid.UUID
	RestaurantId  *uuid.UUID
	DishId        *uuid.UUID
	AverageRating float64
	TotalReviews  int
}
