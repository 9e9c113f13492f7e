package dto

import "time"

// CreateReviewRequest targets either a dish or a restaurant; exactly one
// of the two ids must be set (enforced in the service, not the validator).
type CreateReviewRequest struct {
	RestaurantId string `json:"restaurant_id" validate:"omitempty,uuid"`
	DishId       string `json:"dish_id" validate:"omitempty,uuid"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment      string `json:"comment" validate:"max=2000"`
}

type ReviewResponse struct {
	Id           string    `json:"id"`
	RestaurantId string    `json:"restaurant_id,omitempty"`
	DishId       string    `json:"dish_id,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
}

type RatingAggregateResponse struct {
	RestaurantId  string  `json:"restaurant_id,omitempty"`
	DishId        string  `json:"dish_id,omitempty"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}
