package mapper

import (
	"time"

	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/model"
)

type ReviewMapper struct{}

func NewReviewMapper() *ReviewMapper {
	return &ReviewMapper{}
}

func (m *ReviewMapper) ToEntity(r *model.Review) *entity.Review {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.Review{
		Id:           r.Id,
		RestaurantId: r.RestaurantId,
		DishId:       r.DishId,
		Rating:       r.Rating,
		Comment:      r.Comment,
		IsVerified:   r.IsVerified,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ReviewMapper) ToModel(r *entity.Review) *model.Review {
	if r == nil {
		return nil
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.Review{
		Id:           r.Id,
		RestaurantId: r.RestaurantId,
		DishId:       r.DishId,
		Rating:       r.Rating,
		Comment:      r.Comment,
		IsVerified:   r.IsVerified,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ReviewMapper) AggregateToEntity(a *model.RatingAggregate) *entity.RatingAggregate {
	if a == nil {
		return nil
	}
	return &entity.RatingAggregate{
		Id:            a.Id,
		RestaurantId:  a.RestaurantId,
		DishId:        a.DishId,
		AverageRating: a.AverageRating,
		TotalReviews:  a.TotalReviews,
	}
}

func (m *ReviewMapper) AggregateToModel(a *entity.RatingAggregate) *model.RatingAggregate {
	if a == nil {
		return nil
	}
	return &model.RatingAggregate{
		Id:            a.Id,
		RestaurantId:  a.RestaurantId,
		DishId:        a.DishId,
		AverageRating: a.AverageRating,
		TotalReviews:  a.TotalReviews,
	}
}
