package mapper

import (
	"time"

	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/model"
)

type RestaurantMapper struct{}

func NewRestaurantMapper() *RestaurantMapper {
	return &RestaurantMapper{}
}

func (m *RestaurantMapper) ToEntity(r *model.Restaurant) *entity.Restaurant {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.Restaurant{
		Id:        r.Id,
		Name:      r.Name,
		Tagline:   r.Tagline,
		LogoURL:   r.LogoURL,
		BannerURL: r.BannerURL,
		CreatedAt: r.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *RestaurantMapper) ToModel(r *entity.Restaurant) *model.Restaurant {
	if r == nil {
		return nil
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.Restaurant{
		Id:        r.Id,
		Name:      r.Name,
		Tagline:   r.Tagline,
		LogoURL:   r.LogoURL,
		BannerURL: r.BannerURL,
		CreatedAt: r.CreatedAt,
		UpdatedAt: updatedAt,
	}
}
