package dto

import "time"

type CreateRestaurantRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=120"`
	Tagline   string `json:"tagline" validate:"max=255"`
	LogoURL   string `json:"logo_url" validate:"omitempty,url"`
	BannerURL string `json:"banner_url" validate:"omitempty,url"`
}

type UpdateRestaurantRequest struct {
	Name      string `json:"name" validate:"omitempty,min=2,max=120"`
	Tagline   string `json:"tagline" validate:"max=255"`
	LogoURL   string `json:"logo_url" validate:"omitempty,url"`
	BannerURL string `json:"banner_url" validate:"omitempty,url"`
}

type RestaurantResponse struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Tagline   string    `json:"tagline"`
	LogoURL   string    `json:"logo_url"`
	BannerURL string    `json:"banner_url"`
	CreatedAt time.Time `json:"created_at"`
}
