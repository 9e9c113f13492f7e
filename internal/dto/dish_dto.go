package dto

import "time"

type CreateDishRequest struct {
	RestaurantId    string   `json:"restaurant_id" validate:"required,uuid"`
	Name            string   `json:"name" validate:"required,min=2,max=120"`
	Description     string   `json:"description"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	Calories        int      `json:"calories" validate:"gte=0"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	Ingredients     []string `json:"ingredients"`
	ChefSpecial     bool     `json:"chef_special"`
	ImageURL        string   `json:"image_url" validate:"omitempty,url"`
	VideoURL        string   `json:"video_url" validate:"omitempty,url"`
	Model3DURL      string   `json:"model_3d_url" validate:"omitempty,url"`
	GstRate         float64  `json:"gst_rate" validate:"gte=0"`
	DiscountPercent float64  `json:"discount_percent" validate:"gte=0,lte=100"`
}

type UpdateDishRequest struct {
	Name            string   `json:"name" validate:"omitempty,min=2,max=120"`
	Description     string   `json:"description"`
	Price           float64  `json:"price" validate:"omitempty,gt=0"`
	Calories        int      `json:"calories" validate:"gte=0"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	Ingredients     []string `json:"ingredients"`
	ChefSpecial     *bool    `json:"chef_special"`
	ImageURL        string   `json:"image_url" validate:"omitempty,url"`
	VideoURL        string   `json:"video_url" validate:"omitempty,url"`
	Model3DURL      string   `json:"model_3d_url" validate:"omitempty,url"`
	IsActive        *bool    `json:"is_active"`
	GstRate         float64  `json:"gst_rate" validate:"gte=0"`
	DiscountPercent float64  `json:"discount_percent" validate:"gte=0,lte=100"`
}

type DishResponse struct {
	Id              string    `json:"id"`
	RestaurantId    string    `json:"restaurant_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	Calories        int       `json:"calories"`
	Category        string    `json:"category"`
	Tags            []string  `json:"tags"`
	Ingredients     []string  `json:"ingredients"`
	ChefSpecial     bool      `json:"chef_special"`
	ImageURL        string    `json:"image_url"`
	VideoURL        string    `json:"video_url"`
	Model3DURL      string    `json:"model_3d_url"`
	IsActive        bool      `json:"is_active"`
	GstRate         float64   `json:"gst_rate"`
	DiscountPercent float64   `json:"discount_percent"`
	CreatedAt       time.Time `json:"created_at"`
}
