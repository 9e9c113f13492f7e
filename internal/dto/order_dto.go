package dto

import "time"

type CreateOrderRequest struct {
	RestaurantId string                   `json:"restaurant_id" validate:"required,uuid"`
	Items        []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
	CustomerName string                   `json:"customer_name" validate:"max=120"`
	TableLabel   string                   `json:"table_label" validate:"max=40"`
}

type CreateOrderItemRequest struct {
	DishId   string `json:"dish_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type OrderResponse struct {
	Id           string              `json:"id"`
	RestaurantId string              `json:"restaurant_id"`
	Items        []OrderItemResponse `json:"items"`
	Total        float64             `json:"total"`
	Status       string              `json:"status"`
	CustomerName string              `json:"customer_name"`
	TableLabel   string              `json:"table_label"`
	CreatedAt    time.Time           `json:"created_at"`
}

type OrderItemResponse struct {
	DishId   string  `json:"dish_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
