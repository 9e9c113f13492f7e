package service

import "errors"

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrDishNotFound       = errors.New("dish not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidReviewScope = errors.New("review must target exactly one of restaurant or dish")
)
