package unitofwork

import (
	"context"

	"github.com/sajjad006/ardine-backend/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	RestaurantRepository() contract.RestaurantRepository
	DishRepository() contract.DishRepository
	OrderRepository() contract.OrderRepository
	DishEmbeddingRepository() contract.DishEmbeddingRepository
	ReviewRepository() contract.ReviewRepository
	ChatSessionRepository() contract.ChatSessionRepository
}
