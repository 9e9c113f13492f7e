package contract

import (
	"context"

	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/repository/specification"

	"github.com/google/uuid"
)

type DishRepository interface {
	Create(ctx context.Context, dish *entity.Dish) error
	Update(ctx context.Context, dish *entity.Dish) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Dish, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Dish, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
