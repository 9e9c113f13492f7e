package contract

import (
	"context"

	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/repository/specification"

	"github.com/google/uuid"
)

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	Update(ctx context.Context, restaurant *entity.Restaurant) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Restaurant, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Restaurant, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
