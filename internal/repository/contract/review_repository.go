package contract

import (
	"context"

	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/repository/specification"

	"github.com/google/uuid"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Review, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// AggregateFor recomputes average and count for one dish or restaurant.
	AggregateFor(ctx context.Context, restaurantId, dishId *uuid.UUID) (avg float64, count int, err error)
	UpsertAggregate(ctx context.Context, aggregate *entity.RatingAggregate) error
	FindAggregate(ctx context.Context, restaurantId, dishId *uuid.UUID) (*entity.RatingAggregate, error)
}
