package contract

import (
	"context"

	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/repository/specification"

	"github.com/google/uuid"
)

type DishEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.DishEmbedding) error
	CreateBulk(ctx context.Context, embeddings []*entity.DishEmbedding) error
	DeleteByDishId(ctx context.Context, dishId uuid.UUID) error
	DeleteAll(ctx context.Context) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DishEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilar returns nearest-first matches scoped to one restaurant.
	// The restaurant filter is a correctness requirement, not an optimization.
	SearchSimilar(ctx context.Context, embedding []float32, limit int, restaurantId uuid.UUID) ([]*entity.DishEmbedding, error)
}
