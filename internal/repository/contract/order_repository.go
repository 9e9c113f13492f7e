package contract

import (
	"context"

	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/repository/specification"

	"github.com/google/uuid"
)

type OrderRepository interface {
	// Create persists the order together with its line items.
	Create(ctx context.Context, order *entity.Order) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
