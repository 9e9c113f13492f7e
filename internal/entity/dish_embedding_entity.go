package entity

import (
	"time"

	"github.com/google/uuid"
)

type DishEmbedding struct {
	Id           uuid.UUID
	DishId       uuid.UUID
	RestaurantId uuid.UUID
	Document     string
	Embedding    []float32
	Metadata     map[string]interface{}
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
