package mapper

import (
	"encoding/json"
	"time"

	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type DishEmbeddingMapper struct{}

func NewDishEmbeddingMapper() *DishEmbeddingMapper {
	return &DishEmbeddingMapper{}
}

func (m *DishEmbeddingMapper) ToEntity(e *model.DishEmbedding) *entity.DishEmbedding {
	if e == nil {
		return nil
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	meta := map[string]interface{}{}
	if len(e.Metadata) > 0 {
		_ = json.Unmarshal(e.Metadata, &meta)
	}

	return &entity.DishEmbedding{
		Id:           e.Id,
		DishId:       e.DishId,
		RestaurantId: e.RestaurantId,
		Document:     e.Document,
		Embedding:    e.EmbeddingValue.Slice(),
		Metadata:     meta,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *DishEmbeddingMapper) ToModel(e *entity.DishEmbedding) *model.DishEmbedding {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	meta := e.Metadata
	if meta == nil {
		meta = map[string]interface{}{}
	}
	blob, err := json.Marshal(meta)
	if err != nil {
		blob = []byte("{}")
	}

	return &model.DishEmbedding{
		Id:             e.Id,
		DishId:         e.DishId,
		RestaurantId:   e.RestaurantId,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.Embedding),
		Metadata:       datatypes.JSON(blob),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}
