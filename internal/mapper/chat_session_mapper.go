package mapper

import (
	"encoding/json"
	"time"

	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/model"

	"gorm.io/datatypes"
)

// ChatSessionMapper converts between the typed session entity and the
// JSON-blob persistence shape. Malformed blobs decode to empty slices so a
// corrupt row degrades to a fresh-looking session instead of failing a turn.
type ChatSessionMapper struct{}

func NewChatSessionMapper() *ChatSessionMapper {
	return &ChatSessionMapper{}
}

func (m *ChatSessionMapper) ToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	var history []entity.Turn
	if len(s.History) > 0 {
		_ = json.Unmarshal(s.History, &history)
	}

	var cart []entity.CartEntry
	if len(s.Cart) > 0 {
		_ = json.Unmarshal(s.Cart, &cart)
	}

	return &entity.ChatSession{
		Id:           s.Id,
		RestaurantId: s.RestaurantId,
		History:      history,
		Cart:         cart,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ChatSessionMapper) ToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.ChatSession{
		Id:           s.Id,
		RestaurantId: s.RestaurantId,
		History:      marshalJSON(s.History),
		Cart:         marshalJSON(s.Cart),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func marshalJSON(v interface{}) datatypes.JSON {
	blob, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(blob)
}
