package mapper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/model"

	"gorm.io/datatypes"
)

func TestChatSessionMapper_HistoryAndCartSurviveRoundTrip(t *testing.T) {
	m := NewChatSessionMapper()
	dishId := uuid.New()

	session := &entity.ChatSession{
		Id:           uuid.New(),
		RestaurantId: uuid.New(),
		History: []entity.Turn{
			{Role: "user", Content: "add paneer tikka"},
			{Role: "assistant", Content: "Added to your cart: Paneer Tikka.", Intent: "add_to_cart",
				Context: []entity.TurnContextItem{{Name: "Paneer Tikka", Price: 150, Calories: 280, Tags: "veg"}}},
		},
		Cart: []entity.CartEntry{
			{DishId: dishId, Name: "Paneer Tikka", Price: 150, Qty: 1},
			{DishId: dishId, Name: "Paneer Tikka", Price: 150, Qty: 1}, // duplicate rows are legal
		},
		CreatedAt: time.Now(),
	}

	got := m.ToEntity(m.ToModel(session))
	require.NotNil(t, got)

	require.Len(t, got.History, 2)
	assert.Equal(t, "add_to_cart", got.History[1].Intent)
	require.Len(t, got.History[1].Context, 1)
	assert.Equal(t, "Paneer Tikka", got.History[1].Context[0].Name)

	require.Len(t, got.Cart, 2)
	assert.Equal(t, dishId, got.Cart[0].DishId)
	assert.Equal(t, 1, got.Cart[1].Qty)
}

func TestChatSessionMapper_CorruptBlobsDegradeToEmpty(t *testing.T) {
	m := NewChatSessionMapper()

	got := m.ToEntity(&model.ChatSession{
		Id:           uuid.New(),
		RestaurantId: uuid.New(),
		History:      datatypes.JSON([]byte("{corrupt")),
		Cart:         datatypes.JSON([]byte("not json at all")),
	})

	require.NotNil(t, got)
	assert.Empty(t, got.History)
	assert.Empty(t, got.Cart)
}
