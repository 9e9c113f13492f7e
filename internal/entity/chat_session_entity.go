package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatSession is the durable per-conversation state: the full transcript
// plus the in-progress cart. Persistence stores both as opaque JSON; the
// application only ever sees these typed records.
type ChatSession struct {
	Id           uuid.UUID
	RestaurantId uuid.UUID
	History      []Turn
	Cart         []CartEntry
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Turn is one transcript entry. Assistant turns also record the intent that
// produced them and the context items that were shown.
type Turn struct {
	Role    string            `json:"role"`
	Content string            `json:"content"`
	Intent  string            `json:"intent,omitempty"`
	Context []TurnContextItem `json:"context,omitempty"`
}

type TurnContextItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Calories int     `json:"calories"`
	Tags     string  `json:"tags"`
}

// CartEntry is one cart line. The cart is a sequence, not a map: adding the
// same dish twice appends a second row rather than merging quantities.
type CartEntry struct {
	DishId uuid.UUID `json:"dish_id"`
	Name   string    `json:"name"`
	Price  float64   `json:"price"`
	Qty    int       `json:"qty"`
}
