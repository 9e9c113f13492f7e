package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is the minimal contract for anything published to the event bus.
type Event interface {
	EventType() string
	Payload() interface{}
}

// OrderCreatedEvent is emitted after an order has been persisted.
type OrderCreatedEvent struct {
	OrderId      uuid.UUID `json:"order_id"`
	RestaurantId uuid.UUID `json:"restaurant_id"`
	Total        float64   `json:"total"`
	ItemCount    int       `json:"item_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func (e OrderCreatedEvent) EventType() string {
	return "order.created"
}

func (e OrderCreatedEvent) Payload() interface{} {
	return e
}

// OrderStatusChangedEvent is emitted when staff move an order through its lifecycle.
type OrderStatusChangedEvent struct {
	OrderId      uuid.UUID `json:"order_id"`
	RestaurantId uuid.UUID `json:"restaurant_id"`
	OldStatus    string    `json:"old_status"`
	NewStatus    string    `json:"new_status"`
	ChangedAt    time.Time `json:"changed_at"`
}

func (e OrderStatusChangedEvent) EventType() string {
	return "order.status_changed"
}

func (e OrderStatusChangedEvent) Payload() interface{} {
	return e
}
