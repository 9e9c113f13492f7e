package waiter

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sajjad006/ardine-backend/internal/constant"
	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/pkg/logger"
)

// MenuStore is the narrow menu lookup the executor needs for
// describe_dish. The full menu service satisfies it.
type MenuStore interface {
	GetDishByName(ctx context.Context, restaurantId uuid.UUID, name string) (*entity.Dish, error)
}

// OrderStore is the narrow order creation surface the executor needs for
// confirm_order.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *entity.Order) error
}

// Executor applies a Decision to the session's cart. Only add_to_cart,
// describe_dish and confirm_order have deterministic behavior; every
// other intent passes the model's reply through untouched.
type Executor struct {
	menu   MenuStore
	orders OrderStore
	log    logger.ILogger
}

func NewExecutor(menu MenuStore, orders OrderStore, log logger.ILogger) *Executor {
	return &Executor{
		menu:   menu,
		orders: orders,
		log:    log,
	}
}

// Execute returns the final reply and the new cart. The input cart is
// never mutated in place; callers persist the returned slice.
func (e *Executor) Execute(ctx context.Context, restaurantId uuid.UUID, decision *Decision, contextItems []RetrievedItem, cart []entity.CartEntry) (string, []entity.CartEntry, error) {
	newCart := make([]entity.CartEntry, len(cart))
	copy(newCart, cart)

	switch decision.Intent {
	case IntentAddToCart:
		reply, updated := e.addToCart(decision, contextItems, newCart)
		return reply, updated, nil

	case IntentDescribeDish:
		reply := e.describeDish(ctx, restaurantId, decision, contextItems)
		return reply, newCart, nil

	case IntentConfirmOrder:
		return e.confirmOrder(ctx, restaurantId, decision, newCart)

	default:
		return decision.Reply, newCart, nil
	}
}

// addToCart appends one qty-1 entry per model-reported item that
// case-insensitively matches a retrieved context item. Items the model
// names but retrieval did not surface are ignored, never guessed at.
func (e *Executor) addToCart(decision *Decision, contextItems []RetrievedItem, cart []entity.CartEntry) (string, []entity.CartEntry) {
	var matched []string

	for _, wanted := range decision.Items {
		for _, item := range contextItems {
			if strings.EqualFold(strings.TrimSpace(wanted), item.Name) {
				cart = append(cart, entity.CartEntry{
					DishId: item.DishId,
					Name:   item.Name,
					Price:  item.Price,
					Qty:    1,
				})
				matched = append(matched, item.Name)
				break
			}
		}
	}

	if len(matched) == 0 {
		return decision.Reply, cart
	}

	return fmt.Sprintf("Added to your cart: %s.", strings.Join(matched, ", ")), cart
}

func (e *Executor) describeDish(ctx context.Context, restaurantId uuid.UUID, decision *Decision, contextItems []RetrievedItem) string {
	var descriptions []string

	for _, wanted := range decision.Items {
		name := resolveContextName(wanted, contextItems)

		dish, err := e.menu.GetDishByName(ctx, restaurantId, name)
		if err != nil {
			e.log.Warn("Executor", "Dish lookup failed during describe_dish", map[string]interface{}{
				"restaurant_id": restaurantId.String(),
				"dish_name":     name,
				"error":         err.Error(),
			})
			continue
		}
		if dish == nil {
			continue
		}

		descriptions = append(descriptions, fmt.Sprintf(
			"%s: %s Priced at ₹%.2f, %d kcal.",
			dish.Name, dish.Description, dish.Price, dish.Calories,
		))
	}

	if len(descriptions) > 0 {
		return strings.Join(descriptions, " ")
	}
	if strings.TrimSpace(decision.Reply) != "" {
		return decision.Reply
	}
	return "Which dish would you like to know more about?"
}

func (e *Executor) confirmOrder(ctx context.Context, restaurantId uuid.UUID, decision *Decision, cart []entity.CartEntry) (string, []entity.CartEntry, error) {
	if len(cart) == 0 {
		return "Your cart is empty. Add some dishes before placing an order.", cart, nil
	}

	var total float64
	items := make([]entity.OrderItem, 0, len(cart))
	for _, entry := range cart {
		total += entry.Price * float64(entry.Qty)
		items = append(items, entity.OrderItem{
			DishId:   entry.DishId,
			Name:     entry.Name,
			Price:    entry.Price,
			Quantity: entry.Qty,
		})
	}

	order := &entity.Order{
		RestaurantId: restaurantId,
		Items:        items,
		Total:        total,
		Status:       constant.OrderStatusPending,
	}

	if err := e.orders.CreateOrder(ctx, order); err != nil {
		return "", nil, fmt.Errorf("create order: %w", err)
	}

	reply := fmt.Sprintf("Your order has been placed! Order ID: %s. Total: ₹%.2f.", order.Id, order.Total)
	return reply, []entity.CartEntry{}, nil
}

// resolveContextName prefers the canonical casing from retrieved context
// when the model's item matches one.
func resolveContextName(wanted string, contextItems []RetrievedItem) string {
	for _, item := range contextItems {
		if strings.EqualFold(strings.TrimSpace(wanted), item.Name) {
			return item.Name
		}
	}
	return strings.TrimSpace(wanted)
}
