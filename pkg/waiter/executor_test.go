package waiter

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajjad006/ardine-backend/internal/entity"
)

type fakeMenuStore struct {
	dishes map[string]*entity.Dish
}

func (f *fakeMenuStore) GetDishByName(ctx context.Context, restaurantId uuid.UUID, name string) (*entity.Dish, error) {
	return f.dishes[name], nil
}

type fakeOrderStore struct {
	created []*entity.Order
}

func (f *fakeOrderStore) CreateOrder(ctx context.Context, order *entity.Order) error {
	if order.Id == uuid.Nil {
		order.Id = uuid.New()
	}
	f.created = append(f.created, order)
	return nil
}

func newTestExecutor() (*Executor, *fakeMenuStore, *fakeOrderStore) {
	menu := &fakeMenuStore{dishes: map[string]*entity.Dish{}}
	orders := &fakeOrderStore{}
	return NewExecutor(menu, orders, nopLogger{}), menu, orders
}

func TestExecute_AddToCart_MatchedItem(t *testing.T) {
	executor, _, _ := newTestExecutor()
	restaurantId := uuid.New()
	dishId := uuid.New()

	contextItems := []RetrievedItem{
		{DishId: dishId, Name: "Paneer Tikka", Price: 150},
	}
	decision := &Decision{
		Intent: IntentAddToCart,
		Reply:  "I added Paneer Tikka and a free lobster!",
		Items:  []string{"paneer tikka"},
	}

	reply, cart, err := executor.Execute(context.Background(), restaurantId, decision, contextItems, nil)
	require.NoError(t, err)

	require.Len(t, cart, 1)
	assert.Equal(t, dishId, cart[0].DishId)
	assert.Equal(t, "Paneer Tikka", cart[0].Name)
	assert.Equal(t, 150.0, cart[0].Price)
	assert.Equal(t, 1, cart[0].Qty)

	// Deterministic confirmation replaces the model's own claim.
	assert.Equal(t, "Added to your cart: Paneer Tikka.", reply)
}

func TestExecute_AddToCart_UnmatchedItemIgnored(t *testing.T) {
	executor, _, _ := newTestExecutor()

	contextItems := []RetrievedItem{
		{DishId: uuid.New(), Name: "Chicken Soup", Price: 120},
	}
	decision := &Decision{
		Intent: IntentAddToCart,
		Reply:  "Let me check the menu for that.",
		Items:  []string{"Paneer Tikka"},
	}

	reply, cart, err := executor.Execute(context.Background(), uuid.New(), decision, contextItems, nil)
	require.NoError(t, err)

	assert.Empty(t, cart)
	assert.Equal(t, "Let me check the menu for that.", reply)
}

func TestExecute_AddToCart_DuplicateAddsAppend(t *testing.T) {
	executor, _, _ := newTestExecutor()
	dishId := uuid.New()

	contextItems := []RetrievedItem{{DishId: dishId, Name: "Paneer Tikka", Price: 150}}
	decision := &Decision{Intent: IntentAddToCart, Items: []string{"Paneer Tikka"}}
	existing := []entity.CartEntry{{DishId: dishId, Name: "Paneer Tikka", Price: 150, Qty: 1}}

	_, cart, err := executor.Execute(context.Background(), uuid.New(), decision, contextItems, existing)
	require.NoError(t, err)

	// A second add is a second row, not a merged quantity.
	require.Len(t, cart, 2)
	assert.Equal(t, 1, cart[0].Qty)
	assert.Equal(t, 1, cart[1].Qty)
}

func TestExecute_AddToCart_InputCartNotMutated(t *testing.T) {
	executor, _, _ := newTestExecutor()
	dishId := uuid.New()

	contextItems := []RetrievedItem{{DishId: dishId, Name: "Paneer Tikka", Price: 150}}
	decision := &Decision{Intent: IntentAddToCart, Items: []string{"Paneer Tikka"}}
	existing := make([]entity.CartEntry, 0, 4)

	_, cart, err := executor.Execute(context.Background(), uuid.New(), decision, contextItems, existing)
	require.NoError(t, err)

	assert.Empty(t, existing)
	assert.Len(t, cart, 1)
}

func TestExecute_ConfirmOrder_EmptyCart(t *testing.T) {
	executor, _, orders := newTestExecutor()

	decision := &Decision{Intent: IntentConfirmOrder, Reply: "Placing your order now."}

	reply, cart, err := executor.Execute(context.Background(), uuid.New(), decision, nil, nil)
	require.NoError(t, err)

	assert.Empty(t, orders.created)
	assert.Empty(t, cart)
	assert.Contains(t, reply, "empty")
}

func TestExecute_ConfirmOrder_TotalAndCartClear(t *testing.T) {
	executor, _, orders := newTestExecutor()
	restaurantId := uuid.New()

	existing := []entity.CartEntry{
		{DishId: uuid.New(), Name: "Paneer Tikka", Price: 150, Qty: 1},
		{DishId: uuid.New(), Name: "Chicken Soup", Price: 120, Qty: 2},
	}
	decision := &Decision{Intent: IntentConfirmOrder}

	reply, cart, err := executor.Execute(context.Background(), restaurantId, decision, nil, existing)
	require.NoError(t, err)

	require.Len(t, orders.created, 1)
	order := orders.created[0]
	assert.Equal(t, restaurantId, order.RestaurantId)
	assert.Equal(t, 390.0, order.Total)
	assert.Equal(t, "pending", order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[1].Quantity)

	assert.Empty(t, cart)
	assert.Contains(t, reply, "390.00")
	assert.Contains(t, reply, order.Id.String())
}

func TestExecute_ConfirmOrder_SingleItemScenario(t *testing.T) {
	executor, _, _ := newTestExecutor()

	existing := []entity.CartEntry{
		{DishId: uuid.New(), Name: "Paneer Tikka", Price: 150, Qty: 1},
	}
	decision := &Decision{Intent: IntentConfirmOrder}

	reply, cart, err := executor.Execute(context.Background(), uuid.New(), decision, nil, existing)
	require.NoError(t, err)

	assert.Contains(t, reply, "150.00")
	assert.Empty(t, cart)
}

func TestExecute_DescribeDish_UsesAuthoritativeRecord(t *testing.T) {
	executor, menu, _ := newTestExecutor()

	menu.dishes["Paneer Tikka"] = &entity.Dish{
		Name:        "Paneer Tikka",
		Description: "Char-grilled cottage cheese cubes.",
		Price:       150,
		Calories:    280,
	}

	contextItems := []RetrievedItem{{DishId: uuid.New(), Name: "Paneer Tikka", Price: 150}}
	decision := &Decision{Intent: IntentDescribeDish, Reply: "It's some kind of cheese thing.", Items: []string{"paneer tikka"}}

	reply, _, err := executor.Execute(context.Background(), uuid.New(), decision, contextItems, nil)
	require.NoError(t, err)

	assert.Contains(t, reply, "Char-grilled cottage cheese cubes.")
	assert.Contains(t, reply, "150.00")
	assert.Contains(t, reply, "280")
}

func TestExecute_DescribeDish_FallsBackToClarification(t *testing.T) {
	executor, _, _ := newTestExecutor()

	decision := &Decision{Intent: IntentDescribeDish, Reply: "", Items: []string{"Nonexistent Dish"}}

	reply, _, err := executor.Execute(context.Background(), uuid.New(), decision, nil, nil)
	require.NoError(t, err)

	assert.Contains(t, reply, "Which dish")
}

func TestExecute_PassthroughIntents(t *testing.T) {
	executor, _, orders := newTestExecutor()

	existing := []entity.CartEntry{{DishId: uuid.New(), Name: "Chicken Soup", Price: 120, Qty: 1}}

	for _, intent := range []string{IntentChat, IntentRecommendDish, IntentCheckCart, IntentAskPrice, IntentGreet, IntentGoodbye, IntentUnknown} {
		decision := &Decision{Intent: intent, Reply: "model reply"}

		reply, cart, err := executor.Execute(context.Background(), uuid.New(), decision, nil, existing)
		require.NoError(t, err)

		assert.Equal(t, "model reply", reply)
		assert.Equal(t, existing, cart)
		assert.Empty(t, orders.created)
	}
}
