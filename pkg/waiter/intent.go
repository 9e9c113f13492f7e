package waiter

import "strings"

// The closed set of intents the dialogue policy may emit. Anything the
// model produces outside this set is normalized to IntentUnknown before
// it reaches the executor.
const (
	IntentChat           = "chat"
	IntentDescribeDish   = "describe_dish"
	IntentAddToCart      = "add_to_cart"
	IntentRemoveFromCart = "remove_from_cart"
	IntentUpdateQuantity = "update_quantity"
	IntentCheckCart      = "check_cart"
	IntentConfirmOrder   = "confirm_order"
	IntentRecommendDish  = "recommend_dish"
	IntentAskCalories    = "ask_calories"
	IntentAskIngredients = "ask_ingredients"
	IntentAskPrice       = "ask_price"
	IntentAskCategory    = "ask_category"
	IntentRestaurantInfo = "restaurant_info"
	IntentGreet          = "greet"
	IntentGoodbye        = "goodbye"
	IntentUnknown        = "unknown"
)

var knownIntents = map[string]bool{
	IntentChat:           true,
	IntentDescribeDish:   true,
	IntentAddToCart:      true,
	IntentRemoveFromCart: true,
	IntentUpdateQuantity: true,
	IntentCheckCart:      true,
	IntentConfirmOrder:   true,
	IntentRecommendDish:  true,
	IntentAskCalories:    true,
	IntentAskIngredients: true,
	IntentAskPrice:       true,
	IntentAskCategory:    true,
	IntentRestaurantInfo: true,
	IntentGreet:          true,
	IntentGoodbye:        true,
	IntentUnknown:        true,
}

// normalizeIntent lowercases and trims the model's intent label and maps
// anything outside the closed set to IntentUnknown.
func normalizeIntent(raw string) string {
	intent := strings.ToLower(strings.TrimSpace(raw))
	if knownIntents[intent] {
		return intent
	}
	return IntentUnknown
}

// Decision is the structured output of one policy call: what the model
// decided the user wants, what it wants to say, and which menu items it
// believes the user referenced.
type Decision struct {
	Intent string   `json:"intent"`
	Reply  string   `json:"reply"`
	Items  []string `json:"items"`
}
