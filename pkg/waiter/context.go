package waiter

import (
	"fmt"
	"strings"
)

// EmptyMenuContext is handed to the model when retrieval finds nothing,
// so the prompt never contains a bare instruction to recommend dishes.
const EmptyMenuContext = "No matching dishes found for this restaurant."

// BuildMenuContext renders retrieved items as one line each, in
// relevance order, with a fixed field order.
func BuildMenuContext(items []RetrievedItem) string {
	if len(items) == 0 {
		return EmptyMenuContext
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf(
			"Name: %s | Category: %s | Price: ₹%.2f | Calories: %d kcal | Tags: %s | Ingredients: %s | Chef Special: %v",
			item.Name, item.Category, item.Price, item.Calories, item.Tags, item.Ingredients, item.ChefSpecial,
		))
	}
	return strings.Join(lines, "\n")
}
