package waiter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMenuContext_Empty(t *testing.T) {
	assert.Equal(t, "No matching dishes found for this restaurant.", BuildMenuContext(nil))
	assert.Equal(t, "No matching dishes found for this restaurant.", BuildMenuContext([]RetrievedItem{}))
}

func TestBuildMenuContext_LineCountMatchesItemCount(t *testing.T) {
	items := []RetrievedItem{
		{Name: "Paneer Tikka", Category: "Starters", Price: 150, Calories: 280, Tags: "veg, spicy", Ingredients: "paneer, spices"},
		{Name: "Chicken Soup", Category: "Soups", Price: 120, Calories: 180, Tags: "non-veg, light", Ingredients: "chicken, herbs"},
		{Name: "Gulab Jamun", Category: "Desserts", Price: 90, Calories: 350, Tags: "sweet", Ingredients: "khoya, sugar"},
	}

	out := BuildMenuContext(items)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, len(items))
}

func TestBuildMenuContext_FieldOrder(t *testing.T) {
	items := []RetrievedItem{
		{Name: "Paneer Tikka", Category: "Starters", Price: 150, Calories: 280, Tags: "veg", Ingredients: "paneer", ChefSpecial: true},
	}

	out := BuildMenuContext(items)
	assert.Equal(t, "Name: Paneer Tikka | Category: Starters | Price: ₹150.00 | Calories: 280 kcal | Tags: veg | Ingredients: paneer | Chef Special: true", out)
}

func TestBuildMenuContext_ZeroValuedFieldsStillRender(t *testing.T) {
	out := BuildMenuContext([]RetrievedItem{{Name: "Mystery Dish"}})
	assert.Contains(t, out, "Name: Mystery Dish")
	assert.Contains(t, out, "Price: ₹0.00")
	assert.Contains(t, out, "Calories: 0 kcal")
	assert.Contains(t, out, "Chef Special: false")
}
