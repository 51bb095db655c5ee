package shoppinglist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate_Example(t *testing.T) {
	items := []Item{
		{RecipeID: 1, IngredientID: 10, Name: "Flour", Unit: "g", Amount: 200},
		{RecipeID: 1, IngredientID: 11, Name: "Salt", Unit: "g", Amount: 5},
		{RecipeID: 2, IngredientID: 10, Name: "Flour", Unit: "g", Amount: 300},
		{RecipeID: 2, IngredientID: 12, Name: "Sugar", Unit: "g", Amount: 100},
	}

	assert.Equal(t, "* Flour (g) - 500\n* Salt (g) - 5\n* Sugar (g) - 100", Render(Aggregate(items)))
}

func TestAggregate_MergesByLabelNotID(t *testing.T) {
	items := []Item{
		{RecipeID: 1, IngredientID: 1, Name: "Salt", Unit: "g", Amount: 10},
		{RecipeID: 2, IngredientID: 2, Name: "Salt", Unit: "g", Amount: 5},
		{RecipeID: 2, IngredientID: 3, Name: "Salt", Unit: "tsp", Amount: 1},
	}

	assert.Equal(t, []Entry{
		{Label: "Salt (g)", Total: 15},
		{Label: "Salt (tsp)", Total: 1},
	}, Aggregate(items))
}

func TestAggregate_CountsRepeatedRecipeLinesOnce(t *testing.T) {
	line := Item{RecipeID: 1, IngredientID: 1, Name: "Milk", Unit: "ml", Amount: 250}

	assert.Equal(t, []Entry{{Label: "Milk (ml)", Total: 250}}, Aggregate([]Item{line, line, line}))
}

func TestAggregate_ByteOrder(t *testing.T) {
	items := []Item{
		{RecipeID: 1, IngredientID: 1, Name: "яйца", Unit: "шт", Amount: 2},
		{RecipeID: 1, IngredientID: 2, Name: "apple", Unit: "pc", Amount: 1},
		{RecipeID: 1, IngredientID: 3, Name: "Zucchini", Unit: "pc", Amount: 1},
		{RecipeID: 1, IngredientID: 4, Name: "Апельсин", Unit: "шт", Amount: 3},
	}

	var labels []string
	for _, e := range Aggregate(items) {
		labels = append(labels, e.Label)
	}
	assert.Equal(t, []string{"Zucchini (pc)", "apple (pc)", "Апельсин (шт)", "яйца (шт)"}, labels)
}

func TestAggregate_LargeTotalsDoNotOverflow(t *testing.T) {
	var items []Item
	for i := int64(0); i < 100000; i++ {
		items = append(items, Item{RecipeID: i, IngredientID: 1, Name: "Water", Unit: "ml", Amount: 32000})
	}

	assert.Equal(t, "* Water (ml) - 3200000000", Render(Aggregate(items)))
}

func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
	assert.Equal(t, "", Render(Aggregate(nil)))
}

func TestAggregate_Idempotent(t *testing.T) {
	items := []Item{
		{RecipeID: 1, IngredientID: 1, Name: "B", Unit: "g", Amount: 1},
		{RecipeID: 1, IngredientID: 2, Name: "A", Unit: "g", Amount: 2},
	}
	first := Render(Aggregate(items))
	assert.Equal(t, first, Render(Aggregate(items)))
}
