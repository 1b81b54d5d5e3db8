package services

import (
	"testing"

	"github.com/mealwise/mws/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipeWithIngredients(id int, title string, ingredients ...models.Ingredient) *models.Recipe {
	return &models.Recipe{
		ID:                  id,
		Title:               title,
		ExtendedIngredients: ingredients,
	}
}

func findItem(t *testing.T, items []models.ShoppingListItem, name string) models.ShoppingListItem {
	t.Helper()
	for _, item := range items {
		if item.Name == name {
			return item
		}
	}
	t.Fatalf("item %q not in list", name)
	return models.ShoppingListItem{}
}

func amount(v float64) *float64 { return &v }

func TestGenerateAddsAmountsForMatchingUnits(t *testing.T) {
	svc := NewShoppingService()

	list := svc.Generate([]*models.Recipe{
		recipeWithIngredients(1, "Pasta",
			models.Ingredient{ID: 1, Name: "olive oil", Amount: 2, Unit: "tbsp", Aisle: "Oils"}),
		recipeWithIngredients(2, "Salad",
			models.Ingredient{ID: 1, Name: "olive oil", Amount: 3, Unit: "tbsp", Aisle: "Oils"}),
	})

	require.Len(t, list, 1)
	assert.Equal(t, 5.0, list[0].Amount)
	assert.Equal(t, []string{"Pasta", "Salad"}, list[0].Recipes)
}

func TestGenerateUnitMismatchKeepsFirstAmount(t *testing.T) {
	svc := NewShoppingService()

	list := svc.Generate([]*models.Recipe{
		recipeWithIngredients(1, "Soup",
			models.Ingredient{ID: 1, Name: "carrots", Amount: 3, Unit: "medium", Aisle: "Produce"}),
		recipeWithIngredients(2, "Stew",
			models.Ingredient{ID: 1, Name: "carrots", Amount: 1, Unit: "lb", Aisle: "Produce"}),
	})

	require.Len(t, list, 1)
	// Mismatched unit never corrupts the stored amount, but the second
	// recipe still shows up as a contributor.
	assert.Equal(t, 3.0, list[0].Amount)
	assert.Equal(t, "medium", list[0].Unit)
	assert.Equal(t, []string{"Soup", "Stew"}, list[0].Recipes)
}

func TestGenerateCaseInsensitiveNames(t *testing.T) {
	svc := NewShoppingService()

	list := svc.Generate([]*models.Recipe{
		recipeWithIngredients(1, "A", models.Ingredient{Name: "Garlic", Amount: 2, Unit: "cloves"}),
		recipeWithIngredients(2, "B", models.Ingredient{Name: "garlic", Amount: 4, Unit: "cloves"}),
	})

	require.Len(t, list, 1)
	assert.Equal(t, 6.0, list[0].Amount)
}

func TestGenerateSortsByAisleThenName(t *testing.T) {
	svc := NewShoppingService()

	list := svc.Generate([]*models.Recipe{
		recipeWithIngredients(1, "Dinner",
			models.Ingredient{Name: "zucchini", Amount: 1, Unit: "medium", Aisle: "Produce"},
			models.Ingredient{Name: "chicken", Amount: 1, Unit: "lb", Aisle: "Meat"},
			models.Ingredient{Name: "asparagus", Amount: 1, Unit: "bunch", Aisle: "Produce"},
			models.Ingredient{Name: "secret sauce", Amount: 1, Unit: "jar"},
		),
	})

	require.Len(t, list, 4)
	assert.Equal(t, "chicken", list[0].Name)
	// Missing aisle lands in "Other", which sorts before "Produce".
	assert.Equal(t, "secret sauce", list[1].Name)
	assert.Equal(t, "Other", list[1].Aisle)
	assert.Equal(t, "asparagus", list[2].Name)
	assert.Equal(t, "zucchini", list[3].Name)
}

func TestGenerateSkipsNilAndEmpty(t *testing.T) {
	svc := NewShoppingService()

	list := svc.Generate([]*models.Recipe{
		nil,
		recipeWithIngredients(1, "A", models.Ingredient{Name: "", Amount: 1, Unit: "cup"}),
	})
	assert.Empty(t, list)
	assert.Empty(t, svc.Generate(nil))
}

func TestReconcileFullCoverage(t *testing.T) {
	svc := NewShoppingService()

	items := []models.ShoppingListItem{{Name: "rice", Amount: 1, Unit: "cups", Aisle: "Grains"}}
	inventory := []*models.InventoryItem{{Name: "rice", Amount: amount(2), Unit: "cups"}}

	out := svc.Reconcile(items, inventory)
	require.Len(t, out, 1)
	assert.True(t, out[0].OnHand)
	assert.True(t, out[0].CoveredByInventory)
	require.NotNil(t, out[0].AdjustedAmount)
	assert.Equal(t, 0.0, *out[0].AdjustedAmount)
	require.NotNil(t, out[0].OriginalAmount)
	assert.Equal(t, 1.0, *out[0].OriginalAmount)
}

func TestReconcilePartialCoverage(t *testing.T) {
	svc := NewShoppingService()

	items := []models.ShoppingListItem{{Name: "rice", Amount: 3, Unit: "cups", Aisle: "Grains"}}
	inventory := []*models.InventoryItem{{Name: "rice", Amount: amount(1), Unit: "cups"}}

	out := svc.Reconcile(items, inventory)
	require.Len(t, out, 1)
	assert.True(t, out[0].OnHand)
	assert.False(t, out[0].CoveredByInventory)
	require.NotNil(t, out[0].AdjustedAmount)
	assert.Equal(t, 2.0, *out[0].AdjustedAmount)
	require.NotNil(t, out[0].OnHandAmount)
	assert.Equal(t, 1.0, *out[0].OnHandAmount)
	assert.Equal(t, "cups", out[0].OnHandUnit)
}

func TestReconcileUnknownInventoryAmount(t *testing.T) {
	svc := NewShoppingService()

	items := []models.ShoppingListItem{{Name: "soy sauce", Amount: 3, Unit: "tbsp"}}
	inventory := []*models.InventoryItem{{Name: "soy sauce", DisplayName: "Soy Sauce"}}

	out := svc.Reconcile(items, inventory)
	require.Len(t, out, 1)
	assert.True(t, out[0].OnHand)
	assert.Equal(t, "You may have Soy Sauce in your pantry", out[0].OnHandNote)
	assert.Nil(t, out[0].AdjustedAmount)
}

func TestReconcileUnitMismatchNote(t *testing.T) {
	svc := NewShoppingService()

	items := []models.ShoppingListItem{{Name: "flour", Amount: 2, Unit: "cups"}}
	inventory := []*models.InventoryItem{{Name: "flour", Amount: amount(500), Unit: "g"}}

	out := svc.Reconcile(items, inventory)
	require.Len(t, out, 1)
	assert.True(t, out[0].OnHand)
	assert.Equal(t, "You have 500 g of flour", out[0].OnHandNote)
	// No subtraction across incompatible units.
	assert.Equal(t, 2.0, out[0].Amount)
	assert.Nil(t, out[0].AdjustedAmount)
}

func TestReconcileUnitAliases(t *testing.T) {
	svc := NewShoppingService()

	// "lb" and "pounds" normalize to the same unit, so subtraction applies.
	items := []models.ShoppingListItem{{Name: "chicken breast", Amount: 2, Unit: "lb"}}
	inventory := []*models.InventoryItem{{Name: "chicken breast", Amount: amount(1), Unit: "pounds"}}

	out := svc.Reconcile(items, inventory)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].AdjustedAmount)
	assert.Equal(t, 1.0, *out[0].AdjustedAmount)
}

func TestReconcileZeroOnHandAmount(t *testing.T) {
	svc := NewShoppingService()

	// A zero amount on hand means "present but effectively none": no math,
	// just the generic note.
	items := []models.ShoppingListItem{{Name: "cumin", Amount: 1, Unit: "tsp"}}
	inventory := []*models.InventoryItem{{Name: "cumin", Amount: amount(0), Unit: "tsp"}}

	out := svc.Reconcile(items, inventory)
	require.Len(t, out, 1)
	assert.True(t, out[0].OnHand)
	assert.Equal(t, "You have some cumin on hand", out[0].OnHandNote)
	assert.Nil(t, out[0].AdjustedAmount)
}

func TestReconcileSubstringMatching(t *testing.T) {
	svc := NewShoppingService()

	items := []models.ShoppingListItem{{Name: "cherry tomatoes", Amount: 1, Unit: "cup"}}
	inventory := []*models.InventoryItem{{Name: "tomatoes", Amount: amount(2), Unit: "cup"}}

	out := svc.Reconcile(items, inventory)
	require.Len(t, out, 1)
	assert.True(t, out[0].OnHand)
	assert.True(t, out[0].CoveredByInventory)
}

func TestReconcileFirstMatchWins(t *testing.T) {
	svc := NewShoppingService()

	items := []models.ShoppingListItem{{Name: "tomato", Amount: 4, Unit: "medium"}}
	inventory := []*models.InventoryItem{
		{Name: "tomato", Amount: amount(1), Unit: "medium"},
		{Name: "tomato", Amount: amount(10), Unit: "medium"},
	}

	out := svc.Reconcile(items, inventory)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].AdjustedAmount)
	// Only the first inventory entry counts.
	assert.Equal(t, 3.0, *out[0].AdjustedAmount)
}

func TestReconcileNeverRemovesItems(t *testing.T) {
	svc := NewShoppingService()

	items := []models.ShoppingListItem{
		{Name: "rice", Amount: 1, Unit: "cups"},
		{Name: "beans", Amount: 1, Unit: "cans"},
	}
	inventory := []*models.InventoryItem{{Name: "rice", Amount: amount(5), Unit: "cups"}}

	out := svc.Reconcile(items, inventory)
	assert.Len(t, out, len(items))
	assert.True(t, findItem(t, out, "rice").CoveredByInventory)
	assert.False(t, findItem(t, out, "beans").OnHand)
}
