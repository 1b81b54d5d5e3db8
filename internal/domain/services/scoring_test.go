package services

import (
	"testing"

	"github.com/mealwise/mws/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRecipeBase(t *testing.T) {
	r := &models.Recipe{ID: 1, Title: "Plain"}

	score := ScoreRecipe(r, models.Preferences{}, nil, nil)
	assert.Equal(t, baseScore, score)
}

func TestScoreRecipeBonuses(t *testing.T) {
	r := &models.Recipe{
		ID:          1,
		HealthScore: 80,
		Cuisines:    []string{"Italian"},
		Freezable:   true,
		Cheap:       true,
		VeryPopular: true,
	}
	prefs := models.Preferences{CuisinePreferences: []string{"italian"}}

	score := ScoreRecipe(r, prefs, nil, nil)
	want := baseScore + 80*healthScoreWeight + cuisineMatchBonus + freezableBonus + cheapBonus + popularBonus
	assert.InDelta(t, want, score, 1e-9)
}

func TestCuisineMatchIsBidirectionalSubstring(t *testing.T) {
	assert.True(t, matchesPreferredCuisine([]string{"Asian"}, []string{"asian fusion"}))
	assert.True(t, matchesPreferredCuisine([]string{"Latin American"}, []string{"american"}))
	assert.False(t, matchesPreferredCuisine([]string{"French"}, []string{"thai"}))
	assert.False(t, matchesPreferredCuisine(nil, []string{"thai"}))
}

func TestIngredientOverlapAveragesAcrossPool(t *testing.T) {
	a := recipeWithIngredients(1, "A",
		models.Ingredient{Name: "rice"},
		models.Ingredient{Name: "chicken"},
	)
	b := recipeWithIngredients(2, "B",
		models.Ingredient{Name: "rice"},
		models.Ingredient{Name: "beans"},
	)
	c := recipeWithIngredients(3, "C",
		models.Ingredient{Name: "rice"},
		models.Ingredient{Name: "chicken"},
	)

	// A shares 1/2 with B and 2/2 with C: mean 0.75.
	overlap := ingredientOverlap(a, []*models.Recipe{a, b, c})
	assert.InDelta(t, 0.75, overlap, 1e-9)
}

func TestIngredientOverlapEmptyCases(t *testing.T) {
	empty := recipeWithIngredients(1, "Empty")
	other := recipeWithIngredients(2, "Other", models.Ingredient{Name: "rice"})

	assert.Zero(t, ingredientOverlap(empty, []*models.Recipe{empty, other}))
	// Nothing comparable in the pool.
	assert.Zero(t, ingredientOverlap(other, []*models.Recipe{other}))
	assert.Zero(t, ingredientOverlap(other, []*models.Recipe{other, empty}))
}

func TestInventoryMatchRatio(t *testing.T) {
	r := recipeWithIngredients(1, "Dinner",
		models.Ingredient{Name: "chicken breast"},
		models.Ingredient{Name: "rice"},
		models.Ingredient{Name: "saffron"},
		models.Ingredient{Name: "peas"},
	)
	inventory := []*models.InventoryItem{
		{Name: "chicken"}, // substring of "chicken breast"
		{Name: "rice"},
	}

	assert.InDelta(t, 0.5, inventoryMatchRatio(r, inventory), 1e-9)
	assert.Zero(t, inventoryMatchRatio(r, nil))
	assert.Zero(t, inventoryMatchRatio(recipeWithIngredients(2, "Empty"), inventory))
}

func TestScorePoolSortedAndDeterministic(t *testing.T) {
	pool := []*models.Recipe{
		{ID: 1, Title: "Low"},
		{ID: 2, Title: "High", HealthScore: 90, Freezable: true, VeryPopular: true},
		{ID: 3, Title: "Mid", HealthScore: 40},
	}
	prefs := models.Preferences{}

	first := ScorePool(pool, prefs, nil)
	require.Len(t, first, 3)
	assert.Equal(t, 2, first[0].Recipe.ID)
	assert.Equal(t, 3, first[1].Recipe.ID)
	assert.Equal(t, 1, first[2].Recipe.ID)

	// Same inputs produce the identical ranking and scores.
	second := ScorePool(pool, prefs, nil)
	for i := range first {
		assert.Equal(t, first[i].Recipe.ID, second[i].Recipe.ID)
		assert.Equal(t, first[i].Score, second[i].Score)
	}
}

func TestScorePoolStableTies(t *testing.T) {
	pool := []*models.Recipe{
		{ID: 10, Title: "First"},
		{ID: 20, Title: "Second"},
		{ID: 30, Title: "Third"},
	}

	scored := ScorePool(pool, models.Preferences{}, nil)
	require.Len(t, scored, 3)
	// Identical scores keep pool order.
	assert.Equal(t, []int{10, 20, 30}, []int{scored[0].Recipe.ID, scored[1].Recipe.ID, scored[2].Recipe.ID})
}
