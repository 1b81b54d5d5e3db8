package recipesource

import (
	"testing"

	"github.com/mealwise/mws/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func TestParamsFromPreferences(t *testing.T) {
	prefs := models.Preferences{
		CuisinePreferences:  []string{"italian", "thai"},
		DietaryRestrictions: []string{"vegetarian", "gluten-free", "nut-free", "keto"},
		MaxPrepTimeMinutes:  45,
	}

	params := ParamsFromPreferences(prefs)
	assert.Equal(t, "italian,thai", params.Cuisine)
	assert.Equal(t, []string{"vegetarian", "gluten free"}, params.Diets)
	assert.Equal(t, []string{"gluten", "tree nut,peanut"}, params.Intolerances)
	assert.Equal(t, 45, params.MaxReadyTime)
	assert.Equal(t, 24, params.Number)
}

func TestQueryValuesOmitsEmpty(t *testing.T) {
	v := SearchParams{Query: "soup"}.queryValues()

	assert.Equal(t, "soup", v.Get("query"))
	assert.Equal(t, "12", v.Get("number"))
	assert.Equal(t, "true", v.Get("fillIngredients"))
	_, hasCuisine := v["cuisine"]
	assert.False(t, hasCuisine)
	_, hasMax := v["maxReadyTime"]
	assert.False(t, hasMax)
}

func TestCanonicalIsStable(t *testing.T) {
	a := SearchParams{Query: "soup", Cuisine: "thai", Number: 10}
	b := SearchParams{Query: "soup", Cuisine: "thai", Number: 10}
	c := SearchParams{Query: "stew", Cuisine: "thai", Number: 10}

	assert.Equal(t, a.canonical(), b.canonical())
	assert.NotEqual(t, a.canonical(), c.canonical())
}
