package services

import (
	"testing"

	"github.com/mealwise/mws/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredFixture(entries ...ScoredRecipe) []ScoredRecipe {
	return entries
}

func sr(id int, cuisine string, score float64) ScoredRecipe {
	r := &models.Recipe{ID: id, Title: "r"}
	if cuisine != "" {
		r.Cuisines = []string{cuisine}
	}
	return ScoredRecipe{Recipe: r, Score: score}
}

func selectedIDs(recipes []*models.Recipe) []int {
	ids := make([]int, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestSelectWithVarietySeedsPreferredCuisines(t *testing.T) {
	scored := scoredFixture(
		sr(1, "Italian", 90),
		sr(2, "Italian", 85),
		sr(3, "Thai", 80),
		sr(4, "Mexican", 75),
	)

	selected := SelectWithVariety(scored, 3, []string{"italian", "thai"})
	require.Len(t, selected, 3)
	// The seeding window takes one recipe per distinct primary cuisine;
	// a repeat cuisine inside the window still gets in on raw score.
	assert.Equal(t, []int{1, 2, 3}, selectedIDs(selected))
}

func TestSelectWithVarietyNoPreferences(t *testing.T) {
	scored := scoredFixture(
		sr(1, "Italian", 90),
		sr(2, "Italian", 85),
		sr(3, "Thai", 80),
	)

	// Without cuisine preferences selection is pure score order.
	selected := SelectWithVariety(scored, 2, nil)
	assert.Equal(t, []int{1, 2}, selectedIDs(selected))
}

func TestSelectWithVarietyNeverDuplicates(t *testing.T) {
	scored := scoredFixture(
		sr(1, "Italian", 90),
		sr(2, "Thai", 80),
	)

	selected := SelectWithVariety(scored, 5, nil)
	assert.Equal(t, []int{1, 2}, selectedIDs(selected))
}

func TestSelectWithVarietyFillsToTarget(t *testing.T) {
	scored := scoredFixture(
		sr(1, "Italian", 90),
		sr(2, "Italian", 85),
		sr(3, "Italian", 80),
		sr(4, "Thai", 75),
		sr(5, "Mexican", 70),
	)

	selected := SelectWithVariety(scored, 5, []string{"italian"})
	assert.Len(t, selected, 5)
}

func TestSelectWithVarietyRecipesWithoutCuisine(t *testing.T) {
	scored := scoredFixture(
		sr(1, "", 90),
		sr(2, "", 85),
	)

	selected := SelectWithVariety(scored, 2, []string{"italian"})
	assert.Equal(t, []int{1, 2}, selectedIDs(selected))
}

func TestSelectWithVarietyZeroTarget(t *testing.T) {
	assert.Nil(t, SelectWithVariety(scoredFixture(sr(1, "Italian", 90)), 0, nil))
}
