package services

import "github.com/mealwise/mws/internal/domain/models"

// SelectWithVariety picks up to target recipes from a score-descending pool,
// balancing cuisine diversity against raw score. The first pass seeds the
// selection with one representative of each preferred cuisine (highest scoring
// first, keyed by the recipe's primary cuisine); after the seeding window any
// not-yet-selected candidate is taken in score order. A final fill pass
// guarantees target distinct-by-id recipes whenever the pool has that many.
func SelectWithVariety(scored []ScoredRecipe, target int, cuisinePreferences []string) []*models.Recipe {
	if target <= 0 {
		return nil
	}

	var selected []*models.Recipe
	selectedIDs := make(map[int]bool)
	usedCuisines := make(map[string]bool)

	for _, sr := range scored {
		if len(selected) >= target {
			break
		}
		recipe := sr.Recipe

		var primary string
		if len(recipe.Cuisines) > 0 {
			primary = recipe.Cuisines[0]
		}

		if len(cuisinePreferences) > 0 && len(selected) < len(cuisinePreferences) {
			if primary != "" && !usedCuisines[primary] {
				selected = append(selected, recipe)
				selectedIDs[recipe.ID] = true
				usedCuisines[primary] = true
				continue
			}
		}

		if !selectedIDs[recipe.ID] {
			selected = append(selected, recipe)
			selectedIDs[recipe.ID] = true
			if primary != "" {
				usedCuisines[primary] = true
			}
		}
	}

	// Fill from the remaining pool in score order until the target is met or
	// the pool is exhausted.
	for len(selected) < target {
		var next *models.Recipe
		for _, sr := range scored {
			if !selectedIDs[sr.Recipe.ID] {
				next = sr.Recipe
				break
			}
		}
		if next == nil {
			break
		}
		selected = append(selected, next)
		selectedIDs[next.ID] = true
	}

	return selected
}
