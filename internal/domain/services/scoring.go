package services

import (
	"sort"
	"strings"

	"github.com/mealwise/mws/internal/domain/models"
)

// ScoredRecipe pairs a candidate with its desirability score.
type ScoredRecipe struct {
	Recipe *models.Recipe
	Score  float64
}

// Scoring weights. The overlap bonus pushes selection toward recipe sets that
// share staples (fewer distinct purchases); the inventory bonus rewards
// cooking with what the user already owns.
const (
	baseScore            = 50.0
	healthScoreWeight    = 0.2
	cuisineMatchBonus    = 20.0
	overlapWeight        = 15.0
	freezableBonus       = 10.0
	cheapBonus           = 5.0
	popularBonus         = 5.0
	inventoryMatchWeight = 25.0
)

// ScoreRecipe assigns a desirability score to a recipe given the user's
// preferences, the rest of the candidate pool, and the pantry inventory.
// Deterministic for identical inputs.
func ScoreRecipe(recipe *models.Recipe, prefs models.Preferences, pool []*models.Recipe, inventory []*models.InventoryItem) float64 {
	return scoreWithOverlap(recipe, prefs, inventory, ingredientOverlap(recipe, pool))
}

// ScorePool scores every recipe against the whole pool and returns the result
// sorted by score descending. The sort is stable so ties keep pool order.
// Ingredient-name sets are computed once up front; the pairwise overlap scan
// is quadratic in pool size.
func ScorePool(pool []*models.Recipe, prefs models.Preferences, inventory []*models.InventoryItem) []ScoredRecipe {
	sets := make([]map[string]struct{}, len(pool))
	for i, r := range pool {
		sets[i] = ingredientNameSet(r)
	}

	scored := make([]ScoredRecipe, len(pool))
	for i, r := range pool {
		scored[i] = ScoredRecipe{
			Recipe: r,
			Score:  scoreWithOverlap(r, prefs, inventory, overlapAgainstPool(i, pool, sets)),
		}
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})
	return scored
}

func scoreWithOverlap(recipe *models.Recipe, prefs models.Preferences, inventory []*models.InventoryItem, overlap float64) float64 {
	score := baseScore

	if recipe.HealthScore > 0 {
		score += recipe.HealthScore * healthScoreWeight
	}
	if len(prefs.CuisinePreferences) > 0 && matchesPreferredCuisine(recipe.Cuisines, prefs.CuisinePreferences) {
		score += cuisineMatchBonus
	}
	score += overlap * overlapWeight
	if recipe.Freezable {
		score += freezableBonus
	}
	if recipe.Cheap {
		score += cheapBonus
	}
	if recipe.VeryPopular {
		score += popularBonus
	}
	score += inventoryMatchRatio(recipe, inventory) * inventoryMatchWeight

	return score
}

func matchesPreferredCuisine(cuisines, preferred []string) bool {
	for _, c := range cuisines {
		cl := strings.ToLower(c)
		for _, p := range preferred {
			pl := strings.ToLower(p)
			if strings.Contains(cl, pl) || strings.Contains(pl, cl) {
				return true
			}
		}
	}
	return false
}

func ingredientNameSet(r *models.Recipe) map[string]struct{} {
	set := make(map[string]struct{}, len(r.ExtendedIngredients))
	for _, ing := range r.ExtendedIngredients {
		if ing.Name == "" {
			continue
		}
		set[strings.ToLower(ing.Name)] = struct{}{}
	}
	return set
}

// ingredientOverlap is the recipe's average name-set intersection ratio
// against every other recipe in the pool: for each other recipe, intersection
// size divided by this recipe's ingredient count, then the mean across all
// comparable others. Zero when the recipe has no ingredients or there is
// nothing to compare against.
func ingredientOverlap(recipe *models.Recipe, pool []*models.Recipe) float64 {
	mine := ingredientNameSet(recipe)
	if len(mine) == 0 {
		return 0
	}

	var total float64
	compared := 0
	for _, other := range pool {
		if other.ID == recipe.ID || len(other.ExtendedIngredients) == 0 {
			continue
		}
		total += intersectionRatio(mine, ingredientNameSet(other))
		compared++
	}
	if compared == 0 {
		return 0
	}
	return total / float64(compared)
}

func overlapAgainstPool(idx int, pool []*models.Recipe, sets []map[string]struct{}) float64 {
	mine := sets[idx]
	if len(mine) == 0 {
		return 0
	}
	var total float64
	compared := 0
	for j, other := range pool {
		if other.ID == pool[idx].ID || len(other.ExtendedIngredients) == 0 {
			continue
		}
		total += intersectionRatio(mine, sets[j])
		compared++
	}
	if compared == 0 {
		return 0
	}
	return total / float64(compared)
}

func intersectionRatio(mine, theirs map[string]struct{}) float64 {
	overlap := 0
	for name := range mine {
		if _, ok := theirs[name]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(len(mine))
}

// inventoryMatchRatio is the fraction of the recipe's ingredients whose name
// substring-matches some inventory item's name, in either direction.
func inventoryMatchRatio(recipe *models.Recipe, inventory []*models.InventoryItem) float64 {
	if len(inventory) == 0 || len(recipe.ExtendedIngredients) == 0 {
		return 0
	}
	invNames := make([]string, 0, len(inventory))
	for _, item := range inventory {
		invNames = append(invNames, strings.ToLower(item.Name))
	}
	matched := 0
	for _, ing := range recipe.ExtendedIngredients {
		name := strings.ToLower(ing.Name)
		for _, inv := range invNames {
			if strings.Contains(inv, name) || strings.Contains(name, inv) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(recipe.ExtendedIngredients))
}
