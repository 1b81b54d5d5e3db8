package services

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/mealwise/mws/internal/domain/models"
)

// PlannerService generates weekly meal plans and applies incremental edits to
// them. All operations are synchronous over in-memory data; the only errors
// surfaced are malformed inputs that make computation meaningless.
type PlannerService interface {
	// Generate builds a full plan from a candidate pool, preferences, and the
	// current pantry inventory (pass nil to skip reconciliation).
	Generate(pool []*models.Recipe, prefs models.Preferences, inventory []*models.InventoryItem) (*models.MealPlan, error)
	// RemoveMeal clears the meal at (day, slot) and recomputes the plan's
	// flat meal list and shopping list. Re-running inventory reconciliation
	// is the caller's responsibility.
	RemoveMeal(plan *models.MealPlan, day, slot string) error
	// ReplaceMeal swaps the meal at (day, slot) for the given recipe with the
	// same recomputation path as RemoveMeal.
	ReplaceMeal(plan *models.MealPlan, day, slot string, recipe *models.Recipe) error
	// FlattenSchedule renders the legacy dinner-only schedule shape.
	FlattenSchedule(plan *models.MealPlan) []models.FlatScheduleDay
}

type plannerService struct {
	shopping ShoppingService
}

// NewPlannerService creates a PlannerService.
func NewPlannerService(shopping ShoppingService) PlannerService {
	return &plannerService{shopping: shopping}
}

// dietary restrictions the hard filter understands; anything else is ignored.
var supportedRestrictions = map[string]bool{
	"vegetarian":  true,
	"vegan":       true,
	"gluten-free": true,
	"dairy-free":  true,
}

func (p *plannerService) Generate(pool []*models.Recipe, prefs models.Preferences, inventory []*models.InventoryItem) (*models.MealPlan, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("candidate recipe pool is empty")
	}
	prefs.Normalize()
	activeSlots := prefs.ActiveSlots()

	// Hard constraints. If filtering empties the pool, fall back to the full
	// pool rather than producing a zero-recipe plan.
	filtered := filterPool(pool, prefs)
	if len(filtered) == 0 {
		filtered = pool
	}

	scored := ScorePool(filtered, prefs, inventory)

	selectedBySlot := make(map[string][]*models.Recipe, len(activeSlots))
	for _, slot := range activeSlots {
		slotPool := make([]ScoredRecipe, 0, len(scored))
		for _, sr := range scored {
			if sr.Recipe.EligibleForSlot(slot) {
				slotPool = append(slotPool, sr)
			}
		}
		if len(slotPool) == 0 {
			slotPool = scored
		}
		selectedBySlot[slot] = SelectWithVariety(slotPool, prefs.MealsPerWeek, prefs.CuisinePreferences)
	}

	schedule := BuildSchedule(selectedBySlot, prefs.MealsPerWeek, activeSlots)

	var meals []*models.Recipe
	for _, slot := range activeSlots {
		meals = append(meals, selectedBySlot[slot]...)
	}

	shoppingList := p.shopping.Generate(meals)
	if len(inventory) > 0 {
		shoppingList = p.shopping.Reconcile(shoppingList, inventory)
	}

	return &models.MealPlan{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		Meals:        meals,
		Schedule:     schedule,
		ShoppingList: shoppingList,
		Preferences:  prefs,
		Stats:        computeStats(meals),
	}, nil
}

func filterPool(pool []*models.Recipe, prefs models.Preferences) []*models.Recipe {
	var out []*models.Recipe
	for _, r := range pool {
		if keepCandidate(r, prefs) {
			out = append(out, r)
		}
	}
	return out
}

func keepCandidate(r *models.Recipe, prefs models.Preferences) bool {
	if prefs.MaxPrepTimeMinutes > 0 && r.ReadyInMinutes > prefs.MaxPrepTimeMinutes {
		return false
	}
	if prefs.FreezerFriendly && !r.Freezable {
		return false
	}
	for _, restriction := range prefs.DietaryRestrictions {
		if !supportedRestrictions[restriction] {
			continue
		}
		if !hasDiet(r, restriction) {
			return false
		}
	}
	return true
}

func hasDiet(r *models.Recipe, diet string) bool {
	for _, d := range r.Diets {
		if d == diet {
			return true
		}
	}
	return false
}

func computeStats(meals []*models.Recipe) models.PlanStats {
	stats := models.PlanStats{
		TotalMeals: len(meals),
		Cuisines:   []string{},
	}

	var totalCalories float64
	seenCuisines := make(map[string]bool)
	for _, meal := range meals {
		stats.TotalServings += meal.Servings
		stats.TotalPrepTime += meal.ReadyInMinutes
		totalCalories += meal.Calories()
		if meal.Freezable {
			stats.FreezerFriendlyCount++
		}
		for _, c := range meal.Cuisines {
			if !seenCuisines[c] {
				seenCuisines[c] = true
				stats.Cuisines = append(stats.Cuisines, c)
			}
		}
		if meal.PricePerServing > 0 {
			servings := meal.Servings
			if servings == 0 {
				servings = 1
			}
			stats.EstimatedCost += meal.PricePerServing * float64(servings) / 100
		}
	}

	if len(meals) > 0 {
		stats.AvgPrepTime = int(math.Round(float64(stats.TotalPrepTime) / float64(len(meals))))
		stats.AvgCalories = int(math.Round(totalCalories / float64(len(meals))))
	}

	return stats
}

func (p *plannerService) RemoveMeal(plan *models.MealPlan, day, slot string) error {
	return p.setMeal(plan, day, slot, nil)
}

func (p *plannerService) ReplaceMeal(plan *models.MealPlan, day, slot string, recipe *models.Recipe) error {
	if recipe == nil {
		return fmt.Errorf("replacement recipe is required")
	}
	return p.setMeal(plan, day, slot, recipe)
}

func (p *plannerService) setMeal(plan *models.MealPlan, day, slot string, recipe *models.Recipe) error {
	if plan == nil {
		return fmt.Errorf("meal plan is required")
	}

	found := false
	for i := range plan.Schedule {
		if plan.Schedule[i].Day != day {
			continue
		}
		if _, ok := plan.Schedule[i].Slots[slot]; !ok {
			return fmt.Errorf("slot %q not scheduled on %s", slot, day)
		}
		sm := models.ScheduledMeal{Meal: recipe}
		if recipe != nil && recipe.ReadyInMinutes > prepAheadThresholdMinutes {
			sm.PrepDay = day
		}
		plan.Schedule[i].Slots[slot] = sm
		found = true
		break
	}
	if !found {
		return fmt.Errorf("day %q not in schedule", day)
	}

	// Re-collect meals from the schedule and rebuild the shopping list from
	// scratch; reconciliation is re-triggered by the caller.
	var meals []*models.Recipe
	for _, d := range plan.Schedule {
		for _, slotName := range orderedSlots(d.Slots) {
			if m := d.Slots[slotName].Meal; m != nil {
				meals = append(meals, m)
			}
		}
	}
	plan.Meals = meals
	plan.ShoppingList = p.shopping.Generate(meals)
	plan.Stats = computeStats(meals)
	return nil
}

// orderedSlots returns a day's slot names in breakfast/lunch/dinner order so
// recomputation is deterministic regardless of map iteration.
func orderedSlots(slots map[string]models.ScheduledMeal) []string {
	ordered := make([]string, 0, len(slots))
	for _, name := range []string{models.SlotBreakfast, models.SlotLunch, models.SlotDinner} {
		if _, ok := slots[name]; ok {
			ordered = append(ordered, name)
		}
	}
	return ordered
}

func (p *plannerService) FlattenSchedule(plan *models.MealPlan) []models.FlatScheduleDay {
	if plan == nil {
		return nil
	}
	flat := make([]models.FlatScheduleDay, 0, len(plan.Schedule))
	for _, d := range plan.Schedule {
		sm := d.Slots[models.SlotDinner]
		flat = append(flat, models.FlatScheduleDay{
			Day:     d.Day,
			Meal:    sm.Meal,
			PrepDay: sm.PrepDay,
		})
	}
	return flat
}
