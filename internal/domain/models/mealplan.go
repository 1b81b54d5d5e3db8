package models

import "time"

// Preferences captures the user's planning preferences. A zero value is
// normalized to sensible defaults before planning.
type Preferences struct {
	MealsPerWeek        int      `bson:"meals_per_week" json:"mealsPerWeek"`
	ServingsPerMeal     int      `bson:"servings_per_meal,omitempty" json:"servingsPerMeal,omitempty"`
	MaxPrepTimeMinutes  int      `bson:"max_prep_time_minutes" json:"maxPrepTimeMinutes"`
	MealSlots           int      `bson:"meal_slots" json:"mealSlots"` // 1=dinner, 2=+lunch, 3=+breakfast
	DietaryRestrictions []string `bson:"dietary_restrictions,omitempty" json:"dietaryRestrictions,omitempty"`
	CuisinePreferences  []string `bson:"cuisine_preferences,omitempty" json:"cuisinePreferences,omitempty"`
	ProteinPreferences  []string `bson:"protein_preferences,omitempty" json:"proteinPreferences,omitempty"` // advisory only
	FreezerFriendly     bool     `bson:"freezer_friendly" json:"freezerFriendly"`
}

// Normalize fills in defaults for unset fields.
func (p *Preferences) Normalize() {
	if p.MealsPerWeek <= 0 {
		p.MealsPerWeek = 5
	}
	if p.MaxPrepTimeMinutes < 0 {
		p.MaxPrepTimeMinutes = 0
	}
	if p.MealSlots < 1 || p.MealSlots > 3 {
		p.MealSlots = 1
	}
}

// ActiveSlots returns the slot set implied by MealSlots.
func (p Preferences) ActiveSlots() []string {
	switch p.MealSlots {
	case 2:
		return []string{SlotLunch, SlotDinner}
	case 3:
		return []string{SlotBreakfast, SlotLunch, SlotDinner}
	default:
		return []string{SlotDinner}
	}
}

// WeekDays are schedule day names, Monday-first.
var WeekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ScheduledMeal is one slot assignment within a schedule day. Meal is nil when
// the slot is empty. PrepDay is set when the meal wants ahead-of-time prep.
type ScheduledMeal struct {
	Meal    *Recipe `bson:"meal,omitempty" json:"meal"`
	PrepDay string  `bson:"prep_day,omitempty" json:"prepDay,omitempty"`
}

// ScheduleDay is one day of the multi-slot schedule.
type ScheduleDay struct {
	Day   string                   `bson:"day" json:"day"`
	Slots map[string]ScheduledMeal `bson:"slots" json:"slots"`
}

// FlatScheduleDay is the legacy dinner-only schedule shape, produced only at
// serialization boundaries for backward compatibility.
type FlatScheduleDay struct {
	Day     string  `json:"day"`
	Meal    *Recipe `json:"meal"`
	PrepDay string  `json:"prepDay,omitempty"`
}

// PlanStats are plan-level aggregates over the selected meals.
type PlanStats struct {
	TotalMeals           int      `bson:"total_meals" json:"totalMeals"`
	TotalServings        int      `bson:"total_servings" json:"totalServings"`
	TotalPrepTime        int      `bson:"total_prep_time" json:"totalPrepTime"`
	AvgPrepTime          int      `bson:"avg_prep_time" json:"avgPrepTime"`
	AvgCalories          int      `bson:"avg_calories" json:"avgCalories"`
	FreezerFriendlyCount int      `bson:"freezer_friendly_count" json:"freezerFriendlyCount"`
	Cuisines             []string `bson:"cuisines" json:"cuisines"`
	EstimatedCost        float64  `bson:"estimated_cost" json:"estimatedCost"`
}

// MealPlan is a generated weekly plan. Every recipe appearing in Schedule also
// appears in Meals (once per distinct selection) and contributed its
// ingredients to ShoppingList before any inventory reconciliation.
type MealPlan struct {
	ID           string             `bson:"_id,omitempty" json:"id"`
	UserID       string             `bson:"user_id" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	Meals        []*Recipe          `bson:"meals" json:"meals"`
	Schedule     []ScheduleDay      `bson:"schedule" json:"schedule"`
	ShoppingList []ShoppingListItem `bson:"shopping_list" json:"shoppingList"`
	Preferences  Preferences        `bson:"preferences" json:"preferences"`
	Stats        PlanStats          `bson:"stats" json:"stats"`
}
