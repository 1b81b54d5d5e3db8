package models

// Recipe is an externally sourced recipe, read-only to the planning engine.
// Field names on the wire follow the recipe-source API (Spoonacular-style
// camelCase), which is also the shape persisted inside saved meal plans.
type Recipe struct {
	ID                  int          `bson:"id" json:"id"`
	Title               string       `bson:"title" json:"title"`
	Image               string       `bson:"image,omitempty" json:"image,omitempty"`
	Summary             string       `bson:"summary,omitempty" json:"summary,omitempty"`
	ReadyInMinutes      int          `bson:"ready_in_minutes" json:"readyInMinutes"`
	Servings            int          `bson:"servings" json:"servings"`
	Cuisines            []string     `bson:"cuisines,omitempty" json:"cuisines,omitempty"`
	Diets               []string     `bson:"diets,omitempty" json:"diets,omitempty"`
	MealTypes           []string     `bson:"meal_types,omitempty" json:"mealTypes,omitempty"`
	Freezable           bool         `bson:"freezable" json:"freezable"`
	HealthScore         float64      `bson:"health_score,omitempty" json:"healthScore,omitempty"`
	Cheap               bool         `bson:"cheap" json:"cheap"`
	VeryPopular         bool         `bson:"very_popular" json:"veryPopular"`
	PricePerServing     float64      `bson:"price_per_serving,omitempty" json:"pricePerServing,omitempty"`
	ExtendedIngredients []Ingredient `bson:"extended_ingredients,omitempty" json:"extendedIngredients,omitempty"`
	Nutrition           *Nutrition   `bson:"nutrition,omitempty" json:"nutrition,omitempty"`
}

// Ingredient is a single ingredient line within a recipe, quantities already
// expressed in per-plan amounts by the recipe source.
type Ingredient struct {
	ID     int     `bson:"id" json:"id"`
	Name   string  `bson:"name" json:"name"`
	Amount float64 `bson:"amount" json:"amount"`
	Unit   string  `bson:"unit" json:"unit"`
	Aisle  string  `bson:"aisle,omitempty" json:"aisle,omitempty"`
}

type Nutrition struct {
	Nutrients []Nutrient `bson:"nutrients,omitempty" json:"nutrients,omitempty"`
}

type Nutrient struct {
	Name   string  `bson:"name" json:"name"`
	Amount float64 `bson:"amount" json:"amount"`
	Unit   string  `bson:"unit" json:"unit"`
}

// Meal slots. A recipe with no MealTypes is eligible for dinner only.
const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
)

// EligibleForSlot reports whether the recipe can be scheduled in the given slot.
func (r *Recipe) EligibleForSlot(slot string) bool {
	if len(r.MealTypes) == 0 {
		return slot == SlotDinner
	}
	for _, t := range r.MealTypes {
		if t == slot {
			return true
		}
	}
	return false
}

// Calories returns the amount of the first "Calories" nutrient, or 0.
func (r *Recipe) Calories() float64 {
	if r.Nutrition == nil {
		return 0
	}
	for _, n := range r.Nutrition.Nutrients {
		if n.Name == "Calories" {
			return n.Amount
		}
	}
	return 0
}
