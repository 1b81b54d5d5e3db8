package recipesource

import (
	"context"
	"time"

	"github.com/mealwise/mws/internal/domain/models"
	"github.com/mealwise/mws/internal/pkg/errors"
)

// mockSource serves a fixed sample pool, used when no upstream API key is
// configured and in the offline CLI mode.
type mockSource struct{}

// NewMockSource creates a Source backed by the built-in sample pool.
func NewMockSource() Source {
	return mockSource{}
}

func (mockSource) Search(ctx context.Context, params SearchParams) ([]*models.Recipe, error) {
	return MockPool(), nil
}

func (mockSource) GetByID(ctx context.Context, id int) (*models.Recipe, error) {
	for _, r := range MockPool() {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.NotFound("recipe")
}

func (mockSource) Quota() QuotaStatus {
	return QuotaStatus{
		Used:        0,
		Remaining:   150,
		Total:       150,
		LastUpdated: time.Now(),
		Demo:        true,
	}
}

func nutrition(calories, protein, carbs, fat float64) *models.Nutrition {
	return &models.Nutrition{Nutrients: []models.Nutrient{
		{Name: "Calories", Amount: calories, Unit: "kcal"},
		{Name: "Protein", Amount: protein, Unit: "g"},
		{Name: "Carbohydrates", Amount: carbs, Unit: "g"},
		{Name: "Fat", Amount: fat, Unit: "g"},
	}}
}

// MockPool returns a fresh copy of the sample recipe pool.
func MockPool() []*models.Recipe {
	return []*models.Recipe{
		{
			ID:              1,
			Title:           "Mediterranean Chicken Bowl",
			Image:           "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400",
			ReadyInMinutes:  35,
			Servings:        4,
			Cuisines:        []string{"Mediterranean"},
			Diets:           []string{"gluten-free", "dairy-free"},
			MealTypes:       []string{"lunch", "dinner"},
			Summary:         "A healthy Mediterranean-inspired chicken bowl with quinoa, vegetables, and a lemon herb dressing.",
			PricePerServing: 425,
			HealthScore:     85,
			Cheap:           false,
			VeryPopular:     true,
			Freezable:       true,
			ExtendedIngredients: []models.Ingredient{
				{ID: 1, Name: "chicken breast", Amount: 1.5, Unit: "lbs", Aisle: "Meat"},
				{ID: 2, Name: "quinoa", Amount: 1, Unit: "cup", Aisle: "Grains"},
				{ID: 3, Name: "cucumber", Amount: 1, Unit: "medium", Aisle: "Produce"},
				{ID: 4, Name: "cherry tomatoes", Amount: 1, Unit: "cup", Aisle: "Produce"},
				{ID: 5, Name: "red onion", Amount: 0.5, Unit: "medium", Aisle: "Produce"},
				{ID: 6, Name: "olive oil", Amount: 3, Unit: "tbsp", Aisle: "Oils"},
				{ID: 7, Name: "lemon", Amount: 1, Unit: "medium", Aisle: "Produce"},
				{ID: 8, Name: "garlic", Amount: 2, Unit: "cloves", Aisle: "Produce"},
			},
			Nutrition: nutrition(420, 35, 32, 16),
		},
		{
			ID:              2,
			Title:           "Asian Beef Stir-Fry",
			Image:           "https://images.unsplash.com/photo-1512058564366-18510be2db19?w=400",
			ReadyInMinutes:  25,
			Servings:        4,
			Cuisines:        []string{"Asian", "Chinese"},
			Diets:           []string{"dairy-free"},
			Summary:         "Quick and flavorful beef stir-fry with colorful vegetables and a savory ginger-soy sauce.",
			PricePerServing: 550,
			HealthScore:     72,
			Cheap:           false,
			VeryPopular:     true,
			Freezable:       true,
			ExtendedIngredients: []models.Ingredient{
				{ID: 9, Name: "beef sirloin", Amount: 1, Unit: "lb", Aisle: "Meat"},
				{ID: 10, Name: "broccoli", Amount: 2, Unit: "cups", Aisle: "Produce"},
				{ID: 11, Name: "bell pepper", Amount: 1, Unit: "medium", Aisle: "Produce"},
				{ID: 12, Name: "soy sauce", Amount: 3, Unit: "tbsp", Aisle: "Asian"},
				{ID: 13, Name: "ginger", Amount: 1, Unit: "inch", Aisle: "Produce"},
				{ID: 14, Name: "sesame oil", Amount: 1, Unit: "tbsp", Aisle: "Oils"},
			},
			Nutrition: nutrition(380, 32, 18, 20),
		},
		{
			ID:              3,
			Title:           "Italian Turkey Meatballs",
			Image:           "https://images.unsplash.com/photo-1529042410759-befb1204b468?w=400",
			ReadyInMinutes:  45,
			Servings:        6,
			Cuisines:        []string{"Italian"},
			Diets:           []string{},
			Summary:         "Lean turkey meatballs in a rich marinara sauce, perfect for meal prep and freezing.",
			PricePerServing: 380,
			HealthScore:     68,
			Cheap:           true,
			VeryPopular:     true,
			Freezable:       true,
			ExtendedIngredients: []models.Ingredient{
				{ID: 15, Name: "ground turkey", Amount: 1.5, Unit: "lbs", Aisle: "Meat"},
				{ID: 16, Name: "breadcrumbs", Amount: 0.5, Unit: "cup", Aisle: "Bakery"},
				{ID: 17, Name: "egg", Amount: 1, Unit: "large", Aisle: "Dairy"},
				{ID: 18, Name: "marinara sauce", Amount: 24, Unit: "oz", Aisle: "Pasta"},
				{ID: 19, Name: "parmesan", Amount: 0.25, Unit: "cup", Aisle: "Dairy"},
				{ID: 20, Name: "Italian seasoning", Amount: 1, Unit: "tbsp", Aisle: "Spices"},
			},
			Nutrition: nutrition(290, 28, 15, 12),
		},
		{
			ID:              4,
			Title:           "Thai Coconut Curry Shrimp",
			Image:           "https://images.unsplash.com/photo-1455619452474-d2be8b1e70cd?w=400",
			ReadyInMinutes:  30,
			Servings:        4,
			Cuisines:        []string{"Thai", "Asian"},
			Diets:           []string{"gluten-free", "dairy-free"},
			Summary:         "Creamy Thai coconut curry with succulent shrimp, perfect for a quick weeknight dinner.",
			PricePerServing: 620,
			HealthScore:     75,
			Cheap:           false,
			VeryPopular:     true,
			Freezable:       false,
			ExtendedIngredients: []models.Ingredient{
				{ID: 21, Name: "shrimp", Amount: 1, Unit: "lb", Aisle: "Seafood"},
				{ID: 22, Name: "coconut milk", Amount: 14, Unit: "oz", Aisle: "Asian"},
				{ID: 23, Name: "red curry paste", Amount: 2, Unit: "tbsp", Aisle: "Asian"},
				{ID: 24, Name: "bell pepper", Amount: 1, Unit: "medium", Aisle: "Produce"},
				{ID: 25, Name: "basil", Amount: 0.25, Unit: "cup", Aisle: "Produce"},
				{ID: 26, Name: "fish sauce", Amount: 1, Unit: "tbsp", Aisle: "Asian"},
			},
			Nutrition: nutrition(340, 24, 8, 24),
		},
		{
			ID:              5,
			Title:           "Mexican Chicken Burrito Bowl",
			Image:           "https://images.unsplash.com/photo-1543352634-a1c51d9f1fa7?w=400",
			ReadyInMinutes:  40,
			Servings:        4,
			Cuisines:        []string{"Mexican"},
			Diets:           []string{"gluten-free"},
			Summary:         "Build-your-own burrito bowl with seasoned chicken, rice, beans, and fresh toppings.",
			PricePerServing: 350,
			HealthScore:     80,
			Cheap:           true,
			VeryPopular:     true,
			Freezable:       true,
			ExtendedIngredients: []models.Ingredient{
				{ID: 27, Name: "chicken thighs", Amount: 1.5, Unit: "lbs", Aisle: "Meat"},
				{ID: 28, Name: "rice", Amount: 1.5, Unit: "cups", Aisle: "Grains"},
				{ID: 29, Name: "black beans", Amount: 15, Unit: "oz", Aisle: "Canned"},
				{ID: 30, Name: "corn", Amount: 1, Unit: "cup", Aisle: "Frozen"},
				{ID: 31, Name: "lime", Amount: 2, Unit: "medium", Aisle: "Produce"},
				{ID: 32, Name: "cilantro", Amount: 0.25, Unit: "cup", Aisle: "Produce"},
			},
			Nutrition: nutrition(480, 38, 52, 14),
		},
		{
			ID:              6,
			Title:           "Vegetarian Lentil Soup",
			Image:           "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=400",
			ReadyInMinutes:  50,
			Servings:        6,
			Cuisines:        []string{"Mediterranean"},
			Diets:           []string{"vegan", "vegetarian", "gluten-free", "dairy-free"},
			MealTypes:       []string{"lunch", "dinner"},
			Summary:         "Hearty and nutritious lentil soup packed with vegetables and warming spices.",
			PricePerServing: 180,
			HealthScore:     92,
			Cheap:           true,
			VeryPopular:     true,
			Freezable:       true,
			ExtendedIngredients: []models.Ingredient{
				{ID: 33, Name: "lentils", Amount: 1.5, Unit: "cups", Aisle: "Grains"},
				{ID: 34, Name: "carrots", Amount: 3, Unit: "medium", Aisle: "Produce"},
				{ID: 35, Name: "celery", Amount: 3, Unit: "stalks", Aisle: "Produce"},
				{ID: 36, Name: "onion", Amount: 1, Unit: "large", Aisle: "Produce"},
				{ID: 37, Name: "vegetable broth", Amount: 6, Unit: "cups", Aisle: "Canned"},
				{ID: 38, Name: "cumin", Amount: 1, Unit: "tsp", Aisle: "Spices"},
			},
			Nutrition: nutrition(220, 14, 38, 2),
		},
		{
			ID:              7,
			Title:           "Korean BBQ Pork",
			Image:           "https://images.unsplash.com/photo-1544025162-d76694265947?w=400",
			ReadyInMinutes:  35,
			Servings:        4,
			Cuisines:        []string{"Korean", "Asian"},
			Diets:           []string{"dairy-free"},
			Summary:         "Sweet and savory Korean-style marinated pork with traditional accompaniments.",
			PricePerServing: 420,
			HealthScore:     65,
			Cheap:           false,
			VeryPopular:     true,
			Freezable:       true,
			ExtendedIngredients: []models.Ingredient{
				{ID: 39, Name: "pork shoulder", Amount: 1.5, Unit: "lbs", Aisle: "Meat"},
				{ID: 40, Name: "gochujang", Amount: 2, Unit: "tbsp", Aisle: "Asian"},
				{ID: 41, Name: "soy sauce", Amount: 3, Unit: "tbsp", Aisle: "Asian"},
				{ID: 42, Name: "sesame oil", Amount: 2, Unit: "tbsp", Aisle: "Oils"},
				{ID: 43, Name: "green onions", Amount: 4, Unit: "stalks", Aisle: "Produce"},
				{ID: 44, Name: "garlic", Amount: 4, Unit: "cloves", Aisle: "Produce"},
			},
			Nutrition: nutrition(350, 30, 12, 20),
		},
		{
			ID:              8,
			Title:           "Grilled Salmon with Vegetables",
			Image:           "https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=400",
			ReadyInMinutes:  30,
			Servings:        4,
			Cuisines:        []string{"American"},
			Diets:           []string{"gluten-free", "dairy-free", "low-fodmap"},
			Summary:         "Simple grilled salmon with roasted seasonal vegetables - a healthy weeknight staple.",
			PricePerServing: 750,
			HealthScore:     95,
			Cheap:           false,
			VeryPopular:     true,
			Freezable:       false,
			ExtendedIngredients: []models.Ingredient{
				{ID: 45, Name: "salmon fillets", Amount: 4, Unit: "6oz", Aisle: "Seafood"},
				{ID: 46, Name: "asparagus", Amount: 1, Unit: "bunch", Aisle: "Produce"},
				{ID: 47, Name: "zucchini", Amount: 2, Unit: "medium", Aisle: "Produce"},
				{ID: 48, Name: "olive oil", Amount: 3, Unit: "tbsp", Aisle: "Oils"},
				{ID: 49, Name: "lemon", Amount: 1, Unit: "medium", Aisle: "Produce"},
				{ID: 50, Name: "dill", Amount: 2, Unit: "tbsp", Aisle: "Produce"},
			},
			Nutrition: nutrition(380, 40, 10, 20),
		},
	}
}
