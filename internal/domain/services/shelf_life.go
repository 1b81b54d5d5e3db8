package services

import "github.com/mealwise/mws/internal/domain/models"

type shelfLifeEntry struct {
	name    string
	days    int
	section models.Section
}

// shelfLifeTable maps known food names to shelf-life estimates (days from
// purchase) and a default storage section. Kept as an ordered slice so that
// substring matching is deterministic: earlier entries win.
var shelfLifeTable = []shelfLifeEntry{
	// Produce - fridge
	{"lettuce", 7, models.SectionFridge},
	{"spinach", 7, models.SectionFridge},
	{"kale", 7, models.SectionFridge},
	{"arugula", 5, models.SectionFridge},
	{"mixed greens", 5, models.SectionFridge},
	{"broccoli", 7, models.SectionFridge},
	{"cauliflower", 7, models.SectionFridge},
	{"carrots", 21, models.SectionFridge},
	{"celery", 14, models.SectionFridge},
	{"bell pepper", 10, models.SectionFridge},
	{"cucumber", 7, models.SectionFridge},
	{"zucchini", 7, models.SectionFridge},
	{"tomato", 7, models.SectionFridge},
	{"mushroom", 7, models.SectionFridge},
	{"green beans", 7, models.SectionFridge},
	{"asparagus", 5, models.SectionFridge},
	{"corn", 5, models.SectionFridge},
	{"avocado", 5, models.SectionFridge},
	{"lemon", 21, models.SectionFridge},
	{"lime", 21, models.SectionFridge},
	{"berries", 5, models.SectionFridge},
	{"strawberries", 5, models.SectionFridge},
	{"blueberries", 7, models.SectionFridge},
	{"grapes", 10, models.SectionFridge},
	{"apple", 28, models.SectionFridge},
	{"orange", 21, models.SectionFridge},

	// Dairy - fridge
	{"milk", 10, models.SectionFridge},
	{"cream", 10, models.SectionFridge},
	{"heavy cream", 10, models.SectionFridge},
	{"sour cream", 21, models.SectionFridge},
	{"yogurt", 14, models.SectionFridge},
	{"greek yogurt", 14, models.SectionFridge},
	{"butter", 30, models.SectionFridge},
	{"cheese", 28, models.SectionFridge},
	{"cheddar", 28, models.SectionFridge},
	{"mozzarella", 14, models.SectionFridge},
	{"parmesan", 60, models.SectionFridge},
	{"cream cheese", 21, models.SectionFridge},
	{"eggs", 35, models.SectionFridge},

	// Proteins - fridge
	{"chicken breast", 3, models.SectionFridge},
	{"chicken thigh", 3, models.SectionFridge},
	{"chicken", 3, models.SectionFridge},
	{"ground beef", 3, models.SectionFridge},
	{"ground turkey", 3, models.SectionFridge},
	{"steak", 5, models.SectionFridge},
	{"pork", 5, models.SectionFridge},
	{"pork chop", 5, models.SectionFridge},
	{"bacon", 10, models.SectionFridge},
	{"sausage", 5, models.SectionFridge},
	{"salmon", 3, models.SectionFridge},
	{"shrimp", 3, models.SectionFridge},
	{"fish", 3, models.SectionFridge},
	{"tofu", 7, models.SectionFridge},

	// Pantry staples
	{"rice", 730, models.SectionPantry},
	{"pasta", 730, models.SectionPantry},
	{"bread", 7, models.SectionPantry},
	{"flour", 365, models.SectionPantry},
	{"sugar", 730, models.SectionPantry},
	{"brown sugar", 365, models.SectionPantry},
	{"olive oil", 540, models.SectionPantry},
	{"vegetable oil", 365, models.SectionPantry},
	{"coconut oil", 365, models.SectionPantry},
	{"vinegar", 730, models.SectionPantry},
	{"soy sauce", 365, models.SectionPantry},
	{"honey", 730, models.SectionPantry},
	{"maple syrup", 365, models.SectionPantry},
	{"peanut butter", 180, models.SectionPantry},
	{"canned tomatoes", 730, models.SectionPantry},
	{"tomato sauce", 365, models.SectionPantry},
	{"tomato paste", 365, models.SectionPantry},
	{"canned beans", 730, models.SectionPantry},
	{"black beans", 730, models.SectionPantry},
	{"chickpeas", 730, models.SectionPantry},
	{"lentils", 365, models.SectionPantry},
	{"oats", 365, models.SectionPantry},
	{"cereal", 180, models.SectionPantry},
	{"tortillas", 14, models.SectionPantry},
	{"broth", 365, models.SectionPantry},
	{"chicken broth", 365, models.SectionPantry},
	{"coconut milk", 365, models.SectionPantry},
	{"nuts", 180, models.SectionPantry},
	{"almonds", 180, models.SectionPantry},
	{"walnuts", 180, models.SectionPantry},

	// Spices
	{"salt", 1825, models.SectionSpices},
	{"pepper", 1095, models.SectionSpices},
	{"black pepper", 1095, models.SectionSpices},
	{"garlic powder", 1095, models.SectionSpices},
	{"onion powder", 1095, models.SectionSpices},
	{"cumin", 1095, models.SectionSpices},
	{"paprika", 1095, models.SectionSpices},
	{"chili powder", 1095, models.SectionSpices},
	{"oregano", 1095, models.SectionSpices},
	{"basil", 1095, models.SectionSpices},
	{"thyme", 1095, models.SectionSpices},
	{"rosemary", 1095, models.SectionSpices},
	{"cinnamon", 1095, models.SectionSpices},
	{"nutmeg", 1095, models.SectionSpices},
	{"turmeric", 1095, models.SectionSpices},
	{"cayenne", 1095, models.SectionSpices},
	{"italian seasoning", 1095, models.SectionSpices},
	{"bay leaves", 1095, models.SectionSpices},
	{"red pepper flakes", 1095, models.SectionSpices},

	// Freezer
	{"frozen vegetables", 240, models.SectionFreezer},
	{"frozen peas", 240, models.SectionFreezer},
	{"frozen corn", 240, models.SectionFreezer},
	{"frozen berries", 240, models.SectionFreezer},
	{"frozen shrimp", 180, models.SectionFreezer},
	{"frozen chicken", 270, models.SectionFreezer},
	{"ice cream", 60, models.SectionFreezer},

	// Condiments - fridge once opened
	{"ketchup", 180, models.SectionFridge},
	{"mustard", 365, models.SectionFridge},
	{"mayonnaise", 60, models.SectionFridge},
	{"hot sauce", 365, models.SectionFridge},
	{"salsa", 14, models.SectionFridge},

	// Fresh herbs and aromatics
	{"cilantro", 7, models.SectionFridge},
	{"parsley", 10, models.SectionFridge},
	{"basil leaves", 5, models.SectionFridge},
	{"mint", 7, models.SectionFridge},
	{"green onion", 7, models.SectionFridge},
	{"scallion", 7, models.SectionFridge},
	{"ginger", 21, models.SectionFridge},
	{"garlic", 60, models.SectionPantry},
	{"onion", 30, models.SectionPantry},
	{"potato", 28, models.SectionPantry},
	{"sweet potato", 21, models.SectionPantry},
}
