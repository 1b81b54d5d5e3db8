package repositories

import (
	"github.com/mealwise/mws/internal/domain/repositories"
	"github.com/mealwise/mws/internal/infrastructure/database"
)

// Provider holds all repository instances
type Provider struct {
	Inventory repositories.InventoryRepository
	MealPlan  repositories.MealPlanRepository
}

// NewProvider creates a new repository provider
func NewProvider(db *database.MongoDB) *Provider {
	return &Provider{
		Inventory: NewInventoryRepository(db),
		MealPlan:  NewMealPlanRepository(db),
	}
}
