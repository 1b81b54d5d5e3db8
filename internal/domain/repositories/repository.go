package repositories

import (
	"context"

	"github.com/mealwise/mws/internal/domain/models"
)

// InventoryRepository manages pantry inventory persistence
type InventoryRepository interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	CreateMany(ctx context.Context, items []*models.InventoryItem) error
	GetByID(ctx context.Context, userID, id string) (*models.InventoryItem, error)
	Update(ctx context.Context, item *models.InventoryItem) error
	Delete(ctx context.Context, userID, id string) error
	ListByUser(ctx context.Context, userID, section string) ([]*models.InventoryItem, error)
	ClearByUser(ctx context.Context, userID, section string) (int64, error)
}

// MealPlanRepository manages generated meal plan persistence
type MealPlanRepository interface {
	Create(ctx context.Context, plan *models.MealPlan) error
	GetByID(ctx context.Context, userID, id string) (*models.MealPlan, error)
	Update(ctx context.Context, plan *models.MealPlan) error
	Delete(ctx context.Context, userID, id string) error
	ListByUser(ctx context.Context, userID string, page, limit int) ([]*models.MealPlan, int64, error)
}
