package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mealwise/mws/internal/domain/models"
	"github.com/mealwise/mws/internal/infrastructure/recipesource"
)

type generatePlanRequest struct {
	Preferences models.Preferences `json:"preferences"`
	// Pool overrides the recipe source lookup when provided, letting clients
	// plan over a pre-fetched or hand-picked candidate set.
	Pool []*models.Recipe `json:"pool,omitempty"`
}

func (a *Application) generateMealPlan(c *gin.Context) {
	var req generatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	userID := currentUser(c)
	ctx := c.Request.Context()

	pool := req.Pool
	if len(pool) == 0 {
		var err error
		pool, err = a.source.Search(ctx, recipesource.ParamsFromPreferences(req.Preferences))
		if err != nil {
			apiErrorResponse(c, err)
			return
		}
	}

	inventory, err := a.repos.Inventory.ListByUser(ctx, userID, "")
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}

	plan, err := a.planner.Generate(pool, req.Preferences, inventory)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	plan.UserID = userID

	if err := a.repos.MealPlan.Create(ctx, plan); err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}

	createdResponse(c, plan)
}

func (a *Application) listMealPlans(c *gin.Context) {
	page, limit := getPagination(c)

	plans, total, err := a.repos.MealPlan.ListByUser(c.Request.Context(), currentUser(c), page, limit)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	paginatedResponse(c, plans, page, limit, total)
}

func (a *Application) getMealPlan(c *gin.Context) {
	plan, err := a.repos.MealPlan.GetByID(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	if plan == nil {
		errorResponse(c, http.StatusNotFound, "NOT_FOUND", "meal plan not found")
		return
	}
	successResponse(c, plan)
}

func (a *Application) deleteMealPlan(c *gin.Context) {
	userID := currentUser(c)
	ctx := c.Request.Context()

	plan, err := a.repos.MealPlan.GetByID(ctx, userID, c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	if plan == nil {
		errorResponse(c, http.StatusNotFound, "NOT_FOUND", "meal plan not found")
		return
	}

	if err := a.repos.MealPlan.Delete(ctx, userID, plan.ID); err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	successResponse(c, gin.H{"deleted": plan.ID})
}

type editMealRequest struct {
	Day    string         `json:"day" binding:"required"`
	Slot   string         `json:"slot" binding:"required"`
	Recipe *models.Recipe `json:"recipe,omitempty"`
	// RecipeID is resolved through the recipe source when Recipe is absent.
	RecipeID int `json:"recipeId,omitempty"`
}

func (a *Application) removeMeal(c *gin.Context) {
	var req editMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	a.editPlan(c, func(plan *models.MealPlan) error {
		return a.planner.RemoveMeal(plan, req.Day, req.Slot)
	})
}

func (a *Application) replaceMeal(c *gin.Context) {
	var req editMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	recipe := req.Recipe
	if recipe == nil && req.RecipeID != 0 {
		var err error
		recipe, err = a.source.GetByID(c.Request.Context(), req.RecipeID)
		if err != nil {
			apiErrorResponse(c, err)
			return
		}
	}
	if recipe == nil {
		errorResponse(c, http.StatusBadRequest, "MISSING_FIELD", "recipe or recipeId is required")
		return
	}

	a.editPlan(c, func(plan *models.MealPlan) error {
		return a.planner.ReplaceMeal(plan, req.Day, req.Slot, recipe)
	})
}

// editPlan loads the plan, applies the edit, re-runs inventory reconciliation
// on the rebuilt shopping list, and persists the result.
func (a *Application) editPlan(c *gin.Context, edit func(*models.MealPlan) error) {
	userID := currentUser(c)
	ctx := c.Request.Context()

	plan, err := a.repos.MealPlan.GetByID(ctx, userID, c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	if plan == nil {
		errorResponse(c, http.StatusNotFound, "NOT_FOUND", "meal plan not found")
		return
	}

	if err := edit(plan); err != nil {
		errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inventory, err := a.repos.Inventory.ListByUser(ctx, userID, "")
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	if len(inventory) > 0 {
		plan.ShoppingList = a.shopping.Reconcile(plan.ShoppingList, inventory)
	}

	if err := a.repos.MealPlan.Update(ctx, plan); err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	successResponse(c, plan)
}
