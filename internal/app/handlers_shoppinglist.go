package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mealwise/mws/internal/domain/models"
)

type generateShoppingListRequest struct {
	Meals []*models.Recipe `json:"meals" binding:"required"`
	// Reconcile additionally annotates the list against the user's stored
	// pantry inventory.
	Reconcile bool `json:"reconcile,omitempty"`
}

func (a *Application) generateShoppingList(c *gin.Context) {
	var req generateShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	list := a.shopping.Generate(req.Meals)

	if req.Reconcile {
		inventory, err := a.repos.Inventory.ListByUser(c.Request.Context(), currentUser(c), "")
		if err != nil {
			errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
			return
		}
		if len(inventory) > 0 {
			list = a.shopping.Reconcile(list, inventory)
		}
	}

	successResponse(c, list)
}

type reconcileShoppingListRequest struct {
	Items []models.ShoppingListItem `json:"items" binding:"required"`
	// Inventory overrides the stored pantry when provided.
	Inventory []*models.InventoryItem `json:"inventory,omitempty"`
}

func (a *Application) reconcileShoppingList(c *gin.Context) {
	var req reconcileShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	inventory := req.Inventory
	if len(inventory) == 0 {
		var err error
		inventory, err = a.repos.Inventory.ListByUser(c.Request.Context(), currentUser(c), "")
		if err != nil {
			errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
			return
		}
	}

	successResponse(c, a.shopping.Reconcile(req.Items, inventory))
}
