package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mealwise/mws/internal/domain/models"
)

// inventoryItemView is an inventory item annotated with computed freshness.
type inventoryItemView struct {
	*models.InventoryItem
	Status    models.FreshnessStatus `json:"status"`
	ExpiresIn string                 `json:"expiresIn,omitempty"`
}

func (a *Application) inventoryView(item *models.InventoryItem) inventoryItemView {
	view := inventoryItemView{
		InventoryItem: item,
		Status:        a.freshness.Status(item),
	}
	if item.ExpirationDate != nil {
		view.ExpiresIn = a.freshness.FormatRelativeDate(*item.ExpirationDate)
	}
	return view
}

func (a *Application) listInventory(c *gin.Context) {
	items, err := a.repos.Inventory.ListByUser(c.Request.Context(), currentUser(c), c.Query("section"))
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}

	views := make([]inventoryItemView, 0, len(items))
	for _, item := range items {
		views = append(views, a.inventoryView(item))
	}
	successResponse(c, views)
}

type inventoryItemRequest struct {
	Name           string     `json:"name" binding:"required"`
	DisplayName    string     `json:"displayName,omitempty"`
	Section        string     `json:"section,omitempty"`
	FoodGroup      string     `json:"foodGroup,omitempty"`
	Amount         *float64   `json:"amount,omitempty"`
	Unit           string     `json:"unit,omitempty"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
	PurchasedDate  *time.Time `json:"purchasedDate,omitempty"`
}

// toItem builds an inventory item, filling in a suggested section and an
// estimated expiration date where the request leaves them blank.
func (a *Application) toItem(req inventoryItemRequest, userID string) (*models.InventoryItem, bool) {
	section := models.Section(req.Section)
	if req.Section == "" {
		section = a.freshness.SuggestSection(req.Name)
	} else if !models.ValidSection(section) {
		return nil, false
	}

	item := &models.InventoryItem{
		UserID:         userID,
		Name:           req.Name,
		DisplayName:    req.DisplayName,
		Section:        section,
		FoodGroup:      req.FoodGroup,
		Amount:         req.Amount,
		Unit:           req.Unit,
		ExpirationDate: req.ExpirationDate,
		PurchasedDate:  req.PurchasedDate,
	}

	if item.ExpirationDate == nil && item.PurchasedDate != nil {
		if est := a.freshness.EstimateExpiration(item.Name, *item.PurchasedDate); est != nil {
			item.ExpirationDate = est
			item.ExpirationEstimated = true
		}
	}
	return item, true
}

func (a *Application) createInventoryItem(c *gin.Context) {
	var req inventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	item, ok := a.toItem(req, currentUser(c))
	if !ok {
		errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "unknown storage section")
		return
	}

	if err := a.repos.Inventory.Create(c.Request.Context(), item); err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	createdResponse(c, a.inventoryView(item))
}

func (a *Application) updateInventoryItem(c *gin.Context) {
	var req inventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	userID := currentUser(c)
	ctx := c.Request.Context()

	existing, err := a.repos.Inventory.GetByID(ctx, userID, c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	if existing == nil {
		errorResponse(c, http.StatusNotFound, "NOT_FOUND", "inventory item not found")
		return
	}

	item, ok := a.toItem(req, userID)
	if !ok {
		errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "unknown storage section")
		return
	}
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	// An explicit expiration date in the request overrides any estimate.
	if req.ExpirationDate != nil {
		item.ExpirationEstimated = false
	}

	if err := a.repos.Inventory.Update(ctx, item); err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	successResponse(c, a.inventoryView(item))
}

func (a *Application) deleteInventoryItem(c *gin.Context) {
	userID := currentUser(c)
	ctx := c.Request.Context()

	existing, err := a.repos.Inventory.GetByID(ctx, userID, c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	if existing == nil {
		errorResponse(c, http.StatusNotFound, "NOT_FOUND", "inventory item not found")
		return
	}

	if err := a.repos.Inventory.Delete(ctx, userID, existing.ID); err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	successResponse(c, gin.H{"deleted": existing.ID})
}

// clearInventory deletes the user's items, limited to one storage section
// when ?section= is present.
func (a *Application) clearInventory(c *gin.Context) {
	deleted, err := a.repos.Inventory.ClearByUser(c.Request.Context(), currentUser(c), c.Query("section"))
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	successResponse(c, gin.H{"deleted": deleted})
}

type addPurchasedRequest struct {
	Items []inventoryItemRequest `json:"items" binding:"required"`
}

// addPurchasedItems bulk-adds checked-off shopping list items to the pantry.
// Purchase date defaults to today so shelf-life estimation kicks in.
func (a *Application) addPurchasedItems(c *gin.Context) {
	var req addPurchasedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	userID := currentUser(c)
	now := time.Now()

	items := make([]*models.InventoryItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		if itemReq.PurchasedDate == nil {
			itemReq.PurchasedDate = &now
		}
		item, ok := a.toItem(itemReq, userID)
		if !ok {
			errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "unknown storage section")
			return
		}
		items = append(items, item)
	}

	if err := a.repos.Inventory.CreateMany(c.Request.Context(), items); err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}

	views := make([]inventoryItemView, 0, len(items))
	for _, item := range items {
		views = append(views, a.inventoryView(item))
	}
	createdResponse(c, views)
}

// listExpiringItems returns items that are expired or expiring soon.
func (a *Application) listExpiringItems(c *gin.Context) {
	items, err := a.repos.Inventory.ListByUser(c.Request.Context(), currentUser(c), "")
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}

	views := make([]inventoryItemView, 0)
	for _, item := range items {
		status := a.freshness.Status(item)
		if status == models.FreshnessExpired || status == models.FreshnessExpiringSoon {
			views = append(views, a.inventoryView(item))
		}
	}
	successResponse(c, views)
}

type estimateFreshnessRequest struct {
	Name          string     `json:"name" binding:"required"`
	PurchasedDate *time.Time `json:"purchasedDate,omitempty"`
}

// estimateFreshness previews shelf-life estimation for a food name without
// touching the stored inventory.
func (a *Application) estimateFreshness(c *gin.Context) {
	var req estimateFreshnessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	purchased := time.Now()
	if req.PurchasedDate != nil {
		purchased = *req.PurchasedDate
	}

	resp := gin.H{
		"name":    req.Name,
		"section": a.freshness.SuggestSection(req.Name),
	}
	if exp := a.freshness.EstimateExpiration(req.Name, purchased); exp != nil {
		resp["expirationDate"] = exp
		resp["expiresIn"] = a.freshness.FormatRelativeDate(*exp)
		resp["status"] = a.freshness.Status(&models.InventoryItem{ExpirationDate: exp})
	} else {
		resp["status"] = models.FreshnessUnknown
	}
	successResponse(c, resp)
}
