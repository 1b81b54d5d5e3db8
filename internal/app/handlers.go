package app

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mealwise/mws/internal/app/middleware"
	"github.com/mealwise/mws/internal/infrastructure/recipesource"
	apperrors "github.com/mealwise/mws/internal/pkg/errors"
)

// APIResponse is the standard API response format
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Meta      *APIMeta    `json:"meta,omitempty"`
	Timestamp string      `json:"timestamp"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type APIMeta struct {
	Page       int   `json:"page,omitempty"`
	PerPage    int   `json:"per_page,omitempty"`
	Total      int64 `json:"total,omitempty"`
	TotalPages int   `json:"total_pages,omitempty"`
}

func successResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func createdResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func paginatedResponse(c *gin.Context, data interface{}, page, perPage int, total int64) {
	totalPages := int(total) / perPage
	if int(total)%perPage > 0 {
		totalPages++
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Meta: &APIMeta{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func errorResponse(c *gin.Context, status int, code, message string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// apiErrorResponse renders an *APIError, falling back to a generic internal
// error for unknown error types.
func apiErrorResponse(c *gin.Context, err error) {
	if apiErr, ok := err.(*apperrors.APIError); ok {
		c.JSON(apiErr.HTTPStatus, APIResponse{
			Success: false,
			Error: &APIError{
				Code:    string(apiErr.Code),
				Message: apiErr.Message,
				Details: apiErr.Details,
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}

func getPagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

// Health and info endpoints

func (a *Application) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (a *Application) readinessCheck(c *gin.Context) {
	if err := a.mongodb.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "not ready",
			"reason":    "database unavailable",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (a *Application) apiInfo(c *gin.Context) {
	successResponse(c, gin.H{
		"name":        "MWS - Meal-planning Web Service",
		"version":     "0.1.0",
		"description": "Weekly meal plan generation with shopping lists and pantry tracking",
	})
}

// Recipe catalog endpoints

func (a *Application) searchRecipes(c *gin.Context) {
	params := recipesource.SearchParams{
		Query:   c.Query("query"),
		Cuisine: c.Query("cuisine"),
		Type:    c.Query("type"),
	}
	if diet := c.Query("diet"); diet != "" {
		params.Diets = []string{diet}
	}
	if intolerances := c.Query("intolerances"); intolerances != "" {
		params.Intolerances = []string{intolerances}
	}
	if maxReadyTime, err := strconv.Atoi(c.Query("maxReadyTime")); err == nil {
		params.MaxReadyTime = maxReadyTime
	}
	if number, err := strconv.Atoi(c.Query("number")); err == nil {
		params.Number = number
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil {
		params.Offset = offset
	}

	recipes, err := a.source.Search(c.Request.Context(), params)
	if err != nil {
		apiErrorResponse(c, err)
		return
	}
	successResponse(c, gin.H{
		"results":      recipes,
		"totalResults": len(recipes),
	})
}

func (a *Application) getRecipe(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
		return
	}

	recipe, err := a.source.GetByID(c.Request.Context(), id)
	if err != nil {
		apiErrorResponse(c, err)
		return
	}
	successResponse(c, recipe)
}

func (a *Application) getQuota(c *gin.Context) {
	successResponse(c, a.source.Quota())
}

func currentUser(c *gin.Context) string {
	return middleware.GetUserID(c)
}
