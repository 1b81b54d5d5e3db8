package recipesource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mealwise/mws/internal/infrastructure/config"
	"github.com/mealwise/mws/internal/pkg/errors"
	"github.com/mealwise/mws/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(config.LoggingConfig{Level: "error", Format: "console", Output: "stdout"})
	require.NoError(t, err)
	return log
}

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.RecipeSourceConfig{
		BaseURL:    server.URL,
		APIKey:     "test-key",
		Timeout:    5 * time.Second,
		DailyQuota: 150,
	}, testLogger(t))
}

func TestSearchParsesResults(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/complexSearch", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "true", r.URL.Query().Get("addRecipeInformation"))

		w.Header().Set(quotaUsedHeader, "12")
		w.Header().Set(quotaLeftHeader, "138")
		w.Write([]byte(`{"results":[{"id":7,"title":"Tacos","readyInMinutes":20,"servings":4}],"totalResults":1}`))
	})

	recipes, err := client.Search(context.Background(), SearchParams{Query: "tacos"})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, 7, recipes[0].ID)
	assert.Equal(t, "Tacos", recipes[0].Title)

	quota := client.Quota()
	assert.Equal(t, 12, quota.Used)
	assert.Equal(t, 138.0, quota.Remaining)
	assert.Equal(t, 150, quota.Total)
	assert.False(t, quota.LastUpdated.IsZero())
}

func TestSearchQuotaExceeded(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	})

	_, err := client.Search(context.Background(), SearchParams{})
	require.Error(t, err)

	apiErr, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrQuotaExceeded, apiErr.Code)
	assert.Equal(t, http.StatusPaymentRequired, apiErr.HTTPStatus)

	assert.Zero(t, client.Quota().Remaining)
}

func TestSearchUpstreamError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Search(context.Background(), SearchParams{})
	require.Error(t, err)

	apiErr, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrRecipeSourceError, apiErr.Code)
}

func TestGetByID(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/42/information", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("includeNutrition"))
		w.Write([]byte(`{"id":42,"title":"Ramen","readyInMinutes":35,"servings":2}`))
	})

	recipe, err := client.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 42, recipe.ID)
	assert.Equal(t, "Ramen", recipe.Title)
}

func TestNewFallsBackToMockWithoutAPIKey(t *testing.T) {
	src := New(config.RecipeSourceConfig{}, testLogger(t))
	_, ok := src.(mockSource)
	assert.True(t, ok)

	recipes, err := src.Search(context.Background(), SearchParams{})
	require.NoError(t, err)
	assert.NotEmpty(t, recipes)
	assert.True(t, src.Quota().Demo)
}

func TestMockPoolIsConsistent(t *testing.T) {
	pool := MockPool()
	require.Len(t, pool, 8)

	seen := make(map[int]bool)
	for _, r := range pool {
		assert.False(t, seen[r.ID], "duplicate recipe id %d", r.ID)
		seen[r.ID] = true
		assert.NotEmpty(t, r.Title)
		assert.NotEmpty(t, r.ExtendedIngredients)
		assert.Positive(t, r.Servings)
	}
}

func TestMockGetByID(t *testing.T) {
	src := NewMockSource()

	recipe, err := src.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Italian Turkey Meatballs", recipe.Title)

	_, err = src.GetByID(context.Background(), 999)
	assert.Error(t, err)
}
