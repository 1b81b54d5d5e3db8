package recipesource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mealwise/mws/internal/domain/models"
	"github.com/mealwise/mws/internal/infrastructure/config"
	"github.com/mealwise/mws/internal/pkg/errors"
	"github.com/mealwise/mws/internal/pkg/logger"
	"go.uber.org/zap"
)

const (
	quotaUsedHeader = "X-API-Quota-Used"
	quotaLeftHeader = "X-API-Quota-Left"
)

// Client talks to the upstream recipe search API and tracks daily request
// quota from response headers.
type Client struct {
	cfg    config.RecipeSourceConfig
	http   *resty.Client
	logger *logger.Logger

	mu    sync.Mutex
	quota QuotaStatus
}

// NewClient creates an upstream recipe source client.
func NewClient(cfg config.RecipeSourceConfig, log *logger.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetQueryParam("apiKey", cfg.APIKey)

	return &Client{
		cfg:    cfg,
		http:   httpClient,
		logger: log.WithComponent("recipesource"),
		quota: QuotaStatus{
			Remaining: float64(cfg.DailyQuota),
			Total:     cfg.DailyQuota,
		},
	}
}

// New returns the configured Source: the upstream client when an API key is
// set, otherwise the built-in sample pool.
func New(cfg config.RecipeSourceConfig, log *logger.Logger) Source {
	if cfg.APIKey == "" {
		log.WithComponent("recipesource").Info("No API key configured, using sample recipe pool")
		return NewMockSource()
	}
	return NewClient(cfg, log)
}

type searchResponse struct {
	Results      []*models.Recipe `json:"results"`
	TotalResults int              `json:"totalResults"`
}

// Search runs a recipe search with the given filters.
func (c *Client) Search(ctx context.Context, params SearchParams) ([]*models.Recipe, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params.queryValues()).
		Get("/recipes/complexSearch")
	if err != nil {
		return nil, errors.RecipeSourceError(err)
	}

	if err := c.checkResponse(resp); err != nil {
		return nil, err
	}

	var result searchResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, errors.RecipeSourceError(fmt.Errorf("failed to parse search response: %w", err))
	}

	c.logger.Debug("Recipe search completed",
		zap.Int("results", len(result.Results)),
		zap.Int("total", result.TotalResults))

	return result.Results, nil
}

// GetByID fetches full information for one recipe.
func (c *Client) GetByID(ctx context.Context, id int) (*models.Recipe, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("includeNutrition", "true").
		Get(fmt.Sprintf("/recipes/%d/information", id))
	if err != nil {
		return nil, errors.RecipeSourceError(err)
	}

	if err := c.checkResponse(resp); err != nil {
		return nil, err
	}

	var recipe models.Recipe
	if err := json.Unmarshal(resp.Body(), &recipe); err != nil {
		return nil, errors.RecipeSourceError(fmt.Errorf("failed to parse recipe response: %w", err))
	}
	return &recipe, nil
}

// Quota returns the most recently observed quota state.
func (c *Client) Quota() QuotaStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quota
}

// checkResponse updates quota tracking from response headers and converts
// upstream failures into API errors. A 402 marks the quota exhausted until
// the daily reset.
func (c *Client) checkResponse(resp *resty.Response) error {
	c.updateQuota(resp.Header().Get(quotaUsedHeader), resp.Header().Get(quotaLeftHeader))

	if resp.IsSuccess() {
		return nil
	}
	if resp.StatusCode() == http.StatusPaymentRequired {
		c.mu.Lock()
		c.quota.Remaining = 0
		c.quota.LastUpdated = time.Now()
		c.mu.Unlock()
		return errors.QuotaExceeded("daily recipe API quota exceeded, try again tomorrow")
	}
	return errors.RecipeSourceError(fmt.Errorf("recipe API returned status %d", resp.StatusCode()))
}

func (c *Client) updateQuota(usedHeader, leftHeader string) {
	if usedHeader == "" && leftHeader == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Upstream resets quota daily; drop stale counts when a new day starts.
	now := time.Now()
	if !c.quota.LastUpdated.IsZero() && c.quota.LastUpdated.YearDay() != now.YearDay() {
		c.quota.Used = 0
		c.quota.Remaining = float64(c.cfg.DailyQuota)
	}

	if used, err := strconv.Atoi(usedHeader); err == nil {
		c.quota.Used = used
	}
	if left, err := strconv.ParseFloat(leftHeader, 64); err == nil {
		c.quota.Remaining = left
	}
	c.quota.Total = c.cfg.DailyQuota
	c.quota.LastUpdated = now
}
