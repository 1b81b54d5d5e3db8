package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mealwise/mws/internal/app/middleware"
	"github.com/mealwise/mws/internal/domain/services"
	"github.com/mealwise/mws/internal/infrastructure/config"
	"github.com/mealwise/mws/internal/infrastructure/database"
	"github.com/mealwise/mws/internal/infrastructure/recipesource"
	"github.com/mealwise/mws/internal/infrastructure/repositories"
	"github.com/mealwise/mws/internal/pkg/logger"
	"go.uber.org/zap"
)

// Application holds all application dependencies and services
type Application struct {
	config    *config.Config
	logger    *logger.Logger
	mongodb   *database.MongoDB
	repos     *repositories.Provider
	planner   services.PlannerService
	shopping  services.ShoppingService
	freshness services.FreshnessService
	source    recipesource.Source
	router    *gin.Engine
}

// New creates a new Application instance
func New(cfg *config.Config, log *logger.Logger, mongodb *database.MongoDB) (*Application, error) {
	repos := repositories.NewProvider(mongodb)

	shopping := services.NewShoppingService()

	app := &Application{
		config:    cfg,
		logger:    log,
		mongodb:   mongodb,
		repos:     repos,
		shopping:  shopping,
		planner:   services.NewPlannerService(shopping),
		freshness: services.NewFreshnessService(),
		source:    recipesource.WithCache(recipesource.New(cfg.RecipeSource, log), cfg.Cache, log),
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	app.router = gin.New()

	// Add middleware
	app.router.Use(gin.Recovery())
	app.router.Use(app.loggerMiddleware())
	app.router.Use(app.corsMiddleware())

	app.setupRoutes()

	return app, nil
}

// Router returns the HTTP handler
func (a *Application) Router() http.Handler {
	return a.router
}

// setupRoutes configures all application routes
func (a *Application) setupRoutes() {
	// Health check endpoints
	a.router.GET("/health", a.healthCheck)
	a.router.GET("/ready", a.readinessCheck)

	authConfig := middleware.JWTConfig{
		Secret:         a.config.JWT.Secret,
		Issuer:         a.config.JWT.Issuer,
		AccessTokenTTL: a.config.JWT.AccessTokenTTL,
	}

	v1 := a.router.Group("/api/v1")
	v1.Use(middleware.Auth(authConfig))
	{
		// Public info endpoint
		v1.GET("/info", a.apiInfo)

		// Recipe catalog
		recipes := v1.Group("/recipes")
		{
			recipes.GET("/search", a.searchRecipes)
			recipes.GET("/quota", a.getQuota)
			recipes.GET("/:id", a.getRecipe)
		}

		// Meal plans
		plans := v1.Group("/meal-plans")
		{
			plans.POST("/generate", a.generateMealPlan)
			plans.GET("", a.listMealPlans)
			plans.GET("/:id", a.getMealPlan)
			plans.DELETE("/:id", a.deleteMealPlan)
			plans.POST("/:id/remove-meal", a.removeMeal)
			plans.POST("/:id/replace-meal", a.replaceMeal)
		}

		// Shopping list operations (stateless, operate on request payload)
		shopping := v1.Group("/shopping-list")
		{
			shopping.POST("/generate", a.generateShoppingList)
			shopping.POST("/reconcile", a.reconcileShoppingList)
		}

		// Pantry inventory
		inventory := v1.Group("/inventory")
		{
			inventory.GET("", a.listInventory)
			inventory.POST("", a.createInventoryItem)
			inventory.PUT("/:id", a.updateInventoryItem)
			inventory.DELETE("/:id", a.deleteInventoryItem)
			inventory.DELETE("", a.clearInventory)
			inventory.POST("/add-purchased", a.addPurchasedItems)
			inventory.GET("/expiring", a.listExpiringItems)
		}

		// Freshness estimation
		v1.POST("/freshness/estimate", a.estimateFreshness)
	}
}

// Middleware

func (a *Application) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip logging for health checks
		if c.Request.URL.Path == "/health" || c.Request.URL.Path == "/ready" {
			c.Next()
			return
		}

		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		a.logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func (a *Application) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
