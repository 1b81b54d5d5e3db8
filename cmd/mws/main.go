package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mealwise/mws/internal/app"
	"github.com/mealwise/mws/internal/domain/models"
	"github.com/mealwise/mws/internal/domain/services"
	"github.com/mealwise/mws/internal/infrastructure/config"
	"github.com/mealwise/mws/internal/infrastructure/database"
	"github.com/mealwise/mws/internal/infrastructure/recipesource"
	"github.com/mealwise/mws/internal/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version   = "0.1.0"
	buildTime = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mws",
		Short: "Meal-planning Web Service",
		Long: `MWS (Meal-planning Web Service) generates weekly meal plans from a
recipe catalog, builds aggregated shopping lists, reconciles them against
pantry inventory, and tracks food freshness.`,
	}

	// Version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("MWS version %s (built %s)\n", version, buildTime)
		},
	})

	// Serve command
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MWS server",
		RunE:  runServe,
	}
	rootCmd.AddCommand(serveCmd)

	// Plan command: offline plan generation over the sample pool
	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a meal plan offline and print it as JSON",
		RunE:  runPlan,
	}
	planCmd.Flags().Int("meals", 5, "meals per week")
	planCmd.Flags().Int("slots", 1, "meal slots per day (1=dinner, 2=+lunch, 3=+breakfast)")
	planCmd.Flags().Int("max-prep-time", 0, "max prep time in minutes (0 = no limit)")
	planCmd.Flags().StringSlice("diet", nil, "dietary restrictions (vegetarian, vegan, gluten-free, dairy-free)")
	planCmd.Flags().StringSlice("cuisine", nil, "preferred cuisines")
	planCmd.Flags().Bool("freezer-friendly", false, "only freezer-friendly recipes")
	rootCmd.AddCommand(planCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.SetGlobal(log)
	defer log.Sync()

	log.Info("Starting MWS",
		zap.String("version", version),
		zap.String("environment", cfg.App.Env),
	)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize MongoDB
	mongodb, err := database.NewMongoDB(cfg.MongoDB, log)
	if err != nil {
		return fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	if err := mongodb.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := mongodb.Close(shutdownCtx); err != nil {
			log.Error("Failed to close MongoDB connection", zap.Error(err))
		}
	}()

	// Create application
	application, err := app.New(cfg, log, mongodb)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.GetAddress(),
		Handler:      application.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("address", cfg.GetAddress()))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	// Graceful shutdown
	log.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server shutdown complete")
	return nil
}

// runPlan generates a plan from the built-in sample pool without any
// network or database dependencies.
func runPlan(cmd *cobra.Command, args []string) error {
	meals, _ := cmd.Flags().GetInt("meals")
	slots, _ := cmd.Flags().GetInt("slots")
	maxPrepTime, _ := cmd.Flags().GetInt("max-prep-time")
	diets, _ := cmd.Flags().GetStringSlice("diet")
	cuisines, _ := cmd.Flags().GetStringSlice("cuisine")
	freezerFriendly, _ := cmd.Flags().GetBool("freezer-friendly")

	prefs := models.Preferences{
		MealsPerWeek:        meals,
		MealSlots:           slots,
		MaxPrepTimeMinutes:  maxPrepTime,
		DietaryRestrictions: diets,
		CuisinePreferences:  cuisines,
		FreezerFriendly:     freezerFriendly,
	}

	planner := services.NewPlannerService(services.NewShoppingService())
	plan, err := planner.Generate(recipesource.MockPool(), prefs, nil)
	if err != nil {
		return fmt.Errorf("failed to generate plan: %w", err)
	}

	out, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	titles := make([]string, 0, len(plan.Meals))
	for _, m := range plan.Meals {
		titles = append(titles, m.Title)
	}
	fmt.Fprintf(os.Stderr, "Planned %d meals: %s\n", len(plan.Meals), strings.Join(titles, ", "))
	return nil
}
