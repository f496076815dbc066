// Package main is the entry point for the Pennywise API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/config"
	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/application/usecase/category"
	"github.com/pennywise/backend/internal/application/usecase/expense"
	"github.com/pennywise/backend/internal/application/usecase/plan"
	"github.com/pennywise/backend/internal/application/usecase/preferences"
	"github.com/pennywise/backend/internal/infra/db"
	"github.com/pennywise/backend/internal/infra/server/router"
	"github.com/pennywise/backend/internal/integration/adapters"
	"github.com/pennywise/backend/internal/integration/entrypoint/controller"
	"github.com/pennywise/backend/internal/integration/entrypoint/middleware"
	"github.com/pennywise/backend/internal/integration/persistence"
	"github.com/pennywise/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Pennywise API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewSQLiteConnection(cfg.Database.Path)
	if err != nil {
		slog.Error("Failed to open database", "path", cfg.Database.Path, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.CategoryModel{},
		&model.SubCategoryModel{},
		&model.ExpenseModel{},
		&model.FinancialPlanModel{},
		&model.PlanBreakdownModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	healthController := controller.NewHealthController(database.HealthCheck)

	// Create repositories
	expenseRepo := persistence.NewExpenseRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	planRepo := persistence.NewPlanRepository(database.DB())
	txManager := persistence.NewTxManager(database.DB())

	// Create adapters
	clock := adapters.NewSystemClock()
	preferencesGateway := newPreferencesGateway(cfg)

	// Seed the default category taxonomy on first boot
	seedUseCase := category.NewSeedDefaultsUseCase(categoryRepo)
	seeded, err := seedUseCase.Execute(context.Background())
	if err != nil {
		slog.Error("Failed to seed default categories", "error", err)
		os.Exit(1)
	}
	if seeded > 0 {
		slog.Info("Seeded default categories", "count", seeded)
	}

	// Create expense use cases
	addExpenseUseCase := expense.NewAddExpenseUseCase(expenseRepo, categoryRepo, preferencesGateway, txManager)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	reconcileUseCase := expense.NewReconcileEndDateUseCase(expenseRepo, txManager, clock)
	updateFutureUseCase := expense.NewUpdateFutureOccurrencesUseCase(expenseRepo, clock)
	deleteFutureUseCase := expense.NewDeleteFutureOccurrencesUseCase(expenseRepo, clock)

	// Create plan use cases
	createPlanUseCase := plan.NewCreatePlanUseCase(planRepo, expenseRepo, txManager, clock)
	getPlanUseCase := plan.NewGetPlanUseCase(planRepo, clock)
	listPlansUseCase := plan.NewListPlansUseCase(planRepo, clock)
	updatePlanUseCase := plan.NewUpdatePlanUseCase(planRepo, expenseRepo, txManager, clock)
	deletePlanUseCase := plan.NewDeletePlanUseCase(planRepo)
	updateBreakdownUseCase := plan.NewUpdateBreakdownUseCase(planRepo, txManager)
	regenerateUseCase := plan.NewRegenerateBreakdownsUseCase(planRepo, expenseRepo, txManager, clock)
	positionUseCase := plan.NewGetPlanPositionUseCase(planRepo, expenseRepo, clock)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	createSubCategoryUseCase := category.NewCreateSubCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create preferences use cases
	getPreferencesUseCase := preferences.NewGetPreferencesUseCase(preferencesGateway)
	updatePreferencesUseCase := preferences.NewUpdatePreferencesUseCase(preferencesGateway)

	// Create controllers
	expenseController := controller.NewExpenseController(
		addExpenseUseCase,
		listExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		reconcileUseCase,
		updateFutureUseCase,
		deleteFutureUseCase,
	)
	planController := controller.NewPlanController(
		createPlanUseCase,
		getPlanUseCase,
		listPlansUseCase,
		updatePlanUseCase,
		deletePlanUseCase,
		updateBreakdownUseCase,
		regenerateUseCase,
		positionUseCase,
	)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		createSubCategoryUseCase,
		deleteCategoryUseCase,
	)
	preferencesController := controller.NewPreferencesController(
		getPreferencesUseCase,
		updatePreferencesUseCase,
	)

	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowDuration)

	// Setup router
	r := router.NewRouter(
		healthController,
		expenseController,
		planController,
		categoryController,
		preferencesController,
		rateLimiter,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// newPreferencesGateway connects to Redis when it is reachable and falls back
// to an in-memory store otherwise. Preferences are a convenience, not a
// dependency the core engine should crash over.
func newPreferencesGateway(cfg *config.Config) adapter.PreferencesGateway {
	defaults := adapter.Preferences{
		DefaultCurrency: cfg.Preferences.DefaultCurrency,
		DailyLimit:      decimal.NewFromFloat(cfg.Preferences.DailyLimit),
		MonthlyLimit:    decimal.NewFromFloat(cfg.Preferences.MonthlyLimit),
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Warn("Invalid Redis URL, using in-memory preferences", "error", err)
		return adapters.NewStaticPreferencesService(defaults)
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unreachable, using in-memory preferences", "error", err)
		return adapters.NewStaticPreferencesService(defaults)
	}

	slog.Info("Connected to Redis for preferences storage")
	return adapters.NewRedisPreferencesService(client, defaults)
}
