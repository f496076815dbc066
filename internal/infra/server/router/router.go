// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pennywise/backend/internal/integration/entrypoint/controller"
	"github.com/pennywise/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	expenseController     *controller.ExpenseController
	planController        *controller.PlanController
	categoryController    *controller.CategoryController
	preferencesController *controller.PreferencesController
	rateLimiter           *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	expenseController *controller.ExpenseController,
	planController *controller.PlanController,
	categoryController *controller.CategoryController,
	preferencesController *controller.PreferencesController,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		expenseController:     expenseController,
		planController:        planController,
		categoryController:    categoryController,
		preferencesController: preferencesController,
		rateLimiter:           rateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}
	{
		if r.expenseController != nil {
			expenses := v1.Group("/expenses")
			{
				expenses.POST("", r.expenseController.Create)
				expenses.GET("", r.expenseController.List)
				expenses.PATCH("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)

				groups := expenses.Group("/groups/:groupId")
				{
					groups.PUT("", r.expenseController.ReconcileEndDate)
					groups.PATCH("/future", r.expenseController.UpdateFutureOccurrences)
					groups.DELETE("/future", r.expenseController.DeleteFutureOccurrences)
				}
			}
		}

		if r.planController != nil {
			plans := v1.Group("/plans")
			{
				plans.POST("", r.planController.Create)
				plans.GET("", r.planController.List)
				plans.GET("/:id", r.planController.Get)
				plans.PATCH("/:id", r.planController.Update)
				plans.DELETE("/:id", r.planController.Delete)
				plans.GET("/:id/position", r.planController.Position)
				plans.PATCH("/:id/breakdowns/:monthIndex", r.planController.UpdateBreakdown)
				plans.POST("/:id/breakdowns/regenerate", r.planController.RegenerateBreakdowns)
			}
		}

		if r.categoryController != nil {
			categories := v1.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.POST("/subcategories", r.categoryController.CreateSubCategory)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		if r.preferencesController != nil {
			preferences := v1.Group("/preferences")
			{
				preferences.GET("", r.preferencesController.Get)
				preferences.PATCH("", r.preferencesController.Update)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
