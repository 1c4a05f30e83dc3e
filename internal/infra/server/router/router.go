// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/budget/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/budget/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	expenseController  *controller.ExpenseController
	incomeController   *controller.IncomeController
	goalController     *controller.GoalController
	summaryController  *controller.SummaryController
	categoryController *controller.CategoryController
	writeRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
// authMiddleware and writeRateLimiter may be nil to leave the API open or
// unthrottled.
func NewRouter(
	healthController *controller.HealthController,
	expenseController *controller.ExpenseController,
	incomeController *controller.IncomeController,
	goalController *controller.GoalController,
	summaryController *controller.SummaryController,
	categoryController *controller.CategoryController,
	writeRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		expenseController:  expenseController,
		incomeController:   incomeController,
		goalController:     goalController,
		summaryController:  summaryController,
		categoryController: categoryController,
		writeRateLimiter:   writeRateLimiter,
		authMiddleware:     authMiddleware,
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
	if r.authMiddleware != nil {
		v1.Use(r.authMiddleware.Authenticate())
	}
	if r.writeRateLimiter != nil {
		v1.Use(r.writeRateLimiter.Middleware())
	}

	if r.expenseController != nil {
		expenses := v1.Group("/expenses")
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Create)
			expenses.GET("/total", r.expenseController.Total)
			expenses.GET("/by-category", r.expenseController.ByCategory)
			expenses.GET("/:id", r.expenseController.Get)
			expenses.DELETE("/:id", r.expenseController.Delete)
		}
	}

	if r.incomeController != nil {
		incomes := v1.Group("/incomes")
		{
			incomes.GET("", r.incomeController.List)
			incomes.POST("", r.incomeController.Create)
			incomes.GET("/total", r.incomeController.Total)
			incomes.GET("/:id", r.incomeController.Get)
			incomes.DELETE("/:id", r.incomeController.Delete)
		}
	}

	if r.goalController != nil {
		goals := v1.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.GET("/overview", r.goalController.Overview)
			goals.GET("/:id", r.goalController.Get)
			goals.POST("/:id/progress", r.goalController.UpdateProgress)
			goals.DELETE("/:id", r.goalController.Delete)
		}
	}

	if r.summaryController != nil {
		v1.GET("/summary", r.summaryController.Summary)
		v1.GET("/transactions/recent", r.summaryController.RecentTransactions)
	}

	if r.categoryController != nil {
		v1.GET("/categories", r.categoryController.List)
	}
}
