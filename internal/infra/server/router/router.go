// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	periodController      *controller.PeriodController
	summaryController     *controller.SummaryController
	chartController       *controller.ChartController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	periodController *controller.PeriodController,
	summaryController *controller.SummaryController,
	chartController *controller.ChartController,
) *Router {
	return &Router{
		healthController:      healthController,
		categoryController:    categoryController,
		transactionController: transactionController,
		periodController:      periodController,
		summaryController:     summaryController,
		chartController:       chartController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	r.engine.Use(cors.Default())

	// Setup routes
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
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.PUT("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.PUT("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		periods := v1.Group("/periods")
		{
			periods.GET("", r.periodController.List)
			periods.POST("", r.periodController.Create)
			// Registered before /:id so "current" is not read as an ID.
			periods.GET("/current", r.periodController.Current)
			periods.PUT("/:id", r.periodController.Update)
			periods.DELETE("/:id", r.periodController.Delete)
			periods.GET("/:id/budgets", r.periodController.ListBudgets)
			periods.PUT("/:id/budgets", r.periodController.UpdateBudgets)
		}

		v1.GET("/budget-summary", r.summaryController.Get)
		v1.GET("/export/csv", r.transactionController.Export)

		charts := v1.Group("/charts")
		{
			charts.GET("/expense-breakdown", r.chartController.ExpenseBreakdown)
			charts.GET("/monthly-trend", r.chartController.MonthlyTrend)
			charts.GET("/income-expense", r.chartController.IncomeExpense)
		}

		v1.DELETE("/clear-database", r.transactionController.Clear)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
