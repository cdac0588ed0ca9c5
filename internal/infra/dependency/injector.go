// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/config"
	"github.com/budget-tracker/backend/internal/application/usecase/category"
	"github.com/budget-tracker/backend/internal/application/usecase/charts"
	"github.com/budget-tracker/backend/internal/application/usecase/period"
	"github.com/budget-tracker/backend/internal/application/usecase/summary"
	"github.com/budget-tracker/backend/internal/application/usecase/transaction"
	"github.com/budget-tracker/backend/internal/infra/server/router"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/budget-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, dbHealthChecker func() bool) *Injector {
	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	periodRepo := persistence.NewPeriodRepository(db)
	summaryRepo := persistence.NewSummaryRepository(db)
	chartRepo := persistence.NewChartRepository(db)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	clearTransactionsUseCase := transaction.NewClearTransactionsUseCase(transactionRepo)
	exportTransactionsUseCase := transaction.NewExportTransactionsUseCase(transactionRepo)

	// Create period use cases
	listPeriodsUseCase := period.NewListPeriodsUseCase(periodRepo)
	createPeriodUseCase := period.NewCreatePeriodUseCase(periodRepo)
	updatePeriodUseCase := period.NewUpdatePeriodUseCase(periodRepo)
	deletePeriodUseCase := period.NewDeletePeriodUseCase(periodRepo)
	getCurrentPeriodUseCase := period.NewGetCurrentPeriodUseCase(periodRepo)
	listPeriodBudgetsUseCase := period.NewListPeriodBudgetsUseCase(periodRepo)
	updatePeriodBudgetsUseCase := period.NewUpdatePeriodBudgetsUseCase(periodRepo)

	// Create summary and chart use cases
	getBudgetSummaryUseCase := summary.NewGetBudgetSummaryUseCase(summaryRepo)
	expenseBreakdownUseCase := charts.NewGetExpenseBreakdownUseCase(chartRepo)
	monthlyTrendUseCase := charts.NewGetMonthlyTrendUseCase(chartRepo)
	incomeExpenseUseCase := charts.NewGetIncomeExpenseUseCase(chartRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		clearTransactionsUseCase,
		exportTransactionsUseCase,
	)

	periodController := controller.NewPeriodController(
		listPeriodsUseCase,
		createPeriodUseCase,
		updatePeriodUseCase,
		deletePeriodUseCase,
		getCurrentPeriodUseCase,
		listPeriodBudgetsUseCase,
		updatePeriodBudgetsUseCase,
	)

	summaryController := controller.NewSummaryController(getBudgetSummaryUseCase)

	chartController := controller.NewChartController(
		expenseBreakdownUseCase,
		monthlyTrendUseCase,
		incomeExpenseUseCase,
	)

	// Create router
	r := router.NewRouter(
		healthController,
		categoryController,
		transactionController,
		periodController,
		summaryController,
		chartController,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
