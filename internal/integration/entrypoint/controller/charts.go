// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/application/usecase/charts"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// ChartController handles chart projection endpoints.
type ChartController struct {
	breakdownUseCase     *charts.GetExpenseBreakdownUseCase
	trendUseCase         *charts.GetMonthlyTrendUseCase
	incomeExpenseUseCase *charts.GetIncomeExpenseUseCase
}

// NewChartController creates a new chart controller instance.
func NewChartController(
	breakdownUseCase *charts.GetExpenseBreakdownUseCase,
	trendUseCase *charts.GetMonthlyTrendUseCase,
	incomeExpenseUseCase *charts.GetIncomeExpenseUseCase,
) *ChartController {
	return &ChartController{
		breakdownUseCase:     breakdownUseCase,
		trendUseCase:         trendUseCase,
		incomeExpenseUseCase: incomeExpenseUseCase,
	}
}

// ExpenseBreakdown handles GET /charts/expense-breakdown requests.
func (c *ChartController) ExpenseBreakdown(ctx *gin.Context) {
	window, err := parseWindowQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), charts.GetExpenseBreakdownInput{
		Window: window,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseBreakdownResponse(output.Breakdown))
}

// MonthlyTrend handles GET /charts/monthly-trend requests.
func (c *ChartController) MonthlyTrend(ctx *gin.Context) {
	window, err := parseWindowQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	output, err := c.trendUseCase.Execute(ctx.Request.Context(), charts.GetMonthlyTrendInput{
		Window: window,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyTrendResponse(output.Trend))
}

// IncomeExpense handles GET /charts/income-expense requests.
func (c *ChartController) IncomeExpense(ctx *gin.Context) {
	window, err := parseWindowQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	output, err := c.incomeExpenseUseCase.Execute(ctx.Request.Context(), charts.GetIncomeExpenseInput{
		Window: window,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeExpenseResponse(output.Income, output.Expense))
}
