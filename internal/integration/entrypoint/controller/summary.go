// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/usecase/summary"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// SummaryController handles the budget summary endpoint.
type SummaryController struct {
	summaryUseCase *summary.GetBudgetSummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(summaryUseCase *summary.GetBudgetSummaryUseCase) *SummaryController {
	return &SummaryController{
		summaryUseCase: summaryUseCase,
	}
}

// Get handles GET /budget-summary requests. period_id selects which budget
// limits apply; start_date/end_date bound which transactions are summed. The
// two are independent.
func (c *SummaryController) Get(ctx *gin.Context) {
	window, err := parseWindowQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	input := summary.GetBudgetSummaryInput{
		Window: window,
	}

	if periodIDStr := ctx.Query("period_id"); periodIDStr != "" {
		periodID, err := uuid.Parse(periodIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid period ID format",
			})
			return
		}
		input.PeriodID = &periodID
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetSummaryResponse(output.Summaries))
}
