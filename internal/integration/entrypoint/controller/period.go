// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/application/usecase/period"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// PeriodController handles budget period endpoints.
type PeriodController struct {
	listUseCase          *period.ListPeriodsUseCase
	createUseCase        *period.CreatePeriodUseCase
	updateUseCase        *period.UpdatePeriodUseCase
	deleteUseCase        *period.DeletePeriodUseCase
	currentUseCase       *period.GetCurrentPeriodUseCase
	listBudgetsUseCase   *period.ListPeriodBudgetsUseCase
	updateBudgetsUseCase *period.UpdatePeriodBudgetsUseCase
}

// NewPeriodController creates a new period controller instance.
func NewPeriodController(
	listUseCase *period.ListPeriodsUseCase,
	createUseCase *period.CreatePeriodUseCase,
	updateUseCase *period.UpdatePeriodUseCase,
	deleteUseCase *period.DeletePeriodUseCase,
	currentUseCase *period.GetCurrentPeriodUseCase,
	listBudgetsUseCase *period.ListPeriodBudgetsUseCase,
	updateBudgetsUseCase *period.UpdatePeriodBudgetsUseCase,
) *PeriodController {
	return &PeriodController{
		listUseCase:          listUseCase,
		createUseCase:        createUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		currentUseCase:       currentUseCase,
		listBudgetsUseCase:   listBudgetsUseCase,
		updateBudgetsUseCase: updateBudgetsUseCase,
	}
}

// List handles GET /periods requests.
func (c *PeriodController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPeriodListResponse(output.Periods))
}

// Create handles POST /periods requests.
func (c *PeriodController) Create(ctx *gin.Context) {
	var req dto.CreatePeriodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingPeriodFields),
		})
		return
	}

	input := period.CreatePeriodInput{
		PeriodType: entity.PeriodType(req.PeriodType),
	}

	if req.StartDate != nil && *req.StartDate != "" {
		start, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "start_date must be in YYYY-MM-DD format",
			})
			return
		}
		input.StartDate = start
	}

	if req.EndDate != nil && *req.EndDate != "" {
		end, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "end_date must be in YYYY-MM-DD format",
			})
			return
		}
		input.EndDate = end
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePeriodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPeriodResponse(output.Period))
}

// Update handles PUT /periods/:id requests.
func (c *PeriodController) Update(ctx *gin.Context) {
	periodID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid period ID format",
		})
		return
	}

	var req dto.UpdatePeriodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := period.UpdatePeriodInput{
		PeriodID: periodID,
		IsActive: req.IsActive,
	}

	if req.PeriodType != nil {
		periodType := entity.PeriodType(*req.PeriodType)
		input.PeriodType = &periodType
	}

	if req.StartDate != nil && *req.StartDate != "" {
		start, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "start_date must be in YYYY-MM-DD format",
			})
			return
		}
		input.StartDate = &start
	}

	if req.EndDate != nil && *req.EndDate != "" {
		end, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "end_date must be in YYYY-MM-DD format",
			})
			return
		}
		input.EndDate = &end
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePeriodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPeriodResponse(output.Period))
}

// Delete handles DELETE /periods/:id requests.
func (c *PeriodController) Delete(ctx *gin.Context) {
	periodID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid period ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), period.DeletePeriodInput{
		PeriodID: periodID,
	})
	if err != nil {
		c.handlePeriodError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Current handles GET /periods/current requests. The period field is null
// when no active period contains today.
func (c *PeriodController) Current(ctx *gin.Context) {
	output, err := c.currentUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	response := dto.CurrentPeriodResponse{}
	if output.Period != nil {
		p := dto.ToPeriodResponse(output.Period)
		response.Period = &p
	}

	ctx.JSON(http.StatusOK, response)
}

// ListBudgets handles GET /periods/:id/budgets requests.
func (c *PeriodController) ListBudgets(ctx *gin.Context) {
	periodID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid period ID format",
		})
		return
	}

	output, err := c.listBudgetsUseCase.Execute(ctx.Request.Context(), period.ListPeriodBudgetsInput{
		PeriodID: periodID,
	})
	if err != nil {
		c.handlePeriodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPeriodBudgetListResponse(periodID.String(), output.Budgets))
}

// UpdateBudgets handles PUT /periods/:id/budgets requests. The batch is
// applied all-or-nothing.
func (c *PeriodController) UpdateBudgets(ctx *gin.Context) {
	periodID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid period ID format",
		})
		return
	}

	var req dto.UpdatePeriodBudgetsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidPeriodBudget),
		})
		return
	}

	updates := make([]adapter.PeriodBudgetUpdate, len(req.Budgets))
	for i, budget := range req.Budgets {
		categoryID, err := uuid.Parse(budget.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		updates[i] = adapter.PeriodBudgetUpdate{
			CategoryID:  categoryID,
			BudgetLimit: decimal.NewFromFloat(budget.BudgetLimit),
		}
	}

	output, err := c.updateBudgetsUseCase.Execute(ctx.Request.Context(), period.UpdatePeriodBudgetsInput{
		PeriodID: periodID,
		Updates:  updates,
	})
	if err != nil {
		c.handlePeriodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdatePeriodBudgetsResponse{
		Updated: output.Updated,
	})
}

// handlePeriodError handles period errors and returns appropriate HTTP responses.
func (c *PeriodController) handlePeriodError(ctx *gin.Context, err error) {
	var prdErr *domainerror.PeriodError
	if errors.As(err, &prdErr) {
		statusCode := c.getStatusCodeForPeriodError(prdErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: prdErr.Message,
			Code:  string(prdErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: err.Error(),
	})
}

// getStatusCodeForPeriodError maps period error codes to HTTP status codes.
func (c *PeriodController) getStatusCodeForPeriodError(code domainerror.PeriodErrorCode) int {
	switch code {
	case domainerror.ErrCodePeriodNotFound,
		domainerror.ErrCodePeriodBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodePeriodOverlap:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidPeriodType,
		domainerror.ErrCodeInvalidPeriodDates,
		domainerror.ErrCodeInvalidPeriodBudget,
		domainerror.ErrCodeMissingPeriodFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
