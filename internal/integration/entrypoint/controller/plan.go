package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/usecase/plan"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
	"github.com/pennywise/backend/internal/integration/entrypoint/dto"
)

// PlanController handles financial plan endpoints.
type PlanController struct {
	createUseCase          *plan.CreatePlanUseCase
	getUseCase             *plan.GetPlanUseCase
	listUseCase            *plan.ListPlansUseCase
	updateUseCase          *plan.UpdatePlanUseCase
	deleteUseCase          *plan.DeletePlanUseCase
	updateBreakdownUseCase *plan.UpdateBreakdownUseCase
	regenerateUseCase      *plan.RegenerateBreakdownsUseCase
	positionUseCase        *plan.GetPlanPositionUseCase
}

// NewPlanController creates a new plan controller instance.
func NewPlanController(
	createUseCase *plan.CreatePlanUseCase,
	getUseCase *plan.GetPlanUseCase,
	listUseCase *plan.ListPlansUseCase,
	updateUseCase *plan.UpdatePlanUseCase,
	deleteUseCase *plan.DeletePlanUseCase,
	updateBreakdownUseCase *plan.UpdateBreakdownUseCase,
	regenerateUseCase *plan.RegenerateBreakdownsUseCase,
	positionUseCase *plan.GetPlanPositionUseCase,
) *PlanController {
	return &PlanController{
		createUseCase:          createUseCase,
		getUseCase:             getUseCase,
		listUseCase:            listUseCase,
		updateUseCase:          updateUseCase,
		deleteUseCase:          deleteUseCase,
		updateBreakdownUseCase: updateBreakdownUseCase,
		regenerateUseCase:      regenerateUseCase,
		positionUseCase:        positionUseCase,
	}
}

// Create handles POST /plans requests.
func (c *PlanController) Create(ctx *gin.Context) {
	var req dto.CreatePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingPlanFields),
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingPlanFields),
		})
		return
	}

	input := plan.CreatePlanInput{
		Name:                  req.Name,
		StartDate:             startDate,
		DurationMonths:        req.DurationMonths,
		MonthlyIncome:         decimal.NewFromFloat(req.MonthlyIncome),
		UseHistoricalData:     req.UseHistoricalData,
		ManualMonthlyExpenses: decimal.NewFromFloat(req.ManualMonthlyExpenses),
		ApplyInflation:        req.ApplyInflation,
		AnnualInflationRate:   decimal.NewFromFloat(req.AnnualInflationRate),
		ApplyInterest:         req.ApplyInterest,
		AnnualInterestRate:    decimal.NewFromFloat(req.AnnualInterestRate),
		InterestType:          entity.InterestType(req.InterestType),
		Currency:              req.Currency,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.PlanWithBreakdownsResponse{
		Plan:       dto.ToPlanResponse(output.Plan),
		Breakdowns: dto.ToBreakdownResponses(output.Breakdowns),
	})
}

// Get handles GET /plans/:id requests.
func (c *PlanController) Get(ctx *gin.Context) {
	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), planID)
	if err != nil {
		c.handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PlanWithBreakdownsResponse{
		Plan:       dto.ToPlanResponse(output.Plan),
		Breakdowns: dto.ToBreakdownResponses(output.Breakdowns),
	})
}

// List handles GET /plans requests.
func (c *PlanController) List(ctx *gin.Context) {
	plans, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve plans",
		})
		return
	}

	response := make([]*dto.PlanResponse, len(plans))
	for i, p := range plans {
		response[i] = dto.ToPlanResponse(p)
	}
	ctx.JSON(http.StatusOK, response)
}

// Update handles PATCH /plans/:id requests.
func (c *PlanController) Update(ctx *gin.Context) {
	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan ID format",
		})
		return
	}

	var req dto.UpdatePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := plan.UpdatePlanInput{ID: planID}
	input.Name = req.Name
	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start date format. Use YYYY-MM-DD",
			})
			return
		}
		input.StartDate = &startDate
	}
	input.DurationMonths = req.DurationMonths
	if req.MonthlyIncome != nil {
		income := decimal.NewFromFloat(*req.MonthlyIncome)
		input.MonthlyIncome = &income
	}
	input.UseHistoricalData = req.UseHistoricalData
	if req.ManualMonthlyExpenses != nil {
		expenses := decimal.NewFromFloat(*req.ManualMonthlyExpenses)
		input.ManualMonthlyExpenses = &expenses
	}
	input.ApplyInflation = req.ApplyInflation
	if req.AnnualInflationRate != nil {
		rate := decimal.NewFromFloat(*req.AnnualInflationRate)
		input.AnnualInflationRate = &rate
	}
	input.ApplyInterest = req.ApplyInterest
	if req.AnnualInterestRate != nil {
		rate := decimal.NewFromFloat(*req.AnnualInterestRate)
		input.AnnualInterestRate = &rate
	}
	if req.InterestType != nil {
		interestType := entity.InterestType(*req.InterestType)
		input.InterestType = &interestType
	}
	input.Currency = req.Currency

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PlanWithBreakdownsResponse{
		Plan:       dto.ToPlanResponse(output.Plan),
		Breakdowns: dto.ToBreakdownResponses(output.Breakdowns),
	})
}

// Delete handles DELETE /plans/:id requests.
func (c *PlanController) Delete(ctx *gin.Context) {
	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), planID); err != nil {
		c.handlePlanError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// UpdateBreakdown handles PATCH /plans/:id/breakdowns/:monthIndex requests.
func (c *PlanController) UpdateBreakdown(ctx *gin.Context) {
	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan ID format",
		})
		return
	}
	monthIndex, err := parseMonthIndex(ctx.Param("monthIndex"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month index",
		})
		return
	}

	var req dto.UpdateBreakdownRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := plan.UpdateBreakdownInput{PlanID: planID, MonthIndex: monthIndex}
	if req.ProjectedIncome != nil {
		income := decimal.NewFromFloat(*req.ProjectedIncome)
		input.ProjectedIncome = &income
	}
	if req.TotalExpenses != nil {
		expenses := decimal.NewFromFloat(*req.TotalExpenses)
		input.TotalExpenses = &expenses
	}

	rows, err := c.updateBreakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePlanError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBreakdownResponses(rows))
}

// RegenerateBreakdowns handles POST /plans/:id/breakdowns/regenerate requests.
func (c *PlanController) RegenerateBreakdowns(ctx *gin.Context) {
	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan ID format",
		})
		return
	}

	rows, err := c.regenerateUseCase.Execute(ctx.Request.Context(), planID)
	if err != nil {
		c.handlePlanError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBreakdownResponses(rows))
}

// Position handles GET /plans/:id/position requests.
func (c *PlanController) Position(ctx *gin.Context) {
	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan ID format",
		})
		return
	}

	position, err := c.positionUseCase.Execute(ctx.Request.Context(), planID)
	if err != nil {
		c.handlePlanError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPlanPositionResponse(position))
}

// handlePlanError maps a use case error to an HTTP response.
func (c *PlanController) handlePlanError(ctx *gin.Context, err error) {
	var planErr *domainerror.PlanError
	if errors.As(err, &planErr) {
		ctx.JSON(statusCodeForPlanError(planErr.Code), dto.ErrorResponse{
			Error: planErr.Message,
			Code:  string(planErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeInternal),
	})
}

// parseMonthIndex parses a non-negative month index path parameter.
func parseMonthIndex(value string) (int, error) {
	index, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if index < 0 {
		return 0, strconv.ErrRange
	}
	return index, nil
}

// statusCodeForPlanError maps plan error codes to HTTP status codes.
func statusCodeForPlanError(code domainerror.PlanErrorCode) int {
	switch code {
	case domainerror.ErrCodePlanNotFound,
		domainerror.ErrCodeBreakdownNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodePlanNotActive:
		return http.StatusConflict
	case domainerror.ErrCodeBlankPlanName,
		domainerror.ErrCodeInvalidPlanDuration,
		domainerror.ErrCodeInvalidPlanIncome,
		domainerror.ErrCodeInvalidManualExpenses,
		domainerror.ErrCodeInvalidInflationRate,
		domainerror.ErrCodeInvalidInterestRate,
		domainerror.ErrCodeInvalidInterestType,
		domainerror.ErrCodeMissingPlanFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
