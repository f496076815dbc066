// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/usecase/expense"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
	"github.com/pennywise/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	addUseCase          *expense.AddExpenseUseCase
	listUseCase         *expense.ListExpensesUseCase
	updateUseCase       *expense.UpdateExpenseUseCase
	deleteUseCase       *expense.DeleteExpenseUseCase
	reconcileUseCase    *expense.ReconcileEndDateUseCase
	updateFutureUseCase *expense.UpdateFutureOccurrencesUseCase
	deleteFutureUseCase *expense.DeleteFutureOccurrencesUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	addUseCase *expense.AddExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	reconcileUseCase *expense.ReconcileEndDateUseCase,
	updateFutureUseCase *expense.UpdateFutureOccurrencesUseCase,
	deleteFutureUseCase *expense.DeleteFutureOccurrencesUseCase,
) *ExpenseController {
	return &ExpenseController{
		addUseCase:          addUseCase,
		listUseCase:         listUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		reconcileUseCase:    reconcileUseCase,
		updateFutureUseCase: updateFutureUseCase,
		deleteFutureUseCase: deleteFutureUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	input := expense.AddExpenseInput{
		Amount:      decimal.NewFromFloat(req.Amount),
		Currency:    req.Currency,
		CategoryID:  categoryID,
		Description: req.Description,
		Date:        date,
	}

	if req.SubCategoryID != nil && *req.SubCategoryID != "" {
		id, err := uuid.Parse(*req.SubCategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid subcategory ID format",
			})
			return
		}
		input.SubCategoryID = &id
	}
	if req.ExchangeRate != nil {
		rate := decimal.NewFromFloat(*req.ExchangeRate)
		input.ExchangeRate = &rate
	}

	input.RecurrenceType = entity.RecurrenceNone
	if req.RecurrenceType != "" {
		input.RecurrenceType = entity.RecurrenceType(req.RecurrenceType)
	}
	if req.RecurrenceEndDate != nil && *req.RecurrenceEndDate != "" {
		end, err := parseDate(*req.RecurrenceEndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid recurrence end date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidRecurrenceEndDate),
			})
			return
		}
		input.RecurrenceEndDate = &end
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	response := dto.CreateExpenseResponse{
		Expenses: make([]*dto.ExpenseResponse, len(output.Expenses)),
	}
	for i, e := range output.Expenses {
		response.Expenses[i] = dto.ToExpenseResponse(e)
	}
	ctx.JSON(http.StatusCreated, response)
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	startDate, err := parseDate(ctx.Query("startDate"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "startDate is required in YYYY-MM-DD format",
		})
		return
	}
	endDate, err := parseDate(ctx.Query("endDate"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "endDate is required in YYYY-MM-DD format",
		})
		return
	}

	input := expense.ListExpensesInput{
		StartDate:  startDate,
		EndDate:    endDate,
		GroupByDay: ctx.Query("groupByDay") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve expenses",
		})
		return
	}

	response := dto.ListExpensesResponse{
		Expenses: make([]*dto.ExpenseWithCategoryResponse, len(output.Expenses)),
		Total:    output.Total.String(),
	}
	for i, e := range output.Expenses {
		response.Expenses[i] = dto.ToExpenseWithCategoryResponse(e)
	}
	for _, day := range output.Days {
		bucket := &dto.ExpensesByDayResponse{
			Date:     day.Date.Format("2006-01-02"),
			Total:    day.Total.String(),
			Expenses: make([]*dto.ExpenseWithCategoryResponse, len(day.Expenses)),
		}
		for i, e := range day.Expenses {
			bucket.Expenses[i] = dto.ToExpenseWithCategoryResponse(e)
		}
		response.Days = append(response.Days, bucket)
	}
	ctx.JSON(http.StatusOK, response)
}

// Update handles PATCH /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := expense.UpdateExpenseInput{ExpenseID: expenseID}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.CategoryID != nil {
		id, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &id
	}
	if req.SubCategoryID != nil {
		id, err := uuid.Parse(*req.SubCategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid subcategory ID format",
			})
			return
		}
		input.SubCategoryID = &id
	}
	input.Description = req.Description
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}
	if req.ExchangeRate != nil {
		rate := decimal.NewFromFloat(*req.ExchangeRate)
		input.ExchangeRate = &rate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{ExpenseID: expenseID}); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ReconcileEndDate handles PUT /expenses/groups/:groupId requests.
func (c *ExpenseController) ReconcileEndDate(ctx *gin.Context) {
	groupID, err := uuid.Parse(ctx.Param("groupId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID format",
		})
		return
	}

	var req dto.ReconcileEndDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	oldEnd, err := parseDate(req.OldEndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid old end date format. Use YYYY-MM-DD",
		})
		return
	}
	newEnd, err := parseDate(req.NewEndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid new end date format. Use YYYY-MM-DD",
		})
		return
	}

	input := expense.ReconcileEndDateInput{
		GroupID:     groupID,
		OldEndDate:  oldEnd,
		NewEndDate:  newEnd,
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
	}
	if req.ExchangeRate != nil {
		rate := decimal.NewFromFloat(*req.ExchangeRate)
		input.ExchangeRate = &rate
	}

	output, err := c.reconcileUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.GroupOperationResponse{
		Deleted: output.Deleted,
		Updated: output.Updated,
		Created: output.Created,
	})
}

// UpdateFutureOccurrences handles PATCH /expenses/groups/:groupId/future requests.
func (c *ExpenseController) UpdateFutureOccurrences(ctx *gin.Context) {
	groupID, err := uuid.Parse(ctx.Param("groupId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID format",
		})
		return
	}

	var req dto.UpdateFutureOccurrencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := expense.UpdateFutureOccurrencesInput{GroupID: groupID}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	input.Description = req.Description
	if req.ExchangeRate != nil {
		rate := decimal.NewFromFloat(*req.ExchangeRate)
		input.ExchangeRate = &rate
	}

	output, err := c.updateFutureUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.GroupOperationResponse{Updated: output.Updated})
}

// DeleteFutureOccurrences handles DELETE /expenses/groups/:groupId/future requests.
func (c *ExpenseController) DeleteFutureOccurrences(ctx *gin.Context) {
	groupID, err := uuid.Parse(ctx.Param("groupId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID format",
		})
		return
	}

	output, err := c.deleteFutureUseCase.Execute(ctx.Request.Context(), expense.DeleteFutureOccurrencesInput{GroupID: groupID})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.GroupOperationResponse{Deleted: output.Deleted})
}

// handleExpenseError maps a use case error to an HTTP response.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		ctx.JSON(statusCodeForExpenseError(expenseErr.Code), dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeInternal),
	})
}

// statusCodeForExpenseError maps expense error codes to HTTP status codes.
func statusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound,
		domainerror.ErrCodeExpenseCategoryNotFound,
		domainerror.ErrCodeRecurrenceGroupNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeInvalidRecurrenceType,
		domainerror.ErrCodeInvalidRecurrenceEndDate,
		domainerror.ErrCodeMissingRecurrenceGroup,
		domainerror.ErrCodeExpenseDescriptionTooLong,
		domainerror.ErrCodeMissingExpenseFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseDate parses a YYYY-MM-DD day value.
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
