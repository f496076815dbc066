package dto

import (
	"time"

	"github.com/pennywise/backend/internal/application/usecase/expense"
	"github.com/pennywise/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Amount            float64 `json:"amount" binding:"required,gt=0"`
	Currency          string  `json:"currency,omitempty" binding:"omitempty,len=3"`
	CategoryID        string  `json:"category_id" binding:"required,uuid"`
	SubCategoryID     *string `json:"sub_category_id,omitempty" binding:"omitempty,uuid"`
	Description       string  `json:"description" binding:"required,min=1,max=255"`
	Date              string  `json:"date" binding:"required"`
	ExchangeRate      *float64 `json:"exchange_rate,omitempty" binding:"omitempty,gt=0"`
	RecurrenceType    string  `json:"recurrence_type,omitempty" binding:"omitempty,oneof=none daily weekdays weekly monthly"`
	RecurrenceEndDate *string `json:"recurrence_end_date,omitempty"`
}

// UpdateExpenseRequest represents the request body for a single-instance edit.
type UpdateExpenseRequest struct {
	Amount        *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	CategoryID    *string  `json:"category_id,omitempty" binding:"omitempty,uuid"`
	SubCategoryID *string  `json:"sub_category_id,omitempty" binding:"omitempty,uuid"`
	Description   *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Date          *string  `json:"date,omitempty"`
	ExchangeRate  *float64 `json:"exchange_rate,omitempty" binding:"omitempty,gt=0"`
}

// ReconcileEndDateRequest represents the request body for editing a live
// recurring series.
type ReconcileEndDateRequest struct {
	OldEndDate   string   `json:"old_end_date" binding:"required"`
	NewEndDate   string   `json:"new_end_date" binding:"required"`
	Amount       float64  `json:"amount" binding:"required,gt=0"`
	Description  string   `json:"description" binding:"required,min=1,max=255"`
	ExchangeRate *float64 `json:"exchange_rate,omitempty" binding:"omitempty,gt=0"`
}

// UpdateFutureOccurrencesRequest represents the request body for a group-wide
// edit of future instances.
type UpdateFutureOccurrencesRequest struct {
	Amount       *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Description  *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	ExchangeRate *float64 `json:"exchange_rate,omitempty" binding:"omitempty,gt=0"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID                     string    `json:"id"`
	Amount                 string    `json:"amount"`
	Currency               string    `json:"currency"`
	CategoryID             string    `json:"category_id"`
	SubCategoryID          *string   `json:"sub_category_id,omitempty"`
	Description            string    `json:"description"`
	Date                   string    `json:"date"`
	DailyLimitAtCreation   string    `json:"daily_limit_at_creation"`
	MonthlyLimitAtCreation string    `json:"monthly_limit_at_creation"`
	ExchangeRate           *string   `json:"exchange_rate,omitempty"`
	RecurrenceType         string    `json:"recurrence_type"`
	RecurrenceEndDate      *string   `json:"recurrence_end_date,omitempty"`
	RecurrenceGroupID      *string   `json:"recurrence_group_id,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// ExpenseCategoryResponse represents taxonomy information attached to an
// expense in list responses.
type ExpenseCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// ExpenseWithCategoryResponse represents an expense with its taxonomy.
type ExpenseWithCategoryResponse struct {
	ExpenseResponse
	Category    *ExpenseCategoryResponse `json:"category,omitempty"`
	SubCategory *ExpenseCategoryResponse `json:"sub_category,omitempty"`
}

// ExpensesByDayResponse represents one calendar day bucket.
type ExpensesByDayResponse struct {
	Date     string                         `json:"date"`
	Total    string                         `json:"total"`
	Expenses []*ExpenseWithCategoryResponse `json:"expenses"`
}

// ListExpensesResponse represents the list endpoint response body.
type ListExpensesResponse struct {
	Expenses []*ExpenseWithCategoryResponse `json:"expenses"`
	Days     []*ExpensesByDayResponse       `json:"days,omitempty"`
	Total    string                         `json:"total"`
}

// CreateExpenseResponse represents the creation endpoint response body.
type CreateExpenseResponse struct {
	Expenses []*ExpenseResponse `json:"expenses"`
}

// GroupOperationResponse reports the effect of a bulk group operation.
type GroupOperationResponse struct {
	Deleted int64 `json:"deleted"`
	Updated int64 `json:"updated"`
	Created int   `json:"created"`
}

// ToExpenseResponse converts an expense use case output to a response DTO.
func ToExpenseResponse(e *expense.ExpenseOutput) *ExpenseResponse {
	resp := &ExpenseResponse{
		ID:                     e.ID.String(),
		Amount:                 e.Amount.String(),
		Currency:               e.Currency,
		CategoryID:             e.CategoryID.String(),
		Description:            e.Description,
		Date:                   e.Date.Format(time.RFC3339),
		DailyLimitAtCreation:   e.DailyLimitAtCreation.String(),
		MonthlyLimitAtCreation: e.MonthlyLimitAtCreation.String(),
		RecurrenceType:         string(e.RecurrenceType),
		CreatedAt:              e.CreatedAt,
		UpdatedAt:              e.UpdatedAt,
	}
	if e.SubCategoryID != nil {
		id := e.SubCategoryID.String()
		resp.SubCategoryID = &id
	}
	if e.ExchangeRate != nil {
		rate := e.ExchangeRate.String()
		resp.ExchangeRate = &rate
	}
	if e.RecurrenceEndDate != nil {
		end := e.RecurrenceEndDate.Format("2006-01-02")
		resp.RecurrenceEndDate = &end
	}
	if e.RecurrenceGroupID != nil {
		id := e.RecurrenceGroupID.String()
		resp.RecurrenceGroupID = &id
	}
	return resp
}

// ToExpenseWithCategoryResponse converts an expense with taxonomy to a
// response DTO.
func ToExpenseWithCategoryResponse(e *entity.ExpenseWithCategory) *ExpenseWithCategoryResponse {
	resp := &ExpenseWithCategoryResponse{
		ExpenseResponse: *ToExpenseResponse(expense.ToExpenseOutput(e.Expense)),
	}
	if e.Category != nil {
		resp.Category = &ExpenseCategoryResponse{
			ID:    e.Category.ID.String(),
			Name:  e.Category.Name,
			Color: e.Category.Color,
			Icon:  e.Category.Icon,
		}
	}
	if e.SubCategory != nil {
		resp.SubCategory = &ExpenseCategoryResponse{
			ID:   e.SubCategory.ID.String(),
			Name: e.SubCategory.Name,
		}
	}
	return resp
}
