package dto

import (
	"time"

	"github.com/pennywise/backend/internal/application/usecase/plan"
	"github.com/pennywise/backend/internal/domain/entity"
)

// CreatePlanRequest represents the request body for plan creation.
type CreatePlanRequest struct {
	Name                  string   `json:"name" binding:"required,min=1,max=100"`
	StartDate             string   `json:"start_date" binding:"required"`
	DurationMonths        int      `json:"duration_months" binding:"required,min=1,max=120"`
	MonthlyIncome         float64  `json:"monthly_income" binding:"required,gt=0"`
	UseHistoricalData     bool     `json:"use_historical_data,omitempty"`
	ManualMonthlyExpenses float64  `json:"manual_monthly_expenses,omitempty" binding:"omitempty,gte=0"`
	ApplyInflation        bool     `json:"apply_inflation,omitempty"`
	AnnualInflationRate   float64  `json:"annual_inflation_rate,omitempty" binding:"omitempty,gte=0,lte=100"`
	ApplyInterest         bool     `json:"apply_interest,omitempty"`
	AnnualInterestRate    float64  `json:"annual_interest_rate,omitempty" binding:"omitempty,gte=0,lte=100"`
	InterestType          string   `json:"interest_type,omitempty" binding:"omitempty,oneof=simple compound"`
	Currency              string   `json:"currency" binding:"required,len=3"`
}

// UpdatePlanRequest represents the request body for a plan update.
type UpdatePlanRequest struct {
	Name                  *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	StartDate             *string  `json:"start_date,omitempty"`
	DurationMonths        *int     `json:"duration_months,omitempty" binding:"omitempty,min=1,max=120"`
	MonthlyIncome         *float64 `json:"monthly_income,omitempty" binding:"omitempty,gt=0"`
	UseHistoricalData     *bool    `json:"use_historical_data,omitempty"`
	ManualMonthlyExpenses *float64 `json:"manual_monthly_expenses,omitempty" binding:"omitempty,gte=0"`
	ApplyInflation        *bool    `json:"apply_inflation,omitempty"`
	AnnualInflationRate   *float64 `json:"annual_inflation_rate,omitempty" binding:"omitempty,gte=0,lte=100"`
	ApplyInterest         *bool    `json:"apply_interest,omitempty"`
	AnnualInterestRate    *float64 `json:"annual_interest_rate,omitempty" binding:"omitempty,gte=0,lte=100"`
	InterestType          *string  `json:"interest_type,omitempty" binding:"omitempty,oneof=simple compound"`
	Currency              *string  `json:"currency,omitempty" binding:"omitempty,len=3"`
}

// UpdateBreakdownRequest represents a manual edit to one projected month.
type UpdateBreakdownRequest struct {
	ProjectedIncome *float64 `json:"projected_income,omitempty" binding:"omitempty,gte=0"`
	TotalExpenses   *float64 `json:"total_expenses,omitempty" binding:"omitempty,gte=0"`
}

// PlanResponse represents a financial plan in API responses.
type PlanResponse struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	StartDate             string    `json:"start_date"`
	EndDate               string    `json:"end_date"`
	DurationMonths        int       `json:"duration_months"`
	MonthlyIncome         string    `json:"monthly_income"`
	UseHistoricalData     bool      `json:"use_historical_data"`
	ManualMonthlyExpenses string    `json:"manual_monthly_expenses"`
	ApplyInflation        bool      `json:"apply_inflation"`
	AnnualInflationRate   string    `json:"annual_inflation_rate"`
	ApplyInterest         bool      `json:"apply_interest"`
	AnnualInterestRate    string    `json:"annual_interest_rate"`
	InterestType          string    `json:"interest_type"`
	Currency              string    `json:"currency"`
	IsActive              bool      `json:"is_active"`
	MonthsElapsed         int       `json:"months_elapsed"`
	Progress              float64   `json:"progress"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// BreakdownResponse represents one projected month in API responses.
type BreakdownResponse struct {
	ID              string `json:"id"`
	MonthIndex      int    `json:"month_index"`
	ProjectedIncome string `json:"projected_income"`
	FixedExpenses   string `json:"fixed_expenses"`
	AverageExpenses string `json:"average_expenses"`
	TotalExpenses   string `json:"total_expenses"`
	NetAmount       string `json:"net_amount"`
	CumulativeNet   string `json:"cumulative_net"`
}

// PlanWithBreakdownsResponse represents a plan with its projection rows.
type PlanWithBreakdownsResponse struct {
	Plan       *PlanResponse        `json:"plan"`
	Breakdowns []*BreakdownResponse `json:"breakdowns"`
}

// PlanPositionResponse represents a plan's progress against reality.
type PlanPositionResponse struct {
	PlanID                string `json:"plan_id"`
	MonthsElapsed         int    `json:"months_elapsed"`
	ExpectedCumulativeNet string `json:"expected_cumulative_net"`
	ActualNet             string `json:"actual_net"`
	Variance              string `json:"variance"`
	IsOnTrack             bool   `json:"is_on_track"`
}

// ToPlanResponse converts a plan use case output to a response DTO.
func ToPlanResponse(p *plan.PlanOutput) *PlanResponse {
	return &PlanResponse{
		ID:                    p.ID.String(),
		Name:                  p.Name,
		StartDate:             p.StartDate.Format("2006-01-02"),
		EndDate:               p.EndDate.Format("2006-01-02"),
		DurationMonths:        p.DurationMonths,
		MonthlyIncome:         p.MonthlyIncome.String(),
		UseHistoricalData:     p.UseHistoricalData,
		ManualMonthlyExpenses: p.ManualMonthlyExpenses.String(),
		ApplyInflation:        p.ApplyInflation,
		AnnualInflationRate:   p.AnnualInflationRate.String(),
		ApplyInterest:         p.ApplyInterest,
		AnnualInterestRate:    p.AnnualInterestRate.String(),
		InterestType:          string(p.InterestType),
		Currency:              p.Currency,
		IsActive:              p.IsActive,
		MonthsElapsed:         p.MonthsElapsed,
		Progress:              p.Progress,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

// ToBreakdownResponses converts breakdown entities to response DTOs.
func ToBreakdownResponses(rows []*entity.PlanMonthlyBreakdown) []*BreakdownResponse {
	out := make([]*BreakdownResponse, len(rows))
	for i, row := range rows {
		out[i] = &BreakdownResponse{
			ID:              row.ID.String(),
			MonthIndex:      row.MonthIndex,
			ProjectedIncome: row.ProjectedIncome.String(),
			FixedExpenses:   row.FixedExpenses.String(),
			AverageExpenses: row.AverageExpenses.String(),
			TotalExpenses:   row.TotalExpenses.String(),
			NetAmount:       row.NetAmount.String(),
			CumulativeNet:   row.CumulativeNet.String(),
		}
	}
	return out
}

// ToPlanPositionResponse converts a plan position entity to a response DTO.
func ToPlanPositionResponse(p *entity.PlanPosition) *PlanPositionResponse {
	return &PlanPositionResponse{
		PlanID:                p.PlanID.String(),
		MonthsElapsed:         p.MonthsElapsed,
		ExpectedCumulativeNet: p.ExpectedCumulativeNet.String(),
		ActualNet:             p.ActualNet.String(),
		Variance:              p.Variance.String(),
		IsOnTrack:             p.IsOnTrack,
	}
}
