package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
)

// FinancialPlanModel represents the financial_plans table in the database.
type FinancialPlanModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string          `gorm:"type:varchar(100);not null"`
	StartDate      time.Time       `gorm:"not null"`
	DurationMonths int             `gorm:"not null"`
	MonthlyIncome  decimal.Decimal `gorm:"type:decimal(15,2);not null"`

	UseHistoricalData     bool            `gorm:"default:false"`
	ManualMonthlyExpenses decimal.Decimal `gorm:"type:decimal(15,2)"`

	ApplyInflation      bool            `gorm:"default:false"`
	AnnualInflationRate decimal.Decimal `gorm:"type:decimal(6,3)"`

	ApplyInterest      bool            `gorm:"default:false"`
	AnnualInterestRate decimal.Decimal `gorm:"type:decimal(6,3)"`
	InterestType       string          `gorm:"type:varchar(10);default:'simple'"`

	Currency  string    `gorm:"type:varchar(3);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Breakdowns []PlanBreakdownModel `gorm:"foreignKey:PlanID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the FinancialPlanModel.
func (FinancialPlanModel) TableName() string {
	return "financial_plans"
}

// ToEntity converts a FinancialPlanModel to a domain FinancialPlan entity.
func (m *FinancialPlanModel) ToEntity() *entity.FinancialPlan {
	return &entity.FinancialPlan{
		ID:                    m.ID,
		Name:                  m.Name,
		StartDate:             m.StartDate,
		DurationMonths:        m.DurationMonths,
		MonthlyIncome:         m.MonthlyIncome,
		UseHistoricalData:     m.UseHistoricalData,
		ManualMonthlyExpenses: m.ManualMonthlyExpenses,
		ApplyInflation:        m.ApplyInflation,
		AnnualInflationRate:   m.AnnualInflationRate,
		ApplyInterest:         m.ApplyInterest,
		AnnualInterestRate:    m.AnnualInterestRate,
		InterestType:          entity.InterestType(m.InterestType),
		Currency:              m.Currency,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// PlanFromEntity creates a FinancialPlanModel from a domain FinancialPlan entity.
func PlanFromEntity(plan *entity.FinancialPlan) *FinancialPlanModel {
	return &FinancialPlanModel{
		ID:                    plan.ID,
		Name:                  plan.Name,
		StartDate:             plan.StartDate,
		DurationMonths:        plan.DurationMonths,
		MonthlyIncome:         plan.MonthlyIncome,
		UseHistoricalData:     plan.UseHistoricalData,
		ManualMonthlyExpenses: plan.ManualMonthlyExpenses,
		ApplyInflation:        plan.ApplyInflation,
		AnnualInflationRate:   plan.AnnualInflationRate,
		ApplyInterest:         plan.ApplyInterest,
		AnnualInterestRate:    plan.AnnualInterestRate,
		InterestType:          string(plan.InterestType),
		Currency:              plan.Currency,
		CreatedAt:             plan.CreatedAt,
		UpdatedAt:             plan.UpdatedAt,
	}
}

// PlanBreakdownModel represents the plan_breakdowns table in the database.
type PlanBreakdownModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlanID     uuid.UUID `gorm:"type:uuid;not null;index:idx_plan_month,unique"`
	MonthIndex int       `gorm:"not null;index:idx_plan_month,unique"`

	ProjectedIncome decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	FixedExpenses   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AverageExpenses decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalExpenses   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	NetAmount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CumulativeNet   decimal.Decimal `gorm:"type:decimal(15,2);not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the PlanBreakdownModel.
func (PlanBreakdownModel) TableName() string {
	return "plan_breakdowns"
}

// ToEntity converts a PlanBreakdownModel to a domain PlanMonthlyBreakdown entity.
func (m *PlanBreakdownModel) ToEntity() *entity.PlanMonthlyBreakdown {
	return &entity.PlanMonthlyBreakdown{
		ID:              m.ID,
		PlanID:          m.PlanID,
		MonthIndex:      m.MonthIndex,
		ProjectedIncome: m.ProjectedIncome,
		FixedExpenses:   m.FixedExpenses,
		AverageExpenses: m.AverageExpenses,
		TotalExpenses:   m.TotalExpenses,
		NetAmount:       m.NetAmount,
		CumulativeNet:   m.CumulativeNet,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// BreakdownFromEntity creates a PlanBreakdownModel from a domain PlanMonthlyBreakdown entity.
func BreakdownFromEntity(breakdown *entity.PlanMonthlyBreakdown) *PlanBreakdownModel {
	return &PlanBreakdownModel{
		ID:              breakdown.ID,
		PlanID:          breakdown.PlanID,
		MonthIndex:      breakdown.MonthIndex,
		ProjectedIncome: breakdown.ProjectedIncome,
		FixedExpenses:   breakdown.FixedExpenses,
		AverageExpenses: breakdown.AverageExpenses,
		TotalExpenses:   breakdown.TotalExpenses,
		NetAmount:       breakdown.NetAmount,
		CumulativeNet:   breakdown.CumulativeNet,
		CreatedAt:       breakdown.CreatedAt,
		UpdatedAt:       breakdown.UpdatedAt,
	}
}
