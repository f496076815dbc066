// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database. Each recurring
// occurrence is its own row sharing a recurrence_group_id; deletes are hard
// deletes so group reconciliation can shrink a series for real.
type ExpenseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency      string          `gorm:"type:varchar(3);not null"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	SubCategoryID *uuid.UUID      `gorm:"type:uuid;index"`
	Description   string          `gorm:"type:varchar(255);not null"`
	Date          time.Time       `gorm:"not null;index"`

	DailyLimitAtCreation   decimal.Decimal `gorm:"type:decimal(15,2)"`
	MonthlyLimitAtCreation decimal.Decimal `gorm:"type:decimal(15,2)"`

	ExchangeRate *decimal.Decimal `gorm:"type:decimal(15,6)"`

	RecurrenceType    string     `gorm:"type:varchar(10);not null;default:'none'"`
	RecurrenceEndDate *time.Time `gorm:""`
	RecurrenceGroupID *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category    *CategoryModel    `gorm:"foreignKey:CategoryID;references:ID"`
	SubCategory *SubCategoryModel `gorm:"foreignKey:SubCategoryID;references:ID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:                     m.ID,
		Amount:                 m.Amount,
		Currency:               m.Currency,
		CategoryID:             m.CategoryID,
		SubCategoryID:          m.SubCategoryID,
		Description:            m.Description,
		Date:                   m.Date,
		DailyLimitAtCreation:   m.DailyLimitAtCreation,
		MonthlyLimitAtCreation: m.MonthlyLimitAtCreation,
		ExchangeRate:           m.ExchangeRate,
		RecurrenceType:         entity.RecurrenceType(m.RecurrenceType),
		RecurrenceEndDate:      m.RecurrenceEndDate,
		RecurrenceGroupID:      m.RecurrenceGroupID,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

// ToEntityWithCategory converts an ExpenseModel with its taxonomy preloaded
// to an ExpenseWithCategory entity.
func (m *ExpenseModel) ToEntityWithCategory() *entity.ExpenseWithCategory {
	result := &entity.ExpenseWithCategory{
		Expense: m.ToEntity(),
	}

	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}
	if m.SubCategory != nil {
		result.SubCategory = m.SubCategory.ToEntity()
	}

	return result
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:                     expense.ID,
		Amount:                 expense.Amount,
		Currency:               expense.Currency,
		CategoryID:             expense.CategoryID,
		SubCategoryID:          expense.SubCategoryID,
		Description:            expense.Description,
		Date:                   expense.Date,
		DailyLimitAtCreation:   expense.DailyLimitAtCreation,
		MonthlyLimitAtCreation: expense.MonthlyLimitAtCreation,
		ExchangeRate:           expense.ExchangeRate,
		RecurrenceType:         string(expense.RecurrenceType),
		RecurrenceEndDate:      expense.RecurrenceEndDate,
		RecurrenceGroupID:      expense.RecurrenceGroupID,
		CreatedAt:              expense.CreatedAt,
		UpdatedAt:              expense.UpdatedAt,
	}
}
