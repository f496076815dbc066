// Package expense contains expense-related use cases, including the
// recurring-expense materialization engine.
package expense

import (
	"time"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/usecase/recurrence"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// defaultRecurrenceHorizonYears bounds expansion when a recurring template
// carries no end date.
const defaultRecurrenceHorizonYears = 1

// ExpandNew materializes a freshly authored recurring template into one
// concrete Expense per active day between the template's start date and its
// end date (start + 1 year when unset), inclusive. Every instance gets a
// fresh ID, the shared group ID and the occurrence's own date; the
// template's time of day is preserved on each instance.
func ExpandNew(template *entity.Expense) ([]*entity.Expense, error) {
	if !template.IsRecurring() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidRecurrenceType,
			"cannot expand a non-recurring expense",
			domainerror.ErrInvalidRecurrenceType,
		)
	}

	groupID := template.RecurrenceGroupID
	if groupID == nil {
		id := uuid.New()
		groupID = &id
	}

	start := recurrence.StartOfDay(template.Date)
	end := start.AddDate(defaultRecurrenceHorizonYears, 0, 0)
	if template.RecurrenceEndDate != nil {
		end = recurrence.StartOfDay(*template.RecurrenceEndDate)
	}
	if end.Before(start) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidRecurrenceEndDate,
			"recurrence end date precedes the start date",
			domainerror.ErrInvalidRecurrenceEndDate,
		)
	}

	var instances []*entity.Expense
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if !recurrence.IsActiveOn(template, day) {
			continue
		}
		instances = append(instances, materializeInstance(template, groupID, &end, day))
	}
	return instances, nil
}

// materializeInstance clones the template onto a concrete occurrence day.
func materializeInstance(template *entity.Expense, groupID *uuid.UUID, end *time.Time, day time.Time) *entity.Expense {
	now := time.Now().UTC()
	occurrence := time.Date(
		day.Year(), day.Month(), day.Day(),
		template.Date.Hour(), template.Date.Minute(), template.Date.Second(), 0,
		template.Date.Location(),
	)

	return &entity.Expense{
		ID:                     uuid.New(),
		Amount:                 template.Amount,
		Currency:               template.Currency,
		CategoryID:             template.CategoryID,
		SubCategoryID:          template.SubCategoryID,
		Description:            template.Description,
		Date:                   occurrence,
		DailyLimitAtCreation:   template.DailyLimitAtCreation,
		MonthlyLimitAtCreation: template.MonthlyLimitAtCreation,
		ExchangeRate:           template.ExchangeRate,
		RecurrenceType:         template.RecurrenceType,
		RecurrenceEndDate:      end,
		RecurrenceGroupID:      groupID,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}
