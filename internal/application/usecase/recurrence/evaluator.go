// Package recurrence decides whether a recurring expense template is active
// on a given day. All comparisons happen at day granularity against the
// template's own start timestamp truncated to start-of-day.
package recurrence

import (
	"time"

	"github.com/pennywise/backend/internal/domain/entity"
)

// IsActiveOn reports whether the template has an occurrence on the candidate
// day, honoring the template's recurrence end date.
func IsActiveOn(template *entity.Expense, candidate time.Time) bool {
	return isActiveOn(template, candidate, false)
}

// IsActiveIgnoringEnd is the end-date-ignoring variant used while
// recomputing a series whose end date is being extended: the old end date
// must not veto occurrences in the newly opened window.
func IsActiveIgnoringEnd(template *entity.Expense, candidate time.Time) bool {
	return isActiveOn(template, candidate, true)
}

func isActiveOn(template *entity.Expense, candidate time.Time, ignoreEndDate bool) bool {
	start := StartOfDay(template.Date)
	day := StartOfDay(candidate)

	if day.Before(start) {
		return false
	}
	if !ignoreEndDate && template.RecurrenceEndDate != nil && day.After(StartOfDay(*template.RecurrenceEndDate)) {
		return false
	}

	switch template.RecurrenceType {
	case entity.RecurrenceDaily:
		return true
	case entity.RecurrenceWeekdays:
		wd := day.Weekday()
		return wd != time.Saturday && wd != time.Sunday
	case entity.RecurrenceWeekly:
		return day.Weekday() == start.Weekday() && !startOfWeek(day).Before(startOfWeek(start))
	case entity.RecurrenceMonthly:
		// Day-of-month equality: months too short for the anchor day are
		// skipped, never clamped.
		return day.Day() == start.Day() && monthOrdinal(day) >= monthOrdinal(start)
	default:
		// Single-instance expenses are matched by date equality elsewhere,
		// never through the evaluator.
		return false
	}
}

// StartOfDay truncates the given instant to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Monday of the week containing the given day.
func startOfWeek(day time.Time) time.Time {
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

func monthOrdinal(day time.Time) int {
	return day.Year()*12 + int(day.Month()) - 1
}
