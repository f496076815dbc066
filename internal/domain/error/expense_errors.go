// Package error defines domain-specific errors for the Pennywise application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseAmount is returned when the expense amount is not positive.
	ErrInvalidExpenseAmount = errors.New("invalid expense amount")

	// ErrInvalidRecurrenceType is returned when the recurrence type is unknown.
	ErrInvalidRecurrenceType = errors.New("invalid recurrence type")

	// ErrMissingRecurrenceGroup is returned when a recurring operation is
	// attempted without a recurrence group identifier.
	ErrMissingRecurrenceGroup = errors.New("recurrence group not set")

	// ErrRecurrenceGroupNotFound is returned when no instances exist for a
	// recurrence group.
	ErrRecurrenceGroupNotFound = errors.New("recurrence group not found")

	// ErrInvalidRecurrenceEndDate is returned when the recurrence end date
	// precedes the expense date.
	ErrInvalidRecurrenceEndDate = errors.New("recurrence end date before start date")

	// ErrExpenseCategoryNotFound is returned when the referenced category does not exist.
	ErrExpenseCategoryNotFound = errors.New("category not found")

	// ErrExpenseDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrExpenseDescriptionTooLong = errors.New("description too long")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseAmount      ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidRecurrenceType     ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidRecurrenceEndDate  ExpenseErrorCode = "EXP-010003"
	ErrCodeExpenseNotFound           ExpenseErrorCode = "EXP-010004"
	ErrCodeExpenseCategoryNotFound   ExpenseErrorCode = "EXP-010005"
	ErrCodeMissingRecurrenceGroup    ExpenseErrorCode = "EXP-010006"
	ErrCodeRecurrenceGroupNotFound   ExpenseErrorCode = "EXP-010007"
	ErrCodeExpenseDescriptionTooLong ExpenseErrorCode = "EXP-010008"
	ErrCodeMissingExpenseFields      ExpenseErrorCode = "EXP-010009"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
