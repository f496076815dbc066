// Package error defines domain-specific errors for the Pennywise application.
package error

import "errors"

// Financial plan domain errors.
var (
	// ErrPlanNotFound is returned when a financial plan is not found in the system.
	ErrPlanNotFound = errors.New("financial plan not found")

	// ErrBlankPlanName is returned when the plan name is empty or whitespace.
	ErrBlankPlanName = errors.New("plan name must not be blank")

	// ErrInvalidPlanDuration is returned when the plan duration is out of range.
	ErrInvalidPlanDuration = errors.New("invalid plan duration")

	// ErrInvalidPlanIncome is returned when the monthly income is not positive.
	ErrInvalidPlanIncome = errors.New("monthly income must be greater than zero")

	// ErrInvalidManualExpenses is returned when the manual expense figure is negative.
	ErrInvalidManualExpenses = errors.New("manual monthly expenses must not be negative")

	// ErrInvalidInflationRate is returned when the inflation rate is out of range.
	ErrInvalidInflationRate = errors.New("inflation rate out of range")

	// ErrInvalidInterestRate is returned when the interest rate is out of range.
	ErrInvalidInterestRate = errors.New("interest rate out of range")

	// ErrInvalidInterestType is returned when the interest type is unknown.
	ErrInvalidInterestType = errors.New("invalid interest type")

	// ErrBreakdownNotFound is returned when a monthly breakdown row is not found.
	ErrBreakdownNotFound = errors.New("breakdown not found")

	// ErrPlanNotActive is returned when a position is requested for an
	// inactive plan.
	ErrPlanNotActive = errors.New("plan is not active")
)

// PlanErrorCode defines error codes for financial plan errors.
// Format: PLN-XXYYYY where XX is category and YYYY is specific error.
type PlanErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBlankPlanName         PlanErrorCode = "PLN-010001"
	ErrCodeInvalidPlanDuration   PlanErrorCode = "PLN-010002"
	ErrCodeInvalidPlanIncome     PlanErrorCode = "PLN-010003"
	ErrCodeInvalidManualExpenses PlanErrorCode = "PLN-010004"
	ErrCodeInvalidInflationRate  PlanErrorCode = "PLN-010005"
	ErrCodeInvalidInterestRate   PlanErrorCode = "PLN-010006"
	ErrCodeInvalidInterestType   PlanErrorCode = "PLN-010007"
	ErrCodePlanNotFound          PlanErrorCode = "PLN-010008"
	ErrCodeBreakdownNotFound     PlanErrorCode = "PLN-010009"
	ErrCodePlanNotActive         PlanErrorCode = "PLN-010010"
	ErrCodeMissingPlanFields     PlanErrorCode = "PLN-010011"
)

// PlanError represents a financial plan error with code and message.
type PlanError struct {
	Code    PlanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PlanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PlanError) Unwrap() error {
	return e.Err
}

// NewPlanError creates a new PlanError with the given code and message.
func NewPlanError(code PlanErrorCode, message string, err error) *PlanError {
	return &PlanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
