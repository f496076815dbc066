// Package error defines domain-specific errors for the Pennywise application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrSubCategoryNotFound is returned when a subcategory is not found in the system.
	ErrSubCategoryNotFound = errors.New("subcategory not found")

	// ErrBlankCategoryName is returned when the category name is empty.
	ErrBlankCategoryName = errors.New("category name must not be blank")

	// ErrDefaultCategoryImmutable is returned when a seeded default category
	// is targeted by a delete.
	ErrDefaultCategoryImmutable = errors.New("default categories cannot be deleted")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNotFound         CategoryErrorCode = "CAT-010001"
	ErrCodeSubCategoryNotFound      CategoryErrorCode = "CAT-010002"
	ErrCodeBlankCategoryName        CategoryErrorCode = "CAT-010003"
	ErrCodeDefaultCategoryImmutable CategoryErrorCode = "CAT-010004"
	ErrCodeMissingCategoryFields    CategoryErrorCode = "CAT-010005"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
