// Package error defines domain-specific errors for the Pennywise application.
package error

// CommonErrorCode defines error codes shared across the HTTP surface.
// Format: GEN-XXYYYY where XX is category and YYYY is specific error.
type CommonErrorCode string

const (
	// Request errors (01XXXX)
	ErrCodeInvalidRequest CommonErrorCode = "GEN-010001"
	ErrCodeRateLimited    CommonErrorCode = "GEN-010002"
	ErrCodeInternal       CommonErrorCode = "GEN-010003"
)
