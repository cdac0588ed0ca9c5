// Package error defines domain-specific errors for the Budget Tracker application.
package error

import "errors"

// Budget period domain errors.
var (
	// ErrPeriodNotFound is returned when a budget period is not found in the system.
	ErrPeriodNotFound = errors.New("budget period not found")

	// ErrInvalidPeriodType is returned when the period type is invalid.
	ErrInvalidPeriodType = errors.New("invalid period type")

	// ErrInvalidPeriodDates is returned when the end date precedes the start date.
	ErrInvalidPeriodDates = errors.New("end date must not precede start date")

	// ErrPeriodOverlap is returned when a new period overlaps an existing active period.
	ErrPeriodOverlap = errors.New("period overlaps an existing active period")

	// ErrPeriodBudgetNotFound is returned when no override row exists for a
	// (period, category) pair during a bulk budget update.
	ErrPeriodBudgetNotFound = errors.New("period budget not found")
)

// PeriodErrorCode defines error codes for budget period errors.
// Format: PRD-XXYYYY where XX is category and YYYY is specific error.
type PeriodErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriodType     PeriodErrorCode = "PRD-010001"
	ErrCodeInvalidPeriodDates    PeriodErrorCode = "PRD-010002"
	ErrCodePeriodOverlap         PeriodErrorCode = "PRD-010003"
	ErrCodePeriodNotFound        PeriodErrorCode = "PRD-010004"
	ErrCodePeriodBudgetNotFound  PeriodErrorCode = "PRD-010005"
	ErrCodeMissingPeriodFields   PeriodErrorCode = "PRD-010006"
	ErrCodeInvalidPeriodBudget   PeriodErrorCode = "PRD-010007"
)

// PeriodError represents a budget period error with code and message.
type PeriodError struct {
	Code    PeriodErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PeriodError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PeriodError) Unwrap() error {
	return e.Err
}

// NewPeriodError creates a new PeriodError with the given code and message.
func NewPeriodError(code PeriodErrorCode, message string, err error) *PeriodError {
	return &PeriodError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
