// Package error defines domain-specific errors for the Budget Tracker application.
package error

import "errors"

// Budget domain errors. The ledgers never return the not-found errors themselves;
// they signal absence through ok results. Outer layers use these to report it.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the ledger.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrIncomeNotFound is returned when an income is not found in the ledger.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrGoalNotFound is returned when a goal is not found in the tracker.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidPeriod is returned when a period is not a zero-padded YYYY-MM string.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidAmount is returned when an amount cannot be parsed or is out of range.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidDate is returned when a date is not a valid YYYY-MM-DD string.
	ErrInvalidDate = errors.New("invalid date")

	// ErrEmptyLabel is returned when a category or source is blank.
	ErrEmptyLabel = errors.New("category or source is required")

	// ErrDescriptionTooLong is returned when a description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod      BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidAmount      BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidDate        BudgetErrorCode = "BGT-010003"
	ErrCodeEmptyLabel         BudgetErrorCode = "BGT-010004"
	ErrCodeDescriptionTooLong BudgetErrorCode = "BGT-010005"
	ErrCodeMissingFields      BudgetErrorCode = "BGT-010006"

	// Lookup errors (02XXXX)
	ErrCodeExpenseNotFound BudgetErrorCode = "BGT-020001"
	ErrCodeIncomeNotFound  BudgetErrorCode = "BGT-020002"
	ErrCodeGoalNotFound    BudgetErrorCode = "BGT-020003"

	// Storage errors (03XXXX)
	ErrCodeStorageFailure BudgetErrorCode = "BGT-030001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
