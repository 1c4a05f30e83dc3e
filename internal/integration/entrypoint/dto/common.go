// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/budget/internal/domain/error"
)

const (
	// MaxDescriptionLength bounds free-text descriptions.
	MaxDescriptionLength = 255

	dateLayout = "2006-01-02"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// TotalResponse represents a summed amount for a period. An empty period
// means all time.
type TotalResponse struct {
	Period string `json:"period"`
	Total  string `json:"total"`
}

// ValidateAmount requires a strictly positive amount.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}
	return nil
}

// ValidateDate requires a real calendar date in YYYY-MM-DD form.
func ValidateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidDate,
			"date must be formatted as YYYY-MM-DD",
			domainerror.ErrInvalidDate,
		)
	}
	return nil
}

// ValidateLabel requires a non-blank category or source.
func ValidateLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeEmptyLabel,
			"category or source is required",
			domainerror.ErrEmptyLabel,
		)
	}
	return nil
}

// ValidateDescription bounds the description length in characters.
func ValidateDescription(description string) error {
	if len([]rune(description)) > MaxDescriptionLength {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeDescriptionTooLong,
			"description must be at most 255 characters",
			domainerror.ErrDescriptionTooLong,
		)
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func amountString(d decimal.Decimal) string {
	return d.String()
}
