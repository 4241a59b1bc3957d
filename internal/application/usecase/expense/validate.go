// Package expense contains expense-related use cases.
package expense

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	domainerror "github.com/expense-ledger/backend/internal/domain/error"
)

// DateLayout is the wire format for expense dates.
const DateLayout = "2006-01-02"

// parseDate validates and parses a calendar date in YYYY-MM-DD format.
// time.Parse rejects impossible dates such as 2024-02-31.
func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"date must be a valid calendar date in YYYY-MM-DD format",
			domainerror.ErrInvalidExpenseDate,
		)
	}
	return date.UTC(), nil
}

// ParseReportDate parses a report boundary date with the same rules as
// expense date validation.
func ParseReportDate(value string) (time.Time, error) {
	return parseDate(value)
}

// parseAmount validates and parses a finite decimal amount, rounded to two
// decimal places. decimal.NewFromString rejects NaN and infinities.
func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be a finite decimal number",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	return amount.Round(2), nil
}

// normalizeCategory trims and lowercases a category. Empty categories and
// categories containing control characters are rejected.
func normalizeCategory(value string) (string, error) {
	category := strings.ToLower(strings.TrimSpace(value))
	if category == "" {
		return "", domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseCategory,
			"category must not be empty",
			domainerror.ErrInvalidExpenseCategory,
		)
	}
	for _, r := range category {
		if unicode.IsControl(r) {
			return "", domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseCategory,
				"category must not contain control characters",
				domainerror.ErrInvalidExpenseCategory,
			)
		}
	}
	return category, nil
}
