// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single record in the expense ledger.
//
// Sign convention: a positive Amount is money spent, a negative Amount is a
// refund or correction. Amounts always carry exactly two decimal places.
type Expense struct {
	ID            int64
	Date          time.Time // calendar date, time component always midnight UTC
	Amount        decimal.Decimal
	Category      string // stored normalized: trimmed and lowercased
	Justification string
}

// NewExpense creates a new Expense entity without an ID. The ID is assigned
// by the ledger store on insert and is immutable afterwards.
func NewExpense(date time.Time, amount decimal.Decimal, category, justification string) *Expense {
	return &Expense{
		Date:          date,
		Amount:        amount,
		Category:      category,
		Justification: justification,
	}
}

// RunningTotalPoint is one point of the cumulative balance walk. Entries
// sharing a date collapse into a single end-of-day point.
type RunningTotalPoint struct {
	Date  time.Time
	Total decimal.Decimal
}

// RangeReport combines the raw entries of a date interval with their
// per-category totals and the running cumulative balance.
type RangeReport struct {
	StartDate        time.Time
	EndDate          time.Time
	Entries          []*Expense
	TotalsByCategory map[string]decimal.Decimal
	RunningTotal     []RunningTotalPoint
}
