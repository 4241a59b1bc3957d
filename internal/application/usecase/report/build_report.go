// Package report contains reporting use cases over the expense ledger.
package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/application/usecase/expense"
	"github.com/expense-ledger/backend/internal/domain/entity"
)

// BuildReportInput represents the input for a range report. Dates are raw
// strings in YYYY-MM-DD format, bounds inclusive.
type BuildReportInput struct {
	StartDate string
	EndDate   string
}

// BuildReportOutput represents the output of a range report.
type BuildReportOutput struct {
	Report *entity.RangeReport
}

// BuildReportUseCase composes the raw entries of a date interval with their
// per-category totals and the running cumulative balance. It never mutates
// the ledger.
type BuildReportUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewBuildReportUseCase creates a new BuildReportUseCase instance.
func NewBuildReportUseCase(expenseRepo adapter.ExpenseRepository) *BuildReportUseCase {
	return &BuildReportUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute builds the range report. An empty range yields empty entries,
// an empty totals map and an empty running-total sequence, not an error.
func (uc *BuildReportUseCase) Execute(ctx context.Context, input BuildReportInput) (*BuildReportOutput, error) {
	start, err := expense.ParseReportDate(input.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := expense.ParseReportDate(input.EndDate)
	if err != nil {
		return nil, err
	}

	entries, err := uc.expenseRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &BuildReportOutput{
		Report: &entity.RangeReport{
			StartDate:        start,
			EndDate:          end,
			Entries:          entries,
			TotalsByCategory: totalsByCategory(entries),
			RunningTotal:     runningTotal(entries),
		},
	}, nil
}

// totalsByCategory sums amounts per category with exact decimal arithmetic.
// Categories without entries in the range are absent from the map.
func totalsByCategory(entries []*entity.Expense) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(entries))
	for _, e := range entries {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// runningTotal walks the date-ascending entry order and emits one cumulative
// point per distinct date, representing the end-of-day balance.
func runningTotal(entries []*entity.Expense) []entity.RunningTotalPoint {
	points := make([]entity.RunningTotalPoint, 0, len(entries))
	cumulative := decimal.Zero
	for _, e := range entries {
		cumulative = cumulative.Add(e.Amount)
		if n := len(points); n > 0 && points[n-1].Date.Equal(e.Date) {
			points[n-1].Total = cumulative
			continue
		}
		points = append(points, entity.RunningTotalPoint{Date: e.Date, Total: cumulative})
	}
	return points
}
