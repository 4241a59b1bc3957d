// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-ledger/backend/internal/application/usecase/expense"
	"github.com/expense-ledger/backend/internal/domain/entity"
)

// RunningTotalPointResponse represents one cumulative balance point.
type RunningTotalPointResponse struct {
	Date  string `json:"date"`
	Total string `json:"total"`
}

// ReportResponse represents the response for a range report.
type ReportResponse struct {
	StartDate        string                      `json:"start_date"`
	EndDate          string                      `json:"end_date"`
	Entries          []ExpenseResponse           `json:"entries"`
	TotalsByCategory map[string]string           `json:"totals_by_category"`
	RunningTotal     []RunningTotalPointResponse `json:"running_total"`
}

// ToReportResponse converts a RangeReport to a ReportResponse DTO.
func ToReportResponse(report *entity.RangeReport) ReportResponse {
	entries := make([]ExpenseResponse, len(report.Entries))
	for i, e := range report.Entries {
		entries[i] = ExpenseResponse{
			ID:            e.ID,
			Date:          e.Date.Format(expense.DateLayout),
			Amount:        e.Amount.StringFixed(2),
			Category:      e.Category,
			Justification: e.Justification,
		}
	}

	totals := make(map[string]string, len(report.TotalsByCategory))
	for category, total := range report.TotalsByCategory {
		totals[category] = total.StringFixed(2)
	}

	runningTotal := make([]RunningTotalPointResponse, len(report.RunningTotal))
	for i, point := range report.RunningTotal {
		runningTotal[i] = RunningTotalPointResponse{
			Date:  point.Date.Format(expense.DateLayout),
			Total: point.Total.StringFixed(2),
		}
	}

	return ReportResponse{
		StartDate:        report.StartDate.Format(expense.DateLayout),
		EndDate:          report.EndDate.Format(expense.DateLayout),
		Entries:          entries,
		TotalsByCategory: totals,
		RunningTotal:     runningTotal,
	}
}
