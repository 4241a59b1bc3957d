// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-ledger/backend/internal/application/usecase/expense"
)

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse represents a simple confirmation response body.
type MessageResponse struct {
	Message string `json:"message"`
}

// AddExpenseRequest represents the request body for expense creation.
// Fields arrive as strings; the service layer validates and normalizes them.
type AddExpenseRequest struct {
	Date          string `json:"date" binding:"required"`
	Amount        string `json:"amount" binding:"required"`
	Category      string `json:"category" binding:"required"`
	Justification string `json:"justification,omitempty"`
}

// EditExpenseRequest represents the request body for expense update.
// Absent fields are left unchanged.
type EditExpenseRequest struct {
	Date          *string `json:"date,omitempty"`
	Amount        *string `json:"amount,omitempty"`
	Category      *string `json:"category,omitempty"`
	Justification *string `json:"justification,omitempty"`
}

// ExpenseResponse represents a single expense in API responses. The amount
// is serialized as a fixed two-decimal string to avoid float drift.
type ExpenseResponse struct {
	ID            int64  `json:"id"`
	Date          string `json:"date"`
	Amount        string `json:"amount"`
	Category      string `json:"category"`
	Justification string `json:"justification,omitempty"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int               `json:"total"`
}

// ImportResponse represents the response for a CSV import.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// ToExpenseResponse converts an ExpenseOutput to an ExpenseResponse DTO.
func ToExpenseResponse(exp *expense.ExpenseOutput) ExpenseResponse {
	return ExpenseResponse{
		ID:            exp.ID,
		Date:          exp.Date.Format(expense.DateLayout),
		Amount:        exp.Amount.StringFixed(2),
		Category:      exp.Category,
		Justification: exp.Justification,
	}
}
