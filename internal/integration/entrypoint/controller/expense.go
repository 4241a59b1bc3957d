// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/expense-ledger/backend/internal/application/usecase/expense"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
	"github.com/expense-ledger/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	addUseCase    *expense.AddExpenseUseCase
	getUseCase    *expense.GetExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
	editUseCase   *expense.EditExpenseUseCase
	removeUseCase *expense.RemoveExpenseUseCase
	eraseUseCase  *expense.EraseLedgerUseCase
	importUseCase *expense.ImportCSVUseCase
	exportUseCase *expense.ExportCSVUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	addUseCase *expense.AddExpenseUseCase,
	getUseCase *expense.GetExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	editUseCase *expense.EditExpenseUseCase,
	removeUseCase *expense.RemoveExpenseUseCase,
	eraseUseCase *expense.EraseLedgerUseCase,
	importUseCase *expense.ImportCSVUseCase,
	exportUseCase *expense.ExportCSVUseCase,
) *ExpenseController {
	return &ExpenseController{
		addUseCase:    addUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		editUseCase:   editUseCase,
		removeUseCase: removeUseCase,
		eraseUseCase:  eraseUseCase,
		importUseCase: importUseCase,
		exportUseCase: exportUseCase,
	}
}

// Add handles POST /expenses requests.
func (c *ExpenseController) Add(ctx *gin.Context) {
	var req dto.AddExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), expense.AddExpenseInput{
		Date:          req.Date,
		Amount:        req.Amount,
		Category:      req.Category,
		Justification: req.Justification,
	})
	if err != nil {
		respondExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), expense.GetExpenseInput{ExpenseID: id})
	if err != nil {
		respondExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /expenses requests. Optional startDate/endDate query
// parameters bound the listing; both must be given together.
func (c *ExpenseController) List(ctx *gin.Context) {
	startDate := ctx.Query("startDate")
	endDate := ctx.Query("endDate")
	if (startDate == "") != (endDate == "") {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "startDate and endDate must be provided together",
			Code:  string(domainerror.ErrCodeInvalidExpenseDate),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		respondExpenseError(ctx, err)
		return
	}

	expenses := make([]dto.ExpenseResponse, len(output.Expenses))
	for i, exp := range output.Expenses {
		expenses[i] = dto.ToExpenseResponse(exp)
	}

	ctx.JSON(http.StatusOK, dto.ExpenseListResponse{
		Expenses: expenses,
		Total:    len(expenses),
	})
}

// Edit handles PATCH /expenses/:id requests.
func (c *ExpenseController) Edit(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.EditExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.editUseCase.Execute(ctx.Request.Context(), expense.EditExpenseInput{
		ExpenseID:     id,
		Date:          req.Date,
		Amount:        req.Amount,
		Category:      req.Category,
		Justification: req.Justification,
	})
	if err != nil {
		respondExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Remove handles DELETE /expenses/:id requests.
func (c *ExpenseController) Remove(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if _, err := c.removeUseCase.Execute(ctx.Request.Context(), expense.RemoveExpenseInput{ExpenseID: id}); err != nil {
		respondExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "expense removed"})
}

// Erase handles DELETE /expenses requests, removing the whole ledger.
func (c *ExpenseController) Erase(ctx *gin.Context) {
	if err := c.eraseUseCase.Execute(ctx.Request.Context()); err != nil {
		respondExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "ledger erased"})
}

// Import handles POST /expenses/import requests. The request body is the
// raw CSV stream: date,amount,category,justification per row, no header.
func (c *ExpenseController) Import(ctx *gin.Context) {
	output, err := c.importUseCase.Execute(ctx.Request.Context(), expense.ImportCSVInput{
		Reader: ctx.Request.Body,
	})
	if err != nil {
		respondExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ImportResponse{Imported: output.Imported})
}

// Export handles GET /expenses/export requests, streaming the ledger in the
// same CSV format the import accepts.
func (c *ExpenseController) Export(ctx *gin.Context) {
	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", `attachment; filename="ledger.csv"`)
	ctx.Status(http.StatusOK)

	if _, err := c.exportUseCase.Execute(ctx.Request.Context(), expense.ExportCSVInput{
		Writer: ctx.Writer,
	}); err != nil {
		// Headers are already sent; all we can do is abort the stream.
		_ = ctx.Error(err)
	}
}

// parseIDParam extracts the :id path parameter as an int64.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense id",
		})
		return 0, false
	}
	return id, true
}

// respondExpenseError maps domain errors onto HTTP statuses: validation
// failures to 400, missing IDs to 404 and everything else to 500.
func respondExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domainerror.ErrExpenseNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domainerror.ErrInvalidExpenseDate),
			errors.Is(err, domainerror.ErrInvalidExpenseAmount),
			errors.Is(err, domainerror.ErrInvalidExpenseCategory):
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}
