// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-ledger/backend/internal/application/usecase/report"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
	"github.com/expense-ledger/backend/internal/integration/entrypoint/dto"
)

// ReportController handles reporting endpoints.
type ReportController struct {
	buildReportUseCase *report.BuildReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(buildReportUseCase *report.BuildReportUseCase) *ReportController {
	return &ReportController{
		buildReportUseCase: buildReportUseCase,
	}
}

// Get handles GET /reports requests. Both startDate and endDate query
// parameters are required, bounds inclusive.
func (c *ReportController) Get(ctx *gin.Context) {
	startDate := ctx.Query("startDate")
	endDate := ctx.Query("endDate")
	if startDate == "" || endDate == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "startDate and endDate query parameters are required",
			Code:  string(domainerror.ErrCodeInvalidExpenseDate),
		})
		return
	}

	output, err := c.buildReportUseCase.Execute(ctx.Request.Context(), report.BuildReportInput{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		respondExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output.Report))
}
