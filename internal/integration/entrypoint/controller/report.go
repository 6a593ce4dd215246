// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pocketvision/ledger/internal/application/usecase/report"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
	"github.com/pocketvision/ledger/internal/integration/entrypoint/dto"
	"github.com/pocketvision/ledger/internal/integration/entrypoint/middleware"
)

// ReportController handles report endpoints.
type ReportController struct {
	summaryUseCase *report.SummaryUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(summaryUseCase *report.SummaryUseCase) *ReportController {
	return &ReportController{
		summaryUseCase: summaryUseCase,
	}
}

// Summary handles GET /reports/summary requests. Without date parameters the
// report covers the current month up to today.
func (c *ReportController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := report.SummaryInput{
		UserID: userID,
	}

	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid startDate format. Use YYYY-MM-DD",
			})
			return
		}
		input.StartDate = startDate
	}

	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid endDate format. Use YYYY-MM-DD",
			})
			return
		}
		input.EndDate = endDate
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build report",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportSummaryResponse(output))
}
