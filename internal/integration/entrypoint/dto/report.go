// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/pocketvision/ledger/internal/application/usecase/report"
)

// CategoryBreakdownResponse represents one category slice in the report.
type CategoryBreakdownResponse struct {
	CategoryID *string `json:"category_id,omitempty"`
	Name       string  `json:"name"`
	Icon       string  `json:"icon"`
	Amount     string  `json:"amount"`
	Percentage string  `json:"percentage"`
}

// StatisticsResponse represents period statistics in the report.
type StatisticsResponse struct {
	AverageExpense string `json:"average_expense"`
	MaxExpense     string `json:"max_expense"`
	MinExpense     string `json:"min_expense"`
	ExpenseCount   int    `json:"expense_count"`
	TotalAmount    string `json:"total_amount"`
}

// ReportSummaryResponse represents the spending summary report.
type ReportSummaryResponse struct {
	TotalExpenses     string                      `json:"total_expenses"`
	PeriodExpenses    string                      `json:"period_expenses"`
	CategoryBreakdown []CategoryBreakdownResponse `json:"category_breakdown"`
	Statistics        StatisticsResponse          `json:"statistics"`
	StartDate         string                      `json:"start_date"`
	EndDate           string                      `json:"end_date"`
	PeriodDays        int                         `json:"period_days"`
	ExpenseCount      int                         `json:"expense_count"`
}

// ToReportSummaryResponse converts a SummaryOutput to a ReportSummaryResponse.
func ToReportSummaryResponse(output *report.SummaryOutput) ReportSummaryResponse {
	breakdown := make([]CategoryBreakdownResponse, len(output.CategoryBreakdown))
	for i, entry := range output.CategoryBreakdown {
		item := CategoryBreakdownResponse{
			Name:       entry.Name,
			Icon:       entry.Icon,
			Amount:     entry.Amount.String(),
			Percentage: entry.Percentage.String(),
		}
		if entry.CategoryID != nil {
			categoryIDStr := entry.CategoryID.String()
			item.CategoryID = &categoryIDStr
		}
		breakdown[i] = item
	}

	return ReportSummaryResponse{
		TotalExpenses:     output.TotalExpenses.String(),
		PeriodExpenses:    output.PeriodExpenses.String(),
		CategoryBreakdown: breakdown,
		Statistics: StatisticsResponse{
			AverageExpense: output.Statistics.AverageExpense.String(),
			MaxExpense:     output.Statistics.MaxExpense.String(),
			MinExpense:     output.Statistics.MinExpense.String(),
			ExpenseCount:   output.Statistics.ExpenseCount,
			TotalAmount:    output.Statistics.TotalAmount.String(),
		},
		StartDate:    output.StartDate.Format("2006-01-02"),
		EndDate:      output.EndDate.Format("2006-01-02"),
		PeriodDays:   output.PeriodDays,
		ExpenseCount: output.ExpenseCount,
	}
}
