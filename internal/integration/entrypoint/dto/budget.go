// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketvision/ledger/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	CategoryID  string  `json:"category_id" binding:"required"`
	MonthYear   string  `json:"month_year" binding:"required"`
	LimitAmount float64 `json:"limit_amount" binding:"required"`
}

// UpdateBudgetRequest represents the request body for budget update. Only the
// limit is settable; spent amounts are derived from expenses.
type UpdateBudgetRequest struct {
	LimitAmount float64 `json:"limit_amount" binding:"required"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	CategoryID  string    `json:"category_id"`
	MonthYear   string    `json:"month_year"`
	LimitAmount string    `json:"limit_amount"`
	SpentAmount string    `json:"spent_amount"`
	PercentUsed string    `json:"percent_used"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
	Total   int              `json:"total"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	percent := "0"
	if budget.LimitAmount.IsPositive() {
		percent = budget.SpentAmount.
			Div(budget.LimitAmount).
			Mul(decimal.NewFromInt(100)).
			Round(0).
			String()
	}

	return BudgetResponse{
		ID:          budget.ID.String(),
		UserID:      budget.UserID.String(),
		CategoryID:  budget.CategoryID.String(),
		MonthYear:   budget.MonthYear,
		LimitAmount: budget.LimitAmount.String(),
		SpentAmount: budget.SpentAmount.String(),
		PercentUsed: percent,
		CreatedAt:   budget.CreatedAt,
		UpdatedAt:   budget.UpdatedAt,
	}
}

// ToBudgetListResponse converts a slice of budgets to a BudgetListResponse.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	items := make([]BudgetResponse, len(budgets))
	for i, budget := range budgets {
		items[i] = ToBudgetResponse(budget)
	}
	return BudgetListResponse{
		Budgets: items,
		Total:   len(items),
	}
}
