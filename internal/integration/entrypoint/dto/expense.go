// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocketvision/ledger/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	StoreName     string  `json:"store_name" binding:"omitempty,max=255"`
	TotalAmount   float64 `json:"total_amount" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	CategoryID    string  `json:"category_id" binding:"required"`
	Note          string  `json:"note,omitempty" binding:"omitempty,max=255"`
	ExpenseDate   string  `json:"expense_date" binding:"required"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	StoreName     *string  `json:"store_name,omitempty" binding:"omitempty,max=255"`
	TotalAmount   *float64 `json:"total_amount,omitempty"`
	PaymentMethod *string  `json:"payment_method,omitempty"`
	CategoryID    *string  `json:"category_id,omitempty"`
	Note          *string  `json:"note,omitempty" binding:"omitempty,max=255"`
	ExpenseDate   *string  `json:"expense_date,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	CategoryID    *string   `json:"category_id,omitempty"`
	StoreName     string    `json:"store_name"`
	TotalAmount   string    `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	Note          string    `json:"note"`
	ExpenseDate   string    `json:"expense_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int               `json:"total"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	response := ExpenseResponse{
		ID:            expense.ID.String(),
		UserID:        expense.UserID.String(),
		StoreName:     expense.StoreName,
		TotalAmount:   expense.TotalAmount.String(),
		PaymentMethod: string(expense.PaymentMethod),
		Note:          expense.Note,
		ExpenseDate:   expense.ExpenseDate.Format("2006-01-02"),
		CreatedAt:     expense.CreatedAt,
		UpdatedAt:     expense.UpdatedAt,
	}

	if expense.CategoryID != nil {
		categoryIDStr := expense.CategoryID.String()
		response.CategoryID = &categoryIDStr
	}

	return response
}

// ToExpenseListResponse converts a slice of expenses to an ExpenseListResponse.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	items := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		items[i] = ToExpenseResponse(expense)
	}
	return ExpenseListResponse{
		Expenses: items,
		Total:    len(items),
	}
}
