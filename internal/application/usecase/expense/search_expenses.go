// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/application/adapter"
	"github.com/pocketvision/ledger/internal/domain/entity"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

// SearchExpensesInput represents the input for keyword search.
type SearchExpensesInput struct {
	UserID  uuid.UUID
	Keyword string
}

// SearchExpensesOutput represents the output of keyword search.
type SearchExpensesOutput struct {
	Expenses []*entity.Expense
}

// SearchExpensesUseCase handles expense keyword search across store name,
// note, and amount text.
type SearchExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewSearchExpensesUseCase creates a new SearchExpensesUseCase instance.
func NewSearchExpensesUseCase(expenseRepo adapter.ExpenseRepository) *SearchExpensesUseCase {
	return &SearchExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense search.
func (uc *SearchExpensesUseCase) Execute(ctx context.Context, input SearchExpensesInput) (*SearchExpensesOutput, error) {
	keyword := strings.TrimSpace(input.Keyword)
	if keyword == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeEmptySearchKeyword,
			"search keyword must not be blank",
			domainerror.ErrEmptySearchKeyword,
		)
	}

	expenses, err := uc.expenseRepo.SearchByKeyword(ctx, input.UserID, keyword)
	if err != nil {
		return nil, fmt.Errorf("failed to search expenses: %w", err)
	}

	return &SearchExpensesOutput{Expenses: expenses}, nil
}
