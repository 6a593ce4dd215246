// Package budget contains budget-related use cases and the spent-amount reconciler.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/application/adapter"
	"github.com/pocketvision/ledger/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets. MonthYear is
// optional; when set only that month's budgets are returned.
type ListBudgetsInput struct {
	UserID    uuid.UUID
	MonthYear string
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.Budget
}

// ListBudgetsUseCase handles budget listing logic. Each returned budget has
// its spent amount refreshed from the expense store, so a row left stale by
// a failed write-path reconciliation heals on read.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
	reconciler *Reconciler
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository, reconciler *Reconciler) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
		reconciler: reconciler,
	}
}

// Execute performs the budget listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	var (
		budgets []*entity.Budget
		err     error
	)

	if input.MonthYear != "" {
		budgets, err = uc.budgetRepo.FindByUserAndMonth(ctx, input.UserID, input.MonthYear)
	} else {
		budgets, err = uc.budgetRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	uc.reconciler.RefreshSpentAll(ctx, budgets)

	return &ListBudgetsOutput{Budgets: budgets}, nil
}
