// Package budget contains budget-related use cases and the spent-amount reconciler.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/application/adapter"
	"github.com/pocketvision/ledger/internal/domain/entity"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

// GetBudgetInput represents the input for fetching one budget.
type GetBudgetInput struct {
	BudgetID uuid.UUID
	UserID   uuid.UUID
}

// GetBudgetOutput represents the output of fetching one budget.
type GetBudgetOutput struct {
	Budget *entity.Budget
}

// GetBudgetUseCase handles single-budget retrieval. The spent amount is
// refreshed from the expense store before the budget is returned.
type GetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	reconciler *Reconciler
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository, reconciler *Reconciler) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo: budgetRepo,
		reconciler: reconciler,
	}
}

// Execute performs the budget retrieval.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	if budget.UserID != input.UserID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNotAuthorizedBudget,
			"not authorized to view this budget",
			domainerror.ErrNotAuthorizedToModifyBudget,
		)
	}

	uc.reconciler.RefreshSpent(ctx, budget)

	return &GetBudgetOutput{Budget: budget}, nil
}
