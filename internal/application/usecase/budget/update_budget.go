// Package budget contains budget-related use cases and the spent-amount reconciler.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketvision/ledger/internal/application/adapter"
	"github.com/pocketvision/ledger/internal/domain/entity"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update. Only the limit is
// user-settable; the spent amount always comes from the reconciler.
type UpdateBudgetInput struct {
	BudgetID    uuid.UUID
	UserID      uuid.UUID
	LimitAmount decimal.Decimal
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	reconciler *Reconciler
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, reconciler *Reconciler) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		reconciler: reconciler,
	}
}

// Execute performs the budget update. A lowered limit can push an unchanged
// spent amount across a threshold, so the bucket is re-evaluated afterwards.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
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
			"not authorized to modify this budget",
			domainerror.ErrNotAuthorizedToModifyBudget,
		)
	}

	if !input.LimitAmount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidLimitAmount,
			"limit amount must be greater than zero",
			domainerror.ErrInvalidLimitAmount,
		)
	}

	budget.LimitAmount = input.LimitAmount
	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	uc.reconciler.Reconcile(ctx, Bucket{
		UserID:     budget.UserID,
		CategoryID: budget.CategoryID,
		MonthYear:  budget.MonthYear,
	})

	if fresh, err := uc.budgetRepo.FindByID(ctx, budget.ID); err == nil {
		budget = fresh
	}

	return &UpdateBudgetOutput{Budget: budget}, nil
}
