// Package budget contains budget-related use cases and the spent-amount reconciler.
package budget

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketvision/ledger/internal/application/adapter"
	"github.com/pocketvision/ledger/internal/domain/entity"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

var monthYearPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	MonthYear   string
	LimitAmount decimal.Decimal
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	reconciler *Reconciler
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, reconciler *Reconciler) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
		reconciler: reconciler,
	}
}

// Execute performs the budget creation. A budget created for a month that
// already has expenses starts with the true spent amount, and may alert
// immediately when that amount crosses a threshold.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if !input.LimitAmount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidLimitAmount,
			"limit amount must be greater than zero",
			domainerror.ErrInvalidLimitAmount,
		)
	}

	if !monthYearPattern.MatchString(input.MonthYear) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonthYear,
			"month must be in yyyy-MM format",
			domainerror.ErrInvalidMonthYear,
		)
	}
	if _, _, err := entity.MonthRange(input.MonthYear); err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonthYear,
			"month must be a valid calendar month",
			domainerror.ErrInvalidMonthYear,
		)
	}

	// One budget per (user, category, month) bucket.
	existing, err := uc.budgetRepo.FindByUserCategoryMonth(ctx, input.UserID, input.CategoryID, input.MonthYear)
	if err != nil {
		return nil, fmt.Errorf("failed to check budget existence: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetAlreadyExists,
			fmt.Sprintf("a budget for this category in %s already exists", input.MonthYear),
			domainerror.ErrBudgetAlreadyExists,
		)
	}

	budget := entity.NewBudget(input.UserID, input.CategoryID, input.MonthYear, input.LimitAmount)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	// Pick up expenses that predate the budget.
	uc.reconciler.Reconcile(ctx, Bucket{
		UserID:     input.UserID,
		CategoryID: input.CategoryID,
		MonthYear:  input.MonthYear,
	})

	// Return the reconciled row; fall back to the created entity if the
	// re-read fails (the write itself already succeeded).
	if fresh, err := uc.budgetRepo.FindByID(ctx, budget.ID); err == nil {
		budget = fresh
	}

	return &CreateBudgetOutput{Budget: budget}, nil
}
