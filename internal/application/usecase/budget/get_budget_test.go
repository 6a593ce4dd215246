// Package budget contains budget-related use cases and the spent-amount reconciler.
package budget

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketvision/ledger/internal/domain/entity"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

func TestGetBudget(t *testing.T) {
	ctx := context.Background()

	newFixture := func() (*GetBudgetUseCase, *fakeBudgetRepo, *fakeExpenseRepo) {
		budgetRepo := newFakeBudgetRepo()
		expenseRepo := newFakeExpenseRepo()
		reconciler := NewReconciler(budgetRepo, expenseRepo, newFakeNotificationRepo(), nil, nil)
		return NewGetBudgetUseCase(budgetRepo, reconciler), budgetRepo, expenseRepo
	}

	t.Run("a read heals a stale spent amount", func(t *testing.T) {
		useCase, budgetRepo, expenseRepo := newFixture()

		userID := uuid.New()
		categoryID := uuid.New()
		const month = "2025-03"

		budget := entity.NewBudget(userID, categoryID, month, decimal.NewFromInt(500))
		budget.SpentAmount = decimal.NewFromInt(42)
		_ = budgetRepo.Create(ctx, budget)
		addExpense(expenseRepo, userID, categoryID, "100", dateIn(month, 5))

		output, err := useCase.Execute(ctx, GetBudgetInput{BudgetID: budget.ID, UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Budget.SpentAmount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected returned spent 100, got %s", output.Budget.SpentAmount)
		}

		stored, _ := budgetRepo.FindByID(ctx, budget.ID)
		if !stored.SpentAmount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected stored spent healed to 100, got %s", stored.SpentAmount)
		}
	})

	t.Run("unknown budget is rejected", func(t *testing.T) {
		useCase, _, _ := newFixture()

		_, err := useCase.Execute(ctx, GetBudgetInput{BudgetID: uuid.New(), UserID: uuid.New()})
		assertBudgetErrorCode(t, err, domainerror.ErrCodeBudgetNotFound)
	})

	t.Run("another user's budget is rejected", func(t *testing.T) {
		useCase, budgetRepo, _ := newFixture()

		budget := entity.NewBudget(uuid.New(), uuid.New(), "2025-03", decimal.NewFromInt(500))
		_ = budgetRepo.Create(ctx, budget)

		_, err := useCase.Execute(ctx, GetBudgetInput{BudgetID: budget.ID, UserID: uuid.New()})
		assertBudgetErrorCode(t, err, domainerror.ErrCodeNotAuthorizedBudget)
	})
}
