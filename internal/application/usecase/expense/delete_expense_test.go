// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketvision/ledger/internal/domain/entity"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

func TestDeleteExpenseUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()

	t.Run("deletion drains the bucket", func(t *testing.T) {
		fixture := newTestFixture()
		useCase := NewDeleteExpenseUseCase(fixture.expenseRepo, fixture.reconciler)

		budgetRow := entity.NewBudget(userID, categoryID, "2025-03", decimal.NewFromInt(1000))
		budgetRow.SpentAmount = decimal.NewFromInt(50)
		_ = fixture.budgetRepo.Create(ctx, budgetRow)

		expense := entity.NewExpense(userID, &categoryID, "Circle K", decimal.NewFromInt(50), entity.PaymentMethodCash, "", monthDay("2025-03", 10))
		_ = fixture.expenseRepo.Create(ctx, expense)

		output, err := useCase.Execute(ctx, DeleteExpenseInput{ExpenseID: expense.ID, UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Success {
			t.Error("expected success")
		}

		if _, err := fixture.expenseRepo.FindByID(ctx, expense.ID); err == nil {
			t.Error("expected expense gone")
		}
		stored, _ := fixture.budgetRepo.FindByID(ctx, budgetRow.ID)
		if !stored.SpentAmount.IsZero() {
			t.Errorf("expected spent amount back to 0, got %s", stored.SpentAmount)
		}
	})

	t.Run("uncategorized expense deletes without reconciliation", func(t *testing.T) {
		fixture := newTestFixture()
		useCase := NewDeleteExpenseUseCase(fixture.expenseRepo, fixture.reconciler)

		expense := entity.NewExpense(userID, nil, "Circle K", decimal.NewFromInt(50), entity.PaymentMethodCash, "", monthDay("2025-03", 10))
		_ = fixture.expenseRepo.Create(ctx, expense)

		if _, err := useCase.Execute(ctx, DeleteExpenseInput{ExpenseID: expense.ID, UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown expense", func(t *testing.T) {
		fixture := newTestFixture()
		useCase := NewDeleteExpenseUseCase(fixture.expenseRepo, fixture.reconciler)

		_, err := useCase.Execute(ctx, DeleteExpenseInput{ExpenseID: uuid.New(), UserID: userID})
		assertExpenseErrorCode(t, err, domainerror.ErrCodeExpenseNotFound)
	})

	t.Run("other user's expense is not deletable", func(t *testing.T) {
		fixture := newTestFixture()
		useCase := NewDeleteExpenseUseCase(fixture.expenseRepo, fixture.reconciler)

		expense := entity.NewExpense(userID, &categoryID, "Circle K", decimal.NewFromInt(50), entity.PaymentMethodCash, "", monthDay("2025-03", 10))
		_ = fixture.expenseRepo.Create(ctx, expense)

		_, err := useCase.Execute(ctx, DeleteExpenseInput{ExpenseID: expense.ID, UserID: uuid.New()})
		assertExpenseErrorCode(t, err, domainerror.ErrCodeNotAuthorizedExpense)

		if _, err := fixture.expenseRepo.FindByID(ctx, expense.ID); err != nil {
			t.Error("expected expense still present")
		}
	})
}
