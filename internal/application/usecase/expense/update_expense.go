// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketvision/ledger/internal/application/adapter"
	"github.com/pocketvision/ledger/internal/application/usecase/budget"
	"github.com/pocketvision/ledger/internal/domain/entity"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense update. Nil fields keep
// their current value.
type UpdateExpenseInput struct {
	ExpenseID     uuid.UUID
	UserID        uuid.UUID
	CategoryID    *uuid.UUID
	StoreName     *string
	TotalAmount   *decimal.Decimal
	PaymentMethod *entity.PaymentMethod
	Note          *string
	ExpenseDate   *time.Time
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	reconciler  *budget.Reconciler
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository, reconciler *budget.Reconciler) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		reconciler:  reconciler,
	}
}

// Execute performs the expense update. The bucket the expense occupied before
// the edit is captured first: moving an expense to another category or month
// must recompute both the bucket the money left and the one it entered.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	if expense.UserID != input.UserID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNotAuthorizedExpense,
			"not authorized to update this expense",
			domainerror.ErrNotAuthorizedToModifyExpense,
		)
	}

	var oldBucket *budget.Bucket
	if bucket, ok := budget.BucketOf(expense.UserID, expense.CategoryID, expense.ExpenseDate); ok {
		oldBucket = &bucket
	}

	if input.CategoryID != nil {
		expense.CategoryID = input.CategoryID
	}
	if input.StoreName != nil {
		expense.StoreName = *input.StoreName
	}
	if input.TotalAmount != nil {
		expense.TotalAmount = *input.TotalAmount
	}
	if input.PaymentMethod != nil {
		expense.PaymentMethod = *input.PaymentMethod
	}
	if input.Note != nil {
		expense.Note = *input.Note
	}
	if input.ExpenseDate != nil {
		expense.ExpenseDate = *input.ExpenseDate
	}

	if err := validateExpenseFields(expense.CategoryID, expense.TotalAmount, expense.PaymentMethod, expense.Note, expense.ExpenseDate); err != nil {
		return nil, err
	}

	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	var newBucket *budget.Bucket
	if bucket, ok := budget.BucketOf(expense.UserID, expense.CategoryID, expense.ExpenseDate); ok {
		newBucket = &bucket
	}
	uc.reconciler.ReconcileAll(ctx, budget.AffectedBuckets(oldBucket, newBucket))

	return &UpdateExpenseOutput{Expense: expense}, nil
}
