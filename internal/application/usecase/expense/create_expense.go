// Package expense contains expense-related use cases. Every mutating use case
// ends by reconciling the budget bucket(s) the write could have affected.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketvision/ledger/internal/application/adapter"
	"github.com/pocketvision/ledger/internal/application/usecase/budget"
	"github.com/pocketvision/ledger/internal/domain/entity"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

const (
	// MaxNoteLength is the maximum allowed length for expense notes.
	MaxNoteLength = 255
)

// maxExpenseAmount is a sanity ceiling on a single expense.
var maxExpenseAmount = decimal.NewFromInt(9_999_999_999)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID        uuid.UUID
	CategoryID    *uuid.UUID
	StoreName     string
	TotalAmount   decimal.Decimal
	PaymentMethod entity.PaymentMethod
	Note          string
	ExpenseDate   time.Time
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	reconciler  *budget.Reconciler
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, reconciler *budget.Reconciler) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		reconciler:  reconciler,
	}
}

// Execute performs the expense creation. Validation happens before any
// persistence; a rejected input leaves no partial state behind.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateExpenseFields(input.CategoryID, input.TotalAmount, input.PaymentMethod, input.Note, input.ExpenseDate); err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		input.UserID,
		input.CategoryID,
		input.StoreName,
		input.TotalAmount,
		input.PaymentMethod,
		input.Note,
		input.ExpenseDate,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	if bucket, ok := budget.BucketOf(expense.UserID, expense.CategoryID, expense.ExpenseDate); ok {
		uc.reconciler.Reconcile(ctx, bucket)
	}

	return &CreateExpenseOutput{Expense: expense}, nil
}

// validateExpenseFields enforces the shared expense validation rules:
// a positive amount below the sanity ceiling, a category, a date, a known
// payment method, and a bounded note.
func validateExpenseFields(
	categoryID *uuid.UUID,
	amount decimal.Decimal,
	paymentMethod entity.PaymentMethod,
	note string,
	expenseDate time.Time,
) error {
	if !amount.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	if amount.GreaterThan(maxExpenseAmount) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount exceeds the maximum allowed value",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	if categoryID == nil {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseCategory,
			"category is required",
			domainerror.ErrMissingExpenseCategory,
		)
	}
	if expenseDate.IsZero() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseDate,
			"expense date is required",
			domainerror.ErrMissingExpenseDate,
		)
	}
	if !entity.IsValidPaymentMethod(paymentMethod) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"payment method is not recognized",
			domainerror.ErrInvalidPaymentMethod,
		)
	}
	if len(note) > MaxNoteLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNoteTooLong,
			fmt.Sprintf("note must not exceed %d characters", MaxNoteLength),
			domainerror.ErrExpenseNoteTooLong,
		)
	}
	return nil
}
