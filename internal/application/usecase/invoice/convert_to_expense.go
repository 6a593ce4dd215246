// Package invoice contains the receipt ingestion pipeline.
package invoice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/application/adapter"
	"github.com/pocketvision/ledger/internal/application/usecase/expense"
	"github.com/pocketvision/ledger/internal/domain/entity"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

// ConvertToExpenseInput represents the input for invoice conversion.
type ConvertToExpenseInput struct {
	InvoiceID uuid.UUID
	UserID    uuid.UUID
}

// ConvertToExpenseOutput represents the output of invoice conversion.
type ConvertToExpenseOutput struct {
	Expense *entity.Expense
}

// ConvertToExpenseUseCase turns an invoice into an expense. The conversion
// routes through expense creation, so validation and budget reconciliation
// run exactly as they would for a manually entered expense.
type ConvertToExpenseUseCase struct {
	invoiceRepo   adapter.InvoiceRepository
	createExpense *expense.CreateExpenseUseCase
}

// NewConvertToExpenseUseCase creates a new ConvertToExpenseUseCase instance.
func NewConvertToExpenseUseCase(invoiceRepo adapter.InvoiceRepository, createExpense *expense.CreateExpenseUseCase) *ConvertToExpenseUseCase {
	return &ConvertToExpenseUseCase{
		invoiceRepo:   invoiceRepo,
		createExpense: createExpense,
	}
}

// Execute performs the conversion. An invoice without a category is rejected;
// the client assigns one through the update endpoint first. Unrecognized
// payment methods degrade to cash.
func (uc *ConvertToExpenseUseCase) Execute(ctx context.Context, input ConvertToExpenseInput) (*ConvertToExpenseOutput, error) {
	invoice, err := uc.invoiceRepo.FindByID(ctx, input.InvoiceID)
	if err != nil {
		if errors.Is(err, domainerror.ErrInvoiceNotFound) {
			return nil, domainerror.NewInvoiceError(
				domainerror.ErrCodeInvoiceNotFound,
				"invoice not found",
				domainerror.ErrInvoiceNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}

	if invoice.UserID != input.UserID {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeNotAuthorizedInvoice,
			"not authorized to access this invoice",
			domainerror.ErrNotAuthorizedToModifyInvoice,
		)
	}

	if invoice.CategoryID == nil {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceMissingCategory,
			"assign a category to the invoice before converting it",
			domainerror.ErrInvoiceMissingCategory,
		)
	}

	paymentMethod := invoice.PaymentMethod
	if !entity.IsValidPaymentMethod(paymentMethod) {
		paymentMethod = entity.PaymentMethodCash
	}

	output, err := uc.createExpense.Execute(ctx, expense.CreateExpenseInput{
		UserID:        input.UserID,
		CategoryID:    invoice.CategoryID,
		StoreName:     invoice.StoreName,
		TotalAmount:   invoice.TotalAmount,
		PaymentMethod: paymentMethod,
		Note:          invoice.Note,
		ExpenseDate:   invoice.InvoiceDate,
	})
	if err != nil {
		return nil, err
	}

	return &ConvertToExpenseOutput{Expense: output.Expense}, nil
}
