// Package invoice contains the receipt ingestion pipeline.
package invoice

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

// UpdateInvoiceInput represents the input for invoice updates. Nil fields are
// left unchanged.
type UpdateInvoiceInput struct {
	InvoiceID     uuid.UUID
	UserID        uuid.UUID
	StoreName     *string
	TotalAmount   *decimal.Decimal
	Note          *string
	CategoryID    *uuid.UUID
	PaymentMethod *entity.PaymentMethod
}

// UpdateInvoiceOutput represents the output of invoice updates.
type UpdateInvoiceOutput struct {
	Invoice *entity.Invoice
}

// UpdateInvoiceUseCase handles invoice field corrections, typically assigning
// a category so the invoice can be converted into an expense.
type UpdateInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewUpdateInvoiceUseCase creates a new UpdateInvoiceUseCase instance.
func NewUpdateInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *UpdateInvoiceUseCase {
	return &UpdateInvoiceUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute performs the invoice update.
func (uc *UpdateInvoiceUseCase) Execute(ctx context.Context, input UpdateInvoiceInput) (*UpdateInvoiceOutput, error) {
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
			"not authorized to modify this invoice",
			domainerror.ErrNotAuthorizedToModifyInvoice,
		)
	}

	if input.StoreName != nil {
		invoice.StoreName = *input.StoreName
	}
	if input.TotalAmount != nil {
		invoice.TotalAmount = *input.TotalAmount
	}
	if input.Note != nil {
		invoice.Note = *input.Note
	}
	if input.CategoryID != nil {
		invoice.CategoryID = input.CategoryID
	}
	if input.PaymentMethod != nil {
		if !entity.IsValidPaymentMethod(*input.PaymentMethod) {
			return nil, domainerror.NewInvoiceError(
				domainerror.ErrCodeMissingInvoiceFields,
				"payment method is not recognized",
				domainerror.ErrInvalidPaymentMethod,
			)
		}
		invoice.PaymentMethod = *input.PaymentMethod
	}
	invoice.UpdatedAt = time.Now().UTC()

	if err := uc.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	return &UpdateInvoiceOutput{Invoice: invoice}, nil
}
