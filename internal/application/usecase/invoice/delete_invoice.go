// Package invoice contains the receipt ingestion pipeline.
package invoice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/application/adapter"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

// DeleteInvoiceInput represents the input for invoice deletion.
type DeleteInvoiceInput struct {
	InvoiceID uuid.UUID
	UserID    uuid.UUID
}

// DeleteInvoiceOutput represents the output of invoice deletion.
type DeleteInvoiceOutput struct {
	Success bool
}

// DeleteInvoiceUseCase handles invoice deletion. Expenses already converted
// from the invoice are kept; only the invoice row and its items go away.
type DeleteInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewDeleteInvoiceUseCase creates a new DeleteInvoiceUseCase instance.
func NewDeleteInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *DeleteInvoiceUseCase {
	return &DeleteInvoiceUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute performs the invoice deletion.
func (uc *DeleteInvoiceUseCase) Execute(ctx context.Context, input DeleteInvoiceInput) (*DeleteInvoiceOutput, error) {
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
			"not authorized to delete this invoice",
			domainerror.ErrNotAuthorizedToModifyInvoice,
		)
	}

	if err := uc.invoiceRepo.Delete(ctx, input.InvoiceID); err != nil {
		return nil, fmt.Errorf("failed to delete invoice: %w", err)
	}

	return &DeleteInvoiceOutput{Success: true}, nil
}
