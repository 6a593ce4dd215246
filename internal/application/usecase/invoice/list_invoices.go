// Package invoice contains the receipt ingestion pipeline.
package invoice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/application/adapter"
	"github.com/pocketvision/ledger/internal/domain/entity"
)

// ListInvoicesInput represents the input for listing invoices.
type ListInvoicesInput struct {
	UserID uuid.UUID
}

// ListInvoicesOutput represents the output of listing invoices.
type ListInvoicesOutput struct {
	Invoices []*entity.Invoice
}

// ListInvoicesUseCase handles invoice listing, newest first.
type ListInvoicesUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewListInvoicesUseCase creates a new ListInvoicesUseCase instance.
func NewListInvoicesUseCase(invoiceRepo adapter.InvoiceRepository) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute performs the invoice listing.
func (uc *ListInvoicesUseCase) Execute(ctx context.Context, input ListInvoicesInput) (*ListInvoicesOutput, error) {
	invoices, err := uc.invoiceRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	return &ListInvoicesOutput{Invoices: invoices}, nil
}
