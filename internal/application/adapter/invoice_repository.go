// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/domain/entity"
)

// InvoiceRepository defines the interface for invoice persistence operations.
type InvoiceRepository interface {
	// Create creates a new invoice together with its line items.
	Create(ctx context.Context, invoice *entity.Invoice) error

	// FindByID retrieves an invoice (with items) by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)

	// FindByUser retrieves all invoices for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Invoice, error)

	// Update updates an existing invoice in the database.
	Update(ctx context.Context, invoice *entity.Invoice) error

	// Delete removes an invoice and its line items.
	Delete(ctx context.Context, id uuid.UUID) error
}
