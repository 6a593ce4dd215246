// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// ExtractedInvoiceItem is one line item parsed from a receipt image.
type ExtractedInvoiceItem struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// ExtractedInvoice is the structured result of AI receipt extraction.
// Fields may be blank or zero when the model could not read them; the use case
// decides whether the extraction is usable.
type ExtractedInvoice struct {
	SellerName  string
	Address     string
	DateText    string
	TotalAmount decimal.Decimal
	Items       []ExtractedInvoiceItem
}

// InvoiceExtractionService defines the external AI contract: an invoice image
// in, a structured extraction out.
type InvoiceExtractionService interface {
	// IsAvailable reports whether the service is configured.
	IsAvailable() bool

	// Extract reads the receipt image and returns the extracted fields.
	Extract(ctx context.Context, image []byte, mimeType string) (*ExtractedInvoice, error)
}
