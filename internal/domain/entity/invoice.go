// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice represents an uploaded receipt whose fields were extracted by the
// AI service. A converted invoice produces an Expense but keeps its own row.
type Invoice struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CategoryID    *uuid.UUID
	StoreName     string
	TotalAmount   decimal.Decimal
	PaymentMethod PaymentMethod
	Note          string
	ImageURL      string
	InvoiceDate   time.Time
	Items         []*InvoiceItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// InvoiceItem represents a single line item on an invoice.
type InvoiceItem struct {
	ID         uuid.UUID
	InvoiceID  uuid.UUID
	ItemName   string
	UnitPrice  decimal.Decimal
	Quantity   int
	TotalPrice decimal.Decimal
}

// NewInvoice creates a new Invoice entity.
func NewInvoice(
	userID uuid.UUID,
	storeName string,
	totalAmount decimal.Decimal,
	note string,
	imageURL string,
	invoiceDate time.Time,
) *Invoice {
	now := time.Now().UTC()

	return &Invoice{
		ID:            uuid.New(),
		UserID:        userID,
		StoreName:     storeName,
		TotalAmount:   totalAmount,
		PaymentMethod: PaymentMethodOther,
		Note:          note,
		ImageURL:      imageURL,
		InvoiceDate:   invoiceDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// NewInvoiceItem creates a line item attached to the given invoice.
func NewInvoiceItem(invoiceID uuid.UUID, itemName string, unitPrice decimal.Decimal, quantity int) *InvoiceItem {
	return &InvoiceItem{
		ID:         uuid.New(),
		InvoiceID:  invoiceID,
		ItemName:   itemName,
		UnitPrice:  unitPrice,
		Quantity:   quantity,
		TotalPrice: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}
