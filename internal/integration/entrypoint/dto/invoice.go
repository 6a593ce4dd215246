// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocketvision/ledger/internal/domain/entity"
)

// UpdateInvoiceRequest represents the request body for invoice correction.
type UpdateInvoiceRequest struct {
	StoreName     *string  `json:"store_name,omitempty" binding:"omitempty,max=255"`
	TotalAmount   *float64 `json:"total_amount,omitempty"`
	Note          *string  `json:"note,omitempty" binding:"omitempty,max=255"`
	CategoryID    *string  `json:"category_id,omitempty"`
	PaymentMethod *string  `json:"payment_method,omitempty"`
}

// InvoiceItemResponse represents a single invoice line item in API responses.
type InvoiceItemResponse struct {
	ID         string `json:"id"`
	ItemName   string `json:"item_name"`
	UnitPrice  string `json:"unit_price"`
	Quantity   int    `json:"quantity"`
	TotalPrice string `json:"total_price"`
}

// InvoiceResponse represents a single invoice in API responses.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	UserID        string                `json:"user_id"`
	CategoryID    *string               `json:"category_id,omitempty"`
	StoreName     string                `json:"store_name"`
	TotalAmount   string                `json:"total_amount"`
	PaymentMethod string                `json:"payment_method"`
	Note          string                `json:"note"`
	ImageURL      string                `json:"image_url"`
	InvoiceDate   string                `json:"invoice_date"`
	Items         []InvoiceItemResponse `json:"items"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// InvoiceListResponse represents the response for listing invoices.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Total    int               `json:"total"`
}

// ToInvoiceResponse converts a domain Invoice entity to an InvoiceResponse DTO.
func ToInvoiceResponse(invoice *entity.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(invoice.Items))
	for i, item := range invoice.Items {
		items[i] = InvoiceItemResponse{
			ID:         item.ID.String(),
			ItemName:   item.ItemName,
			UnitPrice:  item.UnitPrice.String(),
			Quantity:   item.Quantity,
			TotalPrice: item.TotalPrice.String(),
		}
	}

	response := InvoiceResponse{
		ID:            invoice.ID.String(),
		UserID:        invoice.UserID.String(),
		StoreName:     invoice.StoreName,
		TotalAmount:   invoice.TotalAmount.String(),
		PaymentMethod: string(invoice.PaymentMethod),
		Note:          invoice.Note,
		ImageURL:      invoice.ImageURL,
		InvoiceDate:   invoice.InvoiceDate.Format("2006-01-02"),
		Items:         items,
		CreatedAt:     invoice.CreatedAt,
		UpdatedAt:     invoice.UpdatedAt,
	}

	if invoice.CategoryID != nil {
		categoryIDStr := invoice.CategoryID.String()
		response.CategoryID = &categoryIDStr
	}

	return response
}

// ToInvoiceListResponse converts a slice of invoices to an InvoiceListResponse.
func ToInvoiceListResponse(invoices []*entity.Invoice) InvoiceListResponse {
	items := make([]InvoiceResponse, len(invoices))
	for i, invoice := range invoices {
		items[i] = ToInvoiceResponse(invoice)
	}
	return InvoiceListResponse{
		Invoices: items,
		Total:    len(items),
	}
}
