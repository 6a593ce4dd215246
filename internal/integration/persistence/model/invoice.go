// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketvision/ledger/internal/domain/entity"
)

// InvoiceModel represents the invoices table in the database.
type InvoiceModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index"`
	StoreName     string          `gorm:"type:varchar(255);not null"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	Note          string          `gorm:"type:text"`
	ImageURL      string          `gorm:"type:varchar(500)"`
	InvoiceDate   time.Time       `gorm:"type:date;not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	// Line items, removed together with the invoice.
	Items []InvoiceItemModel `gorm:"foreignKey:InvoiceID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the InvoiceModel.
func (InvoiceModel) TableName() string {
	return "invoices"
}

// InvoiceItemModel represents the invoice_items table in the database.
type InvoiceItemModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemName   string          `gorm:"type:varchar(255);not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Quantity   int             `gorm:"not null;default:1"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// TableName returns the table name for the InvoiceItemModel.
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// ToEntity converts an InvoiceModel (with items) to a domain Invoice entity.
func (m *InvoiceModel) ToEntity() *entity.Invoice {
	items := make([]*entity.InvoiceItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = &entity.InvoiceItem{
			ID:         item.ID,
			InvoiceID:  item.InvoiceID,
			ItemName:   item.ItemName,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			TotalPrice: item.TotalPrice,
		}
	}

	return &entity.Invoice{
		ID:            m.ID,
		UserID:        m.UserID,
		CategoryID:    m.CategoryID,
		StoreName:     m.StoreName,
		TotalAmount:   m.TotalAmount,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		Note:          m.Note,
		ImageURL:      m.ImageURL,
		InvoiceDate:   m.InvoiceDate,
		Items:         items,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// InvoiceFromEntity creates an InvoiceModel (with items) from a domain Invoice entity.
func InvoiceFromEntity(invoice *entity.Invoice) *InvoiceModel {
	items := make([]InvoiceItemModel, len(invoice.Items))
	for i, item := range invoice.Items {
		items[i] = InvoiceItemModel{
			ID:         item.ID,
			InvoiceID:  item.InvoiceID,
			ItemName:   item.ItemName,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			TotalPrice: item.TotalPrice,
		}
	}

	return &InvoiceModel{
		ID:            invoice.ID,
		UserID:        invoice.UserID,
		CategoryID:    invoice.CategoryID,
		StoreName:     invoice.StoreName,
		TotalAmount:   invoice.TotalAmount,
		PaymentMethod: string(invoice.PaymentMethod),
		Note:          invoice.Note,
		ImageURL:      invoice.ImageURL,
		InvoiceDate:   invoice.InvoiceDate,
		Items:         items,
		CreatedAt:     invoice.CreatedAt,
		UpdatedAt:     invoice.UpdatedAt,
	}
}
