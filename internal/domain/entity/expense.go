// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how an expense was paid.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodEWallet      PaymentMethod = "E_WALLET"
	PaymentMethodOther        PaymentMethod = "OTHER"
)

// Expense represents a single spending event in the PocketVision Ledger system.
type Expense struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CategoryID    *uuid.UUID // Optional, can be uncategorized
	StoreName     string
	TotalAmount   decimal.Decimal
	PaymentMethod PaymentMethod
	Note          string
	ExpenseDate   time.Time // Calendar date, time-of-day ignored
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	userID uuid.UUID,
	categoryID *uuid.UUID,
	storeName string,
	totalAmount decimal.Decimal,
	paymentMethod PaymentMethod,
	note string,
	expenseDate time.Time,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:            uuid.New(),
		UserID:        userID,
		CategoryID:    categoryID,
		StoreName:     storeName,
		TotalAmount:   totalAmount,
		PaymentMethod: paymentMethod,
		Note:          note,
		ExpenseDate:   expenseDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsValidPaymentMethod reports whether the payment method is one of the known values.
func IsValidPaymentMethod(method PaymentMethod) bool {
	switch method {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodBankTransfer,
		PaymentMethodEWallet, PaymentMethodOther:
		return true
	}
	return false
}
