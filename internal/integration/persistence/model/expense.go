// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketvision/ledger/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index"`
	StoreName     string          `gorm:"type:varchar(255)"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	Note          string          `gorm:"type:varchar(255)"`
	ExpenseDate   time.Time       `gorm:"type:date;not null;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:            m.ID,
		UserID:        m.UserID,
		CategoryID:    m.CategoryID,
		StoreName:     m.StoreName,
		TotalAmount:   m.TotalAmount,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		Note:          m.Note,
		ExpenseDate:   m.ExpenseDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:            expense.ID,
		UserID:        expense.UserID,
		CategoryID:    expense.CategoryID,
		StoreName:     expense.StoreName,
		TotalAmount:   expense.TotalAmount,
		PaymentMethod: string(expense.PaymentMethod),
		Note:          expense.Note,
		ExpenseDate:   expense.ExpenseDate,
		CreatedAt:     expense.CreatedAt,
		UpdatedAt:     expense.UpdatedAt,
	}
}
