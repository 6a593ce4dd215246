// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketvision/ledger/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database. The composite
// unique index backs the one-budget-per-bucket rule.
type BudgetModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_bucket"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_bucket"`
	MonthYear   string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_budget_bucket"`
	LimitAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SpentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:          m.ID,
		UserID:      m.UserID,
		CategoryID:  m.CategoryID,
		MonthYear:   m.MonthYear,
		LimitAmount: m.LimitAmount,
		SpentAmount: m.SpentAmount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:          budget.ID,
		UserID:      budget.UserID,
		CategoryID:  budget.CategoryID,
		MonthYear:   budget.MonthYear,
		LimitAmount: budget.LimitAmount,
		SpentAmount: budget.SpentAmount,
		CreatedAt:   budget.CreatedAt,
		UpdatedAt:   budget.UpdatedAt,
	}
}
