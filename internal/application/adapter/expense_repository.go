// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByUser retrieves all expenses for a given user, newest expense date first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)

	// FindByUserCategoryDateRange retrieves all expenses for (user, category)
	// whose expense date falls within [start, end] inclusive. This is the
	// source-of-truth query the budget reconciler sums over.
	FindByUserCategoryDateRange(
		ctx context.Context,
		userID, categoryID uuid.UUID,
		start, end time.Time,
	) ([]*entity.Expense, error)

	// SearchByKeyword retrieves expenses whose store name, note, or amount
	// text contains the keyword (case-insensitive), newest first.
	SearchByKeyword(ctx context.Context, userID uuid.UUID, keyword string) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
