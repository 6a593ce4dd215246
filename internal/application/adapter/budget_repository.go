// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByUser retrieves all budgets for a given user, newest month first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// FindByUserAndMonth retrieves all budgets for a given user and month.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, monthYear string) ([]*entity.Budget, error)

	// FindByUserCategoryMonth retrieves the budget for one bucket, or nil when
	// no budget is defined for it.
	FindByUserCategoryMonth(ctx context.Context, userID, categoryID uuid.UUID, monthYear string) (*entity.Budget, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// ExistsByID checks whether a budget with the given ID exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// DeleteByID removes a budget from the database.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
