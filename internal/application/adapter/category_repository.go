// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/domain/entity"
)

// CategoryRepository defines the read surface for categories. Category CRUD
// lives outside this core; the ledger only resolves names for reporting.
type CategoryRepository interface {
	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByUser retrieves all categories for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)
}
