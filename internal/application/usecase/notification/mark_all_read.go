// Package notification contains notification read-model use cases.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/application/adapter"
)

// MarkAllReadInput represents the input for marking all notifications read.
type MarkAllReadInput struct {
	UserID uuid.UUID
}

// MarkAllReadOutput represents the output of marking all notifications read.
type MarkAllReadOutput struct {
	Updated int64
}

// MarkAllReadUseCase handles marking every unread notification of a user as
// read in one pass.
type MarkAllReadUseCase struct {
	notificationRepo adapter.NotificationRepository
	cache            adapter.UnreadCountCache
}

// NewMarkAllReadUseCase creates a new MarkAllReadUseCase instance. cache may
// be nil.
func NewMarkAllReadUseCase(notificationRepo adapter.NotificationRepository, cache adapter.UnreadCountCache) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{
		notificationRepo: notificationRepo,
		cache:            cache,
	}
}

// Execute marks all notifications read and drops the cached unread count.
func (uc *MarkAllReadUseCase) Execute(ctx context.Context, input MarkAllReadInput) (*MarkAllReadOutput, error) {
	updated, err := uc.notificationRepo.MarkAllRead(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, input.UserID); err != nil {
			slog.Debug("Unread count cache invalidation failed", "user_id", input.UserID, "error", err)
		}
	}

	return &MarkAllReadOutput{Updated: updated}, nil
}
