// Package notification contains notification read-model use cases.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/application/adapter"
)

// CountUnreadInput represents the input for the unread counter.
type CountUnreadInput struct {
	UserID uuid.UUID
}

// CountUnreadOutput represents the output of the unread counter.
type CountUnreadOutput struct {
	Count int64
}

// CountUnreadUseCase returns the unread notification count, read through the
// cache when one is configured. Cache failures fall back to the repository.
type CountUnreadUseCase struct {
	notificationRepo adapter.NotificationRepository
	cache            adapter.UnreadCountCache
}

// NewCountUnreadUseCase creates a new CountUnreadUseCase instance. cache may
// be nil.
func NewCountUnreadUseCase(notificationRepo adapter.NotificationRepository, cache adapter.UnreadCountCache) *CountUnreadUseCase {
	return &CountUnreadUseCase{
		notificationRepo: notificationRepo,
		cache:            cache,
	}
}

// Execute returns the unread count.
func (uc *CountUnreadUseCase) Execute(ctx context.Context, input CountUnreadInput) (*CountUnreadOutput, error) {
	if uc.cache != nil {
		count, hit, err := uc.cache.Get(ctx, input.UserID)
		if err != nil {
			slog.Debug("Unread count cache read failed", "user_id", input.UserID, "error", err)
		} else if hit {
			return &CountUnreadOutput{Count: count}, nil
		}
	}

	count, err := uc.notificationRepo.CountUnreadByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, input.UserID, count); err != nil {
			slog.Debug("Unread count cache write failed", "user_id", input.UserID, "error", err)
		}
	}

	return &CountUnreadOutput{Count: count}, nil
}
