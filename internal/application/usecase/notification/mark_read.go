// Package notification contains notification read-model use cases.
package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/application/adapter"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

// MarkReadInput represents the input for marking a notification read.
type MarkReadInput struct {
	NotificationID uuid.UUID
	UserID         uuid.UUID
}

// MarkReadOutput represents the output of marking a notification read.
type MarkReadOutput struct {
	Success bool
}

// MarkReadUseCase handles marking a single notification as read.
type MarkReadUseCase struct {
	notificationRepo adapter.NotificationRepository
	cache            adapter.UnreadCountCache
}

// NewMarkReadUseCase creates a new MarkReadUseCase instance. cache may be nil.
func NewMarkReadUseCase(notificationRepo adapter.NotificationRepository, cache adapter.UnreadCountCache) *MarkReadUseCase {
	return &MarkReadUseCase{
		notificationRepo: notificationRepo,
		cache:            cache,
	}
}

// Execute marks the notification as read and drops the cached unread count.
func (uc *MarkReadUseCase) Execute(ctx context.Context, input MarkReadInput) (*MarkReadOutput, error) {
	notification, err := uc.notificationRepo.FindByID(ctx, input.NotificationID)
	if err != nil {
		if errors.Is(err, domainerror.ErrNotificationNotFound) {
			return nil, domainerror.NewNotificationError(
				domainerror.ErrCodeNotificationNotFound,
				"notification not found",
				domainerror.ErrNotificationNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	if notification.UserID != input.UserID {
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeNotAuthorizedNotification,
			"not authorized to modify this notification",
			domainerror.ErrNotAuthorizedToModifyNotification,
		)
	}

	if err := uc.notificationRepo.MarkRead(ctx, input.NotificationID); err != nil {
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}

	uc.invalidateCache(ctx, input.UserID)

	return &MarkReadOutput{Success: true}, nil
}

func (uc *MarkReadUseCase) invalidateCache(ctx context.Context, userID uuid.UUID) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, userID); err != nil {
		slog.Debug("Unread count cache invalidation failed", "user_id", userID, "error", err)
	}
}
