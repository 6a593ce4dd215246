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

// DeleteNotificationInput represents the input for notification deletion.
type DeleteNotificationInput struct {
	NotificationID uuid.UUID
	UserID         uuid.UUID
}

// DeleteNotificationOutput represents the output of notification deletion.
type DeleteNotificationOutput struct {
	Success bool
}

// DeleteNotificationUseCase handles notification deletion logic.
type DeleteNotificationUseCase struct {
	notificationRepo adapter.NotificationRepository
	cache            adapter.UnreadCountCache
}

// NewDeleteNotificationUseCase creates a new DeleteNotificationUseCase
// instance. cache may be nil.
func NewDeleteNotificationUseCase(notificationRepo adapter.NotificationRepository, cache adapter.UnreadCountCache) *DeleteNotificationUseCase {
	return &DeleteNotificationUseCase{
		notificationRepo: notificationRepo,
		cache:            cache,
	}
}

// Execute performs the notification deletion. Deleting an unread notification
// changes the unread count, so the cache entry is dropped either way.
func (uc *DeleteNotificationUseCase) Execute(ctx context.Context, input DeleteNotificationInput) (*DeleteNotificationOutput, error) {
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
			"not authorized to delete this notification",
			domainerror.ErrNotAuthorizedToModifyNotification,
		)
	}

	if err := uc.notificationRepo.Delete(ctx, input.NotificationID); err != nil {
		return nil, fmt.Errorf("failed to delete notification: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, input.UserID); err != nil {
			slog.Debug("Unread count cache invalidation failed", "user_id", input.UserID, "error", err)
		}
	}

	return &DeleteNotificationOutput{Success: true}, nil
}
