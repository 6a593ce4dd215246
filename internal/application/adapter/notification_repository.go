// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/domain/entity"
)

// NotificationRepository defines the interface for the append-only notification sink.
type NotificationRepository interface {
	// Create appends a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindByUser retrieves all notifications for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// CountUnreadByUser counts unread notifications for a user.
	CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead flips the read flag on one notification.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead flips the read flag on every unread notification of a user
	// and returns how many rows changed.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// Delete removes a notification.
	Delete(ctx context.Context, id uuid.UUID) error
}
