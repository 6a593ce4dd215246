// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType represents the kind of event a notification reports.
type NotificationType string

const (
	NotificationTypeBudgetWarning   NotificationType = "BUDGET_WARNING"
	NotificationTypeNewInvoice      NotificationType = "NEW_INVOICE"
	NotificationTypePaymentReminder NotificationType = "PAYMENT_REMINDER"
	NotificationTypeGeneral         NotificationType = "GENERAL"
)

// Notification represents a user-visible alert. Content is append-only: after
// creation only the read flag changes.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Message   string
	Type      NotificationType
	IsRead    bool
	RelatedID *uuid.UUID // ID of the triggering Budget or Invoice
	CreatedAt time.Time
}

// NewNotification creates a new unread Notification entity.
func NewNotification(userID uuid.UUID, title, message string, notificationType NotificationType, relatedID *uuid.UUID) *Notification {
	return &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notificationType,
		IsRead:    false,
		RelatedID: relatedID,
		CreatedAt: time.Now().UTC(),
	}
}
