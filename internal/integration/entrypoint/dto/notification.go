// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocketvision/ledger/internal/domain/entity"
)

// NotificationResponse represents a single notification in API responses.
type NotificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	RelatedID *string   `json:"related_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationListResponse represents the response for listing notifications.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
}

// UnreadCountResponse represents the unread notification counter.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// MarkAllReadResponse represents the response for marking all notifications read.
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// ToNotificationResponse converts a domain Notification entity to a DTO.
func ToNotificationResponse(notification *entity.Notification) NotificationResponse {
	response := NotificationResponse{
		ID:        notification.ID.String(),
		UserID:    notification.UserID.String(),
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      string(notification.Type),
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}

	if notification.RelatedID != nil {
		relatedIDStr := notification.RelatedID.String()
		response.RelatedID = &relatedIDStr
	}

	return response
}

// ToNotificationListResponse converts a slice of notifications to a list DTO.
func ToNotificationListResponse(notifications []*entity.Notification) NotificationListResponse {
	items := make([]NotificationResponse, len(notifications))
	for i, notification := range notifications {
		items[i] = ToNotificationResponse(notification)
	}
	return NotificationListResponse{
		Notifications: items,
		Total:         len(items),
	}
}
