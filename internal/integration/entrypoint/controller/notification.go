// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/application/usecase/notification"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
	"github.com/pocketvision/ledger/internal/integration/entrypoint/dto"
	"github.com/pocketvision/ledger/internal/integration/entrypoint/middleware"
)

// NotificationController handles notification endpoints.
type NotificationController struct {
	listUseCase        *notification.ListNotificationsUseCase
	countUnreadUseCase *notification.CountUnreadUseCase
	markReadUseCase    *notification.MarkReadUseCase
	markAllReadUseCase *notification.MarkAllReadUseCase
	deleteUseCase      *notification.DeleteNotificationUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	listUseCase *notification.ListNotificationsUseCase,
	countUnreadUseCase *notification.CountUnreadUseCase,
	markReadUseCase *notification.MarkReadUseCase,
	markAllReadUseCase *notification.MarkAllReadUseCase,
	deleteUseCase *notification.DeleteNotificationUseCase,
) *NotificationController {
	return &NotificationController{
		listUseCase:        listUseCase,
		countUnreadUseCase: countUnreadUseCase,
		markReadUseCase:    markReadUseCase,
		markAllReadUseCase: markAllReadUseCase,
		deleteUseCase:      deleteUseCase,
	}
}

// List handles GET /notifications requests.
func (c *NotificationController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), notification.ListNotificationsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve notifications",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(output.Notifications))
}

// UnreadCount handles GET /notifications/unread-count requests.
func (c *NotificationController) UnreadCount(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.countUnreadUseCase.Execute(ctx.Request.Context(), notification.CountUnreadInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to count unread notifications",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.UnreadCountResponse{
		Count: output.Count,
	})
}

// MarkRead handles PATCH /notifications/:id/read requests.
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	notificationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid notification ID format",
		})
		return
	}

	_, err = c.markReadUseCase.Execute(ctx.Request.Context(), notification.MarkReadInput{
		NotificationID: notificationID,
		UserID:         userID,
	})
	if err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Notification marked as read",
	})
}

// MarkAllRead handles PATCH /notifications/read-all requests.
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.markAllReadUseCase.Execute(ctx.Request.Context(), notification.MarkAllReadInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to mark notifications as read",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MarkAllReadResponse{
		Updated: output.Updated,
	})
}

// Delete handles DELETE /notifications/:id requests.
func (c *NotificationController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	notificationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid notification ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), notification.DeleteNotificationInput{
		NotificationID: notificationID,
		UserID:         userID,
	})
	if err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleNotificationError handles notification errors and returns appropriate HTTP responses.
func (c *NotificationController) handleNotificationError(ctx *gin.Context, err error) {
	var notificationErr *domainerror.NotificationError
	if errors.As(err, &notificationErr) {
		statusCode := http.StatusInternalServerError
		switch notificationErr.Code {
		case domainerror.ErrCodeNotificationNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeNotAuthorizedNotification:
			statusCode = http.StatusForbidden
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: notificationErr.Message,
			Code:  string(notificationErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
