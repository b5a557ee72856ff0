package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/geepay-ngn/wallet/internal/api/service"
	"github.com/geepay-ngn/wallet/internal/domain/notification"
	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for the notification log
type NotificationHandler struct {
	accountService service.AccountService
	logger         *slog.Logger
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(logger *slog.Logger, accountService service.AccountService) *NotificationHandler {
	return &NotificationHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// List returns all notifications, newest first
func (h *NotificationHandler) List(c *gin.Context) {
	records := h.accountService.ListNotifications()

	responses := make([]NotificationResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, NotificationResponse{
			ID:            rec.ID,
			Title:         rec.Title,
			Message:       rec.Message,
			TransactionID: rec.TransactionID,
			Read:          rec.Read,
			CreatedAt:     rec.CreatedAt.Format(time.RFC3339),
		})
	}

	RespondOK(c, responses)
}

// UnreadCount returns the unread notification badge count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	RespondOK(c, UnreadCountResponse{Unread: h.accountService.UnreadCount()})
}

// MarkRead flips a notification's read flag. Marking twice is a no-op
// success; unknown ids return 404.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")

	if err := h.accountService.MarkNotificationRead(c.Request.Context(), id); err != nil {
		var notFound notification.ErrNotFound
		if errors.As(err, &notFound) {
			RespondNotFound(c, "Notification not found")
			return
		}
		h.logger.Error("Failed to mark notification read", "id", id, "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, gin.H{"id": id, "read": true})
}
