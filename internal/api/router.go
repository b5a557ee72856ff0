package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/geepay-ngn/wallet/internal/api/handler"
	"github.com/geepay-ngn/wallet/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	accountHandler *handler.AccountHandler,
	transferHandler *handler.TransferHandler,
	notificationHandler *handler.NotificationHandler,
	bankHandler *handler.BankHandler,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CorrelationID())

	// API v1 endpoints
	v1 := r.Group("/api/v1")
	{
		// Account operations
		account := v1.Group("/account")
		{
			account.GET("", accountHandler.Get)
			account.GET("/transactions", accountHandler.ListTransactions)
		}

		// Transfer operations
		transfers := v1.Group("/transfers")
		{
			transfers.POST("", transferHandler.Create)
			transfers.POST("/incoming", transferHandler.RecordIncoming)
		}

		// Bank directory and identity resolution
		banks := v1.Group("/banks")
		{
			banks.GET("", bankHandler.List)
			banks.POST("/resolve", transferHandler.ResolveRecipient)
		}

		// Notification log
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.List)
			notifications.GET("/unread-count", notificationHandler.UnreadCount)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
		}
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
