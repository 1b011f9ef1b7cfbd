package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/conseccomms/conseccomms/internal/interfaces/http/handlers"
	"github.com/conseccomms/conseccomms/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	notifications := engine.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", config.NotificationHandler.ListNotifications)
		notifications.GET("/unread-count", config.NotificationHandler.GetUnreadCount)
		notifications.PATCH("/read-all", config.NotificationHandler.MarkAllAsRead)
		notifications.PATCH("/:id/read", config.NotificationHandler.MarkAsRead)
	}
}
