package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/conseccomms/conseccomms/internal/interfaces/http/handlers"
	"github.com/conseccomms/conseccomms/internal/interfaces/http/middleware"
)

type DashboardRouteConfig struct {
	DashboardHandler   *handlers.DashboardHandler
	FeedbackHandler    *handlers.FeedbackHandler
	AuthMiddleware     *middleware.AuthMiddleware
	SettingsMiddleware *middleware.SettingsMiddleware
}

// SetupDashboardRoutes registers the cross-app endpoints: the dashboard
// summary and product feedback.
func SetupDashboardRoutes(engine *gin.Engine, config *DashboardRouteConfig) {
	dashboard := engine.Group("/dashboard")
	dashboard.Use(config.AuthMiddleware.RequireAuth())
	{
		dashboard.GET("/summary", config.DashboardHandler.GetSummary)
	}

	feedback := engine.Group("/feedback")
	feedback.Use(config.AuthMiddleware.RequireAuth(), config.SettingsMiddleware.Load())
	{
		feedback.POST("", config.FeedbackHandler.SubmitFeedback)
		feedback.GET("", config.FeedbackHandler.ListFeedback)
	}
}
