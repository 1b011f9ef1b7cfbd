package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/conseccomms/conseccomms/internal/interfaces/http/handlers"
	"github.com/conseccomms/conseccomms/internal/interfaces/http/middleware"
)

type SettingRouteConfig struct {
	SettingHandler *handlers.SettingHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupSettingRoutes(engine *gin.Engine, config *SettingRouteConfig) {
	settings := engine.Group("/settings")
	settings.Use(config.AuthMiddleware.RequireAuth())
	{
		settings.GET("", config.SettingHandler.GetSettings)
		settings.PUT("", config.SettingHandler.SaveSettings)
		settings.POST("/reload", config.SettingHandler.ReloadSettings)
	}
}
