package routes

import (
	"github.com/gin-gonic/gin"

	drivehandlers "github.com/conseccomms/conseccomms/internal/interfaces/http/handlers/drive"
	"github.com/conseccomms/conseccomms/internal/interfaces/http/middleware"
)

type DriveRouteConfig struct {
	DriveHandler       *drivehandlers.DriveHandler
	AuthMiddleware     *middleware.AuthMiddleware
	SettingsMiddleware *middleware.SettingsMiddleware
}

func SetupDriveRoutes(engine *gin.Engine, config *DriveRouteConfig) {
	drive := engine.Group("/drive")
	drive.Use(config.AuthMiddleware.RequireAuth(), config.SettingsMiddleware.Load())
	{
		drive.GET("/insights", config.DriveHandler.GetInsights)

		drive.POST("/folders", config.DriveHandler.CreateFolder)
		drive.GET("/folders", config.DriveHandler.ListFolders)

		drive.POST("/files", config.DriveHandler.RegisterFile)
		drive.GET("/files", config.DriveHandler.ListFiles)
		drive.PATCH("/files/:id/favorite", config.DriveHandler.ToggleFavorite)
		drive.PATCH("/files/:id/move", config.DriveHandler.MoveFile)
		drive.DELETE("/files/:id", config.DriveHandler.DeleteFile)
	}
}
