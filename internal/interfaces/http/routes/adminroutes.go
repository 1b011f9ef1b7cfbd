package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/conseccomms/conseccomms/internal/infrastructure/permission"
	adminhandlers "github.com/conseccomms/conseccomms/internal/interfaces/http/handlers/admin"
	"github.com/conseccomms/conseccomms/internal/interfaces/http/middleware"
)

type AdminRouteConfig struct {
	UserHandler          *adminhandlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	users := engine.Group("/admin/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("",
			config.PermissionMiddleware.RequirePermission(permission.ResourceUsers, permission.ActionList),
			config.UserHandler.ListUsers)
		users.GET("/export",
			config.PermissionMiddleware.RequirePermission(permission.ResourceUsers, permission.ActionExport),
			config.UserHandler.ExportUsers)
	}
}
