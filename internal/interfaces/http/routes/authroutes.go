package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/conseccomms/conseccomms/internal/interfaces/http/handlers"
	"github.com/conseccomms/conseccomms/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler        *handlers.AuthHandler
	AuthMiddleware     *middleware.AuthMiddleware
	SettingsMiddleware *middleware.SettingsMiddleware
	RateLimiter        *middleware.RateLimiter
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", config.RateLimiter.Limit(), config.AuthHandler.Register)
		auth.POST("/login", config.RateLimiter.Limit(), config.AuthHandler.Login)

		authenticated := auth.Group("")
		authenticated.Use(config.AuthMiddleware.RequireAuth(), config.SettingsMiddleware.Load())
		{
			authenticated.GET("/me", config.AuthHandler.GetCurrentUser)
			authenticated.PUT("/password", config.AuthHandler.ChangePassword)
			authenticated.PUT("/email", config.AuthHandler.ChangeEmail)
		}
	}
}
