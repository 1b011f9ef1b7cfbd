package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/conseccomms/conseccomms/internal/interfaces/http/handlers/ticket"
	"github.com/conseccomms/conseccomms/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler      *tickethandlers.TicketHandler
	AuthMiddleware     *middleware.AuthMiddleware
	SettingsMiddleware *middleware.SettingsMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth(), config.SettingsMiddleware.Load())
	{
		// Register specific paths BEFORE parameterized paths to avoid route conflicts
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.GET("/insights", config.TicketHandler.GetInsights)

		tickets.PATCH("/:id/status", config.TicketHandler.UpdateTicketStatus)
		tickets.GET("/:id/next-statuses", config.TicketHandler.GetNextStatuses)
		tickets.POST("/:id/classify", config.TicketHandler.ClassifyTicket)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
	}
}
