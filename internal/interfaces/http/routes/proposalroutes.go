package routes

import (
	"github.com/gin-gonic/gin"

	proposalhandlers "github.com/conseccomms/conseccomms/internal/interfaces/http/handlers/proposal"
	"github.com/conseccomms/conseccomms/internal/interfaces/http/middleware"
)

type ProposalRouteConfig struct {
	ProposalHandler    *proposalhandlers.ProposalHandler
	AuthMiddleware     *middleware.AuthMiddleware
	SettingsMiddleware *middleware.SettingsMiddleware
}

func SetupProposalRoutes(engine *gin.Engine, config *ProposalRouteConfig) {
	proposals := engine.Group("/proposals")
	proposals.Use(config.AuthMiddleware.RequireAuth(), config.SettingsMiddleware.Load())
	{
		proposals.POST("", config.ProposalHandler.CreateProposal)
		proposals.GET("", config.ProposalHandler.ListProposals)

		proposals.PATCH("/:id/status", config.ProposalHandler.UpdateProposalStatus)
		proposals.GET("/:id/insights", config.ProposalHandler.GetInsights)

		proposals.GET("/:id", config.ProposalHandler.GetProposal)
		proposals.PUT("/:id", config.ProposalHandler.UpdateProposal)
		proposals.DELETE("/:id", config.ProposalHandler.DeleteProposal)
	}
}
