package http

import (
	"github.com/conseccomms/conseccomms/internal/interfaces/http/middleware"
	"github.com/conseccomms/conseccomms/internal/interfaces/http/routes"
)

// SetupRoutes installs the global middleware chain and registers every
// route group.
func (c *Container) SetupRoutes(version string) {
	e := c.engine

	e.Use(middleware.RequestID())
	e.Use(middleware.Recovery(c.log))
	e.Use(middleware.Logger(c.log))
	e.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.Metrics(c.svcs.metrics))

	routes.SetupSystemRoutes(e, &routes.SystemRouteConfig{
		MetricsHandler: c.svcs.metrics.Handler(),
		Version:        version,
	})

	routes.SetupAuthRoutes(e, &routes.AuthRouteConfig{
		AuthHandler:        c.hdlrs.authHandler,
		AuthMiddleware:     c.authMiddleware,
		SettingsMiddleware: c.settingsMiddleware,
		RateLimiter:        c.authRateLimiter,
	})

	routes.SetupTicketRoutes(e, &routes.TicketRouteConfig{
		TicketHandler:      c.hdlrs.ticketHandler,
		AuthMiddleware:     c.authMiddleware,
		SettingsMiddleware: c.settingsMiddleware,
	})

	routes.SetupDriveRoutes(e, &routes.DriveRouteConfig{
		DriveHandler:       c.hdlrs.driveHandler,
		AuthMiddleware:     c.authMiddleware,
		SettingsMiddleware: c.settingsMiddleware,
	})

	routes.SetupProposalRoutes(e, &routes.ProposalRouteConfig{
		ProposalHandler:    c.hdlrs.proposalHandler,
		AuthMiddleware:     c.authMiddleware,
		SettingsMiddleware: c.settingsMiddleware,
	})

	routes.SetupNotificationRoutes(e, &routes.NotificationRouteConfig{
		NotificationHandler: c.hdlrs.notificationHandler,
		AuthMiddleware:      c.authMiddleware,
	})

	routes.SetupSettingRoutes(e, &routes.SettingRouteConfig{
		SettingHandler: c.hdlrs.settingHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupDashboardRoutes(e, &routes.DashboardRouteConfig{
		DashboardHandler:   c.hdlrs.dashboardHandler,
		FeedbackHandler:    c.hdlrs.feedbackHandler,
		AuthMiddleware:     c.authMiddleware,
		SettingsMiddleware: c.settingsMiddleware,
	})

	routes.SetupAdminRoutes(e, &routes.AdminRouteConfig{
		UserHandler:          c.hdlrs.adminUserHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}
