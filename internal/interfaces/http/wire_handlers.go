package http

import (
	"github.com/conseccomms/conseccomms/internal/interfaces/http/handlers"
	adminHandlers "github.com/conseccomms/conseccomms/internal/interfaces/http/handlers/admin"
	driveHandlers "github.com/conseccomms/conseccomms/internal/interfaces/http/handlers/drive"
	proposalHandlers "github.com/conseccomms/conseccomms/internal/interfaces/http/handlers/proposal"
	ticketHandlers "github.com/conseccomms/conseccomms/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler         *handlers.AuthHandler
	notificationHandler *handlers.NotificationHandler
	settingHandler      *handlers.SettingHandler
	dashboardHandler    *handlers.DashboardHandler
	feedbackHandler     *handlers.FeedbackHandler

	ticketHandler   *ticketHandlers.TicketHandler
	driveHandler    *driveHandlers.DriveHandler
	proposalHandler *proposalHandlers.ProposalHandler

	adminUserHandler *adminHandlers.UserHandler
}

func newHandlers(c *Container) *allHandlers {
	u := c.ucs
	log := c.log

	return &allHandlers{
		authHandler: handlers.NewAuthHandler(
			u.register, u.login, u.getCurrentUser, u.changePassword, u.changeEmail, log),
		notificationHandler: handlers.NewNotificationHandler(
			u.listNotifications, u.unreadCount, u.markAsRead, u.markAllAsRead, log),
		settingHandler: handlers.NewSettingHandler(
			u.getSettings, u.saveSettings, u.reloadSettings, log),
		dashboardHandler: handlers.NewDashboardHandler(u.dashboardSummary, log),
		feedbackHandler:  handlers.NewFeedbackHandler(u.submitFeedback, u.listFeedback, log),

		ticketHandler: ticketHandlers.NewTicketHandler(
			u.createTicket, u.getTicket, u.listTickets, u.changeStatus,
			u.classifyTicket, u.nextStatuses, u.ticketInsights, log),
		driveHandler: driveHandlers.NewDriveHandler(
			u.registerFile, u.listFiles, u.toggleFavorite, u.moveFile,
			u.deleteFile, u.createFolder, u.listFolders, u.driveInsights, log),
		proposalHandler: proposalHandlers.NewProposalHandler(
			u.createProposal, u.getProposal, u.listProposals, u.updateProposal,
			u.proposalStatus, u.deleteProposal, u.proposalInsights, log),

		adminUserHandler: adminHandlers.NewUserHandler(u.listUsers, u.exportUsers, log),
	}
}
