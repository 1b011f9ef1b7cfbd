package http

import (
	dashboardUsecases "github.com/conseccomms/conseccomms/internal/application/dashboard/usecases"
	driveUsecases "github.com/conseccomms/conseccomms/internal/application/drive/usecases"
	feedbackUsecases "github.com/conseccomms/conseccomms/internal/application/feedback/usecases"
	notificationUsecases "github.com/conseccomms/conseccomms/internal/application/notification/usecases"
	proposalUsecases "github.com/conseccomms/conseccomms/internal/application/proposal/usecases"
	settingUsecases "github.com/conseccomms/conseccomms/internal/application/setting/usecases"
	ticketUsecases "github.com/conseccomms/conseccomms/internal/application/ticket/usecases"
	userUsecases "github.com/conseccomms/conseccomms/internal/application/user/usecases"
)

// allUseCases holds every use case instance, grouped by app.
type allUseCases struct {
	// Notifications
	createNotification *notificationUsecases.CreateNotificationUseCase
	listNotifications  *notificationUsecases.ListNotificationsUseCase
	unreadCount        *notificationUsecases.GetUnreadCountUseCase
	markAsRead         *notificationUsecases.MarkAsReadUseCase
	markAllAsRead      *notificationUsecases.MarkAllAsReadUseCase

	// Settings
	getSettings    *settingUsecases.GetSettingsUseCase
	saveSettings   *settingUsecases.SaveSettingsUseCase
	reloadSettings *settingUsecases.ReloadSettingsUseCase

	// Users & auth
	register       *userUsecases.RegisterUseCase
	login          *userUsecases.LoginUseCase
	getCurrentUser *userUsecases.GetCurrentUserUseCase
	changePassword *userUsecases.ChangePasswordUseCase
	changeEmail    *userUsecases.ChangeEmailUseCase
	listUsers      *userUsecases.ListUsersUseCase
	exportUsers    *userUsecases.ExportUsersUseCase

	// Desk
	createTicket   *ticketUsecases.CreateTicketUseCase
	getTicket      *ticketUsecases.GetTicketUseCase
	listTickets    *ticketUsecases.ListTicketsUseCase
	changeStatus   *ticketUsecases.ChangeStatusUseCase
	classifyTicket *ticketUsecases.ClassifyTicketUseCase
	nextStatuses   *ticketUsecases.NextStatusesUseCase
	ticketInsights *ticketUsecases.TicketInsightsUseCase

	// Drive
	registerFile   *driveUsecases.RegisterFileUseCase
	listFiles      *driveUsecases.ListFilesUseCase
	toggleFavorite *driveUsecases.ToggleFavoriteUseCase
	moveFile       *driveUsecases.MoveFileUseCase
	deleteFile     *driveUsecases.DeleteFileUseCase
	createFolder   *driveUsecases.CreateFolderUseCase
	listFolders    *driveUsecases.ListFoldersUseCase
	driveInsights  *driveUsecases.DriveInsightsUseCase

	// Quotes
	createProposal   *proposalUsecases.CreateProposalUseCase
	getProposal      *proposalUsecases.GetProposalUseCase
	listProposals    *proposalUsecases.ListProposalsUseCase
	updateProposal   *proposalUsecases.UpdateProposalUseCase
	proposalStatus   *proposalUsecases.ChangeStatusUseCase
	deleteProposal   *proposalUsecases.DeleteProposalUseCase
	proposalInsights *proposalUsecases.ProposalInsightsUseCase

	// Cross-app
	dashboardSummary *dashboardUsecases.GetSummaryUseCase
	submitFeedback   *feedbackUsecases.SubmitFeedbackUseCase
	listFeedback     *feedbackUsecases.ListFeedbackUseCase
}

func newUseCases(c *Container) *allUseCases {
	r := c.repos
	s := c.svcs
	log := c.log

	u := &allUseCases{}

	u.createNotification = notificationUsecases.NewCreateNotificationUseCase(r.notificationRepo, s.pusher, s.metrics, log)
	u.listNotifications = notificationUsecases.NewListNotificationsUseCase(r.notificationRepo, log)
	u.unreadCount = notificationUsecases.NewGetUnreadCountUseCase(r.notificationRepo, log)
	u.markAsRead = notificationUsecases.NewMarkAsReadUseCase(r.notificationRepo, log)
	u.markAllAsRead = notificationUsecases.NewMarkAllAsReadUseCase(r.notificationRepo, log)
	notifier := u.createNotification

	u.getSettings = settingUsecases.NewGetSettingsUseCase(r.settingRepo, s.settingsStore, log)
	u.saveSettings = settingUsecases.NewSaveSettingsUseCase(r.settingRepo, s.settingsStore, s.pushCheck, log)
	u.reloadSettings = settingUsecases.NewReloadSettingsUseCase(s.settingsStore, u.getSettings)

	u.register = userUsecases.NewRegisterUseCase(r.userRepo, s.hasher, s.jwtService, log)
	u.login = userUsecases.NewLoginUseCase(r.userRepo, s.hasher, s.jwtService, log)
	u.getCurrentUser = userUsecases.NewGetCurrentUserUseCase(r.userRepo, log)
	u.changePassword = userUsecases.NewChangePasswordUseCase(r.userRepo, s.hasher, notifier, s.emailSender, log)
	u.changeEmail = userUsecases.NewChangeEmailUseCase(r.userRepo, s.hasher, log)
	u.listUsers = userUsecases.NewListUsersUseCase(r.userRepo, log)
	u.exportUsers = userUsecases.NewExportUsersUseCase(r.userRepo, c.cfg.PlanRevenue, log)

	u.createTicket = ticketUsecases.NewCreateTicketUseCase(r.ticketRepo, s.classifier, s.markdown, notifier, log)
	u.getTicket = ticketUsecases.NewGetTicketUseCase(r.ticketRepo, log)
	u.listTickets = ticketUsecases.NewListTicketsUseCase(r.ticketRepo, log)
	u.changeStatus = ticketUsecases.NewChangeStatusUseCase(r.ticketRepo, r.userRepo, notifier, s.emailSender, log)
	u.classifyTicket = ticketUsecases.NewClassifyTicketUseCase(r.ticketRepo, s.classifier, notifier, log)
	u.nextStatuses = ticketUsecases.NewNextStatusesUseCase(r.ticketRepo, log)
	u.ticketInsights = ticketUsecases.NewTicketInsightsUseCase(r.ticketRepo, s.synthesizer, log)

	u.registerFile = driveUsecases.NewRegisterFileUseCase(r.fileRepo, r.folderRepo, s.classifier, notifier, driveUsecases.DefaultStorageKey, log)
	u.listFiles = driveUsecases.NewListFilesUseCase(r.fileRepo, log)
	u.toggleFavorite = driveUsecases.NewToggleFavoriteUseCase(r.fileRepo, log)
	u.moveFile = driveUsecases.NewMoveFileUseCase(r.fileRepo, r.folderRepo, log)
	u.deleteFile = driveUsecases.NewDeleteFileUseCase(r.fileRepo, log)
	u.createFolder = driveUsecases.NewCreateFolderUseCase(r.folderRepo, log)
	u.listFolders = driveUsecases.NewListFoldersUseCase(r.folderRepo, log)
	u.driveInsights = driveUsecases.NewDriveInsightsUseCase(r.fileRepo, s.synthesizer, log)

	u.createProposal = proposalUsecases.NewCreateProposalUseCase(r.proposalRepo, r.proposalNumbers, s.txManager, log)
	u.getProposal = proposalUsecases.NewGetProposalUseCase(r.proposalRepo, s.markdown, log)
	u.listProposals = proposalUsecases.NewListProposalsUseCase(r.proposalRepo, log)
	u.updateProposal = proposalUsecases.NewUpdateProposalUseCase(r.proposalRepo, log)
	u.proposalStatus = proposalUsecases.NewChangeStatusUseCase(r.proposalRepo, r.userRepo, notifier, s.emailSender, log)
	u.deleteProposal = proposalUsecases.NewDeleteProposalUseCase(r.proposalRepo, log)
	u.proposalInsights = proposalUsecases.NewProposalInsightsUseCase(r.proposalRepo, s.synthesizer, log)

	u.dashboardSummary = dashboardUsecases.NewGetSummaryUseCase(r.ticketRepo, r.fileRepo, r.proposalRepo, s.dashboardCache, log)
	u.submitFeedback = feedbackUsecases.NewSubmitFeedbackUseCase(r.feedbackRepo, s.classifier, notifier, log)
	u.listFeedback = feedbackUsecases.NewListFeedbackUseCase(r.feedbackRepo, log)

	return u
}
