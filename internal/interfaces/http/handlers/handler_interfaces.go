package handlers

import (
	"context"

	commondto "github.com/conseccomms/conseccomms/internal/application/common/dto"
	feedbackdto "github.com/conseccomms/conseccomms/internal/application/feedback/dto"
	feedbackUsecases "github.com/conseccomms/conseccomms/internal/application/feedback/usecases"
	notificationdto "github.com/conseccomms/conseccomms/internal/application/notification/dto"
	notificationUsecases "github.com/conseccomms/conseccomms/internal/application/notification/usecases"
	settingUsecases "github.com/conseccomms/conseccomms/internal/application/setting/usecases"
	userdto "github.com/conseccomms/conseccomms/internal/application/user/dto"
	userUsecases "github.com/conseccomms/conseccomms/internal/application/user/usecases"
	"github.com/conseccomms/conseccomms/internal/domain/dashboard"
	"github.com/conseccomms/conseccomms/internal/domain/setting"
)

// Use case interfaces for the handlers in this package - enable unit
// testing with mocks.

type registerUseCase interface {
	Execute(ctx context.Context, cmd userUsecases.RegisterCommand) (*userdto.AuthResponse, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd userUsecases.LoginCommand) (*userdto.AuthResponse, error)
}

type getCurrentUserUseCase interface {
	Execute(ctx context.Context, userID uint) (*userdto.UserDTO, error)
}

type changePasswordUseCase interface {
	Execute(ctx context.Context, cmd userUsecases.ChangePasswordCommand) error
}

type changeEmailUseCase interface {
	Execute(ctx context.Context, cmd userUsecases.ChangeEmailCommand) (*userdto.UserDTO, error)
}

type listNotificationsUseCase interface {
	Execute(ctx context.Context, q notificationUsecases.ListNotificationsQuery) (*commondto.ListResult[notificationdto.NotificationDTO], error)
}

type unreadCountUseCase interface {
	Execute(ctx context.Context, userID uint) (int64, error)
}

type markAsReadUseCase interface {
	Execute(ctx context.Context, userID, notificationID uint) error
}

type markAllAsReadUseCase interface {
	Execute(ctx context.Context, userID uint) (int64, error)
}

type getSettingsUseCase interface {
	Execute(ctx context.Context, q settingUsecases.GetSettingsQuery) (setting.Settings, error)
}

type saveSettingsUseCase interface {
	Execute(ctx context.Context, cmd settingUsecases.SaveSettingsCommand) (setting.Settings, error)
}

type reloadSettingsUseCase interface {
	Execute(ctx context.Context, q settingUsecases.GetSettingsQuery) (setting.Settings, error)
}

type dashboardSummaryUseCase interface {
	Execute(ctx context.Context, userID uint) (*dashboard.Summary, error)
}

type submitFeedbackUseCase interface {
	Execute(ctx context.Context, cmd feedbackUsecases.SubmitFeedbackCommand) (*feedbackdto.FeedbackDTO, error)
}

type listFeedbackUseCase interface {
	Execute(ctx context.Context, q feedbackUsecases.ListFeedbackQuery) (*commondto.ListResult[feedbackdto.FeedbackDTO], error)
}
