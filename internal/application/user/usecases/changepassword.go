package usecases

import (
	"context"
	stderrors "errors"

	"github.com/conseccomms/conseccomms/internal/application/common"
	notificationUsecases "github.com/conseccomms/conseccomms/internal/application/notification/usecases"
	notificationvo "github.com/conseccomms/conseccomms/internal/domain/notification/valueobjects"
	"github.com/conseccomms/conseccomms/internal/domain/setting"
	"github.com/conseccomms/conseccomms/internal/domain/user"
	vo "github.com/conseccomms/conseccomms/internal/domain/user/valueobjects"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
	Preferences     setting.NotificationPreferences
}

type ChangePasswordUseCase struct {
	userRepo    user.Repository
	hasher      user.PasswordHasher
	notifier    notificationUsecases.Notifier
	emailSender common.EmailSender
	logger      logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	notifier notificationUsecases.Notifier,
	emailSender common.EmailSender,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:    userRepo,
		hasher:      hasher,
		notifier:    notifier,
		emailSender: emailSender,
		logger:      logger,
	}
}

// Execute verifies the current password, stores the new hash and confirms
// the change in-app and, when the email preference is on, by email.
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	newPassword, err := vo.NewPassword(cmd.NewPassword)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	u, err := loadUser(ctx, uc.userRepo, uc.logger, cmd.UserID)
	if err != nil {
		return err
	}
	if err := u.ChangePassword(cmd.CurrentPassword, newPassword, uc.hasher); err != nil {
		if stderrors.Is(err, user.ErrInvalidCredentials) {
			return errors.NewUnauthorizedError("current password is incorrect")
		}
		return errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update password", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to change password")
	}

	uc.notifier.Execute(ctx, notificationUsecases.CreateNotificationCommand{
		UserID:      u.ID(),
		Category:    notificationvo.CategorySecurity,
		Type:        notificationvo.TypeSuccess,
		Title:       "Password changed",
		Message:     "Your password was changed successfully.",
		Preferences: cmd.Preferences,
	})
	if cmd.Preferences.Email {
		common.SendEmailAsync(uc.emailSender, uc.logger, common.EmailTemplatePasswordChanged, u.Email().String(), map[string]string{
			"name": u.FullName(),
		})
	}

	uc.logger.Infow("password changed", "user_id", u.ID())
	return nil
}
