package usecases

import (
	"context"

	"github.com/conseccomms/conseccomms/internal/domain/notification"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

type MarkAsReadUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewMarkAsReadUseCase(repo notification.Repository, logger logger.Interface) *MarkAsReadUseCase {
	return &MarkAsReadUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *MarkAsReadUseCase) Execute(ctx context.Context, userID, notificationID uint) error {
	n, err := uc.repo.GetByID(ctx, userID, notificationID)
	if err != nil {
		uc.logger.Errorw("failed to get notification", "notification_id", notificationID, "error", err)
		return errors.NewInternalError("failed to get notification")
	}
	if n == nil {
		return errors.NewNotFoundError("notification not found")
	}
	if n.IsRead() {
		return nil
	}

	if err := uc.repo.MarkAsRead(ctx, userID, notificationID); err != nil {
		uc.logger.Errorw("failed to mark notification as read", "notification_id", notificationID, "error", err)
		return errors.NewInternalError("failed to mark notification as read")
	}
	return nil
}

type MarkAllAsReadUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewMarkAllAsReadUseCase(repo notification.Repository, logger logger.Interface) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute returns how many notifications changed state.
func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, userID uint) (int64, error) {
	updated, err := uc.repo.MarkAllAsRead(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to mark all notifications as read", "user_id", userID, "error", err)
		return 0, errors.NewInternalError("failed to mark all notifications as read")
	}
	uc.logger.Infow("notifications marked as read", "user_id", userID, "count", updated)
	return updated, nil
}
