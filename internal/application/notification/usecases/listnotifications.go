package usecases

import (
	"context"

	commondto "github.com/conseccomms/conseccomms/internal/application/common/dto"
	"github.com/conseccomms/conseccomms/internal/application/notification/dto"
	"github.com/conseccomms/conseccomms/internal/domain/notification"
	vo "github.com/conseccomms/conseccomms/internal/domain/notification/valueobjects"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
	"github.com/conseccomms/conseccomms/internal/shared/query"
)

type ListNotificationsQuery struct {
	UserID     uint
	Category   string
	UnreadOnly bool
	Page       int
	PageSize   int
}

type ListNotificationsUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewListNotificationsUseCase(repo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, q ListNotificationsQuery) (*commondto.ListResult[dto.NotificationDTO], error) {
	filter := notification.Filter{
		PageFilter: query.PageFilter{Page: q.Page, PageSize: q.PageSize},
		UnreadOnly: q.UnreadOnly,
	}
	if q.Category != "" {
		category, err := vo.NewCategory(q.Category)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Category = &category
	}

	items, total, err := uc.repo.List(ctx, q.UserID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", q.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list notifications")
	}

	return commondto.NewListResult(dto.ToNotificationDTOs(items), total, q.Page, filter.Limit()), nil
}
