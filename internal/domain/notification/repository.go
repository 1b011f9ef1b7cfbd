package notification

import (
	"context"

	vo "github.com/conseccomms/conseccomms/internal/domain/notification/valueobjects"
	"github.com/conseccomms/conseccomms/internal/shared/query"
)

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, userID, id uint) (*Notification, error)
	List(ctx context.Context, userID uint, filter Filter) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkAsRead(ctx context.Context, userID, id uint) error
	MarkAllAsRead(ctx context.Context, userID uint) (int64, error)
}

type Filter struct {
	query.PageFilter
	Category   *vo.Category
	UnreadOnly bool
}
