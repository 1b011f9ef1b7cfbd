package usecases

import (
	"context"
	"time"

	"github.com/conseccomms/conseccomms/internal/application/notification/dto"
	"github.com/conseccomms/conseccomms/internal/domain/notification"
	vo "github.com/conseccomms/conseccomms/internal/domain/notification/valueobjects"
	"github.com/conseccomms/conseccomms/internal/domain/setting"
	"github.com/conseccomms/conseccomms/internal/shared/goroutine"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

const pushTimeout = 15 * time.Second

// PushMessage is what a desktop push carries. Target is the recipient's own
// push URL. AutoDismiss is set for non-critical notifications.
type PushMessage struct {
	Target      string
	Title       string
	Message     string
	Category    string
	AutoDismiss bool
}

type Pusher interface {
	Push(ctx context.Context, msg PushMessage) error
}

// GateRecorder observes gate decisions for metrics.
type GateRecorder interface {
	RecordGateDecision(category string, allowed bool)
}

type CreateNotificationCommand struct {
	UserID      uint
	Category    vo.Category
	Type        vo.NotificationType
	Priority    vo.Priority
	Title       string
	Message     string
	Preferences setting.NotificationPreferences
}

// Notifier is the port other use cases emit notifications through.
type Notifier interface {
	Execute(ctx context.Context, cmd CreateNotificationCommand) *dto.NotificationDTO
}

type CreateNotificationUseCase struct {
	repo     notification.Repository
	pusher   Pusher
	recorder GateRecorder
	logger   logger.Interface
}

// NewCreateNotificationUseCase accepts a nil pusher or recorder.
func NewCreateNotificationUseCase(
	repo notification.Repository,
	pusher Pusher,
	recorder GateRecorder,
	logger logger.Interface,
) *CreateNotificationUseCase {
	return &CreateNotificationUseCase{
		repo:     repo,
		pusher:   pusher,
		recorder: recorder,
		logger:   logger,
	}
}

// Execute returns nil when the gate suppresses the notification or when it
// cannot be stored. It never returns an error: notifications are a side
// effect and must not fail the operation that emitted them.
func (uc *CreateNotificationUseCase) Execute(ctx context.Context, cmd CreateNotificationCommand) *dto.NotificationDTO {
	notificationType := cmd.Type
	if notificationType == "" {
		notificationType = vo.TypeInfo
	}
	priority := cmd.Priority
	if priority == "" {
		priority = vo.PriorityNormal
	}

	allowed := notification.Allow(cmd.Category, notificationType, priority, cmd.Preferences)
	if uc.recorder != nil {
		uc.recorder.RecordGateDecision(cmd.Category.String(), allowed)
	}
	if !allowed {
		uc.logger.Debugw("notification suppressed by preferences",
			"user_id", cmd.UserID,
			"category", cmd.Category,
		)
		return nil
	}

	n, err := notification.NewNotification(cmd.UserID, cmd.Category, notificationType, priority, cmd.Title, cmd.Message)
	if err != nil {
		uc.logger.Warnw("invalid notification dropped", "user_id", cmd.UserID, "category", cmd.Category, "error", err)
		return nil
	}

	if err := uc.repo.Create(ctx, n); err != nil {
		uc.logger.Errorw("failed to persist notification", "user_id", cmd.UserID, "category", cmd.Category, "error", err)
		return nil
	}

	if uc.pusher != nil && notification.ShouldPush(cmd.Preferences) {
		uc.pushAsync(n, cmd.Preferences.PushURL)
	}

	return dto.ToNotificationDTO(n)
}

func (uc *CreateNotificationUseCase) pushAsync(n *notification.Notification, target string) {
	msg := PushMessage{
		Target:      target,
		Title:       n.Title(),
		Message:     n.Message(),
		Category:    n.Category().String(),
		AutoDismiss: !n.Priority().IsCritical(),
	}
	goroutine.SafeGo(uc.logger, "notification-push", func() {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()
		if err := uc.pusher.Push(ctx, msg); err != nil {
			uc.logger.Warnw("desktop push failed", "notification_id", n.ID(), "user_id", n.UserID(), "error", err)
		}
	})
}
