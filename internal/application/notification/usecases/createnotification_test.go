package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conseccomms/conseccomms/internal/domain/notification"
	vo "github.com/conseccomms/conseccomms/internal/domain/notification/valueobjects"
	"github.com/conseccomms/conseccomms/internal/domain/setting"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

func ticketCommand(prefs setting.NotificationPreferences) CreateNotificationCommand {
	return CreateNotificationCommand{
		UserID:      7,
		Category:    vo.CategoryTicket,
		Title:       "Ticket updated",
		Message:     "Ticket #1 moved to in_progress",
		Preferences: prefs,
	}
}

func TestCreateNotification_Allowed(t *testing.T) {
	repo := &mockNotificationRepository{}
	recorder := &mockGateRecorder{}
	uc := NewCreateNotificationUseCase(repo, nil, recorder, logger.NewNopLogger())

	got := uc.Execute(context.Background(), ticketCommand(setting.Defaults().Notifications))

	require.NotNil(t, got)
	assert.Equal(t, uint(1), got.ID)
	assert.Equal(t, "info", got.Type)
	assert.Equal(t, "normal", got.Priority)
	assert.False(t, got.Read)
	require.Len(t, repo.created, 1)
	assert.Equal(t, []bool{true}, recorder.decisions["ticket"])
}

func TestCreateNotification_SuppressedByPreference(t *testing.T) {
	repo := &mockNotificationRepository{}
	recorder := &mockGateRecorder{}
	uc := NewCreateNotificationUseCase(repo, nil, recorder, logger.NewNopLogger())

	prefs := setting.Defaults().Notifications
	prefs.TicketUpdates = false

	got := uc.Execute(context.Background(), ticketCommand(prefs))

	assert.Nil(t, got)
	assert.Empty(t, repo.created)
	assert.Equal(t, []bool{false}, recorder.decisions["ticket"])
}

func TestCreateNotification_UrgentBypassesPreference(t *testing.T) {
	repo := &mockNotificationRepository{}
	uc := NewCreateNotificationUseCase(repo, nil, nil, logger.NewNopLogger())

	prefs := setting.Defaults().Notifications
	prefs.TicketUpdates = false
	cmd := ticketCommand(prefs)
	cmd.Priority = vo.PriorityUrgent

	got := uc.Execute(context.Background(), cmd)

	require.NotNil(t, got)
	assert.Equal(t, "urgent", got.Priority)
}

func TestCreateNotification_SystemTypeBypassesPreference(t *testing.T) {
	repo := &mockNotificationRepository{}
	uc := NewCreateNotificationUseCase(repo, nil, nil, logger.NewNopLogger())

	prefs := setting.Defaults().Notifications
	prefs.AIInsights = false
	got := uc.Execute(context.Background(), CreateNotificationCommand{
		UserID:      7,
		Category:    vo.CategoryAI,
		Type:        vo.TypeSystem,
		Title:       "Maintenance",
		Preferences: prefs,
	})

	assert.NotNil(t, got)
}

func TestCreateNotification_PersistFailureReturnsNil(t *testing.T) {
	repo := &mockNotificationRepository{
		CreateFunc: func(ctx context.Context, n *notification.Notification) error {
			return errors.New("db down")
		},
	}
	uc := NewCreateNotificationUseCase(repo, nil, nil, logger.NewNopLogger())

	assert.Nil(t, uc.Execute(context.Background(), ticketCommand(setting.Defaults().Notifications)))
}

func TestCreateNotification_InvalidPayloadReturnsNil(t *testing.T) {
	repo := &mockNotificationRepository{}
	uc := NewCreateNotificationUseCase(repo, nil, nil, logger.NewNopLogger())

	cmd := ticketCommand(setting.Defaults().Notifications)
	cmd.Title = ""

	assert.Nil(t, uc.Execute(context.Background(), cmd))
	assert.Empty(t, repo.created)
}

func TestCreateNotification_Push(t *testing.T) {
	t.Run("desktop preference on pushes with auto dismiss", func(t *testing.T) {
		pusher := newMockPusher()
		uc := NewCreateNotificationUseCase(&mockNotificationRepository{}, pusher, nil, logger.NewNopLogger())

		prefs := setting.Defaults().Notifications
		prefs.Desktop = true
		prefs.PushURL = "ntfy://ntfy.sh/user-7"
		require.NotNil(t, uc.Execute(context.Background(), ticketCommand(prefs)))

		select {
		case msg := <-pusher.pushed:
			assert.Equal(t, "Ticket updated", msg.Title)
			assert.Equal(t, "ntfy://ntfy.sh/user-7", msg.Target)
			assert.True(t, msg.AutoDismiss)
		case <-time.After(2 * time.Second):
			t.Fatal("expected a push")
		}
	})

	t.Run("critical notifications stay on screen", func(t *testing.T) {
		pusher := newMockPusher()
		uc := NewCreateNotificationUseCase(&mockNotificationRepository{}, pusher, nil, logger.NewNopLogger())

		prefs := setting.Defaults().Notifications
		prefs.Desktop = true
		prefs.PushURL = "ntfy://ntfy.sh/user-7"
		cmd := ticketCommand(prefs)
		cmd.Priority = vo.PriorityHigh
		require.NotNil(t, uc.Execute(context.Background(), cmd))

		select {
		case msg := <-pusher.pushed:
			assert.False(t, msg.AutoDismiss)
		case <-time.After(2 * time.Second):
			t.Fatal("expected a push")
		}
	})

	t.Run("desktop preference off does not push", func(t *testing.T) {
		pusher := newMockPusher()
		uc := NewCreateNotificationUseCase(&mockNotificationRepository{}, pusher, nil, logger.NewNopLogger())

		require.NotNil(t, uc.Execute(context.Background(), ticketCommand(setting.Defaults().Notifications)))

		select {
		case <-pusher.pushed:
			t.Fatal("unexpected push")
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("desktop on without a target does not push", func(t *testing.T) {
		pusher := newMockPusher()
		uc := NewCreateNotificationUseCase(&mockNotificationRepository{}, pusher, nil, logger.NewNopLogger())

		prefs := setting.Defaults().Notifications
		prefs.Desktop = true
		require.NotNil(t, uc.Execute(context.Background(), ticketCommand(prefs)))

		select {
		case <-pusher.pushed:
			t.Fatal("unexpected push")
		case <-time.After(50 * time.Millisecond):
		}
	})
}

func TestCreateNotification_PushGoesToOwnTargetOnly(t *testing.T) {
	pusher := newMockPusher()
	uc := NewCreateNotificationUseCase(&mockNotificationRepository{}, pusher, nil, logger.NewNopLogger())

	ada := setting.Defaults().Notifications
	ada.Desktop = true
	ada.PushURL = "ntfy://ntfy.sh/ada"
	bob := setting.Defaults().Notifications
	bob.Desktop = true
	bob.PushURL = "ntfy://ntfy.sh/bob"

	cmd := ticketCommand(ada)
	cmd.UserID = 1
	cmd.Title = "Invoice for Acme"
	require.NotNil(t, uc.Execute(context.Background(), cmd))

	cmd = ticketCommand(bob)
	cmd.UserID = 2
	cmd.Title = "Printer jammed"
	require.NotNil(t, uc.Execute(context.Background(), cmd))

	byTarget := map[string][]string{}
	for i := 0; i < 2; i++ {
		select {
		case msg := <-pusher.pushed:
			byTarget[msg.Target] = append(byTarget[msg.Target], msg.Title)
		case <-time.After(2 * time.Second):
			t.Fatal("expected two pushes")
		}
	}

	assert.Equal(t, []string{"Invoice for Acme"}, byTarget["ntfy://ntfy.sh/ada"])
	assert.Equal(t, []string{"Printer jammed"}, byTarget["ntfy://ntfy.sh/bob"])
}
