package usecases

import (
	"context"
	"sync"

	"github.com/conseccomms/conseccomms/internal/domain/notification"
)

type mockNotificationRepository struct {
	CreateFunc        func(ctx context.Context, n *notification.Notification) error
	GetByIDFunc       func(ctx context.Context, userID, id uint) (*notification.Notification, error)
	ListFunc          func(ctx context.Context, userID uint, filter notification.Filter) ([]*notification.Notification, int64, error)
	CountUnreadFunc   func(ctx context.Context, userID uint) (int64, error)
	MarkAsReadFunc    func(ctx context.Context, userID, id uint) error
	MarkAllAsReadFunc func(ctx context.Context, userID uint) (int64, error)

	created []*notification.Notification
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	m.created = append(m.created, n)
	return n.SetID(uint(len(m.created)))
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, userID, id uint) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID, id)
	}
	return nil, nil
}

func (m *mockNotificationRepository) List(ctx context.Context, userID uint, filter notification.Filter) ([]*notification.Notification, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, filter)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) MarkAsRead(ctx context.Context, userID, id uint) error {
	if m.MarkAsReadFunc != nil {
		return m.MarkAsReadFunc(ctx, userID, id)
	}
	return nil
}

func (m *mockNotificationRepository) MarkAllAsRead(ctx context.Context, userID uint) (int64, error) {
	if m.MarkAllAsReadFunc != nil {
		return m.MarkAllAsReadFunc(ctx, userID)
	}
	return 0, nil
}

type mockPusher struct {
	pushed chan PushMessage
}

func newMockPusher() *mockPusher {
	return &mockPusher{pushed: make(chan PushMessage, 4)}
}

func (m *mockPusher) Push(ctx context.Context, msg PushMessage) error {
	m.pushed <- msg
	return nil
}

type mockGateRecorder struct {
	mu        sync.Mutex
	decisions map[string][]bool
}

func (m *mockGateRecorder) RecordGateDecision(category string, allowed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.decisions == nil {
		m.decisions = make(map[string][]bool)
	}
	m.decisions[category] = append(m.decisions[category], allowed)
}
