package usecases

import (
	"context"
	"sync"

	notificationdto "github.com/conseccomms/conseccomms/internal/application/notification/dto"
	notificationUsecases "github.com/conseccomms/conseccomms/internal/application/notification/usecases"
	"github.com/conseccomms/conseccomms/internal/domain/ticket"
	"github.com/conseccomms/conseccomms/internal/domain/user"
)

type mockTicketRepository struct {
	CreateFunc  func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc  func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc func(ctx context.Context, userID, ticketID uint) (*ticket.Ticket, error)
	ListFunc    func(ctx context.Context, userID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	ListAllFunc func(ctx context.Context, userID uint) ([]*ticket.Ticket, error)

	updated int
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	m.updated++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, userID, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, userID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ListAll(ctx context.Context, userID uint) ([]*ticket.Ticket, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, userID)
	}
	return nil, nil
}

type mockNotifier struct {
	commands []notificationUsecases.CreateNotificationCommand
}

func (m *mockNotifier) Execute(ctx context.Context, cmd notificationUsecases.CreateNotificationCommand) *notificationdto.NotificationDTO {
	m.commands = append(m.commands, cmd)
	return &notificationdto.NotificationDTO{ID: uint(len(m.commands)), Title: cmd.Title}
}

type sentEmail struct {
	templateID string
	to         string
	params     map[string]string
}

type mockEmailSender struct {
	sent chan sentEmail
}

func newMockEmailSender() *mockEmailSender {
	return &mockEmailSender{sent: make(chan sentEmail, 4)}
}

func (m *mockEmailSender) Send(ctx context.Context, templateID, to string, params map[string]string) error {
	m.sent <- sentEmail{templateID: templateID, to: to, params: params}
	return nil
}

type mockUserFinder struct {
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserFinder) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

type passthroughSanitizer struct {
	mu    sync.Mutex
	calls int
}

func (s *passthroughSanitizer) StripTags(text string) string {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return text
}
