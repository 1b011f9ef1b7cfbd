package usecases

import (
	"context"
	"fmt"
	"strings"
	"sync"

	notificationdto "github.com/conseccomms/conseccomms/internal/application/notification/dto"
	notificationUsecases "github.com/conseccomms/conseccomms/internal/application/notification/usecases"
	"github.com/conseccomms/conseccomms/internal/domain/user"
	"github.com/conseccomms/conseccomms/internal/shared/authorization"
)

// memoryUserRepository keeps users in insertion order.
type memoryUserRepository struct {
	mu      sync.Mutex
	users   []*user.User
	ListErr error
	updated int
}

func (r *memoryUserRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, u)
	return u.SetID(uint(len(r.users)))
}

func (r *memoryUserRepository) Update(ctx context.Context, u *user.User) error {
	r.updated++
	return nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	for _, u := range r.users {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email().String() == strings.ToLower(email) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := r.GetByEmail(ctx, email)
	return u != nil, err
}

func (r *memoryUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if r.ListErr != nil {
		return nil, 0, r.ListErr
	}
	return r.users, int64(len(r.users)), nil
}

func (r *memoryUserRepository) ListAll(ctx context.Context) ([]*user.User, error) {
	return r.users, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type fakeTokenIssuer struct {
	sessions []string
}

func (f *fakeTokenIssuer) Generate(userID uint, sessionID string, role authorization.UserRole) (*TokenPair, error) {
	f.sessions = append(f.sessions, sessionID)
	return &TokenPair{AccessToken: fmt.Sprintf("token-%d-%s", userID, role), ExpiresIn: 3600}, nil
}

type mockNotifier struct {
	commands []notificationUsecases.CreateNotificationCommand
}

func (m *mockNotifier) Execute(ctx context.Context, cmd notificationUsecases.CreateNotificationCommand) *notificationdto.NotificationDTO {
	m.commands = append(m.commands, cmd)
	return &notificationdto.NotificationDTO{ID: uint(len(m.commands))}
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
