package usecases

import (
	"context"
	"fmt"

	notificationdto "github.com/conseccomms/conseccomms/internal/application/notification/dto"
	notificationUsecases "github.com/conseccomms/conseccomms/internal/application/notification/usecases"
	"github.com/conseccomms/conseccomms/internal/domain/proposal"
	"github.com/conseccomms/conseccomms/internal/domain/user"
)

type mockProposalRepository struct {
	CreateFunc  func(ctx context.Context, p *proposal.Proposal) error
	UpdateFunc  func(ctx context.Context, p *proposal.Proposal) error
	DeleteFunc  func(ctx context.Context, userID, proposalID uint) error
	GetByIDFunc func(ctx context.Context, userID, proposalID uint) (*proposal.Proposal, error)
	ListFunc    func(ctx context.Context, userID uint, filter proposal.Filter) ([]*proposal.Proposal, int64, error)

	created []*proposal.Proposal
	updated int
	deleted int
}

func (m *mockProposalRepository) Create(ctx context.Context, p *proposal.Proposal) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	m.created = append(m.created, p)
	return p.SetID(uint(len(m.created)))
}

func (m *mockProposalRepository) Update(ctx context.Context, p *proposal.Proposal) error {
	m.updated++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProposalRepository) Delete(ctx context.Context, userID, proposalID uint) error {
	m.deleted++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, proposalID)
	}
	return nil
}

func (m *mockProposalRepository) GetByID(ctx context.Context, userID, proposalID uint) (*proposal.Proposal, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID, proposalID)
	}
	return nil, nil
}

func (m *mockProposalRepository) List(ctx context.Context, userID uint, filter proposal.Filter) ([]*proposal.Proposal, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, filter)
	}
	return nil, 0, nil
}

func (m *mockProposalRepository) ListAll(ctx context.Context, userID uint) ([]*proposal.Proposal, error) {
	return nil, nil
}

// sequenceAllocator hands out per-year sequences starting at 1.
type sequenceAllocator struct {
	next map[int]int
	err  error
}

func (a *sequenceAllocator) NextSequence(ctx context.Context, year int) (int, error) {
	if a.err != nil {
		return 0, a.err
	}
	if a.next == nil {
		a.next = map[int]int{}
	}
	a.next[year]++
	return a.next[year], nil
}

// inlineTxRunner runs fn directly; rolled back reports whether fn failed.
type inlineTxRunner struct {
	rolledBack bool
}

func (r *inlineTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		r.rolledBack = true
		return err
	}
	return nil
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
	user *user.User
}

func (m *mockUserFinder) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.user, nil
}

type stubRenderer struct {
	err error
}

func (r stubRenderer) ToHTMLSanitized(markdown string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return fmt.Sprintf("<p>%s</p>", markdown), nil
}
