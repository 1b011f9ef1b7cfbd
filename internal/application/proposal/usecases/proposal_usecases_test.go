package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conseccomms/conseccomms/internal/application/common"
	"github.com/conseccomms/conseccomms/internal/domain/insight"
	notificationvo "github.com/conseccomms/conseccomms/internal/domain/notification/valueobjects"
	"github.com/conseccomms/conseccomms/internal/domain/proposal"
	vo "github.com/conseccomms/conseccomms/internal/domain/proposal/valueobjects"
	"github.com/conseccomms/conseccomms/internal/domain/setting"
	"github.com/conseccomms/conseccomms/internal/domain/user"
	uservo "github.com/conseccomms/conseccomms/internal/domain/user/valueobjects"
	"github.com/conseccomms/conseccomms/internal/shared/authorization"
	apperrors "github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

func storedProposal(t *testing.T, id, userID uint, status vo.ProposalStatus) *proposal.Proposal {
	t.Helper()
	item, err := proposal.NewLineItem("Consulting", 2, 100)
	require.NoError(t, err)
	now := time.Now().Add(-time.Hour)
	p, err := proposal.ReconstructProposal(id, userID, "PROP-2026-0001",
		proposal.Details{Title: "Website redesign", ClientName: "Acme", Description: "**Scope**"},
		status, 200, []proposal.LineItem{item}, now, now, nil)
	require.NoError(t, err)
	return p
}

func repoWith(p *proposal.Proposal) *mockProposalRepository {
	return &mockProposalRepository{
		GetByIDFunc: func(ctx context.Context, userID, proposalID uint) (*proposal.Proposal, error) {
			if p == nil || p.ID() != proposalID || p.UserID() != userID {
				return nil, nil
			}
			return p, nil
		},
	}
}

func assertAppErrorType(t *testing.T, err error, want apperrors.ErrorType) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, want, appErr.Type)
}

func TestCreateProposal_AllocatesSequentialNumbers(t *testing.T) {
	repo := &mockProposalRepository{}
	uc := NewCreateProposalUseCase(repo, &sequenceAllocator{}, &inlineTxRunner{}, logger.NewNopLogger())
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }

	cmd := CreateProposalCommand{
		UserID:  4,
		Details: DetailsInput{Title: "Website redesign", ClientName: "Acme"},
		LineItems: []LineItemInput{
			{Description: "Design", Quantity: 2, UnitPrice: 100},
			{Description: "Hosting", Quantity: 1, UnitPrice: 50},
		},
	}
	first, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, "PROP-2026-0001", first.ProposalNumber)
	assert.Equal(t, "PROP-2026-0002", second.ProposalNumber)
	assert.Equal(t, 250.0, first.TotalAmount)
	assert.Equal(t, "draft", first.Status)
	require.Len(t, first.LineItems, 2)
	assert.Equal(t, 200.0, first.LineItems[0].Amount)
}

func TestCreateProposal_RejectsInvalidInput(t *testing.T) {
	uc := NewCreateProposalUseCase(&mockProposalRepository{}, &sequenceAllocator{}, &inlineTxRunner{}, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), CreateProposalCommand{UserID: 1, Details: DetailsInput{ClientName: "Acme"}})
	assertAppErrorType(t, err, apperrors.ErrorTypeValidation)

	_, err = uc.Execute(context.Background(), CreateProposalCommand{
		UserID:    1,
		Details:   DetailsInput{Title: "T", ClientName: "Acme"},
		LineItems: []LineItemInput{{Description: "Bad", Quantity: -1, UnitPrice: 10}},
	})
	assertAppErrorType(t, err, apperrors.ErrorTypeValidation)
}

func TestCreateProposal_RollsBackWhenInsertFails(t *testing.T) {
	repo := &mockProposalRepository{
		CreateFunc: func(ctx context.Context, p *proposal.Proposal) error { return errors.New("db down") },
	}
	tx := &inlineTxRunner{}
	uc := NewCreateProposalUseCase(repo, &sequenceAllocator{}, tx, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), CreateProposalCommand{
		UserID:  1,
		Details: DetailsInput{Title: "T", ClientName: "Acme"},
	})

	assertAppErrorType(t, err, apperrors.ErrorTypeInternal)
	assert.True(t, tx.rolledBack)
}

func TestGetProposal_RendersDescription(t *testing.T) {
	p := storedProposal(t, 7, 2, vo.StatusDraft)
	uc := NewGetProposalUseCase(repoWith(p), stubRenderer{}, logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), 2, 7)

	require.NoError(t, err)
	assert.Equal(t, "<p>**Scope**</p>", got.DescriptionHTML)
	assert.Equal(t, []string{"sent"}, got.NextStatuses)
}

func TestGetProposal_RenderFailureLeavesHTMLEmpty(t *testing.T) {
	p := storedProposal(t, 7, 2, vo.StatusDraft)
	uc := NewGetProposalUseCase(repoWith(p), stubRenderer{err: errors.New("boom")}, logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), 2, 7)

	require.NoError(t, err)
	assert.Empty(t, got.DescriptionHTML)
}

func TestGetProposal_OtherUsersProposalIsNotFound(t *testing.T) {
	p := storedProposal(t, 7, 2, vo.StatusDraft)
	uc := NewGetProposalUseCase(repoWith(p), stubRenderer{}, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), 3, 7)

	assertAppErrorType(t, err, apperrors.ErrorTypeNotFound)
}

func TestListProposals_PassesStatusFilter(t *testing.T) {
	var gotFilter proposal.Filter
	repo := &mockProposalRepository{
		ListFunc: func(ctx context.Context, userID uint, filter proposal.Filter) ([]*proposal.Proposal, int64, error) {
			gotFilter = filter
			return []*proposal.Proposal{storedProposal(t, 1, userID, vo.StatusSent)}, 1, nil
		},
	}
	uc := NewListProposalsUseCase(repo, logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), ListProposalsQuery{UserID: 2, Status: "sent", Page: 1, PageSize: 10})

	require.NoError(t, err)
	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, vo.StatusSent, *gotFilter.Status)
	assert.Equal(t, int64(1), got.Total)
	require.Len(t, got.Items, 1)

	_, err = uc.Execute(context.Background(), ListProposalsQuery{UserID: 2, Status: "bogus"})
	assertAppErrorType(t, err, apperrors.ErrorTypeValidation)
}

func TestUpdateProposal_ReplacesItemsAndRecomputesTotal(t *testing.T) {
	p := storedProposal(t, 7, 2, vo.StatusDraft)
	repo := repoWith(p)
	uc := NewUpdateProposalUseCase(repo, logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), UpdateProposalCommand{
		UserID:     2,
		ProposalID: 7,
		Details:    DetailsInput{Title: "Website redesign v2", ClientName: "Acme"},
		LineItems:  []LineItemInput{{Description: "Retainer", Quantity: 3, UnitPrice: 33.33}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Website redesign v2", got.Title)
	require.Len(t, got.LineItems, 1)
	assert.InDelta(t, 99.99, got.TotalAmount, 0.001)
	assert.Equal(t, 1, repo.updated)
}

func TestUpdateProposal_NilItemsKeepCurrentSet(t *testing.T) {
	p := storedProposal(t, 7, 2, vo.StatusSent)
	uc := NewUpdateProposalUseCase(repoWith(p), logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), UpdateProposalCommand{
		UserID:     2,
		ProposalID: 7,
		Details:    DetailsInput{Title: "Renamed", ClientName: "Acme"},
	})

	require.NoError(t, err)
	assert.Equal(t, 200.0, got.TotalAmount)
	assert.Len(t, got.LineItems, 1)
}

func TestUpdateProposal_DecidedProposalIsReadOnly(t *testing.T) {
	p := storedProposal(t, 7, 2, vo.StatusApproved)
	uc := NewUpdateProposalUseCase(repoWith(p), logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), UpdateProposalCommand{
		UserID:     2,
		ProposalID: 7,
		Details:    DetailsInput{Title: "Renamed", ClientName: "Acme"},
	})

	assertAppErrorType(t, err, apperrors.ErrorTypeValidation)
}

func TestDeleteProposal_OnlyDrafts(t *testing.T) {
	draft := storedProposal(t, 7, 2, vo.StatusDraft)
	repo := repoWith(draft)
	require.NoError(t, NewDeleteProposalUseCase(repo, logger.NewNopLogger()).Execute(context.Background(), 2, 7))
	assert.Equal(t, 1, repo.deleted)

	sent := storedProposal(t, 8, 2, vo.StatusSent)
	repo = repoWith(sent)
	err := NewDeleteProposalUseCase(repo, logger.NewNopLogger()).Execute(context.Background(), 2, 8)
	assertAppErrorType(t, err, apperrors.ErrorTypeConflict)
	assert.Zero(t, repo.deleted)
}

func ownerUser(t *testing.T) *user.User {
	t.Helper()
	email, err := uservo.NewEmail("owner@example.com")
	require.NoError(t, err)
	u, err := user.ReconstructUser(2, email, "Proposal Owner", "hash", authorization.RoleUser, uservo.PlanPro, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func TestChangeStatus_SentNotifiesAndEmails(t *testing.T) {
	p := storedProposal(t, 7, 2, vo.StatusDraft)
	notifier := &mockNotifier{}
	sender := newMockEmailSender()
	uc := NewChangeStatusUseCase(repoWith(p), &mockUserFinder{user: ownerUser(t)}, notifier, sender, logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), ChangeStatusCommand{
		UserID:      2,
		ProposalID:  7,
		NewStatus:   "sent",
		Preferences: setting.Defaults().Notifications,
	})

	require.NoError(t, err)
	assert.Equal(t, "sent", got.Status)
	assert.NotNil(t, got.SentAt)
	require.Len(t, notifier.commands, 1)
	assert.Equal(t, notificationvo.CategoryProposal, notifier.commands[0].Category)

	select {
	case mail := <-sender.sent:
		assert.Equal(t, common.EmailTemplateProposalSent, mail.templateID)
		assert.Equal(t, "owner@example.com", mail.to)
		assert.Equal(t, "PROP-2026-0001", mail.params["proposal_number"])
		assert.Equal(t, "200.00", mail.params["total_amount"])
	case <-time.After(2 * time.Second):
		t.Fatal("expected proposal_sent email")
	}
}

func TestChangeStatus_EmailPreferenceOffSkipsEmail(t *testing.T) {
	p := storedProposal(t, 7, 2, vo.StatusDraft)
	sender := newMockEmailSender()
	prefs := setting.Defaults().Notifications
	prefs.Email = false
	uc := NewChangeStatusUseCase(repoWith(p), &mockUserFinder{user: ownerUser(t)}, &mockNotifier{}, sender, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{UserID: 2, ProposalID: 7, NewStatus: "sent", Preferences: prefs})

	require.NoError(t, err)
	select {
	case <-sender.sent:
		t.Fatal("email must not be sent")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestChangeStatus_RejectsIllegalTransition(t *testing.T) {
	p := storedProposal(t, 7, 2, vo.StatusDraft)
	repo := repoWith(p)
	notifier := &mockNotifier{}
	uc := NewChangeStatusUseCase(repo, &mockUserFinder{}, notifier, nil, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{UserID: 2, ProposalID: 7, NewStatus: "approved"})

	assertAppErrorType(t, err, apperrors.ErrorTypeValidation)
	assert.Zero(t, repo.updated)
	assert.Empty(t, notifier.commands)
	assert.Equal(t, vo.StatusDraft, p.Status())
}

func TestChangeStatus_ConcurrentChangeIsConflict(t *testing.T) {
	p := storedProposal(t, 7, 2, vo.StatusSent)
	repo := repoWith(p)
	repo.UpdateFunc = func(ctx context.Context, _ *proposal.Proposal) error {
		return apperrors.NewConflictError("proposal has been modified by another request or not found")
	}
	notifier := &mockNotifier{}
	uc := NewChangeStatusUseCase(repo, &mockUserFinder{}, notifier, nil, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{UserID: 2, ProposalID: 7, NewStatus: "approved"})

	assertAppErrorType(t, err, apperrors.ErrorTypeConflict)
	assert.Empty(t, notifier.commands)
}

func TestProposalInsights_AreRepeatable(t *testing.T) {
	p := storedProposal(t, 7, 2, vo.StatusSent)
	uc := NewProposalInsightsUseCase(repoWith(p), insight.NewSynthesizer(), logger.NewNopLogger())

	first, err := uc.Execute(context.Background(), 2, 7)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), 2, 7)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, uint(7), first.ProposalID)
	assert.GreaterOrEqual(t, first.WinProbability, 0)
	assert.NotEmpty(t, first.RiskFactors)
}
