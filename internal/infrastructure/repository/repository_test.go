package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conseccomms/conseccomms/internal/domain/drive"
	"github.com/conseccomms/conseccomms/internal/domain/feedback"
	"github.com/conseccomms/conseccomms/internal/domain/notification"
	notificationvo "github.com/conseccomms/conseccomms/internal/domain/notification/valueobjects"
	"github.com/conseccomms/conseccomms/internal/domain/proposal"
	proposalvo "github.com/conseccomms/conseccomms/internal/domain/proposal/valueobjects"
	"github.com/conseccomms/conseccomms/internal/domain/setting"
	"github.com/conseccomms/conseccomms/internal/domain/ticket"
	ticketvo "github.com/conseccomms/conseccomms/internal/domain/ticket/valueobjects"
	"github.com/conseccomms/conseccomms/internal/domain/user"
	uservo "github.com/conseccomms/conseccomms/internal/domain/user/valueobjects"
	"github.com/conseccomms/conseccomms/internal/shared/db"
	apperrors "github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/query"
)

func TestUserRepository_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	email, err := uservo.NewEmail("Ada@Example.com")
	require.NoError(t, err)
	password, err := uservo.NewPassword("secret123")
	require.NoError(t, err)
	u, err := user.NewUser(email, "Ada Lovelace", password, plainHasher{})
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID())

	found, err := repo.GetByEmail(ctx, "ADA@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, u.ID(), found.ID())
	assert.Equal(t, "Ada Lovelace", found.FullName())

	exists, err := repo.ExistsByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSettingRepository_UpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingRepository(newTestDB(t))

	_, err := repo.Get(ctx, 7)
	assert.True(t, errors.Is(err, setting.ErrSettingsNotFound))

	s := setting.Defaults()
	s.Notifications.Email = false
	require.NoError(t, repo.Upsert(ctx, &setting.UserSettings{UserID: 7, Settings: s, UpdatedAt: time.Now().UTC()}))

	s.Dashboard.CompactMode = true
	require.NoError(t, repo.Upsert(ctx, &setting.UserSettings{UserID: 7, Settings: s, UpdatedAt: time.Now().UTC()}))

	got, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	assert.False(t, got.Settings.Notifications.Email)
	assert.True(t, got.Settings.Dashboard.CompactMode)
}

func TestTicketRepository_TenantIsolationAndFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository(newTestDB(t))

	mk := func(userID uint, title string, p ticketvo.Priority) *ticket.Ticket {
		tk, err := ticket.NewTicket(userID, title, "", p)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, tk))
		return tk
	}
	first := mk(1, "Invoice is wrong", ticketvo.PriorityHigh)
	mk(1, "Login broken", ticketvo.PriorityLow)
	other := mk(2, "Someone else", ticketvo.PriorityLow)

	got, err := repo.GetByID(ctx, 1, other.ID())
	require.NoError(t, err)
	assert.Nil(t, got, "tickets of another user must not be visible")

	high := ticketvo.PriorityHigh
	list, total, err := repo.List(ctx, 1, ticket.Filter{Priority: &high})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID(), list[0].ID())

	list, total, err = repo.List(ctx, 1, ticket.Filter{Search: "LOGIN"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Login broken", list[0].Title())

	require.NoError(t, first.ChangeStatus(ticketvo.StatusInProgress))
	require.NoError(t, repo.Update(ctx, first))
	reloaded, err := repo.GetByID(ctx, 1, first.ID())
	require.NoError(t, err)
	assert.Equal(t, ticketvo.StatusInProgress, reloaded.Status())

	all, err := repo.ListAll(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestNotificationRepository_ReadState(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(newTestDB(t))

	for i := 0; i < 3; i++ {
		n, err := notification.NewNotification(1, notificationvo.CategoryTicket, notificationvo.TypeInfo,
			notificationvo.PriorityNormal, "Ticket updated", "")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, n))
	}

	unread, err := repo.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, unread)

	list, _, err := repo.List(ctx, 1, notification.Filter{UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.NoError(t, repo.MarkAsRead(ctx, 1, list[0].ID()))

	affected, err := repo.MarkAllAsRead(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, affected)

	unread, err = repo.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestFileRepository_SoftDeleteHidesFile(t *testing.T) {
	ctx := context.Background()
	repo := NewFileRepository(newTestDB(t))

	f, err := drive.NewFile(1, "report.pdf", 2048, "application/pdf", "key-1", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, f))

	f.ToggleFavorite()
	require.NoError(t, repo.Update(ctx, f))

	favs, total, err := repo.List(ctx, 1, drive.FileFilter{FavoriteOnly: true, RootOnly: true})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, favs, 1)

	require.NoError(t, f.SoftDelete())
	require.NoError(t, repo.Update(ctx, f))

	got, err := repo.GetByID(ctx, 1, f.ID())
	require.NoError(t, err)
	assert.Nil(t, got)

	all, err := repo.ListAll(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFolderRepository_ChildrenByParentPath(t *testing.T) {
	ctx := context.Background()
	repo := NewFolderRepository(newTestDB(t))

	root, err := drive.NewFolder(1, "Clients", drive.RootPath)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, root))

	child, err := drive.NewFolder(1, "Acme", root.Path())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, child))

	exists, err := repo.ExistsByPath(ctx, 1, child.Path())
	require.NoError(t, err)
	assert.True(t, exists)

	rootPath := drive.RootPath
	top, err := repo.List(ctx, 1, &rootPath)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Clients", top[0].Name())

	all, err := repo.List(ctx, 1, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	dup, err := drive.NewFolder(1, "Clients", drive.RootPath)
	require.NoError(t, err)
	assert.Error(t, repo.Create(ctx, dup))
}

func TestProposalRepository_LineItemsRoundTrip(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	repo := NewProposalRepository(gdb)
	numbers := NewProposalSequenceAllocator(gdb)
	tm := db.NewTransactionManager(gdb)

	a, err := proposal.NewLineItem("Design", 2, 100)
	require.NoError(t, err)
	b, err := proposal.NewLineItem("Build", 1, 50)
	require.NoError(t, err)

	p, err := proposal.NewProposal(1, proposal.Details{Title: "Website", ClientName: "Acme"}, []proposal.LineItem{a, b})
	require.NoError(t, err)

	err = tm.RunInTransaction(ctx, func(ctx context.Context) error {
		seq, err := numbers.NextSequence(ctx, 2026)
		if err != nil {
			return err
		}
		if err := p.SetNumber(proposal.FormatNumber(2026, seq)); err != nil {
			return err
		}
		return repo.Create(ctx, p)
	})
	require.NoError(t, err)
	assert.Equal(t, "PROP-2026-0001", p.ProposalNumber())

	got, err := repo.GetByID(ctx, 1, p.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.LineItems(), 2)
	assert.Equal(t, "Design", got.LineItems()[0].Description)
	assert.InDelta(t, 250, got.TotalAmount(), 0.001)

	require.NoError(t, got.Update(proposal.Details{Title: "Website v2", ClientName: "Acme"}, []proposal.LineItem{b}))
	require.NoError(t, repo.Update(ctx, got))

	reloaded, err := repo.GetByID(ctx, 1, p.ID())
	require.NoError(t, err)
	require.Len(t, reloaded.LineItems(), 1)
	assert.Equal(t, "Website v2", reloaded.Title())
	assert.InDelta(t, 50, reloaded.TotalAmount(), 0.001)

	sent := proposalvo.StatusSent
	require.NoError(t, reloaded.ChangeStatus(sent))
	require.NoError(t, repo.Update(ctx, reloaded))
	list, total, err := repo.List(ctx, 1, proposal.Filter{Status: &sent})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.NotNil(t, list[0].SentAt())

	require.NoError(t, repo.Delete(ctx, 1, p.ID()))
	gone, err := repo.GetByID(ctx, 1, p.ID())
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestTicketRepository_StaleStatusWriteRejected(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository(newTestDB(t))

	tk, err := ticket.NewTicket(1, "Printer jammed", "", ticketvo.PriorityMedium)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, tk))

	stale, err := repo.GetByID(ctx, 1, tk.ID())
	require.NoError(t, err)

	for _, next := range []ticketvo.TicketStatus{ticketvo.StatusInProgress, ticketvo.StatusResolved} {
		fresh, err := repo.GetByID(ctx, 1, tk.ID())
		require.NoError(t, err)
		require.NoError(t, fresh.ChangeStatus(next))
		require.NoError(t, repo.Update(ctx, fresh))
	}

	require.NoError(t, stale.ChangeStatus(ticketvo.StatusInProgress))
	err = repo.Update(ctx, stale)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))

	reloaded, err := repo.GetByID(ctx, 1, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, ticketvo.StatusResolved, reloaded.Status())
	assert.NotNil(t, reloaded.ResolvedAt())
}

func TestTicketRepository_SequentialUpdatesOnSameCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository(newTestDB(t))

	tk, err := ticket.NewTicket(1, "VPN drops", "", ticketvo.PriorityLow)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, tk))

	require.NoError(t, tk.ChangeStatus(ticketvo.StatusInProgress))
	require.NoError(t, repo.Update(ctx, tk))
	require.NoError(t, tk.ChangeStatus(ticketvo.StatusResolved))
	require.NoError(t, repo.Update(ctx, tk))

	reloaded, err := repo.GetByID(ctx, 1, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, ticketvo.StatusResolved, reloaded.Status())
}

func TestProposalRepository_StaleWriteLeavesRowAndItems(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	repo := NewProposalRepository(gdb)

	a, err := proposal.NewLineItem("Design", 2, 100)
	require.NoError(t, err)
	b, err := proposal.NewLineItem("Build", 1, 50)
	require.NoError(t, err)
	p, err := proposal.NewProposal(1, proposal.Details{Title: "Website", ClientName: "Acme"}, []proposal.LineItem{a, b})
	require.NoError(t, err)
	require.NoError(t, p.SetNumber(proposal.FormatNumber(2026, 1)))
	require.NoError(t, repo.Create(ctx, p))

	stale, err := repo.GetByID(ctx, 1, p.ID())
	require.NoError(t, err)

	for _, next := range []proposalvo.ProposalStatus{proposalvo.StatusSent, proposalvo.StatusApproved} {
		fresh, err := repo.GetByID(ctx, 1, p.ID())
		require.NoError(t, err)
		require.NoError(t, fresh.ChangeStatus(next))
		require.NoError(t, repo.Update(ctx, fresh))
	}

	t.Run("status change", func(t *testing.T) {
		require.NoError(t, stale.ChangeStatus(proposalvo.StatusSent))
		err := repo.Update(ctx, stale)
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("line item edit", func(t *testing.T) {
		draft, err := proposal.ReconstructProposal(p.ID(), 1, p.ProposalNumber(),
			proposal.Details{Title: "Website", ClientName: "Acme"}, proposalvo.StatusDraft,
			250, []proposal.LineItem{a, b}, p.CreatedAt(), p.UpdatedAt(), nil)
		require.NoError(t, err)
		require.NoError(t, draft.Update(proposal.Details{Title: "Gutted", ClientName: "Acme"}, []proposal.LineItem{}))
		err = repo.Update(ctx, draft)
		assert.True(t, apperrors.IsConflictError(err))
	})

	reloaded, err := repo.GetByID(ctx, 1, p.ID())
	require.NoError(t, err)
	assert.Equal(t, proposalvo.StatusApproved, reloaded.Status())
	assert.Equal(t, "Website", reloaded.Title())
	assert.Len(t, reloaded.LineItems(), 2)
}

func TestProposalRepository_ForeignOwnerUpdateKeepsItems(t *testing.T) {
	ctx := context.Background()
	repo := NewProposalRepository(newTestDB(t))

	item, err := proposal.NewLineItem("Audit", 1, 900)
	require.NoError(t, err)
	p, err := proposal.NewProposal(1, proposal.Details{Title: "Audit", ClientName: "Globex"}, []proposal.LineItem{item})
	require.NoError(t, err)
	require.NoError(t, p.SetNumber(proposal.FormatNumber(2026, 1)))
	require.NoError(t, repo.Create(ctx, p))

	intruder, err := proposal.ReconstructProposal(p.ID(), 2, p.ProposalNumber(),
		proposal.Details{Title: "Hijacked", ClientName: "Globex"}, proposalvo.StatusDraft,
		0, []proposal.LineItem{}, p.CreatedAt(), p.UpdatedAt(), nil)
	require.NoError(t, err)

	err = repo.Update(ctx, intruder)
	assert.True(t, apperrors.IsConflictError(err))

	reloaded, err := repo.GetByID(ctx, 1, p.ID())
	require.NoError(t, err)
	assert.Equal(t, "Audit", reloaded.Title())
	require.Len(t, reloaded.LineItems(), 1)
	assert.Equal(t, "Audit", reloaded.LineItems()[0].Description)
}

func TestProposalSequenceAllocator_PerYear(t *testing.T) {
	ctx := context.Background()
	numbers := NewProposalSequenceAllocator(newTestDB(t))

	for want := 1; want <= 3; want++ {
		got, err := numbers.NextSequence(ctx, 2026)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := numbers.NextSequence(ctx, 2027)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestFeedbackRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewFeedbackRepository(newTestDB(t))

	for _, msg := range []string{"first", "second"} {
		f, err := feedback.NewFeedback(3, msg)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, f))
	}

	items, total, err := repo.List(ctx, 3, query.PageFilter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Message())
}
