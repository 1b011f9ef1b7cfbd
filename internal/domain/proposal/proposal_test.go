package proposal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/conseccomms/conseccomms/internal/domain/proposal/valueobjects"
)

func mustItem(t *testing.T, desc string, qty, price float64) LineItem {
	t.Helper()
	it, err := NewLineItem(desc, qty, price)
	require.NoError(t, err)
	return it
}

func newDraft(t *testing.T) *Proposal {
	t.Helper()
	p, err := NewProposal(1, Details{Title: "Website redesign", ClientName: "Acme"}, []LineItem{
		mustItem(t, "Design", 2, 100),
		mustItem(t, "Hosting", 1, 50),
	})
	require.NoError(t, err)
	return p
}

func TestNewProposal_TotalFromLineItems(t *testing.T) {
	p := newDraft(t)

	assert.Equal(t, 250.0, p.TotalAmount())
	assert.Equal(t, vo.StatusDraft, p.Status())
	assert.Len(t, p.LineItems(), 2)
	assert.Equal(t, 200.0, p.LineItems()[0].Amount)
}

func TestNewProposal_Invalid(t *testing.T) {
	_, err := NewProposal(0, Details{Title: "t", ClientName: "c"}, nil)
	assert.Error(t, err)
	_, err = NewProposal(1, Details{Title: " ", ClientName: "c"}, nil)
	assert.Error(t, err)
	_, err = NewProposal(1, Details{Title: "t", ClientName: ""}, nil)
	assert.Error(t, err)
}

func TestNewLineItem(t *testing.T) {
	it, err := NewLineItem("Consulting", 1.5, 33.333)
	require.NoError(t, err)
	assert.Equal(t, 50.0, it.Amount)

	_, err = NewLineItem("", 1, 1)
	assert.Error(t, err)
	_, err = NewLineItem("x", 0, 1)
	assert.Error(t, err)
	_, err = NewLineItem("x", 1, -1)
	assert.Error(t, err)
}

func TestProposal_UpdateReplacesItems(t *testing.T) {
	p := newDraft(t)

	err := p.Update(Details{Title: "Redesign v2", ClientName: "Acme"}, []LineItem{mustItem(t, "Design", 3, 100)})
	require.NoError(t, err)
	assert.Equal(t, 300.0, p.TotalAmount())
	assert.Len(t, p.LineItems(), 1)
	assert.Equal(t, "Redesign v2", p.Title())

	require.NoError(t, p.Update(Details{Title: "Redesign v3", ClientName: "Acme"}, nil))
	assert.Equal(t, 300.0, p.TotalAmount(), "nil items keep the current set")

	require.NoError(t, p.Update(Details{Title: "Redesign v3", ClientName: "Acme"}, []LineItem{}))
	assert.Equal(t, 0.0, p.TotalAmount())
}

func TestProposal_ChangeStatus(t *testing.T) {
	p := newDraft(t)
	assert.True(t, p.CanDelete())

	require.NoError(t, p.ChangeStatus(vo.StatusSent))
	assert.NotNil(t, p.SentAt())
	assert.False(t, p.CanDelete())

	require.NoError(t, p.ChangeStatus(vo.StatusViewed))
	require.NoError(t, p.ChangeStatus(vo.StatusApproved))

	assert.Error(t, p.ChangeStatus(vo.StatusRejected))
	assert.Error(t, p.Update(Details{Title: "x", ClientName: "y"}, nil))
}

func TestProposal_ChangeStatus_SkipSentRejected(t *testing.T) {
	p := newDraft(t)
	assert.Error(t, p.ChangeStatus(vo.StatusApproved))
	assert.Equal(t, vo.StatusDraft, p.Status())
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "PROP-2026-0001", FormatNumber(2026, 1))
	assert.Equal(t, "PROP-2026-0042", FormatNumber(2026, 42))
	assert.Equal(t, "PROP-2027-12345", FormatNumber(2027, 12345))
}

func TestProposal_SetNumber(t *testing.T) {
	p := newDraft(t)
	require.NoError(t, p.SetNumber("PROP-2026-0001"))
	assert.Error(t, p.SetNumber("PROP-2026-0002"))
}

func TestReconstructProposal(t *testing.T) {
	now := time.Now()
	p, err := ReconstructProposal(3, 1, "PROP-2026-0003", Details{Title: "t", ClientName: "c"}, vo.StatusSent, 10, nil, now, now, &now)
	require.NoError(t, err)
	assert.NotNil(t, p.LineItems())
	assert.Equal(t, uint(3), p.Facts().ID)

	_, err = ReconstructProposal(3, 1, "n", Details{}, vo.ProposalStatus("won"), 0, nil, now, now, nil)
	assert.Error(t, err)
}
