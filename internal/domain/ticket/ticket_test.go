package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conseccomms/conseccomms/internal/domain/insight"
	vo "github.com/conseccomms/conseccomms/internal/domain/ticket/valueobjects"
)

func newValidTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket(1, "Cannot login", "I forgot my password", vo.PriorityMedium)
	require.NoError(t, err)
	return tk
}

func reconstructedTicket(t *testing.T, status vo.TicketStatus) *Ticket {
	t.Helper()
	now := time.Now().UTC()
	tk, err := ReconstructTicket(
		7, 1,
		"Persisted ticket", "desc",
		status, vo.PriorityHigh,
		"billing", "refund", insight.SentimentNegative, 0.7, "reply",
		now, now, nil,
	)
	require.NoError(t, err)
	return tk
}

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name     string
		userID   uint
		title    string
		desc     string
		priority vo.Priority
		wantErr  bool
	}{
		{"valid", 1, "Login page broken", "details", vo.PriorityLow, false},
		{"empty description allowed", 1, "Title only", "", vo.PriorityUrgent, false},
		{"title max length", 1, strings.Repeat("a", 200), "", vo.PriorityMedium, false},
		{"missing user", 0, "Title", "", vo.PriorityMedium, true},
		{"blank title", 1, "   ", "", vo.PriorityMedium, true},
		{"title too long", 1, strings.Repeat("a", 201), "", vo.PriorityMedium, true},
		{"description too long", 1, "Title", strings.Repeat("a", 5001), vo.PriorityMedium, true},
		{"invalid priority", 1, "Title", "", vo.Priority("critical"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.userID, tt.title, tt.desc, tt.priority)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, tk)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.StatusOpen, tk.Status())
			assert.Equal(t, insight.SentimentNeutral, tk.AISentiment())
			assert.Nil(t, tk.ResolvedAt())
		})
	}
}

func TestTicket_ChangeStatus(t *testing.T) {
	tk := newValidTicket(t)

	require.NoError(t, tk.ChangeStatus(vo.StatusInProgress))
	assert.Equal(t, vo.StatusInProgress, tk.Status())
	assert.Nil(t, tk.ResolvedAt())

	require.NoError(t, tk.ChangeStatus(vo.StatusResolved))
	assert.Equal(t, vo.StatusResolved, tk.Status())
	assert.NotNil(t, tk.ResolvedAt())
	assert.Empty(t, tk.NextStatuses())
}

func TestTicket_ChangeStatus_Rejected(t *testing.T) {
	tests := []struct {
		name string
		from vo.TicketStatus
		to   vo.TicketStatus
	}{
		{"skip in_progress", vo.StatusOpen, vo.StatusResolved},
		{"same status", vo.StatusOpen, vo.StatusOpen},
		{"backwards", vo.StatusInProgress, vo.StatusOpen},
		{"out of resolved", vo.StatusResolved, vo.StatusInProgress},
		{"unknown target", vo.StatusOpen, vo.TicketStatus("closed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := reconstructedTicket(t, tt.from)
			err := tk.ChangeStatus(tt.to)
			assert.Error(t, err)
			assert.Equal(t, tt.from, tk.Status())
		})
	}
}

func TestTicket_ApplyClassification(t *testing.T) {
	tk := newValidTicket(t)
	c := insight.NewClassifier().Classify(tk.ClassificationText(), insight.DomainTicket)

	tk.ApplyClassification(c)

	assert.Equal(t, "login_issues", tk.AICategory())
	assert.Equal(t, c.Confidence, tk.AIConfidence())
	assert.Equal(t, c.SubCategory, tk.AISubCategory())
	assert.NotEmpty(t, tk.AISuggestedResponse())
}

func TestTicket_ClassificationText(t *testing.T) {
	tk, err := NewTicket(1, "Title", "", vo.PriorityLow)
	require.NoError(t, err)
	assert.Equal(t, "Title", tk.ClassificationText())

	assert.Equal(t, "Cannot login I forgot my password", newValidTicket(t).ClassificationText())
}

func TestReconstructTicket_Invalid(t *testing.T) {
	now := time.Now()
	_, err := ReconstructTicket(0, 1, "t", "", vo.StatusOpen, vo.PriorityLow, "", "", insight.SentimentNeutral, 0, "", now, now, nil)
	assert.Error(t, err)

	_, err = ReconstructTicket(1, 1, "t", "", vo.TicketStatus("x"), vo.PriorityLow, "", "", insight.SentimentNeutral, 0, "", now, now, nil)
	assert.Error(t, err)

	tk, err := ReconstructTicket(1, 1, "t", "", vo.StatusOpen, vo.PriorityLow, "", "", insight.Sentiment(""), 0, "", now, now, nil)
	require.NoError(t, err)
	assert.Equal(t, insight.SentimentNeutral, tk.AISentiment())
}

func TestTicket_SetID(t *testing.T) {
	tk := newValidTicket(t)
	require.NoError(t, tk.SetID(5))
	assert.Error(t, tk.SetID(6))
	assert.True(t, tk.IsOwnedBy(1))
	assert.False(t, tk.IsOwnedBy(2))
}

func TestTicket_StoredStatusTracksPersistence(t *testing.T) {
	tk := newValidTicket(t)
	assert.Equal(t, vo.StatusOpen, tk.StoredStatus())

	require.NoError(t, tk.ChangeStatus(vo.StatusInProgress))
	assert.Equal(t, vo.StatusOpen, tk.StoredStatus(), "changing status must not move the stored status")

	tk.MarkStored()
	assert.Equal(t, vo.StatusInProgress, tk.StoredStatus())
}
