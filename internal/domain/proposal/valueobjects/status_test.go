package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProposalStatus_Transitions(t *testing.T) {
	tests := []struct {
		from ProposalStatus
		to   ProposalStatus
		want bool
	}{
		{StatusDraft, StatusSent, true},
		{StatusDraft, StatusApproved, false},
		{StatusSent, StatusViewed, true},
		{StatusSent, StatusApproved, true},
		{StatusSent, StatusRejected, true},
		{StatusSent, StatusExpired, true},
		{StatusSent, StatusDraft, false},
		{StatusViewed, StatusApproved, true},
		{StatusViewed, StatusSent, false},
		{StatusApproved, StatusRejected, false},
		{StatusExpired, StatusSent, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestProposalStatus_Terminal(t *testing.T) {
	for _, s := range []ProposalStatus{StatusApproved, StatusRejected, StatusExpired} {
		assert.True(t, s.IsTerminal(), s)
		assert.Empty(t, s.NextStatuses())
		assert.False(t, s.IsOpen())
	}
	assert.False(t, StatusDraft.IsTerminal())
	assert.True(t, StatusViewed.IsOpen())
}
