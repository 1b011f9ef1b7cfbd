package valueobjects

import "fmt"

type ProposalStatus string

const (
	StatusDraft    ProposalStatus = "draft"
	StatusSent     ProposalStatus = "sent"
	StatusViewed   ProposalStatus = "viewed"
	StatusApproved ProposalStatus = "approved"
	StatusRejected ProposalStatus = "rejected"
	StatusExpired  ProposalStatus = "expired"
)

var proposalStatusTransitions = map[ProposalStatus][]ProposalStatus{
	StatusDraft:    {StatusSent},
	StatusSent:     {StatusViewed, StatusApproved, StatusRejected, StatusExpired},
	StatusViewed:   {StatusApproved, StatusRejected, StatusExpired},
	StatusApproved: {},
	StatusRejected: {},
	StatusExpired:  {},
}

func (s ProposalStatus) String() string {
	return string(s)
}

func (s ProposalStatus) IsValid() bool {
	_, ok := proposalStatusTransitions[s]
	return ok
}

func (s ProposalStatus) CanTransitionTo(next ProposalStatus) bool {
	for _, allowed := range proposalStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ProposalStatus) NextStatuses() []ProposalStatus {
	next := proposalStatusTransitions[s]
	out := make([]ProposalStatus, len(next))
	copy(out, next)
	return out
}

func (s ProposalStatus) IsTerminal() bool {
	return s.IsValid() && len(proposalStatusTransitions[s]) == 0
}

// IsOpen reports whether the proposal is still in the pipeline.
func (s ProposalStatus) IsOpen() bool {
	return s == StatusDraft || s == StatusSent || s == StatusViewed
}

func NewProposalStatus(s string) (ProposalStatus, error) {
	ps := ProposalStatus(s)
	if !ps.IsValid() {
		return "", fmt.Errorf("invalid proposal status: %s", s)
	}
	return ps, nil
}
