package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
)

// ticketStatusTransitions is the only source of allowed moves. Resolved is
// terminal.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusOpen:       {StatusInProgress},
	StatusInProgress: {StatusResolved},
	StatusResolved:   {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	_, ok := ticketStatusTransitions[ts]
	return ok
}

// NextStatuses returns a copy of the statuses reachable from ts. Unknown and
// terminal statuses yield an empty, non-nil slice.
func (ts TicketStatus) NextStatuses() []TicketStatus {
	next := ticketStatusTransitions[ts]
	out := make([]TicketStatus, len(next))
	copy(out, next)
	return out
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	for _, allowed := range ticketStatusTransitions[ts] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsTerminal() bool {
	return ts.IsValid() && len(ticketStatusTransitions[ts]) == 0
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
