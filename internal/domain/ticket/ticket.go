// Package ticket holds the Desk aggregate: a support ticket with its keyword
// classification and a three-step status lifecycle.
package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/conseccomms/conseccomms/internal/domain/insight"
	vo "github.com/conseccomms/conseccomms/internal/domain/ticket/valueobjects"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

type Ticket struct {
	id                  uint
	userID              uint
	title               string
	description         string
	status              vo.TicketStatus
	storedStatus        vo.TicketStatus
	priority            vo.Priority
	aiCategory          string
	aiSubCategory       string
	aiSentiment         insight.Sentiment
	aiConfidence        float64
	aiSuggestedResponse string
	createdAt           time.Time
	updatedAt           time.Time
	resolvedAt          *time.Time
}

func NewTicket(userID uint, title, description string, priority vo.Priority) (*Ticket, error) {
	title = strings.TrimSpace(title)
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := time.Now().UTC()
	return &Ticket{
		userID:       userID,
		title:        title,
		description:  description,
		status:       vo.StatusOpen,
		storedStatus: vo.StatusOpen,
		priority:     priority,
		aiSentiment:  insight.SentimentNeutral,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence without applying
// creation rules.
func ReconstructTicket(
	id, userID uint,
	title, description string,
	status vo.TicketStatus,
	priority vo.Priority,
	aiCategory, aiSubCategory string,
	aiSentiment insight.Sentiment,
	aiConfidence float64,
	aiSuggestedResponse string,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !aiSentiment.IsValid() {
		aiSentiment = insight.SentimentNeutral
	}

	return &Ticket{
		id:                  id,
		userID:              userID,
		title:               title,
		description:         description,
		status:              status,
		storedStatus:        status,
		priority:            priority,
		aiCategory:          aiCategory,
		aiSubCategory:       aiSubCategory,
		aiSentiment:         aiSentiment,
		aiConfidence:        aiConfidence,
		aiSuggestedResponse: aiSuggestedResponse,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
		resolvedAt:          resolvedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) UserID() uint {
	return t.userID
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

// StoredStatus is the status last read from or written to storage.
// Updates are conditional on it so a stale copy cannot move a ticket back.
func (t *Ticket) StoredStatus() vo.TicketStatus {
	return t.storedStatus
}

// MarkStored records that the current status has been persisted.
func (t *Ticket) MarkStored() {
	t.storedStatus = t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) AICategory() string {
	return t.aiCategory
}

func (t *Ticket) AISubCategory() string {
	return t.aiSubCategory
}

func (t *Ticket) AISentiment() insight.Sentiment {
	return t.aiSentiment
}

func (t *Ticket) AIConfidence() float64 {
	return t.aiConfidence
}

func (t *Ticket) AISuggestedResponse() string {
	return t.aiSuggestedResponse
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ClassificationText is the text the classifier sees for this ticket.
func (t *Ticket) ClassificationText() string {
	if t.description == "" {
		return t.title
	}
	return t.title + " " + t.description
}

// ApplyClassification stores the classifier output on the ticket.
func (t *Ticket) ApplyClassification(c insight.Classification) {
	t.aiCategory = c.Category
	t.aiSubCategory = c.SubCategory
	t.aiSentiment = c.Sentiment
	t.aiConfidence = c.Confidence
	t.aiSuggestedResponse = c.SuggestedResponse
	t.updatedAt = time.Now().UTC()
}

// NextStatuses lists the statuses this ticket may move to.
func (t *Ticket) NextStatuses() []vo.TicketStatus {
	return t.status.NextStatuses()
}

// ChangeStatus moves the ticket along the transition table. Moving to the
// current status is rejected like any other move missing from the table.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	now := time.Now().UTC()
	t.status = newStatus
	t.updatedAt = now
	if newStatus.IsResolved() {
		t.resolvedAt = &now
	}
	return nil
}

// IsOwnedBy reports whether userID is the tenant that owns the ticket.
func (t *Ticket) IsOwnedBy(userID uint) bool {
	return t.userID == userID
}

func (t *Ticket) Facts() insight.TicketFacts {
	return insight.TicketFacts{
		Status:     t.status.String(),
		Priority:   t.priority.String(),
		Category:   t.aiCategory,
		Sentiment:  string(t.aiSentiment),
		Confidence: t.aiConfidence,
	}
}
