// Package proposal holds the Quotes aggregate: a priced proposal with line
// items and a send/decide lifecycle.
package proposal

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/conseccomms/conseccomms/internal/domain/insight"
	vo "github.com/conseccomms/conseccomms/internal/domain/proposal/valueobjects"
)

const (
	maxTitleLength = 200
	maxLineItems   = 100
)

type Proposal struct {
	id             uint
	userID         uint
	proposalNumber string
	title          string
	clientName     string
	clientEmail    string
	description    string
	status         vo.ProposalStatus
	storedStatus   vo.ProposalStatus
	totalAmount    float64
	validUntil     *time.Time
	lineItems      []LineItem
	createdAt      time.Time
	updatedAt      time.Time
	sentAt         *time.Time
}

// Details are the user-editable fields of a proposal.
type Details struct {
	Title       string
	ClientName  string
	ClientEmail string
	Description string
	ValidUntil  *time.Time
}

func (d Details) validate() error {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if strings.TrimSpace(d.ClientName) == "" {
		return fmt.Errorf("client name is required")
	}
	return nil
}

func NewProposal(userID uint, details Details, items []LineItem) (*Proposal, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if err := details.validate(); err != nil {
		return nil, err
	}
	if len(items) > maxLineItems {
		return nil, fmt.Errorf("a proposal can have at most %d line items", maxLineItems)
	}

	now := time.Now().UTC()
	p := &Proposal{
		userID:       userID,
		status:       vo.StatusDraft,
		storedStatus: vo.StatusDraft,
		createdAt:    now,
		updatedAt:    now,
	}
	p.applyDetails(details)
	p.setLineItems(items)
	return p, nil
}

func ReconstructProposal(
	id, userID uint,
	proposalNumber string,
	details Details,
	status vo.ProposalStatus,
	totalAmount float64,
	items []LineItem,
	createdAt, updatedAt time.Time,
	sentAt *time.Time,
) (*Proposal, error) {
	if id == 0 {
		return nil, fmt.Errorf("proposal ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid proposal status: %s", status)
	}
	if items == nil {
		items = []LineItem{}
	}
	return &Proposal{
		id:             id,
		userID:         userID,
		proposalNumber: proposalNumber,
		title:          details.Title,
		clientName:     details.ClientName,
		clientEmail:    details.ClientEmail,
		description:    details.Description,
		validUntil:     details.ValidUntil,
		status:         status,
		storedStatus:   status,
		totalAmount:    totalAmount,
		lineItems:      items,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		sentAt:         sentAt,
	}, nil
}

func (p *Proposal) ID() uint {
	return p.id
}

func (p *Proposal) UserID() uint {
	return p.userID
}

func (p *Proposal) ProposalNumber() string {
	return p.proposalNumber
}

func (p *Proposal) Title() string {
	return p.title
}

func (p *Proposal) ClientName() string {
	return p.clientName
}

func (p *Proposal) ClientEmail() string {
	return p.clientEmail
}

func (p *Proposal) Description() string {
	return p.description
}

func (p *Proposal) Status() vo.ProposalStatus {
	return p.status
}

// StoredStatus is the status last read from or written to storage.
func (p *Proposal) StoredStatus() vo.ProposalStatus {
	return p.storedStatus
}

// MarkStored records that the current status has been persisted.
func (p *Proposal) MarkStored() {
	p.storedStatus = p.status
}

func (p *Proposal) TotalAmount() float64 {
	return p.totalAmount
}

func (p *Proposal) ValidUntil() *time.Time {
	return p.validUntil
}

func (p *Proposal) LineItems() []LineItem {
	out := make([]LineItem, len(p.lineItems))
	copy(out, p.lineItems)
	return out
}

func (p *Proposal) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Proposal) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Proposal) SentAt() *time.Time {
	return p.sentAt
}

func (p *Proposal) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("proposal ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("proposal ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Proposal) SetNumber(number string) error {
	if p.proposalNumber != "" {
		return fmt.Errorf("proposal number is already set")
	}
	if number == "" {
		return fmt.Errorf("proposal number cannot be empty")
	}
	p.proposalNumber = number
	return nil
}

// Update replaces the editable fields and, when items is non-nil, the
// whole set of line items. Decided proposals are read-only.
func (p *Proposal) Update(details Details, items []LineItem) error {
	if p.status.IsTerminal() {
		return fmt.Errorf("cannot edit a proposal in status %s", p.status)
	}
	if err := details.validate(); err != nil {
		return err
	}
	if len(items) > maxLineItems {
		return fmt.Errorf("a proposal can have at most %d line items", maxLineItems)
	}
	p.applyDetails(details)
	if items != nil {
		p.setLineItems(items)
	}
	p.updatedAt = time.Now().UTC()
	return nil
}

func (p *Proposal) ChangeStatus(newStatus vo.ProposalStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid proposal status: %s", newStatus)
	}
	if !p.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", p.status, newStatus)
	}
	now := time.Now().UTC()
	if newStatus == vo.StatusSent {
		p.sentAt = &now
	}
	p.status = newStatus
	p.updatedAt = now
	return nil
}

// CanDelete allows removing drafts only; anything sent stays on record.
func (p *Proposal) CanDelete() bool {
	return p.status == vo.StatusDraft
}

// Facts returns the stable fields proposal insights are derived from.
func (p *Proposal) Facts() insight.ProposalFacts {
	return insight.ProposalFacts{
		ID:          p.id,
		Title:       p.title,
		ClientName:  p.clientName,
		TotalAmount: p.totalAmount,
	}
}

func (p *Proposal) applyDetails(d Details) {
	p.title = strings.TrimSpace(d.Title)
	p.clientName = strings.TrimSpace(d.ClientName)
	p.clientEmail = strings.TrimSpace(d.ClientEmail)
	p.description = d.Description
	p.validUntil = d.ValidUntil
}

func (p *Proposal) setLineItems(items []LineItem) {
	p.lineItems = append([]LineItem{}, items...)
	p.totalAmount = TotalOf(p.lineItems)
}
