package proposal

import (
	"context"

	vo "github.com/conseccomms/conseccomms/internal/domain/proposal/valueobjects"
	"github.com/conseccomms/conseccomms/internal/shared/query"
)

// Repository persists proposals together with their line items.
type Repository interface {
	Create(ctx context.Context, p *Proposal) error
	// Update rewrites the proposal row and replaces its line items.
	Update(ctx context.Context, p *Proposal) error
	Delete(ctx context.Context, userID, proposalID uint) error
	GetByID(ctx context.Context, userID, proposalID uint) (*Proposal, error)
	List(ctx context.Context, userID uint, filter Filter) ([]*Proposal, int64, error)
	ListAll(ctx context.Context, userID uint) ([]*Proposal, error)
}

type Filter struct {
	query.BaseFilter
	Status *vo.ProposalStatus
	Search string
}
