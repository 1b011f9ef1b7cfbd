package usecases

import (
	"context"
	"time"

	"github.com/conseccomms/conseccomms/internal/domain/proposal"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

// LineItemInput is one requested line; the amount is always computed.
type LineItemInput struct {
	Description string
	Quantity    float64
	UnitPrice   float64
}

type DetailsInput struct {
	Title       string
	ClientName  string
	ClientEmail string
	Description string
	ValidUntil  *time.Time
}

func (d DetailsInput) toDomain() proposal.Details {
	return proposal.Details{
		Title:       d.Title,
		ClientName:  d.ClientName,
		ClientEmail: d.ClientEmail,
		Description: d.Description,
		ValidUntil:  d.ValidUntil,
	}
}

// buildLineItems returns nil for nil input so updates can leave items
// untouched.
func buildLineItems(inputs []LineItemInput) ([]proposal.LineItem, error) {
	if inputs == nil {
		return nil, nil
	}
	items := make([]proposal.LineItem, 0, len(inputs))
	for _, in := range inputs {
		item, err := proposal.NewLineItem(in.Description, in.Quantity, in.UnitPrice)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		items = append(items, item)
	}
	return items, nil
}

func loadProposal(ctx context.Context, repo proposal.Repository, log logger.Interface, userID, proposalID uint) (*proposal.Proposal, error) {
	if proposalID == 0 {
		return nil, errors.NewValidationError("proposal ID is required")
	}
	p, err := repo.GetByID(ctx, userID, proposalID)
	if err != nil {
		log.Errorw("failed to get proposal", "proposal_id", proposalID, "error", err)
		return nil, errors.NewInternalError("failed to get proposal")
	}
	if p == nil || p.UserID() != userID {
		return nil, errors.NewNotFoundError("proposal not found")
	}
	return p, nil
}
