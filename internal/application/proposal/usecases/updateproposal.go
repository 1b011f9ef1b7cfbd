package usecases

import (
	"context"

	"github.com/conseccomms/conseccomms/internal/application/proposal/dto"
	"github.com/conseccomms/conseccomms/internal/domain/proposal"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

type UpdateProposalCommand struct {
	UserID     uint
	ProposalID uint
	Details    DetailsInput
	// LineItems nil keeps the current items; a non-nil slice replaces them
	// all and the total is recomputed.
	LineItems []LineItemInput
}

type UpdateProposalUseCase struct {
	proposalRepo proposal.Repository
	logger       logger.Interface
}

func NewUpdateProposalUseCase(proposalRepo proposal.Repository, logger logger.Interface) *UpdateProposalUseCase {
	return &UpdateProposalUseCase{
		proposalRepo: proposalRepo,
		logger:       logger,
	}
}

func (uc *UpdateProposalUseCase) Execute(ctx context.Context, cmd UpdateProposalCommand) (*dto.ProposalDTO, error) {
	items, err := buildLineItems(cmd.LineItems)
	if err != nil {
		return nil, err
	}

	p, err := loadProposal(ctx, uc.proposalRepo, uc.logger, cmd.UserID, cmd.ProposalID)
	if err != nil {
		return nil, err
	}
	if err := p.Update(cmd.Details.toDomain(), items); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.proposalRepo.Update(ctx, p); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update proposal", "proposal_id", cmd.ProposalID, "error", err)
		return nil, errors.NewInternalError("failed to update proposal")
	}
	return dto.ToProposalDTO(p), nil
}

type DeleteProposalUseCase struct {
	proposalRepo proposal.Repository
	logger       logger.Interface
}

func NewDeleteProposalUseCase(proposalRepo proposal.Repository, logger logger.Interface) *DeleteProposalUseCase {
	return &DeleteProposalUseCase{
		proposalRepo: proposalRepo,
		logger:       logger,
	}
}

// Execute removes a draft. Proposals that were sent are kept.
func (uc *DeleteProposalUseCase) Execute(ctx context.Context, userID, proposalID uint) error {
	p, err := loadProposal(ctx, uc.proposalRepo, uc.logger, userID, proposalID)
	if err != nil {
		return err
	}
	if !p.CanDelete() {
		return errors.NewConflictError("only draft proposals can be deleted", p.Status().String())
	}
	if err := uc.proposalRepo.Delete(ctx, userID, proposalID); err != nil {
		uc.logger.Errorw("failed to delete proposal", "proposal_id", proposalID, "error", err)
		return errors.NewInternalError("failed to delete proposal")
	}
	uc.logger.Infow("proposal deleted", "proposal_id", proposalID, "user_id", userID)
	return nil
}
