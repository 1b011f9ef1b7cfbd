package usecases

import (
	"context"

	"github.com/conseccomms/conseccomms/internal/application/proposal/dto"
	"github.com/conseccomms/conseccomms/internal/domain/proposal"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

type ProposalInsightsUseCase struct {
	proposalRepo proposal.Repository
	synthesizer  ProposalSynthesizer
	logger       logger.Interface
}

func NewProposalInsightsUseCase(proposalRepo proposal.Repository, synthesizer ProposalSynthesizer, logger logger.Interface) *ProposalInsightsUseCase {
	return &ProposalInsightsUseCase{
		proposalRepo: proposalRepo,
		synthesizer:  synthesizer,
		logger:       logger,
	}
}

// Execute is repeatable: the same proposal yields the same insight unless
// time mixing is enabled on the synthesizer.
func (uc *ProposalInsightsUseCase) Execute(ctx context.Context, userID, proposalID uint) (*dto.ProposalInsightDTO, error) {
	p, err := loadProposal(ctx, uc.proposalRepo, uc.logger, userID, proposalID)
	if err != nil {
		return nil, err
	}
	return dto.ToProposalInsightDTO(p.ID(), uc.synthesizer.SynthesizeProposal(p.Facts())), nil
}
