package usecases

import (
	"context"
	"time"

	"github.com/conseccomms/conseccomms/internal/application/proposal/dto"
	"github.com/conseccomms/conseccomms/internal/domain/proposal"
	"github.com/conseccomms/conseccomms/internal/shared/db"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

type CreateProposalCommand struct {
	UserID    uint
	Details   DetailsInput
	LineItems []LineItemInput
}

type CreateProposalUseCase struct {
	proposalRepo proposal.Repository
	numbers      proposal.NumberAllocator
	txRunner     db.TxRunner
	now          func() time.Time
	logger       logger.Interface
}

func NewCreateProposalUseCase(
	proposalRepo proposal.Repository,
	numbers proposal.NumberAllocator,
	txRunner db.TxRunner,
	logger logger.Interface,
) *CreateProposalUseCase {
	return &CreateProposalUseCase{
		proposalRepo: proposalRepo,
		numbers:      numbers,
		txRunner:     txRunner,
		now:          time.Now,
		logger:       logger,
	}
}

// Execute allocates the proposal number and inserts the proposal in one
// transaction so a failed insert does not burn a number.
func (uc *CreateProposalUseCase) Execute(ctx context.Context, cmd CreateProposalCommand) (*dto.ProposalDTO, error) {
	items, err := buildLineItems(cmd.LineItems)
	if err != nil {
		return nil, err
	}
	p, err := proposal.NewProposal(cmd.UserID, cmd.Details.toDomain(), items)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	year := uc.now().UTC().Year()
	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		seq, err := uc.numbers.NextSequence(txCtx, year)
		if err != nil {
			return err
		}
		if err := p.SetNumber(proposal.FormatNumber(year, seq)); err != nil {
			return err
		}
		return uc.proposalRepo.Create(txCtx, p)
	})
	if err != nil {
		uc.logger.Errorw("failed to create proposal", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to create proposal")
	}

	uc.logger.Infow("proposal created", "proposal_id", p.ID(), "number", p.ProposalNumber(), "total", p.TotalAmount())
	return dto.ToProposalDTO(p), nil
}
