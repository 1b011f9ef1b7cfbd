package proposal

import (
	"context"

	commondto "github.com/conseccomms/conseccomms/internal/application/common/dto"
	"github.com/conseccomms/conseccomms/internal/application/proposal/dto"
	"github.com/conseccomms/conseccomms/internal/application/proposal/usecases"
)

type createProposalUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateProposalCommand) (*dto.ProposalDTO, error)
}

type getProposalUseCase interface {
	Execute(ctx context.Context, userID, proposalID uint) (*dto.ProposalDTO, error)
}

type listProposalsUseCase interface {
	Execute(ctx context.Context, q usecases.ListProposalsQuery) (*commondto.ListResult[dto.ProposalDTO], error)
}

type updateProposalUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProposalCommand) (*dto.ProposalDTO, error)
}

type changeStatusUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangeStatusCommand) (*dto.ProposalDTO, error)
}

type deleteProposalUseCase interface {
	Execute(ctx context.Context, userID, proposalID uint) error
}

type proposalInsightsUseCase interface {
	Execute(ctx context.Context, userID, proposalID uint) (*dto.ProposalInsightDTO, error)
}
