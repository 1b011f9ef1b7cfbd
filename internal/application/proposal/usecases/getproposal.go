package usecases

import (
	"context"

	commondto "github.com/conseccomms/conseccomms/internal/application/common/dto"
	"github.com/conseccomms/conseccomms/internal/application/proposal/dto"
	"github.com/conseccomms/conseccomms/internal/domain/proposal"
	vo "github.com/conseccomms/conseccomms/internal/domain/proposal/valueobjects"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
	"github.com/conseccomms/conseccomms/internal/shared/query"
)

type GetProposalUseCase struct {
	proposalRepo proposal.Repository
	renderer     MarkdownRenderer
	logger       logger.Interface
}

func NewGetProposalUseCase(proposalRepo proposal.Repository, renderer MarkdownRenderer, logger logger.Interface) *GetProposalUseCase {
	return &GetProposalUseCase{
		proposalRepo: proposalRepo,
		renderer:     renderer,
		logger:       logger,
	}
}

// Execute includes the description rendered from markdown to sanitized
// HTML. A render failure leaves the HTML empty.
func (uc *GetProposalUseCase) Execute(ctx context.Context, userID, proposalID uint) (*dto.ProposalDTO, error) {
	p, err := loadProposal(ctx, uc.proposalRepo, uc.logger, userID, proposalID)
	if err != nil {
		return nil, err
	}

	out := dto.ToProposalDTO(p)
	html, err := uc.renderer.ToHTMLSanitized(p.Description())
	if err != nil {
		uc.logger.Warnw("failed to render proposal description", "proposal_id", proposalID, "error", err)
	} else {
		out.DescriptionHTML = html
	}
	return out, nil
}

type ListProposalsQuery struct {
	UserID    uint
	Status    string
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListProposalsUseCase struct {
	proposalRepo proposal.Repository
	logger       logger.Interface
}

func NewListProposalsUseCase(proposalRepo proposal.Repository, logger logger.Interface) *ListProposalsUseCase {
	return &ListProposalsUseCase{
		proposalRepo: proposalRepo,
		logger:       logger,
	}
}

func (uc *ListProposalsUseCase) Execute(ctx context.Context, q ListProposalsQuery) (*commondto.ListResult[dto.ProposalDTO], error) {
	filter := proposal.Filter{
		BaseFilter: query.BaseFilter{
			PageFilter: query.PageFilter{Page: q.Page, PageSize: q.PageSize},
			SortFilter: query.SortFilter{SortBy: q.SortBy, SortOrder: q.SortOrder},
		},
		Search: q.Search,
	}
	if q.Status != "" {
		status, err := vo.NewProposalStatus(q.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	proposals, total, err := uc.proposalRepo.List(ctx, q.UserID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list proposals", "user_id", q.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list proposals")
	}
	return commondto.NewListResult(dto.ToProposalDTOs(proposals), total, q.Page, filter.Limit()), nil
}
