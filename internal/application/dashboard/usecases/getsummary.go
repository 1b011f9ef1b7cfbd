package usecases

import (
	"context"

	"github.com/conseccomms/conseccomms/internal/domain/dashboard"
	"github.com/conseccomms/conseccomms/internal/domain/drive"
	"github.com/conseccomms/conseccomms/internal/domain/insight"
	"github.com/conseccomms/conseccomms/internal/domain/proposal"
	"github.com/conseccomms/conseccomms/internal/domain/ticket"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
	"github.com/conseccomms/conseccomms/internal/shared/mapper"
)

// SummaryCache stores computed summaries per user for a short time. A
// cache miss returns (nil, nil).
type SummaryCache interface {
	Get(ctx context.Context, userID uint) (*dashboard.Summary, error)
	Set(ctx context.Context, userID uint, summary *dashboard.Summary) error
}

type GetSummaryUseCase struct {
	ticketRepo   ticket.Repository
	fileRepo     drive.FileRepository
	proposalRepo proposal.Repository
	cache        SummaryCache
	logger       logger.Interface
}

// NewGetSummaryUseCase accepts a nil cache; every call then recomputes.
func NewGetSummaryUseCase(
	ticketRepo ticket.Repository,
	fileRepo drive.FileRepository,
	proposalRepo proposal.Repository,
	cache SummaryCache,
	logger logger.Interface,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		ticketRepo:   ticketRepo,
		fileRepo:     fileRepo,
		proposalRepo: proposalRepo,
		cache:        cache,
		logger:       logger,
	}
}

// Execute serves the cached summary when present. Cache failures only
// cost a recompute.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, userID uint) (*dashboard.Summary, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, userID)
		if err != nil {
			uc.logger.Warnw("dashboard cache read failed", "user_id", userID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	tickets, err := uc.ticketRepo.ListAll(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load tickets for dashboard", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to build dashboard")
	}
	files, err := uc.fileRepo.ListAll(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load files for dashboard", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to build dashboard")
	}
	proposals, err := uc.proposalRepo.ListAll(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load proposals for dashboard", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to build dashboard")
	}

	summary := dashboard.Aggregate(
		mapper.MapSlice(tickets, func(t *ticket.Ticket) insight.TicketFacts { return t.Facts() }),
		mapper.MapSlice(files, func(f *drive.File) insight.FileFacts { return f.Facts() }),
		mapper.MapSlice(proposals, func(p *proposal.Proposal) dashboard.ProposalFacts {
			return dashboard.ProposalFacts{Status: p.Status().String(), TotalAmount: p.TotalAmount()}
		}),
	)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, userID, &summary); err != nil {
			uc.logger.Warnw("dashboard cache write failed", "user_id", userID, "error", err)
		}
	}
	return &summary, nil
}
