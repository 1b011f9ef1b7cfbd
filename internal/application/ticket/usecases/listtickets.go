package usecases

import (
	"context"

	commondto "github.com/conseccomms/conseccomms/internal/application/common/dto"
	"github.com/conseccomms/conseccomms/internal/application/ticket/dto"
	"github.com/conseccomms/conseccomms/internal/domain/ticket"
	vo "github.com/conseccomms/conseccomms/internal/domain/ticket/valueobjects"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
	"github.com/conseccomms/conseccomms/internal/shared/query"
)

type ListTicketsQuery struct {
	UserID    uint
	Status    string
	Priority  string
	Category  string
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, q ListTicketsQuery) (*commondto.ListResult[dto.TicketDTO], error) {
	filter := ticket.Filter{
		BaseFilter: query.BaseFilter{
			PageFilter: query.PageFilter{Page: q.Page, PageSize: q.PageSize},
			SortFilter: query.SortFilter{SortBy: q.SortBy, SortOrder: q.SortOrder},
		},
		Category: q.Category,
		Search:   q.Search,
	}

	if q.Status != "" {
		status, err := vo.NewTicketStatus(q.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if q.Priority != "" {
		priority, err := vo.NewPriority(q.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	tickets, total, err := uc.ticketRepo.List(ctx, q.UserID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "user_id", q.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	return commondto.NewListResult(dto.ToTicketDTOs(tickets), total, q.Page, filter.Limit()), nil
}
