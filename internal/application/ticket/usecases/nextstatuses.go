package usecases

import (
	"context"

	"github.com/conseccomms/conseccomms/internal/application/ticket/dto"
	"github.com/conseccomms/conseccomms/internal/domain/ticket"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

type NextStatusesUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewNextStatusesUseCase(ticketRepo ticket.Repository, logger logger.Interface) *NextStatusesUseCase {
	return &NextStatusesUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute returns the statuses the ticket may move to; resolved tickets
// yield an empty list.
func (uc *NextStatusesUseCase) Execute(ctx context.Context, userID, ticketID uint) ([]string, error) {
	t, err := loadTicket(ctx, uc.ticketRepo, uc.logger, userID, ticketID)
	if err != nil {
		return nil, err
	}
	return dto.StatusStrings(t.NextStatuses()), nil
}
