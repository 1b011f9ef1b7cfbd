package usecases

import (
	"context"

	"github.com/conseccomms/conseccomms/internal/application/ticket/dto"
	"github.com/conseccomms/conseccomms/internal/domain/ticket"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, userID, ticketID uint) (*dto.TicketDTO, error) {
	t, err := loadTicket(ctx, uc.ticketRepo, uc.logger, userID, ticketID)
	if err != nil {
		return nil, err
	}
	return dto.ToTicketDTO(t), nil
}

// loadTicket maps a missing or foreign ticket to not found.
func loadTicket(ctx context.Context, repo ticket.Repository, log logger.Interface, userID, ticketID uint) (*ticket.Ticket, error) {
	if ticketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	t, err := repo.GetByID(ctx, userID, ticketID)
	if err != nil {
		log.Errorw("failed to get ticket", "ticket_id", ticketID, "error", err)
		return nil, errors.NewInternalError("failed to get ticket")
	}
	if t == nil || !t.IsOwnedBy(userID) {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return t, nil
}
