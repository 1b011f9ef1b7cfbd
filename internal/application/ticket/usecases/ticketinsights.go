package usecases

import (
	"context"

	"github.com/conseccomms/conseccomms/internal/application/ticket/dto"
	"github.com/conseccomms/conseccomms/internal/domain/insight"
	"github.com/conseccomms/conseccomms/internal/domain/ticket"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
	"github.com/conseccomms/conseccomms/internal/shared/mapper"
)

type TicketInsightsUseCase struct {
	ticketRepo  ticket.Repository
	synthesizer TicketSynthesizer
	logger      logger.Interface
}

func NewTicketInsightsUseCase(ticketRepo ticket.Repository, synthesizer TicketSynthesizer, logger logger.Interface) *TicketInsightsUseCase {
	return &TicketInsightsUseCase{
		ticketRepo:  ticketRepo,
		synthesizer: synthesizer,
		logger:      logger,
	}
}

func (uc *TicketInsightsUseCase) Execute(ctx context.Context, userID uint) (*dto.TicketInsightDTO, error) {
	tickets, err := uc.ticketRepo.ListAll(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load tickets for insights", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to load tickets")
	}

	facts := mapper.MapSlice(tickets, func(t *ticket.Ticket) insight.TicketFacts {
		return t.Facts()
	})
	return dto.ToTicketInsightDTO(uc.synthesizer.SynthesizeTickets(facts)), nil
}
