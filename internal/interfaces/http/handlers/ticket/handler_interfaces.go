package ticket

import (
	"context"

	commondto "github.com/conseccomms/conseccomms/internal/application/common/dto"
	"github.com/conseccomms/conseccomms/internal/application/ticket/dto"
	"github.com/conseccomms/conseccomms/internal/application/ticket/usecases"
)

// Use case interfaces for TicketHandler - enables unit testing with mocks.

type createTicketUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error)
}

type getTicketUseCase interface {
	Execute(ctx context.Context, userID, ticketID uint) (*dto.TicketDTO, error)
}

type listTicketsUseCase interface {
	Execute(ctx context.Context, q usecases.ListTicketsQuery) (*commondto.ListResult[dto.TicketDTO], error)
}

type changeStatusUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangeStatusCommand) (*usecases.ChangeStatusResult, error)
}

type classifyTicketUseCase interface {
	Execute(ctx context.Context, cmd usecases.ClassifyTicketCommand) (*dto.TicketDTO, error)
}

type nextStatusesUseCase interface {
	Execute(ctx context.Context, userID, ticketID uint) ([]string, error)
}

type ticketInsightsUseCase interface {
	Execute(ctx context.Context, userID uint) (*dto.TicketInsightDTO, error)
}
