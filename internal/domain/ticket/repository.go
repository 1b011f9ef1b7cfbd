package ticket

import (
	"context"

	vo "github.com/conseccomms/conseccomms/internal/domain/ticket/valueobjects"
	"github.com/conseccomms/conseccomms/internal/shared/query"
)

// Repository methods are scoped by the owning user; a ticket of another
// tenant is reported as not found.
type Repository interface {
	Create(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, userID, ticketID uint) (*Ticket, error)
	List(ctx context.Context, userID uint, filter Filter) ([]*Ticket, int64, error)
	ListAll(ctx context.Context, userID uint) ([]*Ticket, error)
}

type Filter struct {
	query.BaseFilter
	Status   *vo.TicketStatus
	Priority *vo.Priority
	Category string
	Search   string
}
