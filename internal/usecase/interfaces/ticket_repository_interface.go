package interfaces

import (
	"context"
	"repairdesk/internal/domain/entities"
)

// ITicketRepository abstracts persistence for Ticket.
//
// Lookups return a zero Ticket (empty ID) and a nil error when nothing matches.
// Update is a compare-and-set on Version: the stored record must still carry
// t.Version, and the returned ticket carries Version+1.

type ITicketRepository interface {
	Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error)
	GetByID(ctx context.Context, id string) (entities.Ticket, error)
	GetByNumber(ctx context.Context, number string) (entities.Ticket, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Ticket, error)
	Update(ctx context.Context, t entities.Ticket) (entities.Ticket, error)
}
