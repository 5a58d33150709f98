package interfaces

import (
	"context"
	"repairdesk/internal/domain/entities"
)

// IInvoiceRepository abstracts persistence for Invoice and its payment ledger.
//
// AppendPayment writes the new ledger record and the recomputed invoice as
// one atomic unit: both land or neither does. The invoice write is the same
// compare-and-set as Update.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Invoice, error)
	ListByTicketNumber(ctx context.Context, ticketNumber string) ([]entities.Invoice, error)
	Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	AppendPayment(ctx context.Context, inv entities.Invoice, p entities.Payment) (entities.Invoice, entities.Payment, error)
}
