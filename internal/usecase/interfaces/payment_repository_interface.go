package interfaces

import (
	"context"
	"repairdesk/internal/domain/entities"
)

// IPaymentRepository reads the append-only ledger. Writes go through
// IInvoiceRepository.AppendPayment.

type IPaymentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error)
}
