package memory

import (
	"context"
	"encoding/json"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"
)

func cloneEstimate(e entities.Estimate) entities.Estimate {
	e.Items = append([]entities.LineItem(nil), e.Items...)
	return e
}

func cloneInvoice(i entities.Invoice) entities.Invoice {
	i.Items = append([]entities.LineItem(nil), i.Items...)
	return i
}

func clonePayment(p entities.Payment) entities.Payment {
	if p.ProviderPayload != nil {
		p.ProviderPayload = append(json.RawMessage(nil), p.ProviderPayload...)
	}
	return p
}

func cloneClaim(c entities.WarrantyClaim) entities.WarrantyClaim {
	c.RefundPaymentIDs = append([]string(nil), c.RefundPaymentIDs...)
	return c
}

type TicketRepository struct{ s *Store }

func ticketVersion(t entities.Ticket) int64        { return t.Version }
func setTicketVersion(t *entities.Ticket, v int64) { t.Version = v }
func ticketKey(t entities.Ticket) (int64, string)  { return t.CreatedAt.UnixNano(), t.ID }

func (r *TicketRepository) Create(_ context.Context, t entities.Ticket) (entities.Ticket, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return create(r.s.tickets, t.ID, t, setTicketVersion)
}

func (r *TicketRepository) GetByID(_ context.Context, id string) (entities.Ticket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.tickets[id], nil
}

func (r *TicketRepository) GetByNumber(_ context.Context, number string) (entities.Ticket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, t := range r.s.tickets {
		if t.TicketNumber == number {
			return t, nil
		}
	}
	return entities.Ticket{}, nil
}

func (r *TicketRepository) ListByCustomerID(_ context.Context, customerID string) ([]entities.Ticket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.Ticket{}
	for _, t := range r.s.tickets {
		if t.CustomerID == customerID {
			out = append(out, t)
		}
	}
	sortByCreation(out, ticketKey)
	return out, nil
}

func (r *TicketRepository) Update(_ context.Context, t entities.Ticket) (entities.Ticket, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return update(r.s.tickets, t.ID, t, t.Version, ticketVersion, setTicketVersion)
}

type EstimateRepository struct{ s *Store }

func estimateVersion(e entities.Estimate) int64        { return e.Version }
func setEstimateVersion(e *entities.Estimate, v int64) { e.Version = v }
func estimateKey(e entities.Estimate) (int64, string)  { return e.CreatedAt.UnixNano(), e.ID }

func (r *EstimateRepository) Create(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return create(r.s.estimates, e.ID, cloneEstimate(e), setEstimateVersion)
}

func (r *EstimateRepository) GetByID(_ context.Context, id string) (entities.Estimate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneEstimate(r.s.estimates[id]), nil
}

func (r *EstimateRepository) ListByCustomerID(_ context.Context, customerID string) ([]entities.Estimate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.Estimate{}
	for _, e := range r.s.estimates {
		if e.CustomerID == customerID {
			out = append(out, cloneEstimate(e))
		}
	}
	sortByCreation(out, estimateKey)
	return out, nil
}

func (r *EstimateRepository) Update(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return update(r.s.estimates, e.ID, cloneEstimate(e), e.Version, estimateVersion, setEstimateVersion)
}

type InvoiceRepository struct{ s *Store }

func invoiceVersion(i entities.Invoice) int64        { return i.Version }
func setInvoiceVersion(i *entities.Invoice, v int64) { i.Version = v }
func invoiceKey(i entities.Invoice) (int64, string)  { return i.CreatedAt.UnixNano(), i.ID }

func (r *InvoiceRepository) Create(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return create(r.s.invoices, inv.ID, cloneInvoice(inv), setInvoiceVersion)
}

func (r *InvoiceRepository) GetByID(_ context.Context, id string) (entities.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneInvoice(r.s.invoices[id]), nil
}

func (r *InvoiceRepository) list(match func(entities.Invoice) bool) []entities.Invoice {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.Invoice{}
	for _, inv := range r.s.invoices {
		if match(inv) {
			out = append(out, cloneInvoice(inv))
		}
	}
	sortByCreation(out, invoiceKey)
	return out
}

func (r *InvoiceRepository) ListByCustomerID(_ context.Context, customerID string) ([]entities.Invoice, error) {
	return r.list(func(inv entities.Invoice) bool { return inv.CustomerID == customerID }), nil
}

func (r *InvoiceRepository) ListByTicketNumber(_ context.Context, ticketNumber string) ([]entities.Invoice, error) {
	return r.list(func(inv entities.Invoice) bool { return inv.TicketNumber == ticketNumber }), nil
}

func (r *InvoiceRepository) Update(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return update(r.s.invoices, inv.ID, cloneInvoice(inv), inv.Version, invoiceVersion, setInvoiceVersion)
}

// AppendPayment checks both conditions before writing either record.
func (r *InvoiceRepository) AppendPayment(_ context.Context, inv entities.Invoice, p entities.Payment) (entities.Invoice, entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.payments[p.ID]; ok {
		return entities.Invoice{}, entities.Payment{}, interfaces.ErrItemExists
	}
	saved, err := update(r.s.invoices, inv.ID, cloneInvoice(inv), inv.Version, invoiceVersion, setInvoiceVersion)
	if err != nil {
		return entities.Invoice{}, entities.Payment{}, err
	}
	p = clonePayment(p)
	r.s.payments[p.ID] = p
	r.s.ledgers[p.InvoiceID] = append(r.s.ledgers[p.InvoiceID], p.ID)
	return saved, p, nil
}

type PaymentRepository struct{ s *Store }

func (r *PaymentRepository) GetByID(_ context.Context, id string) (entities.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return clonePayment(r.s.payments[id]), nil
}

// ListByInvoiceID returns the ledger in append order.
func (r *PaymentRepository) ListByInvoiceID(_ context.Context, invoiceID string) ([]entities.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := r.s.ledgers[invoiceID]
	out := make([]entities.Payment, 0, len(ids))
	for _, id := range ids {
		out = append(out, clonePayment(r.s.payments[id]))
	}
	return out, nil
}

type WarrantyClaimRepository struct{ s *Store }

func claimVersion(c entities.WarrantyClaim) int64        { return c.Version }
func setClaimVersion(c *entities.WarrantyClaim, v int64) { c.Version = v }
func claimKey(c entities.WarrantyClaim) (int64, string)  { return c.CreatedAt.UnixNano(), c.ID }

func (r *WarrantyClaimRepository) Create(_ context.Context, c entities.WarrantyClaim) (entities.WarrantyClaim, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return create(r.s.claims, c.ID, cloneClaim(c), setClaimVersion)
}

func (r *WarrantyClaimRepository) GetByID(_ context.Context, id string) (entities.WarrantyClaim, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneClaim(r.s.claims[id]), nil
}

func (r *WarrantyClaimRepository) ListByCustomerID(_ context.Context, customerID string) ([]entities.WarrantyClaim, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.WarrantyClaim{}
	for _, c := range r.s.claims {
		if c.CustomerID == customerID {
			out = append(out, cloneClaim(c))
		}
	}
	sortByCreation(out, claimKey)
	return out, nil
}

func (r *WarrantyClaimRepository) Update(_ context.Context, c entities.WarrantyClaim) (entities.WarrantyClaim, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return update(r.s.claims, c.ID, cloneClaim(c), c.Version, claimVersion, setClaimVersion)
}
