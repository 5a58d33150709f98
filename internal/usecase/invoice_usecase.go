package usecase

import (
	"context"
	"fmt"
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/domain/errs"
	"repairdesk/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type CreateInvoiceInput struct {
	CustomerID   string
	TicketNumber string
	Items        []entities.LineItem
	TaxRate      decimal.Decimal
	Discount     decimal.Decimal
	DueDate      *time.Time
	Notes        string
	PerformedBy  string
}

// OverdueReport is the derived view used by dashboards.
type OverdueReport struct {
	InvoiceID       string
	Overdue         bool
	StoredStatus    entities.InvoiceStatus
	EffectiveStatus entities.InvoiceStatus
	AmountDue       decimal.Decimal
	DueDate         time.Time
}

// IInvoiceUseCase exposes the bill lifecycle. Ledger effects (payments and
// refunds) live in IPaymentUseCase.

type IInvoiceUseCase interface {
	Create(ctx context.Context, in CreateInvoiceInput) (entities.Invoice, error)
	CreateFromEstimate(ctx context.Context, estimateID string, discount decimal.Decimal, dueDate *time.Time, performedBy string) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	Send(ctx context.Context, id, performedBy string) (entities.Invoice, error)
	Remind(ctx context.Context, id, performedBy string) (entities.Invoice, error)
	MarkViewed(ctx context.Context, id, performedBy string) (entities.Invoice, error)
	Void(ctx context.Context, id, reason, performedBy string) (entities.Invoice, error)
	Overdue(ctx context.Context, id string) (OverdueReport, error)
}

type InvoiceUseCase struct {
	repo      interfaces.IInvoiceRepository
	tickets   interfaces.ITicketRepository
	estimates interfaces.IEstimateRepository
	seq       interfaces.ISequenceGenerator
	opts      options
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, tickets interfaces.ITicketRepository, estimates interfaces.IEstimateRepository, seq interfaces.ISequenceGenerator, opts ...Option) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, tickets: tickets, estimates: estimates, seq: seq, opts: newOptions(opts)}
}

func (u *InvoiceUseCase) Create(ctx context.Context, in CreateInvoiceInput) (entities.Invoice, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.TicketNumber = strings.TrimSpace(in.TicketNumber)
	if in.CustomerID == "" {
		return entities.Invoice{}, errs.Validation("invoice", "customer_id is required")
	}
	priced, err := entities.Price(in.Items, in.TaxRate, in.Discount)
	if err != nil {
		return entities.Invoice{}, err
	}
	if in.TicketNumber != "" {
		t, err := u.tickets.GetByNumber(ctx, in.TicketNumber)
		if err != nil {
			return entities.Invoice{}, fmt.Errorf("ticket %s: %w", in.TicketNumber, err)
		}
		if t.ID == "" {
			return entities.Invoice{}, errs.NotFound("ticket", in.TicketNumber)
		}
		if t.CustomerID != in.CustomerID {
			return entities.Invoice{}, errs.Validation("invoice", "ticket %s belongs to another customer", in.TicketNumber)
		}
	}

	inv := entities.Invoice{
		ID:           uuid.NewString(),
		CustomerID:   in.CustomerID,
		TicketNumber: in.TicketNumber,
		Priced:       priced,
		Notes:        strings.TrimSpace(in.Notes),
	}
	return u.create(ctx, inv, in.DueDate, in.PerformedBy)
}

// CreateFromEstimate bills an approved or converted quote. Each estimate
// yields at most one invoice; asking again returns the same one.
func (u *InvoiceUseCase) CreateFromEstimate(ctx context.Context, estimateID string, discount decimal.Decimal, dueDate *time.Time, performedBy string) (entities.Invoice, error) {
	estimateID = strings.TrimSpace(estimateID)
	if err := requireID("estimate", estimateID); err != nil {
		return entities.Invoice{}, err
	}
	e, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Invoice{}, fmt.Errorf("estimate %s: %w", estimateID, err)
	}
	if e.ID == "" {
		return entities.Invoice{}, errs.NotFound("estimate", estimateID)
	}
	if e.Status != entities.EstimateStatusApproved && e.Status != entities.EstimateStatusConverted {
		return entities.Invoice{}, errs.InvalidTransition("estimate", e.Status, "invoiced")
	}

	id := derivedID("estimate-invoice", e.ID)
	if existing, err := u.repo.GetByID(ctx, id); err != nil {
		return entities.Invoice{}, fmt.Errorf("invoice %s: %w", id, err)
	} else if existing.ID != "" {
		return existing, nil
	}

	priced, err := entities.Price(e.Items, e.TaxRate, discount)
	if err != nil {
		return entities.Invoice{}, err
	}
	inv := entities.Invoice{
		ID:         id,
		CustomerID: e.CustomerID,
		EstimateID: e.ID,
		Priced:     priced,
		Notes:      e.Notes,
	}
	if e.ConvertedToTicketID != "" {
		t, err := loadTicket(ctx, u.tickets, e.ConvertedToTicketID)
		if err != nil {
			return entities.Invoice{}, err
		}
		inv.TicketNumber = t.TicketNumber
	}
	created, err := u.create(ctx, inv, dueDate, performedBy)
	if errs.KindOf(err) == errs.KindConflict {
		return u.GetByID(ctx, id)
	}
	return created, err
}

func (u *InvoiceUseCase) create(ctx context.Context, inv entities.Invoice, dueDate *time.Time, performedBy string) (entities.Invoice, error) {
	now := u.opts.now()
	inv.DueDate = now.AddDate(0, 0, u.opts.invoiceDueDays)
	if dueDate != nil {
		inv.DueDate = dueDate.UTC()
	}
	number, err := nextNumber(ctx, u.seq, u.opts.shopID, seqInvoice)
	if err != nil {
		return entities.Invoice{}, err
	}
	inv.InvoiceNumber = number
	inv.Status = entities.InvoiceStatusDraft
	inv.AmountPaid = decimal.Zero
	inv.AmountDue = inv.Total
	inv.CreatedAt = now
	inv.UpdatedAt = now
	inv.UpdatedBy = performedBy

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, storeErr("invoice", inv.ID, err)
	}
	log.Info().Str("invoice_id", created.ID).Str("invoice_number", created.InvoiceNumber).
		Str("total", created.Total.StringFixed(2)).Str("performed_by", performedBy).
		Msg("[invoice][usecase] created")
	return created, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if err := requireID("invoice", id); err != nil {
		return entities.Invoice{}, err
	}
	return loadInvoice(ctx, u.repo, id)
}

func (u *InvoiceUseCase) Send(ctx context.Context, id, performedBy string) (entities.Invoice, error) {
	return u.transition(ctx, id, performedBy, func(inv entities.Invoice, now time.Time) (entities.Invoice, error) {
		return inv.Send(now, false)
	})
}

func (u *InvoiceUseCase) Remind(ctx context.Context, id, performedBy string) (entities.Invoice, error) {
	return u.transition(ctx, id, performedBy, func(inv entities.Invoice, now time.Time) (entities.Invoice, error) {
		return inv.Send(now, true)
	})
}

func (u *InvoiceUseCase) MarkViewed(ctx context.Context, id, performedBy string) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	next, err := inv.MarkViewed(u.opts.now())
	if err != nil {
		return entities.Invoice{}, err
	}
	if next.Status == inv.Status {
		return inv, nil
	}
	return u.save(ctx, inv, next, performedBy)
}

func (u *InvoiceUseCase) Void(ctx context.Context, id, reason, performedBy string) (entities.Invoice, error) {
	return u.transition(ctx, id, performedBy, func(inv entities.Invoice, now time.Time) (entities.Invoice, error) {
		return inv.Void(reason, now)
	})
}

func (u *InvoiceUseCase) Overdue(ctx context.Context, id string) (OverdueReport, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return OverdueReport{}, err
	}
	now := u.opts.now()
	return OverdueReport{
		InvoiceID:       inv.ID,
		Overdue:         inv.IsOverdue(now),
		StoredStatus:    inv.Status,
		EffectiveStatus: inv.EffectiveStatus(now),
		AmountDue:       inv.AmountDue,
		DueDate:         inv.DueDate,
	}, nil
}

func (u *InvoiceUseCase) transition(ctx context.Context, id, performedBy string, fn func(entities.Invoice, time.Time) (entities.Invoice, error)) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	next, err := fn(inv, u.opts.now())
	if err != nil {
		log.Warn().Err(err).Str("invoice_id", inv.ID).Str("status", string(inv.Status)).Msg("[invoice][usecase] transition rejected")
		return entities.Invoice{}, err
	}
	return u.save(ctx, inv, next, performedBy)
}

func (u *InvoiceUseCase) save(ctx context.Context, prev, next entities.Invoice, performedBy string) (entities.Invoice, error) {
	next.UpdatedBy = performedBy
	saved, err := u.repo.Update(ctx, next)
	if err != nil {
		return entities.Invoice{}, storeErr("invoice", prev.ID, err)
	}
	log.Info().Str("invoice_id", saved.ID).Str("from", string(prev.Status)).Str("to", string(saved.Status)).
		Str("performed_by", performedBy).Msg("[invoice][usecase] updated")
	return saved, nil
}

func loadInvoice(ctx context.Context, repo interfaces.IInvoiceRepository, id string) (entities.Invoice, error) {
	inv, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, fmt.Errorf("invoice %s: %w", id, err)
	}
	if inv.ID == "" {
		return entities.Invoice{}, errs.NotFound("invoice", id)
	}
	return inv, nil
}
