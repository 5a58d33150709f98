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

type CreateEstimateInput struct {
	CustomerID  string
	Device      entities.Device
	RepairType  string
	Items       []entities.LineItem
	TaxRate     decimal.Decimal
	ValidUntil  *time.Time
	Notes       string
	PerformedBy string
}

// IEstimateUseCase exposes the quote lifecycle.
//
// Convert is the only operation that touches another aggregate: it opens the
// ticket first (under an id derived from the estimate id) and then links it,
// so a retry after a half-done conversion completes instead of duplicating.

type IEstimateUseCase interface {
	Create(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Send(ctx context.Context, id, performedBy string) (entities.Estimate, error)
	MarkViewed(ctx context.Context, id, performedBy string) (entities.Estimate, error)
	Approve(ctx context.Context, id, performedBy string) (entities.Estimate, error)
	Decline(ctx context.Context, id, reason, performedBy string) (entities.Estimate, error)
	Expire(ctx context.Context, id, performedBy string) (entities.Estimate, error)
	Convert(ctx context.Context, id, performedBy string) (entities.Ticket, error)
	Duplicate(ctx context.Context, id, performedBy string) (entities.Estimate, error)
	Extend(ctx context.Context, id string, days int, performedBy string) (entities.Estimate, error)
	UpdateItems(ctx context.Context, id string, items []entities.LineItem, taxRate decimal.Decimal, performedBy string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo    interfaces.IEstimateRepository
	tickets interfaces.ITicketRepository
	seq     interfaces.ISequenceGenerator
	opts    options
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, tickets interfaces.ITicketRepository, seq interfaces.ISequenceGenerator, opts ...Option) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, tickets: tickets, seq: seq, opts: newOptions(opts)}
}

func (u *EstimateUseCase) Create(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	if in.CustomerID == "" {
		return entities.Estimate{}, errs.Validation("estimate", "customer_id is required")
	}
	if err := in.Device.Validate(); err != nil {
		return entities.Estimate{}, err
	}
	priced, err := entities.Price(in.Items, in.TaxRate, decimal.Zero)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := u.opts.now()
	validUntil := now.AddDate(0, 0, u.opts.estimateValidityDays)
	if in.ValidUntil != nil {
		if !in.ValidUntil.After(now) {
			return entities.Estimate{}, errs.Validation("estimate", "valid_until must be in the future")
		}
		validUntil = in.ValidUntil.UTC()
	}

	return u.create(ctx, entities.Estimate{
		CustomerID: in.CustomerID,
		Device:     in.Device,
		RepairType: strings.TrimSpace(in.RepairType),
		Priced:     priced,
		ValidUntil: validUntil,
		Notes:      strings.TrimSpace(in.Notes),
	}, now, in.PerformedBy)
}

func (u *EstimateUseCase) create(ctx context.Context, e entities.Estimate, now time.Time, performedBy string) (entities.Estimate, error) {
	number, err := nextNumber(ctx, u.seq, u.opts.shopID, seqEstimate)
	if err != nil {
		return entities.Estimate{}, err
	}
	e.ID = uuid.NewString()
	e.EstimateNumber = number
	e.Status = entities.EstimateStatusDraft
	e.CreatedAt = now
	e.UpdatedAt = now
	e.UpdatedBy = performedBy

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Estimate{}, storeErr("estimate", e.ID, err)
	}
	log.Info().Str("estimate_id", created.ID).Str("estimate_number", created.EstimateNumber).
		Str("total", created.Total.StringFixed(2)).Str("performed_by", performedBy).
		Msg("[estimate][usecase] created")
	return created, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if err := requireID("estimate", id); err != nil {
		return entities.Estimate{}, err
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("estimate %s: %w", id, err)
	}
	if e.ID == "" {
		return entities.Estimate{}, errs.NotFound("estimate", id)
	}
	return e, nil
}

func (u *EstimateUseCase) Send(ctx context.Context, id, performedBy string) (entities.Estimate, error) {
	return u.transition(ctx, id, performedBy, func(e entities.Estimate, now time.Time) (entities.Estimate, error) {
		return e.Send(now)
	})
}

func (u *EstimateUseCase) MarkViewed(ctx context.Context, id, performedBy string) (entities.Estimate, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.Status == entities.EstimateStatusViewed {
		return e, nil
	}
	return u.apply(ctx, e, performedBy, func(e entities.Estimate, now time.Time) (entities.Estimate, error) {
		return e.MarkViewed(now)
	})
}

func (u *EstimateUseCase) Approve(ctx context.Context, id, performedBy string) (entities.Estimate, error) {
	return u.transition(ctx, id, performedBy, func(e entities.Estimate, now time.Time) (entities.Estimate, error) {
		return e.Approve(now)
	})
}

func (u *EstimateUseCase) Decline(ctx context.Context, id, reason, performedBy string) (entities.Estimate, error) {
	return u.transition(ctx, id, performedBy, func(e entities.Estimate, now time.Time) (entities.Estimate, error) {
		return e.Decline(reason, now)
	})
}

func (u *EstimateUseCase) Expire(ctx context.Context, id, performedBy string) (entities.Estimate, error) {
	return u.transition(ctx, id, performedBy, func(e entities.Estimate, now time.Time) (entities.Estimate, error) {
		return e.Expire(now)
	})
}

func (u *EstimateUseCase) Extend(ctx context.Context, id string, days int, performedBy string) (entities.Estimate, error) {
	return u.transition(ctx, id, performedBy, func(e entities.Estimate, now time.Time) (entities.Estimate, error) {
		return e.Extend(days, now)
	})
}

func (u *EstimateUseCase) UpdateItems(ctx context.Context, id string, items []entities.LineItem, taxRate decimal.Decimal, performedBy string) (entities.Estimate, error) {
	return u.transition(ctx, id, performedBy, func(e entities.Estimate, now time.Time) (entities.Estimate, error) {
		return e.Reprice(items, taxRate, now)
	})
}

// Convert returns the ticket the estimate became. Converting twice returns the
// existing ticket together with an AlreadyConverted error.
func (u *EstimateUseCase) Convert(ctx context.Context, id, performedBy string) (entities.Ticket, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Ticket{}, err
	}
	if e.ConvertedToTicketID != "" {
		return u.convertedTicket(ctx, e)
	}
	if err := e.CanConvert(); err != nil {
		return entities.Ticket{}, err
	}

	now := u.opts.now()
	draft := entities.NewTicket(derivedID("estimate", e.ID), "", e.CustomerID, e.Device, e.RepairType, now)
	total := e.Total
	draft.EstimatedCost = &total
	draft.SourceEstimateID = e.ID
	draft.Notes = e.Notes
	draft.UpdatedBy = performedBy

	t, created, err := openTicket(ctx, u.tickets, u.seq, u.opts.shopID, draft)
	if err != nil {
		return entities.Ticket{}, err
	}
	if !created {
		log.Info().Str("estimate_id", e.ID).Str("ticket_id", t.ID).Msg("[estimate][usecase] resuming conversion with existing ticket")
	}

	next, err := e.MarkConverted(t.ID, now)
	if err != nil {
		return entities.Ticket{}, err
	}
	next.UpdatedBy = performedBy
	if _, err := u.repo.Update(ctx, next); err != nil {
		err = storeErr("estimate", e.ID, err)
		if errs.KindOf(err) == errs.KindConflict {
			// Another caller linked the estimate first; hand back its ticket.
			if latest, rerr := u.GetByID(ctx, e.ID); rerr == nil && latest.ConvertedToTicketID != "" {
				return u.convertedTicket(ctx, latest)
			}
		}
		log.Error().Err(err).Str("estimate_id", e.ID).Str("ticket_id", t.ID).
			Msg("[estimate][usecase] ticket opened but link not persisted")
		return entities.Ticket{}, err
	}
	log.Info().Str("estimate_id", e.ID).Str("ticket_id", t.ID).Str("ticket_number", t.TicketNumber).
		Str("performed_by", performedBy).Msg("[estimate][usecase] converted")
	return t, nil
}

func (u *EstimateUseCase) convertedTicket(ctx context.Context, e entities.Estimate) (entities.Ticket, error) {
	t, err := loadTicket(ctx, u.tickets, e.ConvertedToTicketID)
	if err != nil {
		return entities.Ticket{}, err
	}
	return t, errs.New(errs.KindAlreadyConverted, "estimate", "already converted to ticket %s", t.TicketNumber)
}

// Duplicate clones the quote into a new draft with a fresh validity window.
func (u *EstimateUseCase) Duplicate(ctx context.Context, id, performedBy string) (entities.Estimate, error) {
	src, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	priced, err := entities.Price(src.Items, src.TaxRate, decimal.Zero)
	if err != nil {
		return entities.Estimate{}, err
	}
	now := u.opts.now()
	return u.create(ctx, entities.Estimate{
		CustomerID: src.CustomerID,
		Device:     src.Device,
		RepairType: src.RepairType,
		Priced:     priced,
		ValidUntil: now.AddDate(0, 0, u.opts.estimateValidityDays),
		Notes:      src.Notes,
	}, now, performedBy)
}

func (u *EstimateUseCase) transition(ctx context.Context, id, performedBy string, fn func(entities.Estimate, time.Time) (entities.Estimate, error)) (entities.Estimate, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	return u.apply(ctx, e, performedBy, fn)
}

func (u *EstimateUseCase) apply(ctx context.Context, e entities.Estimate, performedBy string, fn func(entities.Estimate, time.Time) (entities.Estimate, error)) (entities.Estimate, error) {
	next, err := fn(e, u.opts.now())
	if err != nil {
		log.Warn().Err(err).Str("estimate_id", e.ID).Str("status", string(e.Status)).Msg("[estimate][usecase] transition rejected")
		return entities.Estimate{}, err
	}
	next.UpdatedBy = performedBy

	saved, err := u.repo.Update(ctx, next)
	if err != nil {
		return entities.Estimate{}, storeErr("estimate", e.ID, err)
	}
	log.Info().Str("estimate_id", saved.ID).Str("from", string(e.Status)).Str("to", string(saved.Status)).
		Str("performed_by", performedBy).Msg("[estimate][usecase] updated")
	return saved, nil
}
