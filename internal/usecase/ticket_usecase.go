package usecase

import (
	"context"
	"errors"
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

type CreateTicketInput struct {
	CustomerID    string
	Device        entities.Device
	RepairType    string
	DueAt         *time.Time
	EstimatedCost *decimal.Decimal
	Notes         string
	PerformedBy   string
}

// ITicketUseCase exposes the repair ticket state machine.
//
//   - Advance moves exactly one step forward, or back to any earlier step
//   - each forward step stamps its timestamp once
//   - PICKED_UP makes the ticket warranty-eligible

type ITicketUseCase interface {
	Create(ctx context.Context, in CreateTicketInput) (entities.Ticket, error)
	GetByID(ctx context.Context, id string) (entities.Ticket, error)
	GetByNumber(ctx context.Context, number string) (entities.Ticket, error)
	Advance(ctx context.Context, id string, target entities.TicketStatus, performedBy string) (entities.Ticket, error)
	UpdateCosts(ctx context.Context, id string, estimated, actual *decimal.Decimal, performedBy string) (entities.Ticket, error)
}

type TicketUseCase struct {
	repo interfaces.ITicketRepository
	seq  interfaces.ISequenceGenerator
	opts options
}

var _ ITicketUseCase = (*TicketUseCase)(nil)

func NewTicketUseCase(repo interfaces.ITicketRepository, seq interfaces.ISequenceGenerator, opts ...Option) *TicketUseCase {
	return &TicketUseCase{repo: repo, seq: seq, opts: newOptions(opts)}
}

func (u *TicketUseCase) Create(ctx context.Context, in CreateTicketInput) (entities.Ticket, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.RepairType = strings.TrimSpace(in.RepairType)
	if in.CustomerID == "" {
		return entities.Ticket{}, errs.Validation("ticket", "customer_id is required")
	}
	if in.RepairType == "" {
		return entities.Ticket{}, errs.Validation("ticket", "repair_type is required")
	}
	if err := in.Device.Validate(); err != nil {
		return entities.Ticket{}, err
	}

	now := u.opts.now()
	t := entities.NewTicket(uuid.NewString(), "", in.CustomerID, in.Device, in.RepairType, now)
	t.Notes = strings.TrimSpace(in.Notes)
	t.UpdatedBy = in.PerformedBy
	if in.DueAt != nil {
		due := in.DueAt.UTC()
		t.DueAt = &due
	}
	if in.EstimatedCost != nil {
		var err error
		if t, err = t.WithCosts(in.EstimatedCost, nil, now); err != nil {
			return entities.Ticket{}, err
		}
	}

	created, _, err := openTicket(ctx, u.repo, u.seq, u.opts.shopID, t)
	if err != nil {
		return entities.Ticket{}, err
	}
	log.Info().Str("ticket_id", created.ID).Str("ticket_number", created.TicketNumber).
		Str("customer_id", created.CustomerID).Str("performed_by", in.PerformedBy).
		Msg("[ticket][usecase] created")
	return created, nil
}

func (u *TicketUseCase) GetByID(ctx context.Context, id string) (entities.Ticket, error) {
	id = strings.TrimSpace(id)
	if err := requireID("ticket", id); err != nil {
		return entities.Ticket{}, err
	}
	return loadTicket(ctx, u.repo, id)
}

func (u *TicketUseCase) GetByNumber(ctx context.Context, number string) (entities.Ticket, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.Ticket{}, errs.Validation("ticket", "ticket number is required")
	}
	t, err := u.repo.GetByNumber(ctx, number)
	if err != nil {
		return entities.Ticket{}, fmt.Errorf("ticket %s: %w", number, err)
	}
	if t.ID == "" {
		return entities.Ticket{}, errs.NotFound("ticket", number)
	}
	return t, nil
}

func (u *TicketUseCase) Advance(ctx context.Context, id string, target entities.TicketStatus, performedBy string) (entities.Ticket, error) {
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Ticket{}, err
	}

	next, err := t.Advance(entities.TicketStatus(strings.ToUpper(strings.TrimSpace(string(target)))), u.opts.now())
	if err != nil {
		log.Warn().Err(err).Str("ticket_id", t.ID).Str("from", string(t.Status)).Str("to", string(target)).
			Msg("[ticket][usecase] advance rejected")
		return entities.Ticket{}, err
	}
	next.UpdatedBy = performedBy

	saved, err := u.repo.Update(ctx, next)
	if err != nil {
		return entities.Ticket{}, storeErr("ticket", t.ID, err)
	}
	log.Info().Str("ticket_id", saved.ID).Str("from", string(t.Status)).Str("to", string(saved.Status)).
		Str("performed_by", performedBy).Msg("[ticket][usecase] advanced")
	return saved, nil
}

func (u *TicketUseCase) UpdateCosts(ctx context.Context, id string, estimated, actual *decimal.Decimal, performedBy string) (entities.Ticket, error) {
	if estimated == nil && actual == nil {
		return entities.Ticket{}, errs.Validation("ticket", "estimated_cost or actual_cost is required")
	}
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Ticket{}, err
	}
	next, err := t.WithCosts(estimated, actual, u.opts.now())
	if err != nil {
		return entities.Ticket{}, err
	}
	next.UpdatedBy = performedBy

	saved, err := u.repo.Update(ctx, next)
	if err != nil {
		return entities.Ticket{}, storeErr("ticket", t.ID, err)
	}
	log.Info().Str("ticket_id", saved.ID).Str("performed_by", performedBy).Msg("[ticket][usecase] costs updated")
	return saved, nil
}

func loadTicket(ctx context.Context, repo interfaces.ITicketRepository, id string) (entities.Ticket, error) {
	t, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Ticket{}, fmt.Errorf("ticket %s: %w", id, err)
	}
	if t.ID == "" {
		return entities.Ticket{}, errs.NotFound("ticket", id)
	}
	return t, nil
}

// openTicket creates t unless a ticket with the same id already exists, in
// which case the stored one is returned with created=false. Conversions pass a
// derived id so a retry never opens a second ticket.
func openTicket(ctx context.Context, repo interfaces.ITicketRepository, seq interfaces.ISequenceGenerator, shopID string, t entities.Ticket) (entities.Ticket, bool, error) {
	existing, err := repo.GetByID(ctx, t.ID)
	if err != nil {
		return entities.Ticket{}, false, fmt.Errorf("ticket %s: %w", t.ID, err)
	}
	if existing.ID != "" {
		return existing, false, nil
	}

	if t.TicketNumber, err = nextNumber(ctx, seq, shopID, seqTicket); err != nil {
		return entities.Ticket{}, false, err
	}
	created, err := repo.Create(ctx, t)
	if errors.Is(err, interfaces.ErrItemExists) {
		existing, err := loadTicket(ctx, repo, t.ID)
		return existing, false, err
	}
	if err != nil {
		return entities.Ticket{}, false, fmt.Errorf("create ticket %s: %w", t.ID, err)
	}
	return created, true, nil
}
