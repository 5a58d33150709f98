package usecase

import (
	"context"
	"errors"
	"fmt"
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/domain/errs"
	"repairdesk/internal/domain/money"
	"repairdesk/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type FileClaimInput struct {
	TicketNumber   string
	Reason         string
	Description    string
	ResolutionType entities.ResolutionType
	PerformedBy    string
}

type WarrantyStatus struct {
	ClaimID           string
	DaysRemaining     int
	WarrantyExpiresAt time.Time
	Expired           bool
}

// IWarrantyUseCase exposes warranty claims against picked-up tickets.
//
//   - one open (pending or approved) claim per ticket, guarded by a
//     compare-and-set on the ticket's open claim id
//   - Resolve carries out the resolution: redo ticket, refunds, or nothing

type IWarrantyUseCase interface {
	FileClaim(ctx context.Context, in FileClaimInput) (entities.WarrantyClaim, error)
	GetByID(ctx context.Context, id string) (entities.WarrantyClaim, error)
	Approve(ctx context.Context, id, notes, performedBy string) (entities.WarrantyClaim, error)
	Deny(ctx context.Context, id, reason, performedBy string) (entities.WarrantyClaim, error)
	Resolve(ctx context.Context, id string, refundAmount *decimal.Decimal, performedBy string) (entities.WarrantyClaim, error)
	DaysRemaining(ctx context.Context, id string) (WarrantyStatus, error)
}

type WarrantyUseCase struct {
	repo     interfaces.IWarrantyClaimRepository
	tickets  interfaces.ITicketRepository
	invoices interfaces.IInvoiceRepository
	ledger   interfaces.IPaymentRepository
	payments IPaymentUseCase
	seq      interfaces.ISequenceGenerator
	opts     options
}

var _ IWarrantyUseCase = (*WarrantyUseCase)(nil)

func NewWarrantyUseCase(
	repo interfaces.IWarrantyClaimRepository,
	tickets interfaces.ITicketRepository,
	invoices interfaces.IInvoiceRepository,
	ledger interfaces.IPaymentRepository,
	payments IPaymentUseCase,
	seq interfaces.ISequenceGenerator,
	opts ...Option,
) *WarrantyUseCase {
	return &WarrantyUseCase{
		repo:     repo,
		tickets:  tickets,
		invoices: invoices,
		ledger:   ledger,
		payments: payments,
		seq:      seq,
		opts:     newOptions(opts),
	}
}

// FileClaim opens a claim. A second filing while one is open returns that
// claim together with ClaimInProgress.
func (u *WarrantyUseCase) FileClaim(ctx context.Context, in FileClaimInput) (entities.WarrantyClaim, error) {
	in.TicketNumber = strings.TrimSpace(in.TicketNumber)
	in.Reason = strings.TrimSpace(in.Reason)
	if in.TicketNumber == "" {
		return entities.WarrantyClaim{}, errs.Validation("warranty_claim", "ticket_number is required")
	}
	if in.Reason == "" {
		return entities.WarrantyClaim{}, errs.Validation("warranty_claim", "claim_reason is required")
	}
	if !in.ResolutionType.Valid() {
		return entities.WarrantyClaim{}, errs.Validation("warranty_claim", "unknown resolution type %q", in.ResolutionType)
	}

	t, err := u.tickets.GetByNumber(ctx, in.TicketNumber)
	if err != nil {
		return entities.WarrantyClaim{}, fmt.Errorf("ticket %s: %w", in.TicketNumber, err)
	}
	if t.ID == "" {
		return entities.WarrantyClaim{}, errs.NotFound("ticket", in.TicketNumber)
	}
	claimID, reserved, open, err := u.claimSlot(ctx, t)
	if err != nil {
		return entities.WarrantyClaim{}, err
	}
	if open.ID != "" {
		return open, errs.New(errs.KindClaimInProgress, "warranty_claim", "claim %s is still %s", open.ClaimNumber, open.Status)
	}

	days, expiresAt, err := u.opts.warranty.Window(t)
	if err != nil {
		return entities.WarrantyClaim{}, err
	}
	now := u.opts.now()
	if now.After(expiresAt) {
		log.Info().Str("ticket_number", t.TicketNumber).Time("expired_at", expiresAt).Msg("[warranty][usecase] claim after expiry rejected")
		return entities.WarrantyClaim{}, errs.New(errs.KindWarrantyExpired, "warranty_claim", "warranty for %s expired at %s", t.TicketNumber, expiresAt.Format(time.RFC3339))
	}

	number, err := nextNumber(ctx, u.seq, u.opts.shopID, seqClaim)
	if err != nil {
		return entities.WarrantyClaim{}, err
	}
	c := entities.WarrantyClaim{
		ID:                 claimID,
		ClaimNumber:        number,
		TicketID:           t.ID,
		TicketNumber:       t.TicketNumber,
		CustomerID:         t.CustomerID,
		OriginalRepairType: t.RepairType,
		OriginalRepairDate: *t.PickedUpAt,
		OriginalAmount:     t.BilledAmount(),
		WarrantyPeriodDays: days,
		WarrantyExpiresAt:  expiresAt,
		ClaimDate:          now,
		ClaimReason:        in.Reason,
		ClaimDescription:   strings.TrimSpace(in.Description),
		Status:             entities.ClaimStatusPending,
		ResolutionType:     in.ResolutionType,
		RefundedAmount:     decimal.Zero,
		CreatedAt:          now,
		UpdatedAt:          now,
		UpdatedBy:          in.PerformedBy,
	}

	// Point the ticket at the new claim before creating it; of two concurrent
	// filings only one passes this write.
	if !reserved {
		locked := t
		locked.OpenClaimID = c.ID
		locked.UpdatedAt = now
		locked.UpdatedBy = in.PerformedBy
		if _, err := u.tickets.Update(ctx, locked); err != nil {
			return entities.WarrantyClaim{}, storeErr("ticket", t.ID, err)
		}
	}
	created, err := u.repo.Create(ctx, c)
	if errors.Is(err, interfaces.ErrItemExists) {
		existing, err := u.GetByID(ctx, c.ID)
		if err != nil {
			return entities.WarrantyClaim{}, err
		}
		return existing, errs.New(errs.KindClaimInProgress, "warranty_claim", "claim %s is still %s", existing.ClaimNumber, existing.Status)
	}
	if err != nil {
		return entities.WarrantyClaim{}, storeErr("warranty_claim", c.ID, err)
	}
	log.Info().Str("claim_id", created.ID).Str("claim_number", created.ClaimNumber).Str("ticket_number", t.TicketNumber).
		Int("days_remaining", created.DaysRemaining(now)).Str("performed_by", in.PerformedBy).
		Msg("[warranty][usecase] claim filed")
	return created, nil
}

// claimSlot picks the id for a new claim on t. An open claim blocks filing.
// A pointer to a claim that was never written is a reservation by an earlier
// filing and is reused, so at most one claim lands under it; a pointer to a
// closed claim is stale.
func (u *WarrantyUseCase) claimSlot(ctx context.Context, t entities.Ticket) (id string, reserved bool, open entities.WarrantyClaim, err error) {
	if t.OpenClaimID == "" {
		return uuid.NewString(), false, entities.WarrantyClaim{}, nil
	}
	c, err := u.repo.GetByID(ctx, t.OpenClaimID)
	if err != nil {
		return "", false, entities.WarrantyClaim{}, fmt.Errorf("warranty_claim %s: %w", t.OpenClaimID, err)
	}
	switch {
	case c.ID == "":
		return t.OpenClaimID, true, entities.WarrantyClaim{}, nil
	case c.Status.Open():
		return "", false, c, nil
	}
	return uuid.NewString(), false, entities.WarrantyClaim{}, nil
}

func (u *WarrantyUseCase) GetByID(ctx context.Context, id string) (entities.WarrantyClaim, error) {
	id = strings.TrimSpace(id)
	if err := requireID("warranty_claim", id); err != nil {
		return entities.WarrantyClaim{}, err
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WarrantyClaim{}, fmt.Errorf("warranty_claim %s: %w", id, err)
	}
	if c.ID == "" {
		return entities.WarrantyClaim{}, errs.NotFound("warranty_claim", id)
	}
	return c, nil
}

func (u *WarrantyUseCase) Approve(ctx context.Context, id, notes, performedBy string) (entities.WarrantyClaim, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WarrantyClaim{}, err
	}
	next, err := c.Approve(performedBy, notes, u.opts.now())
	if err != nil {
		return entities.WarrantyClaim{}, err
	}
	return u.save(ctx, c, next, performedBy)
}

func (u *WarrantyUseCase) Deny(ctx context.Context, id, reason, performedBy string) (entities.WarrantyClaim, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WarrantyClaim{}, err
	}
	next, err := c.Deny(performedBy, reason, u.opts.now())
	if err != nil {
		return entities.WarrantyClaim{}, err
	}
	saved, err := u.save(ctx, c, next, performedBy)
	if err != nil {
		return entities.WarrantyClaim{}, err
	}
	u.release(ctx, saved, performedBy)
	return saved, nil
}

// Resolve carries out an approved claim and completes it. refundAmount is
// only read for partial refunds.
func (u *WarrantyUseCase) Resolve(ctx context.Context, id string, refundAmount *decimal.Decimal, performedBy string) (entities.WarrantyClaim, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WarrantyClaim{}, err
	}
	if c.Status != entities.ClaimStatusApproved {
		return entities.WarrantyClaim{}, errs.InvalidTransition("warranty_claim", c.Status, entities.ClaimStatusCompleted)
	}

	work := c
	work.RefundPaymentIDs = append([]string(nil), c.RefundPaymentIDs...)
	var resolution string
	switch c.ResolutionType {
	case entities.ResolutionRedo:
		t, err := u.openRedoTicket(ctx, c, performedBy)
		if err != nil {
			return entities.WarrantyClaim{}, err
		}
		work.RedoTicketID = t.ID
		resolution = fmt.Sprintf("redo ticket %s opened", t.TicketNumber)
	case entities.ResolutionReplacement:
		resolution = "device replaced"
	case entities.ResolutionRefund:
		if err := u.refund(ctx, &work, nil, performedBy); err != nil {
			return entities.WarrantyClaim{}, err
		}
		resolution = fmt.Sprintf("refunded %s", money.Format(work.RefundedAmount))
	case entities.ResolutionPartialRefund:
		if refundAmount == nil || !refundAmount.IsPositive() {
			return entities.WarrantyClaim{}, errs.Validation("warranty_claim", "refund_amount is required for a partial refund")
		}
		if err := u.refund(ctx, &work, refundAmount, performedBy); err != nil {
			return entities.WarrantyClaim{}, err
		}
		resolution = fmt.Sprintf("partially refunded %s", money.Format(work.RefundedAmount))
	default:
		return entities.WarrantyClaim{}, errs.Validation("warranty_claim", "unknown resolution type %q", c.ResolutionType)
	}

	next, err := work.Complete(resolution, u.opts.now())
	if err != nil {
		return entities.WarrantyClaim{}, err
	}
	saved, err := u.save(ctx, c, next, performedBy)
	if err != nil {
		return entities.WarrantyClaim{}, err
	}
	u.release(ctx, saved, performedBy)
	return saved, nil
}

func (u *WarrantyUseCase) openRedoTicket(ctx context.Context, c entities.WarrantyClaim, performedBy string) (entities.Ticket, error) {
	orig, err := loadTicket(ctx, u.tickets, c.TicketID)
	if err != nil {
		return entities.Ticket{}, err
	}
	draft := entities.NewTicket(derivedID("claim", c.ID), "", orig.CustomerID, orig.Device, orig.RepairType, u.opts.now())
	zero := decimal.Zero
	draft.EstimatedCost = &zero
	draft.SourceClaimID = c.ID
	draft.Notes = fmt.Sprintf("Warranty redo of %s (%s): %s", orig.TicketNumber, c.ClaimNumber, c.ClaimReason)
	draft.UpdatedBy = performedBy

	t, created, err := openTicket(ctx, u.tickets, u.seq, u.opts.shopID, draft)
	if err != nil {
		return entities.Ticket{}, err
	}
	log.Info().Str("claim_id", c.ID).Str("ticket_id", t.ID).Bool("created", created).Msg("[warranty][usecase] redo ticket")
	return t, nil
}

// refund pays back the ticket's settled payments newest first, up to limit
// (everything refundable when nil). Refund ids derive from (claim, payment),
// so a retried resolve counts what an earlier attempt already refunded.
func (u *WarrantyUseCase) refund(ctx context.Context, c *entities.WarrantyClaim, limit *decimal.Decimal, performedBy string) error {
	invs, err := u.invoices.ListByTicketNumber(ctx, c.TicketNumber)
	if err != nil {
		return fmt.Errorf("invoices for %s: %w", c.TicketNumber, err)
	}

	type candidate struct {
		payment    entities.Payment
		refundID   string
		done       *entities.Payment
		refundable decimal.Decimal
	}
	var cands []candidate
	available := decimal.Zero
	for _, inv := range invs {
		ledger, err := u.ledger.ListByInvoiceID(ctx, inv.ID)
		if err != nil {
			return fmt.Errorf("ledger %s: %w", inv.ID, err)
		}
		byID := make(map[string]entities.Payment, len(ledger))
		for _, p := range ledger {
			byID[p.ID] = p
		}
		for _, p := range ledger {
			if !p.Settled() {
				continue
			}
			cd := candidate{payment: p, refundID: derivedID("claim-refund", c.ID, p.ID), refundable: entities.Refundable(p, ledger)}
			if done, ok := byID[cd.refundID]; ok {
				cd.done = &done
				available = available.Add(done.Amount)
			}
			available = available.Add(cd.refundable)
			cands = append(cands, cd)
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].payment.CreatedAt.After(cands[j].payment.CreatedAt)
	})

	remaining := available
	if limit != nil {
		remaining = *limit
	}
	if !available.IsPositive() || remaining.GreaterThan(available) {
		return errs.New(errs.KindExceedsBalance, "warranty_claim", "refund %s exceeds refundable %s on %s", money.Format(remaining), money.Format(available), c.TicketNumber)
	}

	reason := fmt.Sprintf("warranty claim %s", c.ClaimNumber)
	c.RefundPaymentIDs = nil
	c.RefundedAmount = decimal.Zero
	for _, cd := range cands {
		if !remaining.IsPositive() {
			break
		}
		if cd.done != nil {
			c.RefundPaymentIDs = append(c.RefundPaymentIDs, cd.done.ID)
			c.RefundedAmount = c.RefundedAmount.Add(cd.done.Amount)
			remaining = remaining.Sub(cd.done.Amount)
			continue
		}
		take := decimal.Min(remaining, cd.refundable)
		if !take.IsPositive() {
			continue
		}
		r, err := u.payments.Refund(ctx, RefundInput{
			PaymentID:   cd.payment.ID,
			Amount:      &take,
			Reason:      reason,
			PerformedBy: performedBy,
			RefundID:    cd.refundID,
		})
		if err != nil {
			return err
		}
		c.RefundPaymentIDs = append(c.RefundPaymentIDs, r.ID)
		c.RefundedAmount = c.RefundedAmount.Add(r.Amount)
		remaining = remaining.Sub(r.Amount)
	}
	return nil
}

func (u *WarrantyUseCase) DaysRemaining(ctx context.Context, id string) (WarrantyStatus, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return WarrantyStatus{}, err
	}
	now := u.opts.now()
	return WarrantyStatus{
		ClaimID:           c.ID,
		DaysRemaining:     c.DaysRemaining(now),
		WarrantyExpiresAt: c.WarrantyExpiresAt,
		Expired:           now.After(c.WarrantyExpiresAt),
	}, nil
}

func (u *WarrantyUseCase) save(ctx context.Context, prev, next entities.WarrantyClaim, performedBy string) (entities.WarrantyClaim, error) {
	next.UpdatedBy = performedBy
	saved, err := u.repo.Update(ctx, next)
	if err != nil {
		return entities.WarrantyClaim{}, storeErr("warranty_claim", prev.ID, err)
	}
	log.Info().Str("claim_id", saved.ID).Str("from", string(prev.Status)).Str("to", string(saved.Status)).
		Str("performed_by", performedBy).Msg("[warranty][usecase] updated")
	return saved, nil
}

// release clears the ticket's open claim pointer once the claim is closed.
// A failure here only leaves a stale pointer, which FileClaim ignores.
func (u *WarrantyUseCase) release(ctx context.Context, c entities.WarrantyClaim, performedBy string) {
	t, err := u.tickets.GetByID(ctx, c.TicketID)
	if err != nil || t.OpenClaimID != c.ID {
		if err != nil {
			log.Warn().Err(err).Str("claim_id", c.ID).Msg("[warranty][usecase] release: ticket lookup failed")
		}
		return
	}
	t.OpenClaimID = ""
	t.UpdatedAt = u.opts.now()
	t.UpdatedBy = performedBy
	if _, err := u.tickets.Update(ctx, t); err != nil {
		log.Warn().Err(err).Str("claim_id", c.ID).Str("ticket_id", t.ID).Msg("[warranty][usecase] release: ticket update failed")
	}
}
