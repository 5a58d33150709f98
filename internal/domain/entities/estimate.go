package entities

import (
	"repairdesk/internal/domain/errs"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EstimateStatus represents the lifecycle of a quote.
//
// Domain notes:
//   - converted is only reachable from approved, and only once.
//   - expired is set explicitly; nothing runs in the background.
type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "draft"
	EstimateStatusSent      EstimateStatus = "sent"
	EstimateStatusViewed    EstimateStatus = "viewed"
	EstimateStatusApproved  EstimateStatus = "approved"
	EstimateStatusDeclined  EstimateStatus = "declined"
	EstimateStatusExpired   EstimateStatus = "expired"
	EstimateStatusConverted EstimateStatus = "converted"
)

// Estimate is a non-binding quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI customer_id-index: customer_id
//
// Monetary representation:
//   - Subtotal, TaxAmount and Total are derived from Items and TaxRate.
type Estimate struct {
	ID             string         `json:"id"`
	EstimateNumber string         `json:"estimate_number"`
	CustomerID     string         `json:"customer_id"`
	Device         Device         `json:"device"`
	RepairType     string         `json:"repair_type"`
	Priced                        // items and totals
	Status         EstimateStatus `json:"status"`
	ValidUntil     time.Time      `json:"valid_until"`
	Notes          string         `json:"notes,omitempty"`
	DeclineReason  string         `json:"decline_reason,omitempty"`

	ConvertedToTicketID string `json:"converted_to_ticket_id,omitempty"`

	SentAt     *time.Time `json:"sent_at,omitempty"`
	ViewedAt   *time.Time `json:"viewed_at,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	DeclinedAt *time.Time `json:"declined_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	Version   int64     `json:"version"`
}

func (e Estimate) in(states ...EstimateStatus) bool {
	for _, s := range states {
		if e.Status == s {
			return true
		}
	}
	return false
}

func (e Estimate) move(to EstimateStatus, now time.Time, allowed ...EstimateStatus) (Estimate, error) {
	if !e.in(allowed...) {
		return e, errs.InvalidTransition("estimate", e.Status, to)
	}
	next := e
	next.Items = cloneItems(e.Items)
	next.Status = to
	next.UpdatedAt = now
	return next, nil
}

// IsExpired reports whether the validity window has passed.
func (e Estimate) IsExpired(now time.Time) bool {
	return e.ValidUntil.Before(now)
}

func (e Estimate) Send(now time.Time) (Estimate, error) {
	next, err := e.move(EstimateStatusSent, now, EstimateStatusDraft, EstimateStatusDeclined)
	if err != nil {
		return e, err
	}
	at := now
	next.SentAt = &at
	next.DeclineReason = ""
	return next, nil
}

// MarkViewed is a no-op when the estimate was already viewed.
func (e Estimate) MarkViewed(now time.Time) (Estimate, error) {
	if e.Status == EstimateStatusViewed {
		return e, nil
	}
	next, err := e.move(EstimateStatusViewed, now, EstimateStatusSent)
	if err != nil {
		return e, err
	}
	at := now
	next.ViewedAt = &at
	return next, nil
}

func (e Estimate) Approve(now time.Time) (Estimate, error) {
	if !e.in(EstimateStatusDraft, EstimateStatusSent, EstimateStatusViewed) {
		return e, errs.InvalidTransition("estimate", e.Status, EstimateStatusApproved)
	}
	if e.IsExpired(now) {
		return e, errs.New(errs.KindExpired, "estimate", "valid until %s", e.ValidUntil.Format(time.RFC3339))
	}
	next, _ := e.move(EstimateStatusApproved, now, e.Status)
	at := now
	next.ApprovedAt = &at
	return next, nil
}

func (e Estimate) Decline(reason string, now time.Time) (Estimate, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return e, errs.Validation("estimate", "decline reason is required")
	}
	next, err := e.move(EstimateStatusDeclined, now, EstimateStatusDraft, EstimateStatusSent, EstimateStatusViewed)
	if err != nil {
		return e, err
	}
	at := now
	next.DeclinedAt = &at
	next.DeclineReason = reason
	return next, nil
}

func (e Estimate) Expire(now time.Time) (Estimate, error) {
	return e.move(EstimateStatusExpired, now, EstimateStatusDraft, EstimateStatusSent, EstimateStatusViewed)
}

// CanConvert reports whether a ticket may be materialized now.
func (e Estimate) CanConvert() error {
	if e.ConvertedToTicketID != "" {
		return errs.New(errs.KindAlreadyConverted, "estimate", "already converted to ticket %s", e.ConvertedToTicketID)
	}
	if e.Status != EstimateStatusApproved {
		return errs.InvalidTransition("estimate", e.Status, EstimateStatusConverted)
	}
	return nil
}

// MarkConverted links the ticket. The link is set once and never cleared.
func (e Estimate) MarkConverted(ticketID string, now time.Time) (Estimate, error) {
	if err := e.CanConvert(); err != nil {
		return e, err
	}
	next, _ := e.move(EstimateStatusConverted, now, EstimateStatusApproved)
	next.ConvertedToTicketID = ticketID
	return next, nil
}

func (e Estimate) Extend(days int, now time.Time) (Estimate, error) {
	if days <= 0 {
		return e, errs.Validation("estimate", "extension must be a positive number of days")
	}
	next, err := e.move(e.Status, now, EstimateStatusSent, EstimateStatusViewed)
	if err != nil {
		return e, errs.InvalidTransition("estimate", e.Status, "extended")
	}
	next.ValidUntil = e.ValidUntil.AddDate(0, 0, days)
	return next, nil
}

// Reprice replaces items and tax rate on a draft.
func (e Estimate) Reprice(items []LineItem, taxRate decimal.Decimal, now time.Time) (Estimate, error) {
	if e.Status != EstimateStatusDraft {
		return e, errs.InvalidTransition("estimate", e.Status, "repriced")
	}
	priced, err := Price(items, taxRate, decimal.Zero)
	if err != nil {
		return e, err
	}
	next := e
	next.Priced = priced
	next.UpdatedAt = now
	return next, nil
}
