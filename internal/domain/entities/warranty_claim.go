package entities

import (
	"math"
	"repairdesk/internal/domain/errs"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ClaimStatus string

const (
	ClaimStatusPending   ClaimStatus = "pending"
	ClaimStatusApproved  ClaimStatus = "approved"
	ClaimStatusDenied    ClaimStatus = "denied"
	ClaimStatusCompleted ClaimStatus = "completed"
)

// Open claims block new filings on the same ticket.
func (s ClaimStatus) Open() bool {
	return s == ClaimStatusPending || s == ClaimStatusApproved
}

type ResolutionType string

const (
	ResolutionRedo          ResolutionType = "redo"
	ResolutionReplacement   ResolutionType = "replacement"
	ResolutionRefund        ResolutionType = "refund"
	ResolutionPartialRefund ResolutionType = "partial-refund"
)

func (r ResolutionType) Valid() bool {
	switch r {
	case ResolutionRedo, ResolutionReplacement, ResolutionRefund, ResolutionPartialRefund:
		return true
	}
	return false
}

// WarrantyClaim is a customer's request to fix a failed repair for free.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI customer_id-index: customer_id
type WarrantyClaim struct {
	ID                 string          `json:"id"`
	ClaimNumber        string          `json:"claim_number"`
	TicketID           string          `json:"ticket_id"`
	TicketNumber       string          `json:"ticket_number"`
	CustomerID         string          `json:"customer_id"`
	OriginalRepairType string          `json:"original_repair_type"`
	OriginalRepairDate time.Time       `json:"original_repair_date"`
	OriginalAmount     decimal.Decimal `json:"original_amount"`
	WarrantyPeriodDays int             `json:"warranty_period_days"`
	WarrantyExpiresAt  time.Time       `json:"warranty_expires_at"`
	ClaimDate          time.Time       `json:"claim_date"`
	ClaimReason        string          `json:"claim_reason"`
	ClaimDescription   string          `json:"claim_description"`
	Status             ClaimStatus     `json:"status"`
	ResolutionType     ResolutionType  `json:"resolution_type"`
	Resolution         string          `json:"resolution,omitempty"`
	ReviewedBy         string          `json:"reviewed_by,omitempty"`
	ReviewNotes        string          `json:"review_notes,omitempty"`
	ReviewedAt         *time.Time      `json:"reviewed_at,omitempty"`

	RedoTicketID     string          `json:"redo_ticket_id,omitempty"`
	RefundPaymentIDs []string        `json:"refund_payment_ids,omitempty"`
	RefundedAmount   decimal.Decimal `json:"refunded_amount"`
	ResolvedAt       *time.Time      `json:"resolved_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	Version   int64     `json:"version"`
}

// DaysRemaining counts whole days left in the window, rounding a partial day
// up. Zero once the window has closed.
func (c WarrantyClaim) DaysRemaining(now time.Time) int {
	left := c.WarrantyExpiresAt.Sub(now)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Hours() / 24))
}

func (c WarrantyClaim) review(to ClaimStatus, reviewer, notes string, now time.Time) (WarrantyClaim, error) {
	if c.Status != ClaimStatusPending {
		return c, errs.InvalidTransition("warranty_claim", c.Status, to)
	}
	next := c
	next.RefundPaymentIDs = append([]string(nil), c.RefundPaymentIDs...)
	next.Status = to
	next.ReviewedBy = reviewer
	next.ReviewNotes = notes
	at := now
	next.ReviewedAt = &at
	next.UpdatedAt = now
	return next, nil
}

func (c WarrantyClaim) Approve(reviewer, notes string, now time.Time) (WarrantyClaim, error) {
	return c.review(ClaimStatusApproved, reviewer, strings.TrimSpace(notes), now)
}

// Deny needs a reason for the audit trail.
func (c WarrantyClaim) Deny(reviewer, reason string, now time.Time) (WarrantyClaim, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return c, errs.Validation("warranty_claim", "deny reason is required")
	}
	return c.review(ClaimStatusDenied, reviewer, reason, now)
}

// Complete records the outcome of an approved claim.
func (c WarrantyClaim) Complete(resolution string, now time.Time) (WarrantyClaim, error) {
	if c.Status != ClaimStatusApproved {
		return c, errs.InvalidTransition("warranty_claim", c.Status, ClaimStatusCompleted)
	}
	next := c
	next.RefundPaymentIDs = append([]string(nil), c.RefundPaymentIDs...)
	next.Status = ClaimStatusCompleted
	next.Resolution = resolution
	at := now
	next.ResolvedAt = &at
	next.UpdatedAt = now
	return next, nil
}
