package entities

import (
	"repairdesk/internal/domain/errs"
	"repairdesk/internal/domain/money"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the stored lifecycle of a bill. Overdue is never stored:
// it is derived from AmountDue and DueDate, see EffectiveStatus.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusViewed  InvoiceStatus = "viewed"
	InvoiceStatusPartial InvoiceStatus = "partial"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusVoid    InvoiceStatus = "void"

	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice is a binding bill settled through Payments.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI customer_id-index: customer_id
//   - GSI ticket_number-index: ticket_number
//
// AmountPaid and AmountDue are derived from the payment ledger and rewritten
// in the same transaction as every ledger append.
type Invoice struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	CustomerID    string `json:"customer_id"`
	TicketNumber  string `json:"ticket_number,omitempty"`
	EstimateID    string `json:"estimate_id,omitempty"`
	Priced
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	AmountDue     decimal.Decimal `json:"amount_due"`
	Status        InvoiceStatus   `json:"status"`
	DueDate       time.Time       `json:"due_date"`
	Notes         string          `json:"notes,omitempty"`
	VoidReason    string          `json:"void_reason,omitempty"`
	ReminderCount int             `json:"reminder_count"`

	SentAt   *time.Time `json:"sent_at,omitempty"`
	ViewedAt *time.Time `json:"viewed_at,omitempty"`
	PaidAt   *time.Time `json:"paid_at,omitempty"`
	VoidedAt *time.Time `json:"voided_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	Version   int64     `json:"version"`
}

func (i Invoice) copyWith(now time.Time) Invoice {
	next := i
	next.Items = cloneItems(i.Items)
	next.UpdatedAt = now
	return next
}

// IsOverdue: money is still owed and the due date has passed. Void invoices
// are never overdue.
func (i Invoice) IsOverdue(now time.Time) bool {
	return i.Status != InvoiceStatusVoid && i.AmountDue.IsPositive() && i.DueDate.Before(now)
}

// EffectiveStatus is what dashboards should display.
func (i Invoice) EffectiveStatus(now time.Time) InvoiceStatus {
	if i.IsOverdue(now) {
		return InvoiceStatusOverdue
	}
	return i.Status
}

// Send stamps sentAt. draft/sent/viewed read as sent afterwards; partial and
// paid keep their ledger-driven status. A reminder requires a prior send.
func (i Invoice) Send(now time.Time, reminder bool) (Invoice, error) {
	if i.Status == InvoiceStatusVoid {
		return i, errs.InvalidTransition("invoice", i.Status, InvoiceStatusSent)
	}
	if reminder && i.SentAt == nil {
		return i, errs.InvalidTransition("invoice", "unsent", "reminded")
	}
	next := i.copyWith(now)
	switch i.Status {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusViewed:
		next.Status = InvoiceStatusSent
	}
	at := now
	next.SentAt = &at
	if reminder {
		next.ReminderCount++
	}
	return next, nil
}

// MarkViewed only changes a sent invoice; other non-void states are left as is.
func (i Invoice) MarkViewed(now time.Time) (Invoice, error) {
	switch i.Status {
	case InvoiceStatusVoid, InvoiceStatusDraft:
		return i, errs.InvalidTransition("invoice", i.Status, InvoiceStatusViewed)
	case InvoiceStatusSent:
		next := i.copyWith(now)
		next.Status = InvoiceStatusViewed
		at := now
		next.ViewedAt = &at
		return next, nil
	}
	return i, nil
}

// Void cancels the invoice without deleting it. Terminal.
func (i Invoice) Void(reason string, now time.Time) (Invoice, error) {
	if i.Status == InvoiceStatusPaid || i.Status == InvoiceStatusVoid {
		return i, errs.InvalidTransition("invoice", i.Status, InvoiceStatusVoid)
	}
	next := i.copyWith(now)
	next.Status = InvoiceStatusVoid
	next.VoidReason = strings.TrimSpace(reason)
	at := now
	next.VoidedAt = &at
	return next, nil
}

// WithAmountPaid rewrites the derived ledger fields and the status they imply.
func (i Invoice) WithAmountPaid(paid decimal.Decimal, now time.Time) Invoice {
	next := i.copyWith(now)
	next.AmountPaid = paid
	next.AmountDue = money.Due(i.Total, paid)
	if i.Status == InvoiceStatusVoid {
		return next
	}

	switch {
	case next.AmountDue.IsZero() && paid.IsPositive():
		next.Status = InvoiceStatusPaid
		if next.PaidAt == nil {
			at := now
			next.PaidAt = &at
		}
	case paid.IsPositive():
		next.Status = InvoiceStatusPartial
		next.PaidAt = nil
	default:
		next.PaidAt = nil
		if i.Status == InvoiceStatusPaid || i.Status == InvoiceStatusPartial {
			next.Status = InvoiceStatusDraft
			if i.SentAt != nil {
				next.Status = InvoiceStatusSent
			}
		}
	}
	return next
}
