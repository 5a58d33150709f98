package entities

import (
	"repairdesk/internal/domain/errs"
	"time"

	"github.com/shopspring/decimal"
)

// TicketStatus is the repair lifecycle. The order of ticketFlow is the only
// legal forward path.
type TicketStatus string

const (
	TicketStatusIntake     TicketStatus = "INTAKE"
	TicketStatusDiagnosed  TicketStatus = "DIAGNOSED"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusReady      TicketStatus = "READY"
	TicketStatusPickedUp   TicketStatus = "PICKED_UP"
)

var ticketFlow = []TicketStatus{
	TicketStatusIntake,
	TicketStatusDiagnosed,
	TicketStatusInProgress,
	TicketStatusReady,
	TicketStatusPickedUp,
}

// position returns the index in ticketFlow, or -1 for unknown statuses.
func (s TicketStatus) position() int {
	for i, st := range ticketFlow {
		if st == s {
			return i
		}
	}
	return -1
}

func (s TicketStatus) Valid() bool { return s.position() >= 0 }

// Ticket is a single repair job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI ticket_number-index: ticket_number
//   - GSI customer_id-index: customer_id
type Ticket struct {
	ID           string       `json:"id"`
	TicketNumber string       `json:"ticket_number"`
	CustomerID   string       `json:"customer_id"`
	Device       Device       `json:"device"`
	RepairType   string       `json:"repair_type"`
	Status       TicketStatus `json:"status"`
	Notes        string       `json:"notes,omitempty"`

	EstimatedCost *decimal.Decimal `json:"estimated_cost,omitempty"`
	ActualCost    *decimal.Decimal `json:"actual_cost,omitempty"`

	SourceEstimateID string `json:"source_estimate_id,omitempty"`
	SourceClaimID    string `json:"source_claim_id,omitempty"`
	OpenClaimID      string `json:"open_claim_id,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	IntakeAt    *time.Time `json:"intake_at,omitempty"`
	DiagnosedAt *time.Time `json:"diagnosed_at,omitempty"`
	RepairedAt  *time.Time `json:"repaired_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	PickedUpAt  *time.Time `json:"picked_up_at,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	Version   int64     `json:"version"`
}

// NewTicket opens a ticket at INTAKE with intakeAt stamped.
func NewTicket(id, number, customerID string, device Device, repairType string, now time.Time) Ticket {
	at := now
	return Ticket{
		ID:           id,
		TicketNumber: number,
		CustomerID:   customerID,
		Device:       device,
		RepairType:   repairType,
		Status:       TicketStatusIntake,
		CreatedAt:    now,
		IntakeAt:     &at,
		UpdatedAt:    now,
	}
}

func (t *Ticket) stamps() []**time.Time {
	return []**time.Time{&t.IntakeAt, &t.DiagnosedAt, &t.RepairedAt, &t.CompletedAt, &t.PickedUpAt}
}

// StampFor returns the timestamp recorded for reaching s.
func (t Ticket) StampFor(s TicketStatus) *time.Time {
	pos := s.position()
	if pos < 0 {
		return nil
	}
	return *t.stamps()[pos]
}

// Advance moves the ticket to target. Allowed targets are the next status in
// the flow or any earlier one. Forward moves stamp the target's timestamp once,
// never earlier than a timestamp already recorded. Backward moves keep history.
// On error the receiver is returned unchanged.
func (t Ticket) Advance(target TicketStatus, now time.Time) (Ticket, error) {
	from, to := t.Status.position(), target.position()
	if from < 0 || to < 0 || to == from || to > from+1 {
		return t, errs.InvalidTransition("ticket", t.Status, target)
	}

	next := t
	next.Status = target
	next.UpdatedAt = now
	if to < from {
		return next, nil
	}

	stamps := next.stamps()
	if *stamps[to] == nil {
		at := now
		for _, s := range stamps {
			if *s != nil && (*s).After(at) {
				at = **s
			}
		}
		*stamps[to] = &at
	}
	return next, nil
}

// WarrantyEligible reports whether the repair is complete and handed back.
func (t Ticket) WarrantyEligible() bool {
	return t.Status == TicketStatusPickedUp && t.PickedUpAt != nil
}

// WithCosts sets estimated/actual costs; nil leaves a value untouched.
func (t Ticket) WithCosts(estimated, actual *decimal.Decimal, now time.Time) (Ticket, error) {
	for _, c := range []*decimal.Decimal{estimated, actual} {
		if c != nil && c.IsNegative() {
			return t, errs.Validation("ticket", "costs must not be negative")
		}
	}
	next := t
	if estimated != nil {
		v := estimated.Round(2)
		next.EstimatedCost = &v
	}
	if actual != nil {
		v := actual.Round(2)
		next.ActualCost = &v
	}
	next.UpdatedAt = now
	return next, nil
}

// BilledAmount is what the repair cost the customer, for warranty records.
func (t Ticket) BilledAmount() decimal.Decimal {
	switch {
	case t.ActualCost != nil:
		return *t.ActualCost
	case t.EstimatedCost != nil:
		return *t.EstimatedCost
	}
	return decimal.Zero
}
