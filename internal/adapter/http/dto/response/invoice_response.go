package response

import (
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/domain/money"
	"repairdesk/internal/usecase"
)

// InvoiceResponse shows both the stored status and the effective one, which
// reads "overdue" once the due date has passed with money still owed.
type InvoiceResponse struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoice_number" example:"INV-000001"`
	CustomerID    string `json:"customer_id"`
	TicketNumber  string `json:"ticket_number,omitempty"`
	EstimateID    string `json:"estimate_id,omitempty"`
	TotalsResponse
	AmountPaid      string    `json:"amount_paid" example:"100.00"`
	AmountDue       string    `json:"amount_due" example:"137.07"`
	Status          string    `json:"status" example:"partial"`
	EffectiveStatus string    `json:"effective_status" example:"overdue"`
	DueDate         time.Time `json:"due_date"`
	Notes           string    `json:"notes,omitempty"`
	VoidReason      string    `json:"void_reason,omitempty"`
	ReminderCount   int       `json:"reminder_count"`

	SentAt    *time.Time `json:"sent_at,omitempty"`
	ViewedAt  *time.Time `json:"viewed_at,omitempty"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	VoidedAt  *time.Time `json:"voided_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	UpdatedBy string     `json:"updated_by,omitempty"`
	Version   int64      `json:"version"`
}

func FromInvoice(i entities.Invoice, now time.Time) InvoiceResponse {
	return InvoiceResponse{
		ID:              i.ID,
		InvoiceNumber:   i.InvoiceNumber,
		CustomerID:      i.CustomerID,
		TicketNumber:    i.TicketNumber,
		EstimateID:      i.EstimateID,
		TotalsResponse:  fromPriced(i.Priced),
		AmountPaid:      money.Format(i.AmountPaid),
		AmountDue:       money.Format(i.AmountDue),
		Status:          string(i.Status),
		EffectiveStatus: string(i.EffectiveStatus(now)),
		DueDate:         i.DueDate,
		Notes:           i.Notes,
		VoidReason:      i.VoidReason,
		ReminderCount:   i.ReminderCount,
		SentAt:          i.SentAt,
		ViewedAt:        i.ViewedAt,
		PaidAt:          i.PaidAt,
		VoidedAt:        i.VoidedAt,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
		UpdatedBy:       i.UpdatedBy,
		Version:         i.Version,
	}
}

func FromInvoices(is []entities.Invoice, now time.Time) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(is))
	for _, i := range is {
		out = append(out, FromInvoice(i, now))
	}
	return out
}

type OverdueResponse struct {
	InvoiceID       string    `json:"invoice_id"`
	Overdue         bool      `json:"overdue"`
	StoredStatus    string    `json:"stored_status"`
	EffectiveStatus string    `json:"effective_status"`
	AmountDue       string    `json:"amount_due"`
	DueDate         time.Time `json:"due_date"`
}

func FromOverdueReport(r usecase.OverdueReport) OverdueResponse {
	return OverdueResponse{
		InvoiceID:       r.InvoiceID,
		Overdue:         r.Overdue,
		StoredStatus:    string(r.StoredStatus),
		EffectiveStatus: string(r.EffectiveStatus),
		AmountDue:       money.Format(r.AmountDue),
		DueDate:         r.DueDate,
	}
}
