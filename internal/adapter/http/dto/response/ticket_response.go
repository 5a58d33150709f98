package response

import (
	"time"

	"repairdesk/internal/domain/entities"
)

type DeviceResponse struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Type         string `json:"type"`
	SerialNumber string `json:"serial_number,omitempty"`
}

func fromDevice(d entities.Device) DeviceResponse {
	return DeviceResponse{Brand: d.Brand, Model: d.Model, Type: d.Type, SerialNumber: d.SerialNumber}
}

type TicketResponse struct {
	ID               string         `json:"id"`
	TicketNumber     string         `json:"ticket_number" example:"TKT-000001"`
	CustomerID       string         `json:"customer_id"`
	Device           DeviceResponse `json:"device"`
	RepairType       string         `json:"repair_type"`
	Status           string         `json:"status" example:"INTAKE"`
	Notes            string         `json:"notes,omitempty"`
	EstimatedCost    *string        `json:"estimated_cost,omitempty" example:"237.07"`
	ActualCost       *string        `json:"actual_cost,omitempty"`
	WarrantyEligible bool           `json:"warranty_eligible"`
	SourceEstimateID string         `json:"source_estimate_id,omitempty"`
	SourceClaimID    string         `json:"source_claim_id,omitempty"`
	OpenClaimID      string         `json:"open_claim_id,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	IntakeAt    *time.Time `json:"intake_at,omitempty"`
	DiagnosedAt *time.Time `json:"diagnosed_at,omitempty"`
	RepairedAt  *time.Time `json:"repaired_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	PickedUpAt  *time.Time `json:"picked_up_at,omitempty"`
	// StatusReachedAt is when the ticket first reached its current status.
	StatusReachedAt *time.Time `json:"status_reached_at,omitempty"`
	UpdatedAt       time.Time  `json:"updated_at"`
	UpdatedBy       string     `json:"updated_by,omitempty"`
	Version         int64      `json:"version"`
}

func FromTicket(t entities.Ticket) TicketResponse {
	return TicketResponse{
		ID:               t.ID,
		TicketNumber:     t.TicketNumber,
		CustomerID:       t.CustomerID,
		Device:           fromDevice(t.Device),
		RepairType:       t.RepairType,
		Status:           string(t.Status),
		Notes:            t.Notes,
		EstimatedCost:    formatMoneyPtr(t.EstimatedCost),
		ActualCost:       formatMoneyPtr(t.ActualCost),
		WarrantyEligible: t.WarrantyEligible(),
		SourceEstimateID: t.SourceEstimateID,
		SourceClaimID:    t.SourceClaimID,
		OpenClaimID:      t.OpenClaimID,
		CreatedAt:        t.CreatedAt,
		DueAt:            t.DueAt,
		IntakeAt:         t.IntakeAt,
		DiagnosedAt:      t.DiagnosedAt,
		RepairedAt:       t.RepairedAt,
		CompletedAt:      t.CompletedAt,
		PickedUpAt:       t.PickedUpAt,
		StatusReachedAt:  t.StampFor(t.Status),
		UpdatedAt:        t.UpdatedAt,
		UpdatedBy:        t.UpdatedBy,
		Version:          t.Version,
	}
}

func FromTickets(ts []entities.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTicket(t))
	}
	return out
}
