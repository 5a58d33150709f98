package response

import (
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/domain/money"
)

type LineItemResponse struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Quantity    string `json:"quantity" example:"1"`
	UnitPrice   string `json:"unit_price" example:"180.00"`
	Total       string `json:"total" example:"180.00"`
}

// TotalsResponse carries the priced lines shared by estimates and invoices.
type TotalsResponse struct {
	Items     []LineItemResponse `json:"items"`
	TaxRate   string             `json:"tax_rate" example:"0.0825"`
	Discount  string             `json:"discount" example:"0.00"`
	Subtotal  string             `json:"subtotal" example:"219.00"`
	TaxAmount string             `json:"tax_amount" example:"18.07"`
	Total     string             `json:"total" example:"237.07"`
}

func fromPriced(p entities.Priced) TotalsResponse {
	items := make([]LineItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, LineItemResponse{
			Type:        string(it.Type),
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			UnitPrice:   money.Format(it.UnitPrice),
			Total:       money.Format(it.Total),
		})
	}
	return TotalsResponse{
		Items:     items,
		TaxRate:   p.TaxRate.String(),
		Discount:  money.Format(p.Discount),
		Subtotal:  money.Format(p.Subtotal),
		TaxAmount: money.Format(p.TaxAmount),
		Total:     money.Format(p.Total),
	}
}

type EstimateResponse struct {
	ID                  string         `json:"id"`
	EstimateNumber      string         `json:"estimate_number" example:"EST-000001"`
	CustomerID          string         `json:"customer_id"`
	Device              DeviceResponse `json:"device"`
	RepairType          string         `json:"repair_type"`
	Status              string         `json:"status" example:"draft"`
	ValidUntil          time.Time      `json:"valid_until"`
	Notes               string         `json:"notes,omitempty"`
	DeclineReason       string         `json:"decline_reason,omitempty"`
	ConvertedToTicketID string         `json:"converted_to_ticket_id,omitempty"`
	TotalsResponse

	SentAt     *time.Time `json:"sent_at,omitempty"`
	ViewedAt   *time.Time `json:"viewed_at,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	DeclinedAt *time.Time `json:"declined_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	UpdatedBy  string     `json:"updated_by,omitempty"`
	Version    int64      `json:"version"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:                  e.ID,
		EstimateNumber:      e.EstimateNumber,
		CustomerID:          e.CustomerID,
		Device:              fromDevice(e.Device),
		RepairType:          e.RepairType,
		Status:              string(e.Status),
		ValidUntil:          e.ValidUntil,
		Notes:               e.Notes,
		DeclineReason:       e.DeclineReason,
		ConvertedToTicketID: e.ConvertedToTicketID,
		TotalsResponse:      fromPriced(e.Priced),
		SentAt:              e.SentAt,
		ViewedAt:            e.ViewedAt,
		ApprovedAt:          e.ApprovedAt,
		DeclinedAt:          e.DeclinedAt,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
		UpdatedBy:           e.UpdatedBy,
		Version:             e.Version,
	}
}

func FromEstimates(es []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromEstimate(e))
	}
	return out
}
