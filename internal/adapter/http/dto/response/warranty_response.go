package response

import (
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/domain/money"
	"repairdesk/internal/usecase"
)

type WarrantyClaimResponse struct {
	ID                 string     `json:"id"`
	ClaimNumber        string     `json:"claim_number" example:"WC-000001"`
	TicketID           string     `json:"ticket_id"`
	TicketNumber       string     `json:"ticket_number"`
	CustomerID         string     `json:"customer_id"`
	OriginalRepairType string     `json:"original_repair_type"`
	OriginalRepairDate time.Time  `json:"original_repair_date"`
	OriginalAmount     string     `json:"original_amount" example:"237.07"`
	WarrantyPeriodDays int        `json:"warranty_period_days" example:"90"`
	WarrantyExpiresAt  time.Time  `json:"warranty_expires_at"`
	ClaimDate          time.Time  `json:"claim_date"`
	ClaimReason        string     `json:"claim_reason"`
	ClaimDescription   string     `json:"claim_description,omitempty"`
	Status             string     `json:"status" example:"pending"`
	ResolutionType     string     `json:"resolution_type" example:"redo"`
	Resolution         string     `json:"resolution,omitempty"`
	ReviewedBy         string     `json:"reviewed_by,omitempty"`
	ReviewNotes        string     `json:"review_notes,omitempty"`
	ReviewedAt         *time.Time `json:"reviewed_at,omitempty"`
	RedoTicketID       string     `json:"redo_ticket_id,omitempty"`
	RefundPaymentIDs   []string   `json:"refund_payment_ids,omitempty"`
	RefundedAmount     string     `json:"refunded_amount" example:"0.00"`
	ResolvedAt         *time.Time `json:"resolved_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	UpdatedBy          string     `json:"updated_by,omitempty"`
	Version            int64      `json:"version"`
}

func FromWarrantyClaim(c entities.WarrantyClaim) WarrantyClaimResponse {
	return WarrantyClaimResponse{
		ID:                 c.ID,
		ClaimNumber:        c.ClaimNumber,
		TicketID:           c.TicketID,
		TicketNumber:       c.TicketNumber,
		CustomerID:         c.CustomerID,
		OriginalRepairType: c.OriginalRepairType,
		OriginalRepairDate: c.OriginalRepairDate,
		OriginalAmount:     money.Format(c.OriginalAmount),
		WarrantyPeriodDays: c.WarrantyPeriodDays,
		WarrantyExpiresAt:  c.WarrantyExpiresAt,
		ClaimDate:          c.ClaimDate,
		ClaimReason:        c.ClaimReason,
		ClaimDescription:   c.ClaimDescription,
		Status:             string(c.Status),
		ResolutionType:     string(c.ResolutionType),
		Resolution:         c.Resolution,
		ReviewedBy:         c.ReviewedBy,
		ReviewNotes:        c.ReviewNotes,
		ReviewedAt:         c.ReviewedAt,
		RedoTicketID:       c.RedoTicketID,
		RefundPaymentIDs:   c.RefundPaymentIDs,
		RefundedAmount:     money.Format(c.RefundedAmount),
		ResolvedAt:         c.ResolvedAt,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
		UpdatedBy:          c.UpdatedBy,
		Version:            c.Version,
	}
}

func FromWarrantyClaims(cs []entities.WarrantyClaim) []WarrantyClaimResponse {
	out := make([]WarrantyClaimResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromWarrantyClaim(c))
	}
	return out
}

type DaysRemainingResponse struct {
	ClaimID           string    `json:"claim_id"`
	DaysRemaining     int       `json:"days_remaining" example:"80"`
	WarrantyExpiresAt time.Time `json:"warranty_expires_at"`
	Expired           bool      `json:"expired"`
}

func FromWarrantyStatus(s usecase.WarrantyStatus) DaysRemainingResponse {
	return DaysRemainingResponse{
		ClaimID:           s.ClaimID,
		DaysRemaining:     s.DaysRemaining,
		WarrantyExpiresAt: s.WarrantyExpiresAt,
		Expired:           s.Expired,
	}
}
