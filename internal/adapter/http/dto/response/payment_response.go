package response

import (
	"encoding/json"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/domain/money"
)

type PaymentResponse struct {
	ID           string    `json:"id"`
	InvoiceID    string    `json:"invoice_id"`
	CustomerID   string    `json:"customer_id"`
	Kind         string    `json:"kind" example:"payment"`
	Amount       string    `json:"amount" example:"100.00"`
	Method       string    `json:"method" example:"CARD"`
	Reference    string    `json:"reference,omitempty"`
	ProcessorFee string    `json:"processor_fee" example:"3.20"`
	NetAmount    string    `json:"net_amount" example:"96.80"`
	Status       string    `json:"status" example:"completed"`
	RefundOfID   string    `json:"refund_of_id,omitempty"`
	Reason       string    `json:"reason,omitempty"`
	PerformedBy  string    `json:"performed_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`

	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
	ProviderPayload   json.RawMessage `json:"provider_payload,omitempty" swaggertype:"object"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:                p.ID,
		InvoiceID:         p.InvoiceID,
		CustomerID:        p.CustomerID,
		Kind:              string(p.Kind),
		Amount:            money.Format(p.Amount),
		Method:            string(p.Method),
		Reference:         p.Reference,
		ProcessorFee:      money.Format(p.ProcessorFee),
		NetAmount:         money.Format(p.NetAmount),
		Status:            string(p.Status),
		RefundOfID:        p.RefundOfID,
		Reason:            p.Reason,
		PerformedBy:       p.PerformedBy,
		CreatedAt:         p.CreatedAt,
		ProviderPaymentID: p.ProviderPaymentID,
	}
	// Invalid JSON would make the whole response unencodable.
	if len(p.ProviderPayload) > 0 && json.Valid(p.ProviderPayload) {
		resp.ProviderPayload = p.ProviderPayload
	}
	return resp
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}
