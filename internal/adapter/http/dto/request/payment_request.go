package request

import (
	"encoding/json"
	"strings"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase"
)

// ApplyPaymentRequest records money against an invoice. CARD payments carry
// the Mercado Pago payment body in provider_payload (mp_payload is accepted
// as an alias); it is forwarded as-is apart from the amount, which the
// ledger sets.
type ApplyPaymentRequest struct {
	Amount          string          `json:"amount" binding:"required" example:"100.00"`
	Method          string          `json:"method" binding:"required" example:"CASH"`
	Reference       string          `json:"reference,omitempty" example:"receipt 0042"`
	ProviderPayload json.RawMessage `json:"provider_payload,omitempty" swaggertype:"object"`
	MPPayload       json.RawMessage `json:"mp_payload,omitempty" swaggertype:"object"`
}

func (r ApplyPaymentRequest) ToInput(invoiceID, performedBy string) (usecase.ApplyPaymentInput, error) {
	amount, err := moneyOrZero("amount", r.Amount)
	if err != nil {
		return usecase.ApplyPaymentInput{}, err
	}
	payload := r.ProviderPayload
	if len(payload) == 0 {
		payload = r.MPPayload
	}
	return usecase.ApplyPaymentInput{
		InvoiceID:       invoiceID,
		Amount:          amount,
		Method:          entities.PaymentMethod(strings.ToUpper(strings.TrimSpace(r.Method))),
		Reference:       r.Reference,
		ProviderPayload: payload,
		PerformedBy:     performedBy,
	}, nil
}

// RefundRequest without an amount refunds everything still refundable.
// refund_id makes a retried request return the first refund.
type RefundRequest struct {
	Amount   string `json:"amount,omitempty" example:"40.00"`
	Reason   string `json:"reason" binding:"required" example:"part returned"`
	RefundID string `json:"refund_id,omitempty"`
}

func (r RefundRequest) ToInput(paymentID, performedBy string) (usecase.RefundInput, error) {
	amount, err := optionalMoney("amount", r.Amount)
	if err != nil {
		return usecase.RefundInput{}, err
	}
	return usecase.RefundInput{
		PaymentID:   paymentID,
		Amount:      amount,
		Reason:      r.Reason,
		PerformedBy: performedBy,
		RefundID:    strings.TrimSpace(r.RefundID),
	}, nil
}
