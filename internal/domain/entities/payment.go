package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the processing outcome of a ledger record.
//
// Refund records are written with status refunded; the payment they offset
// keeps its completed status forever.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "CASH"
	PaymentMethodCard  PaymentMethod = "CARD"
	PaymentMethodCheck PaymentMethod = "CHECK"
	PaymentMethodOther PaymentMethod = "OTHER"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodCheck, PaymentMethodOther:
		return true
	}
	return false
}

type PaymentKind string

const (
	PaymentKindPayment PaymentKind = "payment"
	PaymentKindRefund  PaymentKind = "refund"
)

// Payment is an append-only ledger record against an invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI invoice_id-index: invoice_id
//
// Provider payload:
//   - ProviderPayload keeps the gateway response body (JSON) for traceability.
type Payment struct {
	ID           string          `json:"id"`
	InvoiceID    string          `json:"invoice_id"`
	CustomerID   string          `json:"customer_id"`
	Kind         PaymentKind     `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	Method       PaymentMethod   `json:"method"`
	Reference    string          `json:"reference,omitempty"`
	ProcessorFee decimal.Decimal `json:"processor_fee"`
	NetAmount    decimal.Decimal `json:"net_amount"`
	Status       PaymentStatus   `json:"status"`
	RefundOfID   string          `json:"refund_of_id,omitempty"`
	Reason       string          `json:"reason,omitempty"`
	PerformedBy  string          `json:"performed_by,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`

	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
	ProviderPayload   json.RawMessage `json:"provider_payload,omitempty"`
}

// Settled is a completed incoming payment.
func (p Payment) Settled() bool {
	return p.Kind == PaymentKindPayment && p.Status == PaymentStatusCompleted
}

// AmountPaid folds a ledger: completed payments minus refunds.
func AmountPaid(ledger []Payment) decimal.Decimal {
	paid := decimal.Zero
	for _, p := range ledger {
		switch {
		case p.Settled():
			paid = paid.Add(p.Amount)
		case p.Kind == PaymentKindRefund && p.Status == PaymentStatusRefunded:
			paid = paid.Sub(p.Amount)
		}
	}
	return paid
}

// Refundable is what is left to refund on payment p given the whole ledger.
func Refundable(p Payment, ledger []Payment) decimal.Decimal {
	if !p.Settled() {
		return decimal.Zero
	}
	left := p.Amount
	for _, r := range ledger {
		if r.Kind == PaymentKindRefund && r.RefundOfID == p.ID && r.Status == PaymentStatusRefunded {
			left = left.Sub(r.Amount)
		}
	}
	if left.IsNegative() {
		return decimal.Zero
	}
	return left
}
