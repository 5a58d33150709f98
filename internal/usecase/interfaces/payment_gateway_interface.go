package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external card processors (e.g. Mercado Pago).
//
// The payment ledger charges the card through it before appending the record,
// and keeps the provider response payload (including fee details) for
// traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
