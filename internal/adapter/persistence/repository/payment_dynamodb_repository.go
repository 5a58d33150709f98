package repository

import (
	"context"
	"encoding/json"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/domain/money"
	"repairdesk/internal/usecase/interfaces"
)

type paymentItem struct {
	ID           string `dynamodbav:"id"`
	InvoiceID    string `dynamodbav:"invoice_id"`
	CustomerID   string `dynamodbav:"customer_id"`
	Kind         string `dynamodbav:"kind"`
	Amount       string `dynamodbav:"amount"`
	Method       string `dynamodbav:"method"`
	Reference    string `dynamodbav:"reference,omitempty"`
	ProcessorFee string `dynamodbav:"processor_fee"`
	NetAmount    string `dynamodbav:"net_amount"`
	Status       string `dynamodbav:"status"`
	RefundOfID   string `dynamodbav:"refund_of_id,omitempty"`
	Reason       string `dynamodbav:"reason,omitempty"`
	PerformedBy  string `dynamodbav:"performed_by,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`

	ProviderPaymentID  string                 `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository reads the append-only payment ledger. Writes go
// through InvoiceDynamoRepository.AppendPayment.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)
type PaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	var it paymentItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it)
}

func (r *PaymentDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	items, err := queryIndex[paymentItem](ctx, r.ddb, r.tableName, invoiceIDIndex, "invoice_id", invoiceID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		p, err := fromPaymentItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	sortByCreation(out, func(p entities.Payment) (time.Time, string) { return p.CreatedAt, p.ID })
	return out, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		ID:                 p.ID,
		InvoiceID:          p.InvoiceID,
		CustomerID:         p.CustomerID,
		Kind:               string(p.Kind),
		Amount:             money.Format(p.Amount),
		Method:             string(p.Method),
		Reference:          p.Reference,
		ProcessorFee:       money.Format(p.ProcessorFee),
		NetAmount:          money.Format(p.NetAmount),
		Status:             string(p.Status),
		RefundOfID:         p.RefundOfID,
		Reason:             p.Reason,
		PerformedBy:        p.PerformedBy,
		CreatedAt:          formatTime(p.CreatedAt),
		ProviderPaymentID:  p.ProviderPaymentID,
		ProviderPayloadRaw: string(p.ProviderPayload),
	}
	// The parsed copy is only for browsing the table; the raw string is
	// what gets read back.
	if len(p.ProviderPayload) > 0 {
		var m map[string]interface{}
		if json.Unmarshal(p.ProviderPayload, &m) == nil {
			it.ProviderPayload = m
		}
	}
	return it
}

func fromPaymentItem(it paymentItem) (entities.Payment, error) {
	var d decoder
	p := entities.Payment{
		ID:                it.ID,
		InvoiceID:         it.InvoiceID,
		CustomerID:        it.CustomerID,
		Kind:              entities.PaymentKind(it.Kind),
		Amount:            d.decimal("amount", it.Amount),
		Method:            entities.PaymentMethod(it.Method),
		Reference:         it.Reference,
		ProcessorFee:      d.decimal("processor_fee", it.ProcessorFee),
		NetAmount:         d.decimal("net_amount", it.NetAmount),
		Status:            entities.PaymentStatus(it.Status),
		RefundOfID:        it.RefundOfID,
		Reason:            it.Reason,
		PerformedBy:       it.PerformedBy,
		CreatedAt:         d.time("created_at", it.CreatedAt),
		ProviderPaymentID: it.ProviderPaymentID,
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayload = json.RawMessage(it.ProviderPayloadRaw)
	}
	if d.err != nil {
		return entities.Payment{}, d.err
	}
	return p, nil
}
