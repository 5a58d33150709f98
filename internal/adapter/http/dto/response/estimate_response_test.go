package response

import (
	"encoding/json"
	"testing"
	"time"

	"repairdesk/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func priced(t *testing.T) entities.Priced {
	t.Helper()
	p, err := entities.Price([]entities.LineItem{
		{Type: entities.LineItemPart, Description: "Screen", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("180")},
		{Type: entities.LineItemLabor, Description: "Install", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("39")},
	}, decimal.RequireFromString("0.0825"), decimal.Zero)
	if err != nil {
		t.Fatalf("price: %v", err)
	}
	return p
}

func TestFromEstimate(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	e := entities.Estimate{
		ID:             "est-1",
		EstimateNumber: "EST-000001",
		CustomerID:     "cust-1",
		Priced:         priced(t),
		Status:         entities.EstimateStatusApproved,
		CreatedAt:      now,
		Version:        3,
	}

	res := FromEstimate(e)
	if res.ID != "est-1" || res.EstimateNumber != "EST-000001" || res.Status != "approved" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Subtotal != "219.00" || res.TaxAmount != "18.07" || res.Total != "237.07" {
		t.Fatalf("unexpected totals: %+v", res.TotalsResponse)
	}
	if len(res.Items) != 2 || res.Items[0].UnitPrice != "180.00" || res.Items[1].Quantity != "1" {
		t.Fatalf("unexpected items: %+v", res.Items)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(b, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// totals are flattened into the estimate object, as strings.
	if body["total"] != "237.07" || body["tax_rate"] != "0.0825" {
		t.Fatalf("unexpected json: %s", b)
	}
}

func TestFromInvoice_EffectiveStatus(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	p := priced(t)
	inv := entities.Invoice{
		ID:        "inv-1",
		Priced:    p,
		AmountDue: p.Total,
		Status:    entities.InvoiceStatusSent,
		DueDate:   now.AddDate(0, 0, 7),
	}

	res := FromInvoice(inv, now)
	if res.Status != "sent" || res.EffectiveStatus != "sent" || res.AmountDue != "237.07" || res.AmountPaid != "0.00" {
		t.Fatalf("unexpected invoice response: %+v", res)
	}

	late := FromInvoice(inv, now.AddDate(0, 0, 8))
	if late.Status != "sent" || late.EffectiveStatus != "overdue" {
		t.Fatalf("expected derived overdue, got %s/%s", late.Status, late.EffectiveStatus)
	}
}

func TestFromPayment_DropsInvalidPayload(t *testing.T) {
	p := entities.Payment{
		ID:              "pay-1",
		Amount:          decimal.RequireFromString("100"),
		ProcessorFee:    decimal.RequireFromString("3.2"),
		NetAmount:       decimal.RequireFromString("96.8"),
		ProviderPayload: json.RawMessage(`{"id":1`),
	}
	res := FromPayment(p)
	if res.Amount != "100.00" || res.ProcessorFee != "3.20" || res.NetAmount != "96.80" {
		t.Fatalf("unexpected money fields: %+v", res)
	}
	if res.ProviderPayload != nil {
		t.Fatalf("invalid payload must be dropped")
	}
	if _, err := json.Marshal(res); err != nil {
		t.Fatalf("marshal: %v", err)
	}

	p.ProviderPayload = json.RawMessage(`{"id":1}`)
	if string(FromPayment(p).ProviderPayload) != `{"id":1}` {
		t.Fatalf("valid payload must pass through")
	}
}

func TestFromTicket_OptionalCosts(t *testing.T) {
	tk := entities.NewTicket("t-1", "TKT-000001", "cust-1", entities.Device{Brand: "Apple", Model: "X", Type: "phone"}, "screen", time.Now())
	res := FromTicket(tk)
	if res.EstimatedCost != nil || res.ActualCost != nil || res.WarrantyEligible {
		t.Fatalf("unexpected ticket response: %+v", res)
	}
	cost := decimal.RequireFromString("89.9")
	tk.ActualCost = &cost
	if got := FromTicket(tk).ActualCost; got == nil || *got != "89.90" {
		t.Fatalf("unexpected actual cost %v", got)
	}
}
