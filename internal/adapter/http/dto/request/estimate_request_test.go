package request

import (
	"errors"
	"testing"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/domain/errs"
)

func TestCreateEstimateRequest_ToInput(t *testing.T) {
	r := CreateEstimateRequest{
		CustomerID: "cust-1",
		Device:     DeviceRequest{Brand: "Apple", Model: "iPhone 13", Type: "phone"},
		RepairType: "screen",
		Items: []LineItemRequest{
			{Type: "part", Description: "Screen", Quantity: "1", UnitPrice: "180.00"},
			{Type: "labor", Description: "Install", Quantity: "1.5", UnitPrice: "26"},
		},
		TaxRate:    "0.0825",
		ValidUntil: "2026-04-01",
	}

	in, err := r.ToInput("front-desk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(in.Items) != 2 || in.Items[1].Type != entities.LineItemLabor {
		t.Fatalf("unexpected items: %+v", in.Items)
	}
	if in.Items[1].Quantity.String() != "1.5" || in.Items[0].UnitPrice.StringFixed(2) != "180.00" {
		t.Fatalf("unexpected item values: %+v", in.Items)
	}
	if in.TaxRate.String() != "0.0825" {
		t.Fatalf("unexpected tax rate %s", in.TaxRate)
	}
	if in.ValidUntil == nil || !in.ValidUntil.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected valid_until %v", in.ValidUntil)
	}
	if in.PerformedBy != "front-desk" || in.Device.Brand != "Apple" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestCreateEstimateRequest_RejectsBadNumbers(t *testing.T) {
	cases := map[string]CreateEstimateRequest{
		"sub-cent price": {Items: []LineItemRequest{{Quantity: "1", UnitPrice: "1.005"}}},
		"text quantity":  {Items: []LineItemRequest{{Quantity: "one", UnitPrice: "1.00"}}},
		"bad tax rate":   {TaxRate: "8%"},
		"bad date":       {ValidUntil: "next week"},
		"huge quantity":  {Items: []LineItemRequest{{Quantity: "1e400000000", UnitPrice: "1.00"}}},
		"huge price":     {Items: []LineItemRequest{{Quantity: "1", UnitPrice: "1e400000000"}}},
		"tiny tax rate":  {TaxRate: "1e-400000000"},
	}
	for name, r := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := r.ToInput("staff")
			if !errors.Is(err, errs.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUpdateCostsRequest_Resolve(t *testing.T) {
	est, act, err := UpdateCostsRequest{ActualCost: "250"}.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est != nil || act == nil || act.StringFixed(2) != "250.00" {
		t.Fatalf("unexpected costs: %v %v", est, act)
	}
}

func TestApplyPaymentRequest_ToInput(t *testing.T) {
	r := ApplyPaymentRequest{Amount: "100.00", Method: " card ", MPPayload: []byte(`{"payment_method_id":"visa"}`)}
	in, err := r.ToInput("inv-1", "cashier")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Method != entities.PaymentMethodCard || in.InvoiceID != "inv-1" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if string(in.ProviderPayload) != `{"payment_method_id":"visa"}` {
		t.Fatalf("mp_payload alias not used: %s", in.ProviderPayload)
	}

	if _, err := (ApplyPaymentRequest{Amount: "10.001", Method: "CASH"}).ToInput("inv-1", ""); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRefundRequest_ToInput(t *testing.T) {
	in, err := RefundRequest{Reason: "returned", RefundID: " r-1 "}.ToInput("pay-1", "staff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Amount != nil || in.RefundID != "r-1" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestCreateTicketRequest_ToInput(t *testing.T) {
	in, err := CreateTicketRequest{
		CustomerID:    "cust-1",
		RepairType:    "battery",
		DueAt:         "2026-03-05T17:00:00Z",
		EstimatedCost: "89.99",
	}.ToInput("staff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.DueAt == nil || in.DueAt.Hour() != 17 || in.EstimatedCost.StringFixed(2) != "89.99" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestApplyPaymentRequest_RejectsHugeExponent(t *testing.T) {
	for _, amount := range []string{"1e400000000", "-1e400000000", "1e-400000000"} {
		_, err := ApplyPaymentRequest{Amount: amount, Method: "cash"}.ToInput("inv-1", "cashier")
		if !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", amount, err)
		}
	}
}
