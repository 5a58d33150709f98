package entities

import (
	"errors"
	"testing"
	"time"

	"repairdesk/internal/domain/errs"

	"github.com/shopspring/decimal"
)

func newTestEstimate(t *testing.T, now time.Time) Estimate {
	t.Helper()
	priced, err := Price([]LineItem{
		{Type: LineItemPart, Description: "Screen", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("180.00")},
		{Type: LineItemLabor, Description: "Install", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("39.00")},
	}, decimal.RequireFromString("0.0825"), decimal.Zero)
	if err != nil {
		t.Fatalf("price: %v", err)
	}
	return Estimate{
		ID:         "est-1",
		CustomerID: "cust-1",
		Priced:     priced,
		Status:     EstimateStatusDraft,
		ValidUntil: now.AddDate(0, 0, 30),
		CreatedAt:  now,
	}
}

func TestEstimate_Transitions(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		from EstimateStatus
		call func(e Estimate) (Estimate, error)
		want EstimateStatus
		kind errs.Kind
	}{
		{name: "send draft", from: EstimateStatusDraft, call: func(e Estimate) (Estimate, error) { return e.Send(now) }, want: EstimateStatusSent},
		{name: "resend declined", from: EstimateStatusDeclined, call: func(e Estimate) (Estimate, error) { return e.Send(now) }, want: EstimateStatusSent},
		{name: "send approved", from: EstimateStatusApproved, call: func(e Estimate) (Estimate, error) { return e.Send(now) }, kind: errs.KindInvalidTransition},
		{name: "view sent", from: EstimateStatusSent, call: func(e Estimate) (Estimate, error) { return e.MarkViewed(now) }, want: EstimateStatusViewed},
		{name: "view viewed", from: EstimateStatusViewed, call: func(e Estimate) (Estimate, error) { return e.MarkViewed(now) }, want: EstimateStatusViewed},
		{name: "view draft", from: EstimateStatusDraft, call: func(e Estimate) (Estimate, error) { return e.MarkViewed(now) }, kind: errs.KindInvalidTransition},
		{name: "approve viewed", from: EstimateStatusViewed, call: func(e Estimate) (Estimate, error) { return e.Approve(now) }, want: EstimateStatusApproved},
		{name: "approve declined", from: EstimateStatusDeclined, call: func(e Estimate) (Estimate, error) { return e.Approve(now) }, kind: errs.KindInvalidTransition},
		{name: "decline sent", from: EstimateStatusSent, call: func(e Estimate) (Estimate, error) { return e.Decline("too expensive", now) }, want: EstimateStatusDeclined},
		{name: "decline without reason", from: EstimateStatusSent, call: func(e Estimate) (Estimate, error) { return e.Decline("  ", now) }, kind: errs.KindValidation},
		{name: "expire sent", from: EstimateStatusSent, call: func(e Estimate) (Estimate, error) { return e.Expire(now) }, want: EstimateStatusExpired},
		{name: "expire converted", from: EstimateStatusConverted, call: func(e Estimate) (Estimate, error) { return e.Expire(now) }, kind: errs.KindInvalidTransition},
		{name: "convert approved", from: EstimateStatusApproved, call: func(e Estimate) (Estimate, error) { return e.MarkConverted("t-1", now) }, want: EstimateStatusConverted},
		{name: "convert viewed", from: EstimateStatusViewed, call: func(e Estimate) (Estimate, error) { return e.MarkConverted("t-1", now) }, kind: errs.KindInvalidTransition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEstimate(t, now)
			e.Status = tc.from

			next, err := tc.call(e)
			if tc.kind != "" {
				if errs.KindOf(err) != tc.kind {
					t.Fatalf("expected %s, got %v", tc.kind, err)
				}
				if next.Status != tc.from {
					t.Fatalf("estimate changed on failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if next.Status != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, next.Status)
			}
		})
	}
}

func TestEstimate_ApproveExpired(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	e := newTestEstimate(t, now)
	e.Status = EstimateStatusSent
	e.ValidUntil = now.Add(-time.Millisecond)

	_, err := e.Approve(now)
	if !errors.Is(err, errs.ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestEstimate_MarkConvertedOnce(t *testing.T) {
	now := time.Now()
	e := newTestEstimate(t, now)
	e.Status = EstimateStatusApproved

	converted, err := e.MarkConverted("t-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := converted.MarkConverted("t-2", now); !errors.Is(err, errs.ErrAlreadyConverted) {
		t.Fatalf("expected ErrAlreadyConverted, got %v", err)
	}
}

func TestEstimate_Extend(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	e := newTestEstimate(t, now)

	if _, err := e.Extend(5, now); !errors.Is(err, errs.ErrInvalidTransition) {
		t.Fatalf("draft extension must fail, got %v", err)
	}

	e.Status = EstimateStatusSent
	if _, err := e.Extend(0, now); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("zero days must fail, got %v", err)
	}
	next, err := e.Extend(5, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !next.ValidUntil.Equal(e.ValidUntil.AddDate(0, 0, 5)) {
		t.Fatalf("unexpected validUntil %v", next.ValidUntil)
	}
}

func TestEstimate_RepriceRecomputesTotals(t *testing.T) {
	now := time.Now()
	e := newTestEstimate(t, now)

	next, err := e.Reprice([]LineItem{
		{Type: LineItemPart, Description: "Battery", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("25.00")},
	}, decimal.RequireFromString("0.10"), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Total.StringFixed(2) != "55.00" || next.Items[0].Total.StringFixed(2) != "50.00" {
		t.Fatalf("unexpected totals: %+v", next.Priced)
	}
	if e.Total.StringFixed(2) != "237.07" {
		t.Fatalf("receiver mutated: %s", e.Total)
	}
}
