package entities

import (
	"errors"
	"testing"

	"repairdesk/internal/domain/errs"

	"github.com/shopspring/decimal"
)

func TestPrice_RejectsUnstorableItems(t *testing.T) {
	huge := decimal.New(1, 400000000)
	cases := map[string]LineItem{
		"sub-cent unit price": {Type: LineItemPart, Description: "Screw", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.RequireFromString("0.335")},
		"huge unit price":     {Type: LineItemPart, Description: "Screen", Quantity: decimal.NewFromInt(1), UnitPrice: huge},
		"huge quantity":       {Type: LineItemLabor, Description: "Install", Quantity: huge, UnitPrice: decimal.RequireFromString("39.00")},
	}
	for name, it := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Price([]LineItem{it}, decimal.Zero, decimal.Zero); !errors.Is(err, errs.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestPrice_FractionalQuantityKeepsUnitPrice(t *testing.T) {
	priced, err := Price([]LineItem{
		{Type: LineItemLabor, Description: "Bench time", Quantity: decimal.RequireFromString("1.25"), UnitPrice: decimal.RequireFromString("45.33")},
	}, decimal.Zero, decimal.Zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if priced.Items[0].UnitPrice.String() != "45.33" || priced.Total.StringFixed(2) != "56.66" {
		t.Fatalf("unexpected pricing: %+v", priced)
	}
}
