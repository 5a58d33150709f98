package entities

import (
	"fmt"
	"repairdesk/internal/domain/errs"
	"repairdesk/internal/domain/money"
	"strings"

	"github.com/shopspring/decimal"
)

type LineItemType string

const (
	LineItemLabor     LineItemType = "labor"
	LineItemPart      LineItemType = "part"
	LineItemAccessory LineItemType = "accessory"
	LineItemOther     LineItemType = "other"
)

func (t LineItemType) Valid() bool {
	switch t {
	case LineItemLabor, LineItemPart, LineItemAccessory, LineItemOther:
		return true
	}
	return false
}

// LineItem is shared by estimates and invoices. Total is derived.
type LineItem struct {
	Type        LineItemType    `json:"type"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// Device is the customer's unit under repair.
type Device struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Type         string `json:"type"`
	SerialNumber string `json:"serial_number,omitempty"`
}

func (d Device) Validate() error {
	if strings.TrimSpace(d.Brand) == "" || strings.TrimSpace(d.Model) == "" || strings.TrimSpace(d.Type) == "" {
		return errs.Validation("device", "brand, model and type are required")
	}
	return nil
}

// Priced holds the derived money fields of a quote or bill.
type Priced struct {
	Items     []LineItem      `json:"items"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Discount  decimal.Decimal `json:"discount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
}

// Price validates items and returns a fresh Priced with every derived field
// recomputed. The input slice is copied, never aliased.
func Price(items []LineItem, taxRate, discount decimal.Decimal) (Priced, error) {
	lines := make([]money.Line, 0, len(items))
	priced := make([]LineItem, 0, len(items))
	for i, it := range items {
		if !it.Type.Valid() {
			return Priced{}, errs.Validation("line_item", "item %d: unknown type %q", i, it.Type)
		}
		desc := strings.TrimSpace(it.Description)
		if desc == "" {
			return Priced{}, errs.Validation("line_item", "item %d: description is required", i)
		}
		if err := money.CheckBounds(fmt.Sprintf("item %d: quantity", i), it.Quantity); err != nil {
			return Priced{}, err
		}
		if err := money.CheckBounds(fmt.Sprintf("item %d: unit price", i), it.UnitPrice); err != nil {
			return Priced{}, err
		}
		if !it.UnitPrice.Equal(money.Round(it.UnitPrice)) {
			return Priced{}, errs.Validation("line_item", "item %d: unit price has more than %d decimal places", i, money.Scale)
		}
		l := money.Line{Quantity: it.Quantity, UnitPrice: it.UnitPrice}
		lines = append(lines, l)
		priced = append(priced, LineItem{
			Type:        it.Type,
			Description: desc,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	totals, err := money.ComputeTotals(lines, taxRate, discount)
	if err != nil {
		return Priced{}, err
	}
	for i := range priced {
		priced[i].Total = money.LineTotal(lines[i])
	}
	return Priced{
		Items:     priced,
		TaxRate:   taxRate,
		Discount:  totals.Discount,
		Subtotal:  totals.Subtotal,
		TaxAmount: totals.TaxAmount,
		Total:     totals.Total,
	}, nil
}

func cloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
