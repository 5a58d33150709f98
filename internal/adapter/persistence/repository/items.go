package repository

import (
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/domain/money"
)

type deviceItem struct {
	Brand        string `dynamodbav:"brand"`
	Model        string `dynamodbav:"model"`
	Type         string `dynamodbav:"type"`
	SerialNumber string `dynamodbav:"serial_number,omitempty"`
}

func toDeviceItem(d entities.Device) deviceItem {
	return deviceItem{Brand: d.Brand, Model: d.Model, Type: d.Type, SerialNumber: d.SerialNumber}
}

func (it deviceItem) device() entities.Device {
	return entities.Device{Brand: it.Brand, Model: it.Model, Type: it.Type, SerialNumber: it.SerialNumber}
}

type lineItemItem struct {
	Type        string `dynamodbav:"type"`
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Total       string `dynamodbav:"total"`
}

// pricedItem is the stored form of entities.Priced. Money is kept as
// two-decimal strings, never as DynamoDB numbers.
type pricedItem struct {
	Items     []lineItemItem `dynamodbav:"items"`
	TaxRate   string         `dynamodbav:"tax_rate"`
	Discount  string         `dynamodbav:"discount"`
	Subtotal  string         `dynamodbav:"subtotal"`
	TaxAmount string         `dynamodbav:"tax_amount"`
	Total     string         `dynamodbav:"total"`
}

func toPricedItem(p entities.Priced) pricedItem {
	lines := make([]lineItemItem, 0, len(p.Items))
	for _, li := range p.Items {
		lines = append(lines, lineItemItem{
			Type:        string(li.Type),
			Description: li.Description,
			Quantity:    li.Quantity.String(),
			UnitPrice:   money.Format(li.UnitPrice),
			Total:       money.Format(li.Total),
		})
	}
	return pricedItem{
		Items:     lines,
		TaxRate:   p.TaxRate.String(),
		Discount:  money.Format(p.Discount),
		Subtotal:  money.Format(p.Subtotal),
		TaxAmount: money.Format(p.TaxAmount),
		Total:     money.Format(p.Total),
	}
}

func (it pricedItem) priced(d *decoder) entities.Priced {
	lines := make([]entities.LineItem, 0, len(it.Items))
	for _, li := range it.Items {
		lines = append(lines, entities.LineItem{
			Type:        entities.LineItemType(li.Type),
			Description: li.Description,
			Quantity:    d.decimal("quantity", li.Quantity),
			UnitPrice:   d.decimal("unit_price", li.UnitPrice),
			Total:       d.decimal("total", li.Total),
		})
	}
	return entities.Priced{
		Items:     lines,
		TaxRate:   d.decimal("tax_rate", it.TaxRate),
		Discount:  d.decimal("discount", it.Discount),
		Subtotal:  d.decimal("subtotal", it.Subtotal),
		TaxAmount: d.decimal("tax_amount", it.TaxAmount),
		Total:     d.decimal("total", it.Total),
	}
}
