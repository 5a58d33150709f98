package request

import (
	"fmt"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase"

	"github.com/shopspring/decimal"
)

// LineItemRequest is one priced line. quantity may be fractional ("1.5"
// hours of labor); unit_price has at most two decimals.
type LineItemRequest struct {
	Type        string `json:"type" binding:"required" example:"part"`
	Description string `json:"description" binding:"required" example:"OLED screen"`
	Quantity    string `json:"quantity" binding:"required" example:"1"`
	UnitPrice   string `json:"unit_price" binding:"required" example:"180.00"`
}

func toLineItems(in []LineItemRequest) ([]entities.LineItem, error) {
	items := make([]entities.LineItem, 0, len(in))
	for i, it := range in {
		qty, err := rate(fmt.Sprintf("items[%d].quantity", i), it.Quantity)
		if err != nil {
			return nil, err
		}
		price, err := moneyOrZero(fmt.Sprintf("items[%d].unit_price", i), it.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, entities.LineItem{
			Type:        entities.LineItemType(it.Type),
			Description: it.Description,
			Quantity:    qty,
			UnitPrice:   price,
		})
	}
	return items, nil
}

type CreateEstimateRequest struct {
	CustomerID string            `json:"customer_id" binding:"required" example:"cust-1"`
	Device     DeviceRequest     `json:"device"`
	RepairType string            `json:"repair_type" binding:"required" example:"screen"`
	Items      []LineItemRequest `json:"items" binding:"required,dive"`
	TaxRate    string            `json:"tax_rate" example:"0.0825"`
	ValidUntil string            `json:"valid_until,omitempty" example:"2026-04-01"`
	Notes      string            `json:"notes,omitempty"`
}

func (r CreateEstimateRequest) ToInput(performedBy string) (usecase.CreateEstimateInput, error) {
	items, err := toLineItems(r.Items)
	if err != nil {
		return usecase.CreateEstimateInput{}, err
	}
	taxRate, err := rate("tax_rate", r.TaxRate)
	if err != nil {
		return usecase.CreateEstimateInput{}, err
	}
	validUntil, err := optionalTime("valid_until", r.ValidUntil)
	if err != nil {
		return usecase.CreateEstimateInput{}, err
	}
	return usecase.CreateEstimateInput{
		CustomerID:  r.CustomerID,
		Device:      r.Device.ToDevice(),
		RepairType:  r.RepairType,
		Items:       items,
		TaxRate:     taxRate,
		ValidUntil:  validUntil,
		Notes:       r.Notes,
		PerformedBy: performedBy,
	}, nil
}

// UpdateItemsRequest replaces every line of a draft estimate.
type UpdateItemsRequest struct {
	Items   []LineItemRequest `json:"items" binding:"required,dive"`
	TaxRate string            `json:"tax_rate" example:"0.0825"`
}

func (r UpdateItemsRequest) Resolve() ([]entities.LineItem, decimal.Decimal, error) {
	items, err := toLineItems(r.Items)
	if err != nil {
		return nil, decimal.Zero, err
	}
	taxRate, err := rate("tax_rate", r.TaxRate)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return items, taxRate, nil
}

type ReasonRequest struct {
	Reason string `json:"reason" binding:"required" example:"customer went elsewhere"`
}

type ExtendEstimateRequest struct {
	Days int `json:"days" binding:"required,min=1" example:"14"`
}
