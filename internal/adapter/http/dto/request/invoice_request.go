package request

import (
	"time"

	"repairdesk/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateInvoiceRequest struct {
	CustomerID   string            `json:"customer_id" binding:"required" example:"cust-1"`
	TicketNumber string            `json:"ticket_number,omitempty" example:"TKT-000001"`
	Items        []LineItemRequest `json:"items" binding:"required,dive"`
	TaxRate      string            `json:"tax_rate" example:"0.0825"`
	Discount     string            `json:"discount,omitempty" example:"0.00"`
	DueDate      string            `json:"due_date,omitempty" example:"2026-03-09"`
	Notes        string            `json:"notes,omitempty"`
}

func (r CreateInvoiceRequest) ToInput(performedBy string) (usecase.CreateInvoiceInput, error) {
	items, err := toLineItems(r.Items)
	if err != nil {
		return usecase.CreateInvoiceInput{}, err
	}
	taxRate, err := rate("tax_rate", r.TaxRate)
	if err != nil {
		return usecase.CreateInvoiceInput{}, err
	}
	discount, err := moneyOrZero("discount", r.Discount)
	if err != nil {
		return usecase.CreateInvoiceInput{}, err
	}
	due, err := optionalTime("due_date", r.DueDate)
	if err != nil {
		return usecase.CreateInvoiceInput{}, err
	}
	return usecase.CreateInvoiceInput{
		CustomerID:   r.CustomerID,
		TicketNumber: r.TicketNumber,
		Items:        items,
		TaxRate:      taxRate,
		Discount:     discount,
		DueDate:      due,
		Notes:        r.Notes,
		PerformedBy:  performedBy,
	}, nil
}

// InvoiceFromEstimateRequest is optional; an empty body bills the estimate
// as quoted with the default due date.
type InvoiceFromEstimateRequest struct {
	Discount string `json:"discount,omitempty" example:"10.00"`
	DueDate  string `json:"due_date,omitempty" example:"2026-03-09"`
}

func (r InvoiceFromEstimateRequest) Resolve() (decimal.Decimal, *time.Time, error) {
	discount, err := moneyOrZero("discount", r.Discount)
	if err != nil {
		return decimal.Zero, nil, err
	}
	due, err := optionalTime("due_date", r.DueDate)
	if err != nil {
		return decimal.Zero, nil, err
	}
	return discount, due, nil
}
