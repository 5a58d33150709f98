package request

import (
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase"

	"github.com/shopspring/decimal"
)

type DeviceRequest struct {
	Brand        string `json:"brand" binding:"required" example:"Apple"`
	Model        string `json:"model" binding:"required" example:"iPhone 13"`
	Type         string `json:"type" binding:"required" example:"phone"`
	SerialNumber string `json:"serial_number,omitempty"`
}

func (d DeviceRequest) ToDevice() entities.Device {
	return entities.Device{Brand: d.Brand, Model: d.Model, Type: d.Type, SerialNumber: d.SerialNumber}
}

// CreateTicketRequest opens a repair job at intake. Money is a decimal
// string ("237.07"); due_at is RFC 3339 or YYYY-MM-DD.
type CreateTicketRequest struct {
	CustomerID    string        `json:"customer_id" binding:"required" example:"cust-1"`
	Device        DeviceRequest `json:"device"`
	RepairType    string        `json:"repair_type" binding:"required" example:"screen"`
	DueAt         string        `json:"due_at,omitempty" example:"2026-03-05"`
	EstimatedCost string        `json:"estimated_cost,omitempty" example:"237.07"`
	Notes         string        `json:"notes,omitempty"`
}

func (r CreateTicketRequest) ToInput(performedBy string) (usecase.CreateTicketInput, error) {
	dueAt, err := optionalTime("due_at", r.DueAt)
	if err != nil {
		return usecase.CreateTicketInput{}, err
	}
	cost, err := optionalMoney("estimated_cost", r.EstimatedCost)
	if err != nil {
		return usecase.CreateTicketInput{}, err
	}
	return usecase.CreateTicketInput{
		CustomerID:    r.CustomerID,
		Device:        r.Device.ToDevice(),
		RepairType:    r.RepairType,
		DueAt:         dueAt,
		EstimatedCost: cost,
		Notes:         r.Notes,
		PerformedBy:   performedBy,
	}, nil
}

type AdvanceTicketRequest struct {
	Status string `json:"status" binding:"required" example:"DIAGNOSED"`
}

func (r AdvanceTicketRequest) Target() entities.TicketStatus {
	return entities.TicketStatus(r.Status)
}

// UpdateCostsRequest leaves a cost untouched when its field is omitted.
type UpdateCostsRequest struct {
	EstimatedCost string `json:"estimated_cost,omitempty" example:"237.07"`
	ActualCost    string `json:"actual_cost,omitempty" example:"250.00"`
}

func (r UpdateCostsRequest) Resolve() (estimated, actual *decimal.Decimal, err error) {
	estimated, err = optionalMoney("estimated_cost", r.EstimatedCost)
	if err != nil {
		return nil, nil, err
	}
	actual, err = optionalMoney("actual_cost", r.ActualCost)
	if err != nil {
		return nil, nil, err
	}
	return estimated, actual, nil
}
