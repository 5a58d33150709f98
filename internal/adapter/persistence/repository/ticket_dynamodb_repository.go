package repository

import (
	"context"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"
)

type ticketItem struct {
	ID           string     `dynamodbav:"id"`
	TicketNumber string     `dynamodbav:"ticket_number"`
	CustomerID   string     `dynamodbav:"customer_id"`
	Device       deviceItem `dynamodbav:"device"`
	RepairType   string     `dynamodbav:"repair_type"`
	Status       string     `dynamodbav:"status"`
	Notes        string     `dynamodbav:"notes,omitempty"`

	EstimatedCost string `dynamodbav:"estimated_cost,omitempty"`
	ActualCost    string `dynamodbav:"actual_cost,omitempty"`

	SourceEstimateID string `dynamodbav:"source_estimate_id,omitempty"`
	SourceClaimID    string `dynamodbav:"source_claim_id,omitempty"`
	OpenClaimID      string `dynamodbav:"open_claim_id,omitempty"`

	CreatedAt   string `dynamodbav:"created_at"`
	DueAt       string `dynamodbav:"due_at,omitempty"`
	IntakeAt    string `dynamodbav:"intake_at,omitempty"`
	DiagnosedAt string `dynamodbav:"diagnosed_at,omitempty"`
	RepairedAt  string `dynamodbav:"repaired_at,omitempty"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
	PickedUpAt  string `dynamodbav:"picked_up_at,omitempty"`

	UpdatedAt string `dynamodbav:"updated_at"`
	UpdatedBy string `dynamodbav:"updated_by,omitempty"`
	Version   int64  `dynamodbav:"version"`
}

// TicketDynamoRepository persists Ticket entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: ticket_number-index (PK: ticket_number)
//   - GSI: customer_id-index (PK: customer_id)
type TicketDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITicketRepository = (*TicketDynamoRepository)(nil)

func NewTicketDynamoRepository(ddb DynamoAPI, tableName string) *TicketDynamoRepository {
	return &TicketDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TicketDynamoRepository) Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error) {
	t.Version = 1
	if err := create(ctx, r.ddb, r.tableName, toTicketItem(t)); err != nil {
		return entities.Ticket{}, err
	}
	return t, nil
}

func (r *TicketDynamoRepository) GetByID(ctx context.Context, id string) (entities.Ticket, error) {
	var it ticketItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Ticket{}, err
	}
	return fromTicketItem(it)
}

// GetByNumber reads the GSI, then re-reads the base item so the caller gets
// a strongly consistent version for its next conditional write.
func (r *TicketDynamoRepository) GetByNumber(ctx context.Context, number string) (entities.Ticket, error) {
	items, err := queryIndex[ticketItem](ctx, r.ddb, r.tableName, ticketNumberIndex, "ticket_number", number)
	if err != nil || len(items) == 0 {
		return entities.Ticket{}, err
	}
	return r.GetByID(ctx, items[0].ID)
}

func (r *TicketDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Ticket, error) {
	items, err := queryIndex[ticketItem](ctx, r.ddb, r.tableName, customerIDIndex, "customer_id", customerID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Ticket, 0, len(items))
	for _, it := range items {
		t, err := fromTicketItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	sortByCreation(out, func(t entities.Ticket) (time.Time, string) { return t.CreatedAt, t.ID })
	return out, nil
}

func (r *TicketDynamoRepository) Update(ctx context.Context, t entities.Ticket) (entities.Ticket, error) {
	expected := t.Version
	t.Version++
	if err := update(ctx, r.ddb, r.tableName, toTicketItem(t), expected); err != nil {
		return entities.Ticket{}, err
	}
	return t, nil
}

func toTicketItem(t entities.Ticket) ticketItem {
	return ticketItem{
		ID:               t.ID,
		TicketNumber:     t.TicketNumber,
		CustomerID:       t.CustomerID,
		Device:           toDeviceItem(t.Device),
		RepairType:       t.RepairType,
		Status:           string(t.Status),
		Notes:            t.Notes,
		EstimatedCost:    formatMoneyPtr(t.EstimatedCost),
		ActualCost:       formatMoneyPtr(t.ActualCost),
		SourceEstimateID: t.SourceEstimateID,
		SourceClaimID:    t.SourceClaimID,
		OpenClaimID:      t.OpenClaimID,
		CreatedAt:        formatTime(t.CreatedAt),
		DueAt:            formatTimePtr(t.DueAt),
		IntakeAt:         formatTimePtr(t.IntakeAt),
		DiagnosedAt:      formatTimePtr(t.DiagnosedAt),
		RepairedAt:       formatTimePtr(t.RepairedAt),
		CompletedAt:      formatTimePtr(t.CompletedAt),
		PickedUpAt:       formatTimePtr(t.PickedUpAt),
		UpdatedAt:        formatTime(t.UpdatedAt),
		UpdatedBy:        t.UpdatedBy,
		Version:          t.Version,
	}
}

func fromTicketItem(it ticketItem) (entities.Ticket, error) {
	var d decoder
	t := entities.Ticket{
		ID:               it.ID,
		TicketNumber:     it.TicketNumber,
		CustomerID:       it.CustomerID,
		Device:           it.Device.device(),
		RepairType:       it.RepairType,
		Status:           entities.TicketStatus(it.Status),
		Notes:            it.Notes,
		EstimatedCost:    d.decimalPtr("estimated_cost", it.EstimatedCost),
		ActualCost:       d.decimalPtr("actual_cost", it.ActualCost),
		SourceEstimateID: it.SourceEstimateID,
		SourceClaimID:    it.SourceClaimID,
		OpenClaimID:      it.OpenClaimID,
		CreatedAt:        d.time("created_at", it.CreatedAt),
		DueAt:            d.timePtr("due_at", it.DueAt),
		IntakeAt:         d.timePtr("intake_at", it.IntakeAt),
		DiagnosedAt:      d.timePtr("diagnosed_at", it.DiagnosedAt),
		RepairedAt:       d.timePtr("repaired_at", it.RepairedAt),
		CompletedAt:      d.timePtr("completed_at", it.CompletedAt),
		PickedUpAt:       d.timePtr("picked_up_at", it.PickedUpAt),
		UpdatedAt:        d.time("updated_at", it.UpdatedAt),
		UpdatedBy:        it.UpdatedBy,
		Version:          it.Version,
	}
	if d.err != nil {
		return entities.Ticket{}, d.err
	}
	return t, nil
}
