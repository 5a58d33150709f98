package repository

import (
	"context"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"
)

type estimateItem struct {
	ID             string     `dynamodbav:"id"`
	EstimateNumber string     `dynamodbav:"estimate_number"`
	CustomerID     string     `dynamodbav:"customer_id"`
	Device         deviceItem `dynamodbav:"device"`
	RepairType     string     `dynamodbav:"repair_type,omitempty"`
	Priced         pricedItem `dynamodbav:"priced"`
	Status         string     `dynamodbav:"status"`
	ValidUntil     string     `dynamodbav:"valid_until"`
	Notes          string     `dynamodbav:"notes,omitempty"`
	DeclineReason  string     `dynamodbav:"decline_reason,omitempty"`

	ConvertedToTicketID string `dynamodbav:"converted_to_ticket_id,omitempty"`

	SentAt     string `dynamodbav:"sent_at,omitempty"`
	ViewedAt   string `dynamodbav:"viewed_at,omitempty"`
	ApprovedAt string `dynamodbav:"approved_at,omitempty"`
	DeclinedAt string `dynamodbav:"declined_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	UpdatedBy string `dynamodbav:"updated_by,omitempty"`
	Version   int64  `dynamodbav:"version"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//
// The ticket a conversion opens has an id derived from the estimate id, so
// the estimate never needs a back-reference index.
type EstimateDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb DynamoAPI, tableName string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	e.Version = 1
	if err := create(ctx, r.ddb, r.tableName, toEstimateItem(e)); err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	var it estimateItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it)
}

func (r *EstimateDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Estimate, error) {
	items, err := queryIndex[estimateItem](ctx, r.ddb, r.tableName, customerIDIndex, "customer_id", customerID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Estimate, 0, len(items))
	for _, it := range items {
		e, err := fromEstimateItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	sortByCreation(out, func(e entities.Estimate) (time.Time, string) { return e.CreatedAt, e.ID })
	return out, nil
}

func (r *EstimateDynamoRepository) Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	expected := e.Version
	e.Version++
	if err := update(ctx, r.ddb, r.tableName, toEstimateItem(e), expected); err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	return estimateItem{
		ID:                  e.ID,
		EstimateNumber:      e.EstimateNumber,
		CustomerID:          e.CustomerID,
		Device:              toDeviceItem(e.Device),
		RepairType:          e.RepairType,
		Priced:              toPricedItem(e.Priced),
		Status:              string(e.Status),
		ValidUntil:          formatTime(e.ValidUntil),
		Notes:               e.Notes,
		DeclineReason:       e.DeclineReason,
		ConvertedToTicketID: e.ConvertedToTicketID,
		SentAt:              formatTimePtr(e.SentAt),
		ViewedAt:            formatTimePtr(e.ViewedAt),
		ApprovedAt:          formatTimePtr(e.ApprovedAt),
		DeclinedAt:          formatTimePtr(e.DeclinedAt),
		CreatedAt:           formatTime(e.CreatedAt),
		UpdatedAt:           formatTime(e.UpdatedAt),
		UpdatedBy:           e.UpdatedBy,
		Version:             e.Version,
	}
}

func fromEstimateItem(it estimateItem) (entities.Estimate, error) {
	var d decoder
	e := entities.Estimate{
		ID:                  it.ID,
		EstimateNumber:      it.EstimateNumber,
		CustomerID:          it.CustomerID,
		Device:              it.Device.device(),
		RepairType:          it.RepairType,
		Priced:              it.Priced.priced(&d),
		Status:              entities.EstimateStatus(it.Status),
		ValidUntil:          d.time("valid_until", it.ValidUntil),
		Notes:               it.Notes,
		DeclineReason:       it.DeclineReason,
		ConvertedToTicketID: it.ConvertedToTicketID,
		SentAt:              d.timePtr("sent_at", it.SentAt),
		ViewedAt:            d.timePtr("viewed_at", it.ViewedAt),
		ApprovedAt:          d.timePtr("approved_at", it.ApprovedAt),
		DeclinedAt:          d.timePtr("declined_at", it.DeclinedAt),
		CreatedAt:           d.time("created_at", it.CreatedAt),
		UpdatedAt:           d.time("updated_at", it.UpdatedAt),
		UpdatedBy:           it.UpdatedBy,
		Version:             it.Version,
	}
	if d.err != nil {
		return entities.Estimate{}, d.err
	}
	return e, nil
}
