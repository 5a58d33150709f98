package repository

import (
	"context"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/domain/money"
	"repairdesk/internal/usecase/interfaces"
)

type warrantyClaimItem struct {
	ID                 string `dynamodbav:"id"`
	ClaimNumber        string `dynamodbav:"claim_number"`
	TicketID           string `dynamodbav:"ticket_id"`
	TicketNumber       string `dynamodbav:"ticket_number"`
	CustomerID         string `dynamodbav:"customer_id"`
	OriginalRepairType string `dynamodbav:"original_repair_type"`
	OriginalRepairDate string `dynamodbav:"original_repair_date"`
	OriginalAmount     string `dynamodbav:"original_amount"`
	WarrantyPeriodDays int    `dynamodbav:"warranty_period_days"`
	WarrantyExpiresAt  string `dynamodbav:"warranty_expires_at"`
	ClaimDate          string `dynamodbav:"claim_date"`
	ClaimReason        string `dynamodbav:"claim_reason"`
	ClaimDescription   string `dynamodbav:"claim_description,omitempty"`
	Status             string `dynamodbav:"status"`
	ResolutionType     string `dynamodbav:"resolution_type"`
	Resolution         string `dynamodbav:"resolution,omitempty"`
	ReviewedBy         string `dynamodbav:"reviewed_by,omitempty"`
	ReviewNotes        string `dynamodbav:"review_notes,omitempty"`
	ReviewedAt         string `dynamodbav:"reviewed_at,omitempty"`

	RedoTicketID     string   `dynamodbav:"redo_ticket_id,omitempty"`
	RefundPaymentIDs []string `dynamodbav:"refund_payment_ids,omitempty"`
	RefundedAmount   string   `dynamodbav:"refunded_amount"`
	ResolvedAt       string   `dynamodbav:"resolved_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	UpdatedBy string `dynamodbav:"updated_by,omitempty"`
	Version   int64  `dynamodbav:"version"`
}

// WarrantyClaimDynamoRepository persists WarrantyClaim entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
type WarrantyClaimDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IWarrantyClaimRepository = (*WarrantyClaimDynamoRepository)(nil)

func NewWarrantyClaimDynamoRepository(ddb DynamoAPI, tableName string) *WarrantyClaimDynamoRepository {
	return &WarrantyClaimDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WarrantyClaimDynamoRepository) Create(ctx context.Context, c entities.WarrantyClaim) (entities.WarrantyClaim, error) {
	c.Version = 1
	if err := create(ctx, r.ddb, r.tableName, toWarrantyClaimItem(c)); err != nil {
		return entities.WarrantyClaim{}, err
	}
	return c, nil
}

func (r *WarrantyClaimDynamoRepository) GetByID(ctx context.Context, id string) (entities.WarrantyClaim, error) {
	var it warrantyClaimItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.WarrantyClaim{}, err
	}
	return fromWarrantyClaimItem(it)
}

func (r *WarrantyClaimDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.WarrantyClaim, error) {
	items, err := queryIndex[warrantyClaimItem](ctx, r.ddb, r.tableName, customerIDIndex, "customer_id", customerID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.WarrantyClaim, 0, len(items))
	for _, it := range items {
		c, err := fromWarrantyClaimItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	sortByCreation(out, func(c entities.WarrantyClaim) (time.Time, string) { return c.CreatedAt, c.ID })
	return out, nil
}

func (r *WarrantyClaimDynamoRepository) Update(ctx context.Context, c entities.WarrantyClaim) (entities.WarrantyClaim, error) {
	expected := c.Version
	c.Version++
	if err := update(ctx, r.ddb, r.tableName, toWarrantyClaimItem(c), expected); err != nil {
		return entities.WarrantyClaim{}, err
	}
	return c, nil
}

func toWarrantyClaimItem(c entities.WarrantyClaim) warrantyClaimItem {
	return warrantyClaimItem{
		ID:                 c.ID,
		ClaimNumber:        c.ClaimNumber,
		TicketID:           c.TicketID,
		TicketNumber:       c.TicketNumber,
		CustomerID:         c.CustomerID,
		OriginalRepairType: c.OriginalRepairType,
		OriginalRepairDate: formatTime(c.OriginalRepairDate),
		OriginalAmount:     money.Format(c.OriginalAmount),
		WarrantyPeriodDays: c.WarrantyPeriodDays,
		WarrantyExpiresAt:  formatTime(c.WarrantyExpiresAt),
		ClaimDate:          formatTime(c.ClaimDate),
		ClaimReason:        c.ClaimReason,
		ClaimDescription:   c.ClaimDescription,
		Status:             string(c.Status),
		ResolutionType:     string(c.ResolutionType),
		Resolution:         c.Resolution,
		ReviewedBy:         c.ReviewedBy,
		ReviewNotes:        c.ReviewNotes,
		ReviewedAt:         formatTimePtr(c.ReviewedAt),
		RedoTicketID:       c.RedoTicketID,
		RefundPaymentIDs:   c.RefundPaymentIDs,
		RefundedAmount:     money.Format(c.RefundedAmount),
		ResolvedAt:         formatTimePtr(c.ResolvedAt),
		CreatedAt:          formatTime(c.CreatedAt),
		UpdatedAt:          formatTime(c.UpdatedAt),
		UpdatedBy:          c.UpdatedBy,
		Version:            c.Version,
	}
}

func fromWarrantyClaimItem(it warrantyClaimItem) (entities.WarrantyClaim, error) {
	var d decoder
	c := entities.WarrantyClaim{
		ID:                 it.ID,
		ClaimNumber:        it.ClaimNumber,
		TicketID:           it.TicketID,
		TicketNumber:       it.TicketNumber,
		CustomerID:         it.CustomerID,
		OriginalRepairType: it.OriginalRepairType,
		OriginalRepairDate: d.time("original_repair_date", it.OriginalRepairDate),
		OriginalAmount:     d.decimal("original_amount", it.OriginalAmount),
		WarrantyPeriodDays: it.WarrantyPeriodDays,
		WarrantyExpiresAt:  d.time("warranty_expires_at", it.WarrantyExpiresAt),
		ClaimDate:          d.time("claim_date", it.ClaimDate),
		ClaimReason:        it.ClaimReason,
		ClaimDescription:   it.ClaimDescription,
		Status:             entities.ClaimStatus(it.Status),
		ResolutionType:     entities.ResolutionType(it.ResolutionType),
		Resolution:         it.Resolution,
		ReviewedBy:         it.ReviewedBy,
		ReviewNotes:        it.ReviewNotes,
		ReviewedAt:         d.timePtr("reviewed_at", it.ReviewedAt),
		RedoTicketID:       it.RedoTicketID,
		RefundPaymentIDs:   it.RefundPaymentIDs,
		RefundedAmount:     d.decimal("refunded_amount", it.RefundedAmount),
		ResolvedAt:         d.timePtr("resolved_at", it.ResolvedAt),
		CreatedAt:          d.time("created_at", it.CreatedAt),
		UpdatedAt:          d.time("updated_at", it.UpdatedAt),
		UpdatedBy:          it.UpdatedBy,
		Version:            it.Version,
	}
	if d.err != nil {
		return entities.WarrantyClaim{}, d.err
	}
	return c, nil
}
