package repository

import (
	"context"
	"errors"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/domain/money"
	"repairdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type invoiceItem struct {
	ID            string     `dynamodbav:"id"`
	InvoiceNumber string     `dynamodbav:"invoice_number"`
	CustomerID    string     `dynamodbav:"customer_id"`
	TicketNumber  string     `dynamodbav:"ticket_number,omitempty"`
	EstimateID    string     `dynamodbav:"estimate_id,omitempty"`
	Priced        pricedItem `dynamodbav:"priced"`
	AmountPaid    string     `dynamodbav:"amount_paid"`
	AmountDue     string     `dynamodbav:"amount_due"`
	Status        string     `dynamodbav:"status"`
	DueDate       string     `dynamodbav:"due_date"`
	Notes         string     `dynamodbav:"notes,omitempty"`
	VoidReason    string     `dynamodbav:"void_reason,omitempty"`
	ReminderCount int        `dynamodbav:"reminder_count"`

	SentAt   string `dynamodbav:"sent_at,omitempty"`
	ViewedAt string `dynamodbav:"viewed_at,omitempty"`
	PaidAt   string `dynamodbav:"paid_at,omitempty"`
	VoidedAt string `dynamodbav:"voided_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	UpdatedBy string `dynamodbav:"updated_by,omitempty"`
	Version   int64  `dynamodbav:"version"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB and owns the
// ledger append, which spans the invoices and payments tables.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//   - GSI: ticket_number-index (PK: ticket_number)
type InvoiceDynamoRepository struct {
	ddb           DynamoAPI
	tableName     string
	paymentsTable string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb DynamoAPI, tableName, paymentsTable string) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{ddb: ddb, tableName: tableName, paymentsTable: paymentsTable}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	inv.Version = 1
	if err := create(ctx, r.ddb, r.tableName, toInvoiceItem(inv)); err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	var it invoiceItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it)
}

func (r *InvoiceDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Invoice, error) {
	return r.list(ctx, customerIDIndex, "customer_id", customerID)
}

func (r *InvoiceDynamoRepository) ListByTicketNumber(ctx context.Context, ticketNumber string) ([]entities.Invoice, error) {
	return r.list(ctx, ticketNumberIndex, "ticket_number", ticketNumber)
}

func (r *InvoiceDynamoRepository) list(ctx context.Context, index, attr, value string) ([]entities.Invoice, error) {
	items, err := queryIndex[invoiceItem](ctx, r.ddb, r.tableName, index, attr, value)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Invoice, 0, len(items))
	for _, it := range items {
		inv, err := fromInvoiceItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	sortByCreation(out, func(i entities.Invoice) (time.Time, string) { return i.CreatedAt, i.ID })
	return out, nil
}

func (r *InvoiceDynamoRepository) Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	expected := inv.Version
	inv.Version++
	if err := update(ctx, r.ddb, r.tableName, toInvoiceItem(inv), expected); err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

// AppendPayment writes the invoice (compare-and-set on its version) and the
// new payment record in one transaction. Either both land or neither does.
func (r *InvoiceDynamoRepository) AppendPayment(ctx context.Context, inv entities.Invoice, p entities.Payment) (entities.Invoice, entities.Payment, error) {
	expected := inv.Version
	inv.Version++
	invPut, err := versionedPut(r.tableName, toInvoiceItem(inv), expected)
	if err != nil {
		return entities.Invoice{}, entities.Payment{}, err
	}
	payPut, err := createPut(r.paymentsTable, toPaymentItem(p))
	if err != nil {
		return entities.Invoice{}, entities.Payment{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: invPut},
			{Put: payPut},
		},
		ClientRequestToken: aws.String(p.ID),
	})
	if err != nil {
		return entities.Invoice{}, entities.Payment{}, translateAppendError(err)
	}
	return inv, p, nil
}

// translateAppendError maps a cancelled transaction to the repository
// contract: the invoice condition failing is a lost race, the payment
// condition failing means the record id is already taken.
func translateAppendError(err error) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	for i, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) != "ConditionalCheckFailed" {
			continue
		}
		if i == 0 {
			return interfaces.ErrVersionConflict
		}
		return interfaces.ErrItemExists
	}
	return interfaces.ErrVersionConflict
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerID:    inv.CustomerID,
		TicketNumber:  inv.TicketNumber,
		EstimateID:    inv.EstimateID,
		Priced:        toPricedItem(inv.Priced),
		AmountPaid:    money.Format(inv.AmountPaid),
		AmountDue:     money.Format(inv.AmountDue),
		Status:        string(inv.Status),
		DueDate:       formatTime(inv.DueDate),
		Notes:         inv.Notes,
		VoidReason:    inv.VoidReason,
		ReminderCount: inv.ReminderCount,
		SentAt:        formatTimePtr(inv.SentAt),
		ViewedAt:      formatTimePtr(inv.ViewedAt),
		PaidAt:        formatTimePtr(inv.PaidAt),
		VoidedAt:      formatTimePtr(inv.VoidedAt),
		CreatedAt:     formatTime(inv.CreatedAt),
		UpdatedAt:     formatTime(inv.UpdatedAt),
		UpdatedBy:     inv.UpdatedBy,
		Version:       inv.Version,
	}
}

func fromInvoiceItem(it invoiceItem) (entities.Invoice, error) {
	var d decoder
	inv := entities.Invoice{
		ID:            it.ID,
		InvoiceNumber: it.InvoiceNumber,
		CustomerID:    it.CustomerID,
		TicketNumber:  it.TicketNumber,
		EstimateID:    it.EstimateID,
		Priced:        it.Priced.priced(&d),
		AmountPaid:    d.decimal("amount_paid", it.AmountPaid),
		AmountDue:     d.decimal("amount_due", it.AmountDue),
		Status:        entities.InvoiceStatus(it.Status),
		DueDate:       d.time("due_date", it.DueDate),
		Notes:         it.Notes,
		VoidReason:    it.VoidReason,
		ReminderCount: it.ReminderCount,
		SentAt:        d.timePtr("sent_at", it.SentAt),
		ViewedAt:      d.timePtr("viewed_at", it.ViewedAt),
		PaidAt:        d.timePtr("paid_at", it.PaidAt),
		VoidedAt:      d.timePtr("voided_at", it.VoidedAt),
		CreatedAt:     d.time("created_at", it.CreatedAt),
		UpdatedAt:     d.time("updated_at", it.UpdatedAt),
		UpdatedBy:     it.UpdatedBy,
		Version:       it.Version,
	}
	if d.err != nil {
		return entities.Invoice{}, d.err
	}
	return inv, nil
}
