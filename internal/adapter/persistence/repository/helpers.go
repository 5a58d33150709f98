package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"repairdesk/internal/domain/money"
	"repairdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// DynamoAPI is the slice of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// Tables names one DynamoDB table per aggregate.
//
// Table requirements (all PK: id, string):
//   - tickets: GSI ticket_number-index, customer_id-index
//   - estimates: GSI customer_id-index
//   - invoices: GSI customer_id-index, ticket_number-index
//   - payments: GSI invoice_id-index
//   - warranty_claims: GSI customer_id-index
type Tables struct {
	Tickets   string
	Estimates string
	Invoices  string
	Payments  string
	Claims    string
}

const (
	customerIDIndex   = "customer_id-index"
	ticketNumberIndex = "ticket_number-index"
	invoiceIDIndex    = "invoice_id-index"
)

const (
	createCondition = "attribute_not_exists(#id)"
	updateCondition = "attribute_exists(#id) AND #version = :expected"
)

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// createPut is a conditional put that fails when the id is already taken.
func createPut(table string, item any) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:                aws.String(table),
		Item:                     av,
		ConditionExpression:      aws.String(createCondition),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}, nil
}

// versionedPut replaces the item only while the stored version equals expected.
func versionedPut(table string, item any, expected int64) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String(updateCondition),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	}, nil
}

func putItem(ctx context.Context, ddb DynamoAPI, p *types.Put, onConflict error) error {
	_, err := ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 p.TableName,
		Item:                      p.Item,
		ConditionExpression:       p.ConditionExpression,
		ExpressionAttributeNames:  p.ExpressionAttributeNames,
		ExpressionAttributeValues: p.ExpressionAttributeValues,
	})
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return onConflict
	}
	return err
}

func create(ctx context.Context, ddb DynamoAPI, table string, item any) error {
	p, err := createPut(table, item)
	if err != nil {
		return err
	}
	return putItem(ctx, ddb, p, interfaces.ErrItemExists)
}

func update(ctx context.Context, ddb DynamoAPI, table string, item any, expected int64) error {
	p, err := versionedPut(table, item, expected)
	if err != nil {
		return err
	}
	return putItem(ctx, ddb, p, interfaces.ErrVersionConflict)
}

// getByID unmarshals the item into out and reports whether it existed.
func getByID(ctx context.Context, ddb DynamoAPI, table, id string, out any) (bool, error) {
	res, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}

// queryIndex reads every page of a GSI equality query.
func queryIndex[T any](ctx context.Context, ddb DynamoAPI, table, index, attr, value string) ([]T, error) {
	p := dynamodb.NewQueryPaginator(ddb, &dynamodb.QueryInput{
		TableName:                aws.String(table),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	var out []T
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it T
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, it)
		}
	}
	return out, nil
}

// sortByCreation orders records by created_at, then id.
func sortByCreation[T any](items []T, key func(T) (time.Time, string)) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return idi < idj
	})
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func formatMoneyPtr(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return money.Format(*d)
}

// decoder turns stored strings back into typed fields, keeping the first
// error so item mappers can stay linear.
type decoder struct {
	err error
}

func (d *decoder) time(field, s string) time.Time {
	if s == "" || d.err != nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		d.err = fmt.Errorf("%s: %w", field, err)
	}
	return t
}

func (d *decoder) timePtr(field, s string) *time.Time {
	if s == "" {
		return nil
	}
	t := d.time(field, s)
	return &t
}

func (d *decoder) decimal(field, s string) decimal.Decimal {
	if s == "" || d.err != nil {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		d.err = fmt.Errorf("%s: %w", field, err)
	}
	return v
}

func (d *decoder) decimalPtr(field, s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	v := d.decimal(field, s)
	return &v
}
