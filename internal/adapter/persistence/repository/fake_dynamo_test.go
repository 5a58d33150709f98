package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps items per table and evaluates the two condition
// expressions the repositories emit. Query serves pages of pageSize so the
// paginator path is exercised.
type fakeDynamo struct {
	mu       sync.Mutex
	tables   map[string]map[string]map[string]types.AttributeValue
	pageSize int
	failNext error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}, pageSize: 2}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
	}
	return t
}

func (f *fakeDynamo) injected() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func str(av types.AttributeValue) string {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return v.Value
	}
	return ""
}

// holds reports whether the put's condition passes against current state.
func (f *fakeDynamo) holds(p *types.Put) bool {
	id := str(p.Item["id"])
	existing, exists := f.table(aws.ToString(p.TableName))[id]
	switch aws.ToString(p.ConditionExpression) {
	case createCondition:
		return !exists
	case updateCondition:
		return exists && str(existing["version"]) == str(p.ExpressionAttributeValues[":expected"])
	}
	return true
}

func (f *fakeDynamo) store(p *types.Put) {
	f.table(aws.ToString(p.TableName))[str(p.Item["id"])] = p.Item
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.injected(); err != nil {
		return nil, err
	}
	return &dynamodb.GetItemOutput{Item: f.table(aws.ToString(in.TableName))[str(in.Key["id"])]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.injected(); err != nil {
		return nil, err
	}
	p := &types.Put{
		TableName:                 in.TableName,
		Item:                      in.Item,
		ConditionExpression:       in.ConditionExpression,
		ExpressionAttributeValues: in.ExpressionAttributeValues,
	}
	if !f.holds(p) {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	f.store(p)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.injected(); err != nil {
		return nil, err
	}
	attr := in.ExpressionAttributeNames["#k"]
	want := str(in.ExpressionAttributeValues[":v"])

	var ids []string
	for id, item := range f.table(aws.ToString(in.TableName)) {
		if str(item[attr]) == want {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	if start := str(in.ExclusiveStartKey["id"]); start != "" {
		i := sort.SearchStrings(ids, start)
		if i < len(ids) && ids[i] == start {
			i++
		}
		ids = ids[i:]
	}

	out := &dynamodb.QueryOutput{}
	for i, id := range ids {
		if i == f.pageSize {
			out.LastEvaluatedKey = idKey(ids[i-1])
			break
		}
		out.Items = append(out.Items, f.table(aws.ToString(in.TableName))[id])
	}
	return out, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.injected(); err != nil {
		return nil, err
	}
	reasons := make([]types.CancellationReason, len(in.TransactItems))
	failed := false
	for i, ti := range in.TransactItems {
		reasons[i] = types.CancellationReason{Code: aws.String("None")}
		if !f.holds(ti.Put) {
			reasons[i].Code = aws.String("ConditionalCheckFailed")
			failed = true
		}
	}
	if failed {
		return nil, &types.TransactionCanceledException{
			Message:             aws.String("Transaction cancelled"),
			CancellationReasons: reasons,
		}
	}
	for _, ti := range in.TransactItems {
		f.store(ti.Put)
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (f *fakeDynamo) count(table string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.table(table))
}
