// Package dynamotest provides an in-memory stand-in for the DynamoDB
// client, implementing the narrow API surface the store uses. It
// understands only the expressions the store issues: single-attribute
// key conditions and equality/inequality filters joined by AND.
package dynamotest

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrUnsupported is returned for expressions the fake does not parse.
var ErrUnsupported = errors.New("dynamotest: unsupported expression")

type table struct {
	pkAttr string
	skAttr string // empty for single-key tables
	items  []map[string]types.AttributeValue
}

// Fake is an in-memory DynamoAPI implementation.
type Fake struct {
	mu     sync.Mutex
	tables map[string]*table

	// GetErr, PutErr, DeleteErr, QueryErr, ScanErr, when set, fail the
	// corresponding operation.
	GetErr    error
	PutErr    error
	DeleteErr error
	QueryErr  error
	ScanErr   error

	// DeleteErrAfter delays DeleteErr until that many deletes have
	// succeeded, for exercising partial cascade failures.
	DeleteErrAfter int

	// IndexErr fails queries that name an index, independently of
	// QueryErr. Used to exercise the missing-GSI degrade path.
	IndexErr error

	// PutCount and DeleteCount count successful write calls.
	PutCount    int
	DeleteCount int
}

// New creates an empty Fake.
func New() *Fake {
	return &Fake{tables: map[string]*table{}}
}

// AddTable registers a table with its key schema. skAttr is empty for
// single-key tables.
func (f *Fake) AddTable(name, pkAttr, skAttr string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tables[name] = &table{pkAttr: pkAttr, skAttr: skAttr}
}

// Seed inserts an item directly, bypassing error injection.
func (f *Fake) Seed(tableName string, item map[string]types.AttributeValue) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tables[tableName].put(copyItem(item))
}

// Len reports how many items a table holds.
func (f *Fake) Len(tableName string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tables[tableName].items)
}

// Items returns a copy of a table's items in insertion order.
func (f *Fake) Items(tableName string) []map[string]types.AttributeValue {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]map[string]types.AttributeValue, 0, len(f.tables[tableName].items))
	for _, item := range f.tables[tableName].items {
		out = append(out, copyItem(item))
	}
	return out
}

func (f *Fake) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	t := f.tables[*params.TableName]
	if t == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	if item := t.find(params.Key); item != nil {
		return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *Fake) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.PutErr != nil {
		return nil, f.PutErr
	}
	t := f.tables[*params.TableName]
	if t == nil {
		return nil, errors.New("dynamotest: no such table " + *params.TableName)
	}
	t.put(copyItem(params.Item))
	f.PutCount++
	return &dynamodb.PutItemOutput{}, nil
}

func (f *Fake) DeleteItem(_ context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteErr != nil && f.DeleteCount >= f.DeleteErrAfter {
		return nil, f.DeleteErr
	}
	t := f.tables[*params.TableName]
	if t != nil {
		t.delete(params.Key)
	}
	f.DeleteCount++
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *Fake) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if params.IndexName != nil && f.IndexErr != nil {
		return nil, f.IndexErr
	}
	if f.QueryErr != nil {
		return nil, f.QueryErr
	}
	t := f.tables[*params.TableName]
	if t == nil {
		return &dynamodb.QueryOutput{}, nil
	}

	attr, value, neg, err := parseClause(*params.KeyConditionExpression, params.ExpressionAttributeValues)
	if err != nil || neg {
		return nil, ErrUnsupported
	}

	var items []map[string]types.AttributeValue
	for _, item := range t.items {
		if stringAttr(item, attr) == value {
			items = append(items, copyItem(item))
		}
		if params.Limit != nil && int32(len(items)) >= *params.Limit {
			break
		}
	}
	return &dynamodb.QueryOutput{Items: items, Count: int32(len(items))}, nil
}

func (f *Fake) Scan(_ context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ScanErr != nil {
		return nil, f.ScanErr
	}
	t := f.tables[*params.TableName]
	if t == nil {
		return &dynamodb.ScanOutput{}, nil
	}

	var items []map[string]types.AttributeValue
	for _, item := range t.items {
		match, err := matchFilter(item, params.FilterExpression, params.ExpressionAttributeValues)
		if err != nil {
			return nil, err
		}
		if match {
			items = append(items, copyItem(item))
		}
	}
	return &dynamodb.ScanOutput{Items: items, Count: int32(len(items))}, nil
}

// --- table internals ---

func (t *table) keyOf(item map[string]types.AttributeValue) string {
	k := stringAttr(item, t.pkAttr)
	if t.skAttr != "" {
		k += "\x00" + stringAttr(item, t.skAttr)
	}
	return k
}

func (t *table) find(key map[string]types.AttributeValue) map[string]types.AttributeValue {
	want := t.keyOf(key)
	for _, item := range t.items {
		if t.keyOf(item) == want {
			return item
		}
	}
	return nil
}

func (t *table) put(item map[string]types.AttributeValue) {
	want := t.keyOf(item)
	for i, existing := range t.items {
		if t.keyOf(existing) == want {
			t.items[i] = item
			return
		}
	}
	t.items = append(t.items, item)
}

func (t *table) delete(key map[string]types.AttributeValue) {
	want := t.keyOf(key)
	for i, existing := range t.items {
		if t.keyOf(existing) == want {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return
		}
	}
}

// --- expression evaluation ---

// parseClause parses "Attr = :val" or "Attr <> :val".
func parseClause(expr string, values map[string]types.AttributeValue) (attr, value string, neg bool, err error) {
	fields := strings.Fields(expr)
	if len(fields) != 3 {
		return "", "", false, ErrUnsupported
	}
	switch fields[1] {
	case "=":
	case "<>":
		neg = true
	default:
		return "", "", false, ErrUnsupported
	}
	v, ok := values[fields[2]].(*types.AttributeValueMemberS)
	if !ok {
		return "", "", false, ErrUnsupported
	}
	return fields[0], v.Value, neg, nil
}

func matchFilter(item map[string]types.AttributeValue, expr *string, values map[string]types.AttributeValue) (bool, error) {
	if expr == nil || *expr == "" {
		return true, nil
	}
	for _, clause := range strings.Split(*expr, " AND ") {
		attr, value, neg, err := parseClause(strings.TrimSpace(clause), values)
		if err != nil {
			return false, err
		}
		got := stringAttr(item, attr)
		if neg == (got == value) {
			return false, nil
		}
	}
	return true, nil
}

func stringAttr(item map[string]types.AttributeValue, attr string) string {
	if v, ok := item[attr].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}
