// Package storetest provides an in-memory DynamoAPI implementation for tests.
// It honors filter expressions of the equality-conjunction shape the scan
// engine produces and pages results through LastEvaluatedKey the way the real
// store does.
package storetest

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Fake holds tables as ordered item slices. PageSize > 0 splits scan results
// into pages of that size; zero returns everything in one page. Err, when
// set, fails every call; FailTable narrows the failure to one table.
type Fake struct {
	mu        sync.Mutex
	tables    map[string][]map[string]types.AttributeValue
	keys      map[string][]string
	PageSize  int
	Err       error
	FailTable string
	ScanCalls int
}

func (f *Fake) failure(table string) error {
	if f.Err == nil {
		return nil
	}

	if f.FailTable != "" && f.FailTable != table {
		return nil
	}

	return f.Err
}

// New builds a Fake preloaded with the key schema for the given tables.
// keys maps table name to its key attribute names.
func New(keys map[string][]string) *Fake {
	return &Fake{
		tables: make(map[string][]map[string]types.AttributeValue),
		keys:   keys,
	}
}

// Seed appends an item without going through PutItem key matching.
func (f *Fake) Seed(table string, item map[string]types.AttributeValue) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.tables[table] = append(f.tables[table], item)
}

// Items returns a copy of the current contents of table.
func (f *Fake) Items(table string) []map[string]types.AttributeValue {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]map[string]types.AttributeValue(nil), f.tables[table]...)
}

func (f *Fake) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := *params.TableName

	if err := f.failure(table); err != nil {
		return nil, err
	}

	for i, existing := range f.tables[table] {
		if f.sameKey(table, existing, params.Item) {
			f.tables[table][i] = params.Item
			return &dynamodb.PutItemOutput{}, nil
		}
	}

	f.tables[table] = append(f.tables[table], params.Item)

	return &dynamodb.PutItemOutput{}, nil
}

func (f *Fake) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := *params.TableName

	if err := f.failure(table); err != nil {
		return nil, err
	}

	items := f.tables[table]

	for i, existing := range items {
		if f.sameKey(table, existing, params.Key) {
			f.tables[table] = append(items[:i:i], items[i+1:]...)
			break
		}
	}

	// Deleting an absent key succeeds, matching store semantics.
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *Fake) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ScanCalls++

	table := *params.TableName

	if err := f.failure(table); err != nil {
		return nil, err
	}

	matched := make([]map[string]types.AttributeValue, 0)

	for _, item := range f.tables[table] {
		ok, err := matchFilter(item, params)

		if err != nil {
			return nil, err
		}

		if ok {
			matched = append(matched, item)
		}
	}

	start := 0

	if len(params.ExclusiveStartKey) > 0 {
		cursor, ok := params.ExclusiveStartKey["_cursor"].(*types.AttributeValueMemberS)

		if !ok {
			return nil, fmt.Errorf("storetest: malformed continuation key")
		}

		n, err := strconv.Atoi(cursor.Value)

		if err != nil {
			return nil, fmt.Errorf("storetest: malformed continuation key: %w", err)
		}

		start = n
	}

	end := len(matched)

	if f.PageSize > 0 && start+f.PageSize < end {
		end = start + f.PageSize
	}

	out := &dynamodb.ScanOutput{Items: matched[start:end]}

	if end < len(matched) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"_cursor": &types.AttributeValueMemberS{Value: strconv.Itoa(end)},
		}
	}

	return out, nil
}

func (f *Fake) sameKey(table string, a, b map[string]types.AttributeValue) bool {
	keyAttrs, ok := f.keys[table]

	if !ok {
		return false
	}

	for _, attr := range keyAttrs {
		av, aok := a[attr].(*types.AttributeValueMemberS)
		bv, bok := b[attr].(*types.AttributeValueMemberS)

		if !aok || !bok || av.Value != bv.Value {
			return false
		}
	}

	return true
}

// matchFilter evaluates the equality conjunctions the expression builder
// emits, e.g. "(#0 = :0) AND (#1 = :1)" with attribute name and value maps.
func matchFilter(item map[string]types.AttributeValue, params *dynamodb.ScanInput) (bool, error) {
	if params.FilterExpression == nil {
		return true, nil
	}

	for _, clause := range strings.Split(*params.FilterExpression, " AND ") {
		clause = strings.Trim(clause, "() ")
		parts := strings.Split(clause, " = ")

		if len(parts) != 2 {
			return false, fmt.Errorf("storetest: unsupported filter clause %q", clause)
		}

		name, ok := params.ExpressionAttributeNames[parts[0]]

		if !ok {
			return false, fmt.Errorf("storetest: unresolved name %q", parts[0])
		}

		want, ok := params.ExpressionAttributeValues[parts[1]].(*types.AttributeValueMemberS)

		if !ok {
			return false, fmt.Errorf("storetest: unresolved value %q", parts[1])
		}

		got, ok := item[name].(*types.AttributeValueMemberS)

		if !ok || got.Value != want.Value {
			return false, nil
		}
	}

	return true, nil
}
