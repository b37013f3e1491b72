package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/inkwell-dev/inkwell/internal/apperr"
)

// DecodePolicy controls what a scan does with an item the codec rejects.
type DecodePolicy int

const (
	// DecodeSkip drops undecodable items and keeps scanning. Partial or
	// legacy records must not abort an otherwise-successful scan; this is
	// the default policy, not an accidental swallow.
	DecodeSkip DecodePolicy = iota
	// DecodeStrict fails the scan with ErrCorruptRecord on the first
	// undecodable item.
	DecodeStrict
)

// ScanAll pages through table with an equality-conjunction filter over match,
// following the continuation key until the store reports exhaustion, and
// returns every item decode accepts.
//
// The result is complete at scan time only; the store offers no snapshot
// isolation, so writes concurrent with a multi-page scan may or may not be
// observed. No ordering is guaranteed. Cost is O(table size) regardless of
// selectivity, so keyed point operations must not route through here.
func ScanAll[T any](
	ctx context.Context,
	client DynamoAPI,
	table string,
	match map[string]string,
	decode func(map[string]types.AttributeValue) (T, bool),
	policy DecodePolicy,
) ([]T, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(table),
	}

	if len(match) > 0 {
		expr, err := buildFilter(match)

		if err != nil {
			return nil, &apperr.StoreError{Op: "scan", Table: table, Err: err}
		}

		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	var out []T

	for {
		resp, err := client.Scan(ctx, input)

		if err != nil {
			return nil, &apperr.StoreError{Op: "scan", Table: table, Err: err}
		}

		for _, item := range resp.Items {
			decoded, ok := decode(item)

			if !ok {
				if policy == DecodeStrict {
					return nil, fmt.Errorf("scan %s: %w", table, apperr.ErrCorruptRecord)
				}

				continue
			}

			out = append(out, decoded)
		}

		if len(resp.LastEvaluatedKey) == 0 {
			return out, nil
		}

		input.ExclusiveStartKey = resp.LastEvaluatedKey
	}
}

// buildFilter produces the filter expression for an equality conjunction over
// match. Attribute names are sorted so the expression is deterministic.
func buildFilter(match map[string]string) (expression.Expression, error) {
	names := make([]string, 0, len(match))

	for name := range match {
		names = append(names, name)
	}

	sort.Strings(names)

	cond := expression.Name(names[0]).Equal(expression.Value(match[names[0]]))

	for _, name := range names[1:] {
		cond = cond.And(expression.Name(name).Equal(expression.Value(match[name])))
	}

	return expression.NewBuilder().WithFilter(cond).Build()
}
