package models

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Every attribute is persisted as the string variant, including numeric
// fields, which are carried as decimal strings.

func stringAttr(item map[string]types.AttributeValue, key string) (string, bool) {
	attr, ok := item[key]

	if !ok {
		return "", false
	}

	s, ok := attr.(*types.AttributeValueMemberS)

	if !ok {
		return "", false
	}

	return s.Value, true
}

func intAttr(item map[string]types.AttributeValue, key string) (int, bool) {
	raw, ok := stringAttr(item, key)

	if !ok {
		return 0, false
	}

	n, err := strconv.Atoi(raw)

	if err != nil {
		return 0, false
	}

	return n, true
}

func stringValue(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func intValue(n int) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: strconv.Itoa(n)}
}
