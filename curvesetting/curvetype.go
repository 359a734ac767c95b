/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package curvesetting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/settingstore/errors"
)

// CurveType names a shared animation curve.
type CurveType int

const (
	Unknown CurveType = iota
	Linear
	EaseIn
	EaseOut
	EaseInOut
	Constant
	Bounce
	Spring
)

var curveTypeNames = [...]string{
	Unknown:   "unknown",
	Linear:    "Linear",
	EaseIn:    "EaseIn",
	EaseOut:   "EaseOut",
	EaseInOut: "EaseInOut",
	Constant:  "Constant",
	Bounce:    "Bounce",
	Spring:    "Spring",
}

// CurveTypes returns every defined curve type except Unknown.
func CurveTypes() []CurveType {
	out := make([]CurveType, 0, len(curveTypeNames)-1)
	for t := Linear; int(t) < len(curveTypeNames); t++ {
		out = append(out, t)
	}
	return out
}

func (t CurveType) String() string {
	if t >= 0 && int(t) < len(curveTypeNames) {
		return curveTypeNames[t]
	}
	return "CurveType(" + strconv.Itoa(int(t)) + ")"
}

// ParseCurveType parses a curve type name, case-insensitively, or its number.
func ParseCurveType(s string) (CurveType, error) {
	s = strings.TrimSpace(s)
	for i, name := range curveTypeNames {
		if strings.EqualFold(s, name) {
			return CurveType(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < len(curveTypeNames) {
		return CurveType(n), nil
	}
	return Unknown, errors.NewValidationError("curveType", fmt.Sprintf("unknown curve type %q", s))
}

func (t CurveType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *CurveType) UnmarshalText(text []byte) error {
	v, err := ParseCurveType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t CurveType) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberS{Value: t.String()}, nil
}

func (t *CurveType) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return t.UnmarshalText([]byte(v.Value))
	case *types.AttributeValueMemberN:
		return t.UnmarshalText([]byte(v.Value))
	case *types.AttributeValueMemberNULL:
		*t = Unknown
		return nil
	default:
		return errors.NewValidationError("curveType", fmt.Sprintf("unsupported attribute %T", av))
	}
}
