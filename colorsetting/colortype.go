/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package colorsetting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/settingstore/errors"
)

// ColorType names a themed color slot.
type ColorType int

const (
	Unknown ColorType = iota
	White
	Black
	Gray
	Red
	Green
	Blue
	Yellow
	Cyan
	Magenta
	Orange
	Purple
)

var colorTypeNames = [...]string{
	Unknown: "unknown",
	White:   "White",
	Black:   "Black",
	Gray:    "Gray",
	Red:     "Red",
	Green:   "Green",
	Blue:    "Blue",
	Yellow:  "Yellow",
	Cyan:    "Cyan",
	Magenta: "Magenta",
	Orange:  "Orange",
	Purple:  "Purple",
}

// ColorTypes returns every defined color type except Unknown.
func ColorTypes() []ColorType {
	out := make([]ColorType, 0, len(colorTypeNames)-1)
	for t := White; int(t) < len(colorTypeNames); t++ {
		out = append(out, t)
	}
	return out
}

func (t ColorType) String() string {
	if t >= 0 && int(t) < len(colorTypeNames) {
		return colorTypeNames[t]
	}
	return "ColorType(" + strconv.Itoa(int(t)) + ")"
}

// ParseColorType parses a color type name, case-insensitively, or its number.
func ParseColorType(s string) (ColorType, error) {
	s = strings.TrimSpace(s)
	for i, name := range colorTypeNames {
		if strings.EqualFold(s, name) {
			return ColorType(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < len(colorTypeNames) {
		return ColorType(n), nil
	}
	return Unknown, errors.NewValidationError("colorType", fmt.Sprintf("unknown color type %q", s))
}

// MarshalText encodes the type by name.
func (t ColorType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText accepts a name or a number.
func (t *ColorType) UnmarshalText(text []byte) error {
	v, err := ParseColorType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalDynamoDBAttributeValue stores the type by name.
func (t ColorType) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberS{Value: t.String()}, nil
}

// UnmarshalDynamoDBAttributeValue accepts a name (S) or a number (N).
func (t *ColorType) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return t.UnmarshalText([]byte(v.Value))
	case *types.AttributeValueMemberN:
		return t.UnmarshalText([]byte(v.Value))
	case *types.AttributeValueMemberNULL:
		*t = Unknown
		return nil
	default:
		return errors.NewValidationError("colorType", fmt.Sprintf("unsupported attribute %T", av))
	}
}
