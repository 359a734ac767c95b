/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package curvesetting

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/settingstore/errors"
)

// WrapMode controls how a curve is evaluated outside its key range.
type WrapMode int

const (
	// Clamp holds the first or last key's value.
	Clamp WrapMode = iota
	// Loop repeats the curve.
	Loop
	// PingPong repeats the curve, reversing every other cycle.
	PingPong
)

var wrapModeNames = [...]string{Clamp: "clamp", Loop: "loop", PingPong: "pingPong"}

func (m WrapMode) String() string {
	if m >= 0 && int(m) < len(wrapModeNames) {
		return wrapModeNames[m]
	}
	return fmt.Sprintf("WrapMode(%d)", int(m))
}

func (m WrapMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *WrapMode) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	for i, name := range wrapModeNames {
		if strings.EqualFold(s, name) {
			*m = WrapMode(i)
			return nil
		}
	}
	return errors.NewValidationError("wrapMode", fmt.Sprintf("unknown wrap mode %q", s))
}

func (m WrapMode) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberS{Value: m.String()}, nil
}

func (m *WrapMode) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return errors.NewValidationError("wrapMode", fmt.Sprintf("unsupported attribute %T", av))
	}
	return m.UnmarshalText([]byte(s.Value))
}

// Keyframe is one point of a curve. Tangents are slopes in value per unit
// time; an infinite out tangent holds the key's value until the next key.
type Keyframe struct {
	Time       float64 `json:"time" yaml:"time" dynamodbav:"time"`
	Value      float64 `json:"value" yaml:"value" dynamodbav:"value"`
	InTangent  float64 `json:"inTangent,omitempty" yaml:"inTangent,omitempty" dynamodbav:"inTangent,omitempty"`
	OutTangent float64 `json:"outTangent,omitempty" yaml:"outTangent,omitempty" dynamodbav:"outTangent,omitempty"`
}

// Curve is a cubic Hermite spline over its keyframes.
type Curve struct {
	Keys     []Keyframe `json:"keys" yaml:"keys" dynamodbav:"keys"`
	PreWrap  WrapMode   `json:"preWrap,omitempty" yaml:"preWrap,omitempty" dynamodbav:"preWrap,omitempty"`
	PostWrap WrapMode   `json:"postWrap,omitempty" yaml:"postWrap,omitempty" dynamodbav:"postWrap,omitempty"`
}

// NewLinear returns a straight line from (t0, v0) to (t1, v1).
func NewLinear(t0, v0, t1, v1 float64) *Curve {
	if t0 == t1 {
		return &Curve{Keys: []Keyframe{{Time: t0, Value: v0}}}
	}
	slope := (v1 - v0) / (t1 - t0)
	return &Curve{Keys: []Keyframe{
		{Time: t0, Value: v0, InTangent: slope, OutTangent: slope},
		{Time: t1, Value: v1, InTangent: slope, OutTangent: slope},
	}}
}

// NewEaseInOut returns a curve from (t0, v0) to (t1, v1) with flat ends.
func NewEaseInOut(t0, v0, t1, v1 float64) *Curve {
	return &Curve{Keys: []Keyframe{{Time: t0, Value: v0}, {Time: t1, Value: v1}}}
}

// NewConstant returns a curve holding v between t0 and t1.
func NewConstant(t0, t1, v float64) *Curve {
	return &Curve{Keys: []Keyframe{{Time: t0, Value: v}, {Time: t1, Value: v}}}
}

// Duration returns the time span covered by the keys.
func (c *Curve) Duration() float64 {
	if c == nil || len(c.Keys) == 0 {
		return 0
	}
	first, last := c.bounds()
	return last - first
}

func (c *Curve) bounds() (float64, float64) {
	first, last := c.Keys[0].Time, c.Keys[0].Time
	for _, k := range c.Keys[1:] {
		first = min(first, k.Time)
		last = max(last, k.Time)
	}
	return first, last
}

// Evaluate returns the curve's value at time t. A nil or keyless curve
// evaluates to 0 and a single key to its value. Keys need not be sorted.
// A NaN time yields NaN, as does an infinite time wrapped by Loop or PingPong;
// Clamp maps infinities to the end keys.
func (c *Curve) Evaluate(t float64) float64 {
	if c == nil || len(c.Keys) == 0 {
		return 0
	}
	if len(c.Keys) == 1 {
		return c.Keys[0].Value
	}

	keys := c.Keys
	if !slices.IsSortedFunc(keys, byTime) {
		keys = slices.SortedStableFunc(slices.Values(keys), byTime)
	}
	first, last := keys[0], keys[len(keys)-1]

	switch {
	case t < first.Time:
		t = wrap(t, first.Time, last.Time, c.PreWrap)
	case t > last.Time:
		t = wrap(t, first.Time, last.Time, c.PostWrap)
	}
	// NaN input, or an infinite time under Loop or PingPong, has no position
	if math.IsNaN(t) {
		return math.NaN()
	}
	if t <= first.Time {
		return first.Value
	}
	if t >= last.Time {
		return last.Value
	}

	// first key strictly after t; t is inside the range so i is in [1, len-1]
	i, _ := slices.BinarySearchFunc(keys, t, func(k Keyframe, t float64) int {
		if k.Time <= t {
			return -1
		}
		return 1
	})
	return hermite(keys[i-1], keys[i], t)
}

func byTime(a, b Keyframe) int {
	switch {
	case a.Time < b.Time:
		return -1
	case a.Time > b.Time:
		return 1
	default:
		return 0
	}
}

// wrap maps t outside [start, end] back into it.
func wrap(t, start, end float64, mode WrapMode) float64 {
	length := end - start
	if length <= 0 {
		return start
	}
	switch mode {
	case Loop:
		return start + positiveMod(t-start, length)
	case PingPong:
		p := positiveMod(t-start, 2*length)
		if p > length {
			p = 2*length - p
		}
		return start + p
	default:
		return min(max(t, start), end)
	}
}

func positiveMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

func hermite(k0, k1 Keyframe, t float64) float64 {
	dt := k1.Time - k0.Time
	if dt <= 0 {
		return k1.Value
	}
	if math.IsInf(k0.OutTangent, 0) || math.IsInf(k1.InTangent, 0) {
		return k0.Value
	}
	s := (t - k0.Time) / dt
	s2 := s * s
	s3 := s2 * s

	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2

	return h00*k0.Value + h10*dt*k0.OutTangent + h01*k1.Value + h11*dt*k1.InTangent
}
