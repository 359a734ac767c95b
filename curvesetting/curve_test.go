/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package curvesetting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"
)

func TestEvaluateEdgeCases(t *testing.T) {
	var nilCurve *Curve
	assert.Equal(t, 0.0, nilCurve.Evaluate(1))
	assert.Equal(t, 0.0, (&Curve{}).Evaluate(1))
	assert.Equal(t, 3.0, (&Curve{Keys: []Keyframe{{Time: 2, Value: 3}}}).Evaluate(-10))
}

func TestEvaluateLinear(t *testing.T) {
	c := NewLinear(0, 0, 2, 4)

	tests := []struct {
		at, want float64
	}{
		{0, 0}, {0.5, 1}, {1, 2}, {2, 4}, {-1, 0}, {3, 4},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, c.Evaluate(tt.at), 1e-9, "t=%v", tt.at)
	}
}

func TestEvaluateEaseInOut(t *testing.T) {
	c := NewEaseInOut(0, 0, 1, 1)

	assert.InDelta(t, 0.5, c.Evaluate(0.5), 1e-9)
	// smoothstep: 3s^2 - 2s^3
	assert.InDelta(t, 0.15625, c.Evaluate(0.25), 1e-9)
	assert.Less(t, c.Evaluate(0.1), 0.1)
}

func TestEvaluateStepped(t *testing.T) {
	c := &Curve{Keys: []Keyframe{
		{Time: 0, Value: 1, OutTangent: math.Inf(1)},
		{Time: 1, Value: 5},
	}}
	assert.Equal(t, 1.0, c.Evaluate(0.99))
	assert.Equal(t, 5.0, c.Evaluate(1))
}

func TestEvaluateUnsortedKeys(t *testing.T) {
	sorted := NewLinear(0, 0, 1, 10)
	unsorted := &Curve{Keys: []Keyframe{sorted.Keys[1], sorted.Keys[0]}}

	assert.InDelta(t, sorted.Evaluate(0.3), unsorted.Evaluate(0.3), 1e-9)
	assert.Equal(t, 1.0, unsorted.Duration())
}

func TestWrapModes(t *testing.T) {
	base := NewLinear(0, 0, 1, 1)

	loop := *base
	loop.PreWrap, loop.PostWrap = Loop, Loop
	assert.InDelta(t, 0.25, loop.Evaluate(1.25), 1e-9)
	assert.InDelta(t, 0.75, loop.Evaluate(-0.25), 1e-9)

	pp := *base
	pp.PostWrap = PingPong
	assert.InDelta(t, 0.75, pp.Evaluate(1.25), 1e-9)
	assert.InDelta(t, 0.25, pp.Evaluate(2.25), 1e-9)

	assert.Equal(t, 1.0, base.Evaluate(5))
}

func TestEvaluateNonFiniteTime(t *testing.T) {
	tests := []struct {
		name string
		mode WrapMode
		at   float64
		want float64 // NaN means NaN is expected
	}{
		{"clamp NaN", Clamp, math.NaN(), math.NaN()},
		{"clamp +Inf", Clamp, math.Inf(1), 1},
		{"clamp -Inf", Clamp, math.Inf(-1), 0},
		{"loop NaN", Loop, math.NaN(), math.NaN()},
		{"loop +Inf", Loop, math.Inf(1), math.NaN()},
		{"loop -Inf", Loop, math.Inf(-1), math.NaN()},
		{"pingpong NaN", PingPong, math.NaN(), math.NaN()},
		{"pingpong +Inf", PingPong, math.Inf(1), math.NaN()},
		{"pingpong -Inf", PingPong, math.Inf(-1), math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLinear(0, 0, 1, 1)
			c.PreWrap, c.PostWrap = tt.mode, tt.mode

			var got float64
			require.NotPanics(t, func() { got = c.Evaluate(tt.at) })
			if math.IsNaN(tt.want) {
				assert.True(t, math.IsNaN(got), "got %v", got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrapModeText(t *testing.T) {
	var m WrapMode
	require.NoError(t, m.UnmarshalText([]byte("PINGPONG")))
	assert.Equal(t, PingPong, m)
	assert.Error(t, m.UnmarshalText([]byte("mirror")))
	assert.Equal(t, "WrapMode(7)", WrapMode(7).String())
}

func TestCurveYAML(t *testing.T) {
	var c Curve
	require.NoError(t, yaml.Unmarshal([]byte(`
keys:
  - {time: 0, value: 0, outTangent: .inf}
  - {time: 1, value: 2}
postWrap: loop
`), &c))

	assert.Equal(t, Loop, c.PostWrap)
	assert.Equal(t, Clamp, c.PreWrap)
	assert.True(t, math.IsInf(c.Keys[0].OutTangent, 1))
	assert.Equal(t, 0.0, c.Evaluate(1.5))
}

func TestEvaluateStaysWithinLinearBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		t0 := rapid.Float64Range(-100, 100).Draw(t, "t0")
		span := rapid.Float64Range(0.01, 100).Draw(t, "span")
		v0 := rapid.Float64Range(-1e3, 1e3).Draw(t, "v0")
		v1 := rapid.Float64Range(-1e3, 1e3).Draw(t, "v1")
		x := rapid.Float64Range(-300, 300).Draw(t, "x")

		got := NewLinear(t0, v0, t0+span, v1).Evaluate(x)
		lo, hi := min(v0, v1), max(v0, v1)
		if got < lo-1e-6 || got > hi+1e-6 {
			t.Fatalf("Evaluate(%v) = %v outside [%v, %v]", x, got, lo, hi)
		}
	})
}
