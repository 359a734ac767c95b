/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package colorsetting

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/suparena/settingstore/errors"
)

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R float32 `json:"r" yaml:"r" dynamodbav:"r"`
	G float32 `json:"g" yaml:"g" dynamodbav:"g"`
	B float32 `json:"b" yaml:"b" dynamodbav:"b"`
	A float32 `json:"a" yaml:"a" dynamodbav:"a"`
}

// RGBA returns a Color from its components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA"; the leading '#' is optional.
// Alpha defaults to 1.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, errors.NewValidationError("color", fmt.Sprintf("invalid hex color %q", s))
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, errors.NewValidationError("color", fmt.Sprintf("invalid hex color %q", s))
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float32(v>>24&0xff) / 255,
		G: float32(v>>16&0xff) / 255,
		B: float32(v>>8&0xff) / 255,
		A: float32(v&0xff) / 255,
	}, nil
}

// Hex formats the color as "#RRGGBBAA".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", channel(c.R), channel(c.G), channel(c.B), channel(c.A))
}

func (c Color) String() string {
	return c.Hex()
}

func channel(v float32) uint8 {
	return uint8(math.Round(float64(min(max(v, 0), 1)) * 255))
}

// colorFields mirrors Color with optional components so a missing alpha can default to 1.
type colorFields struct {
	R *float32 `json:"r" yaml:"r"`
	G *float32 `json:"g" yaml:"g"`
	B *float32 `json:"b" yaml:"b"`
	A *float32 `json:"a" yaml:"a"`
}

func (f colorFields) color() Color {
	c := Color{A: 1}
	if f.R != nil {
		c.R = *f.R
	}
	if f.G != nil {
		c.G = *f.G
	}
	if f.B != nil {
		c.B = *f.B
	}
	if f.A != nil {
		c.A = *f.A
	}
	return c
}

// UnmarshalYAML accepts a hex string or a mapping of r, g, b and optional a.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		v, err := ParseHex(node.Value)
		if err != nil {
			return err
		}
		*c = v
		return nil
	}
	var f colorFields
	if err := node.Decode(&f); err != nil {
		return err
	}
	*c = f.color()
	return nil
}

// UnmarshalJSON accepts a hex string or an object of r, g, b and optional a.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := ParseHex(s)
		if err != nil {
			return err
		}
		*c = v
		return nil
	}
	var f colorFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*c = f.color()
	return nil
}

// Material references a render material asset. The registry only hands the
// reference out; resolving it is the renderer's business.
type Material struct {
	Name  string `json:"name" yaml:"name" dynamodbav:"name"`
	Asset string `json:"asset,omitempty" yaml:"asset,omitempty" dynamodbav:"asset,omitempty"`
}
