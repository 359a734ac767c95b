/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package colorsetting

import (
	"context"

	"github.com/suparena/settingstore/assetstore"
	"github.com/suparena/settingstore/setting"
)

// Path is the fixed asset path of the color setting.
const Path = "Setting/ColorSetting"

// ColorData is one color setting record.
type ColorData struct {
	ColorType      ColorType `json:"colorType" yaml:"colorType" dynamodbav:"colorType"`
	TargetColor    Color     `json:"targetColor" yaml:"targetColor" dynamodbav:"targetColor"`
	TargetColorMat *Material `json:"targetColorMat,omitempty" yaml:"targetColorMat,omitempty" dynamodbav:"targetColorMat,omitempty"`
}

func keyOf(d *ColorData) ColorType { return d.ColorType }

// Setting resolves colors and materials by ColorType.
type Setting struct {
	reg *setting.Registry[ColorType, ColorData]
}

// New returns a Setting that loads Path from store on first use.
// opts override the defaults (name "ColorSetting", subject "color").
func New(store assetstore.Store, opts ...setting.Option) *Setting {
	opts = append([]setting.Option{
		setting.WithName("ColorSetting"),
		setting.WithSubject("color"),
	}, opts...)
	return &Setting{reg: setting.New(store, Path, keyOf, opts...)}
}

// Registry exposes the underlying registry for inspection.
func (s *Setting) Registry() *setting.Registry[ColorType, ColorData] {
	return s.reg
}

// GetColor returns the target color registered for t.
func (s *Setting) GetColor(t ColorType) Color {
	return setting.Resolve(s.reg, "GetColor", t, func(d *ColorData) Color { return d.TargetColor })
}

// GetColorMaterial returns the material registered for t. The result may be
// nil even on a hit when the record carries no material.
func (s *Setting) GetColorMaterial(t ColorType) *Material {
	return setting.Resolve(s.reg, "GetColorMaterial", t, func(d *ColorData) *Material { return d.TargetColorMat })
}

// LookupColor resolves t without diagnostics.
func (s *Setting) LookupColor(t ColorType) setting.Result[ColorData] {
	return s.reg.Lookup(t)
}

var instance = setting.NewLazy(newInstance)

func newInstance() *Setting {
	s := New(assetstore.Default())
	// a failed load is already reported through the registry's sink
	_ = s.reg.Init(context.Background())
	return s
}

// Instance returns the process-wide color setting, loading it from the
// default asset store on first call.
func Instance() *Setting {
	return instance.Get()
}

// GetColor resolves t on Instance.
func GetColor(t ColorType) Color {
	return Instance().GetColor(t)
}

// GetColorMaterial resolves t on Instance.
func GetColorMaterial(t ColorType) *Material {
	return Instance().GetColorMaterial(t)
}
