/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package curvesetting

import (
	"context"

	"github.com/suparena/settingstore/assetstore"
	"github.com/suparena/settingstore/setting"
)

// Path is the fixed asset path of the curve setting.
const Path = "Setting/CurveSetting"

// CurveInfo is one curve setting record.
type CurveInfo struct {
	CurveType CurveType `json:"curveType" yaml:"curveType" dynamodbav:"curveType"`
	Curve     *Curve    `json:"curve" yaml:"curve" dynamodbav:"curve"`
}

func keyOf(c *CurveInfo) CurveType { return c.CurveType }

// Setting resolves shared animation curves by CurveType.
type Setting struct {
	reg *setting.Registry[CurveType, CurveInfo]
}

// New returns a Setting that loads Path from store on first use.
func New(store assetstore.Store, opts ...setting.Option) *Setting {
	opts = append([]setting.Option{
		setting.WithName("CurveSetting"),
		setting.WithSubject("curve"),
	}, opts...)
	return &Setting{reg: setting.New(store, Path, keyOf, opts...)}
}

func (s *Setting) Registry() *setting.Registry[CurveType, CurveInfo] {
	return s.reg
}

// GetCurve returns the curve registered for t, or nil when nothing is loaded.
func (s *Setting) GetCurve(t CurveType) *Curve {
	return setting.Resolve(s.reg, "GetCurve", t, func(c *CurveInfo) *Curve { return c.Curve })
}

// LookupCurve resolves t without diagnostics.
func (s *Setting) LookupCurve(t CurveType) setting.Result[CurveInfo] {
	return s.reg.Lookup(t)
}

// Evaluate samples the curve registered for t at time x.
func (s *Setting) Evaluate(t CurveType, x float64) float64 {
	return s.GetCurve(t).Evaluate(x)
}

var instance = setting.NewLazy(newInstance)

func newInstance() *Setting {
	s := New(assetstore.Default())
	_ = s.reg.Init(context.Background())
	return s
}

// Instance returns the process-wide curve setting, loading it from the
// default asset store on first call.
func Instance() *Setting {
	return instance.Get()
}

// GetCurve resolves t on Instance.
func GetCurve(t CurveType) *Curve {
	return Instance().GetCurve(t)
}

// Evaluate samples the curve registered for t on Instance.
func Evaluate(t CurveType, x float64) float64 {
	return Instance().Evaluate(t, x)
}
