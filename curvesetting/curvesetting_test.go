/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package curvesetting

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/settingstore/assetstore"
	"github.com/suparena/settingstore/assetstore/filestore"
	"github.com/suparena/settingstore/assetstore/mock"
	"github.com/suparena/settingstore/setting"
	"github.com/suparena/settingstore/settingmodels"
)

func curveDoc() settingmodels.Document[CurveInfo] {
	return settingmodels.Document[CurveInfo]{
		Records: []*CurveInfo{
			{CurveType: Linear, Curve: NewLinear(0, 0, 1, 1)},
			nil,
			{CurveType: Constant, Curve: NewConstant(0, 1, 0.5)},
			{CurveType: Linear, Curve: NewLinear(0, 0, 1, 2)},
		},
	}
}

func resetInstance(t *testing.T) {
	t.Helper()
	prev := instance
	instance = setting.NewLazy(newInstance)
	t.Cleanup(func() {
		instance = prev
		assetstore.SetDefault(nil)
	})
}

func TestGetCurve(t *testing.T) {
	buf := &bytes.Buffer{}
	s := New(mock.New().WithAsset(Path, curveDoc()), setting.WithSink(slog.New(slog.NewTextHandler(buf, nil))))

	// the later Linear record wins
	assert.InDelta(t, 1.0, s.Evaluate(Linear, 0.5), 1e-9)
	assert.Equal(t, 0.5, s.Evaluate(Constant, 0.2))
	assert.Empty(t, buf.String())

	assert.InDelta(t, 1.0, s.Evaluate(Spring, 1), 1e-9, "miss falls back to the first record")
	assert.Contains(t, buf.String(), "there is no curve information for the requested type")
	assert.Contains(t, buf.String(), "type=Spring")
}

func TestGetCurveEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	doc := settingmodels.Document[CurveInfo]{Records: []*CurveInfo{nil, nil}}
	s := New(mock.New().WithAsset(Path, doc), setting.WithSink(slog.New(slog.NewTextHandler(buf, nil))))

	assert.Nil(t, s.GetCurve(Bounce))
	assert.Equal(t, 0.0, s.Evaluate(Bounce, 0.5))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "there is no curve information")
	assert.Equal(t, setting.Empty, s.LookupCurve(Bounce).Outcome)
}

func TestLookupCurve(t *testing.T) {
	s := New(mock.New().WithAsset(Path, curveDoc()), setting.WithSink(setting.NopSink{}))

	res := s.LookupCurve(Constant)
	require.True(t, res.OK())
	assert.Equal(t, Constant, res.Record.CurveType)

	assert.Equal(t, setting.Fallback, s.LookupCurve(EaseIn).Outcome)

	report := s.Registry().Inspect()
	assert.Equal(t, []int{1}, report.Nulls)
	assert.Equal(t, map[CurveType][]int{Linear: {0}}, report.Shadowed)
}

func TestLoadCurvesFromJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"Setting/CurveSetting.json": {Data: []byte(`{
			"name": "CurveSetting",
			"records": [
				{"curveType": "EaseOut", "curve": {"keys": [
					{"time": 0, "value": 0, "outTangent": 2},
					{"time": 1, "value": 1}
				], "postWrap": "loop"}}
			]
		}`)},
	}
	s := New(filestore.NewFS(fsys), setting.WithSink(setting.NopSink{}))
	require.NoError(t, s.Registry().Init(context.Background()))

	c := s.GetCurve(EaseOut)
	require.NotNil(t, c)
	assert.Equal(t, Loop, c.PostWrap)
	assert.Greater(t, c.Evaluate(0.25), 0.25)
}

func TestInstance(t *testing.T) {
	resetInstance(t)
	store := mock.New().WithAsset(Path, curveDoc())
	assetstore.SetDefault(store)

	assert.Same(t, Instance(), Instance())
	assert.Equal(t, 0.5, Evaluate(Constant, 0.9))
	assert.NotNil(t, GetCurve(Linear))
	assert.Equal(t, 1, store.LoadCount(Path))
}

func TestCurveInfoDynamoDB(t *testing.T) {
	in := CurveInfo{CurveType: Bounce, Curve: &Curve{
		Keys:     []Keyframe{{Time: 0, Value: 0, OutTangent: 1}, {Time: 1, Value: 1, InTangent: 1}},
		PostWrap: PingPong,
	}}

	av, err := attributevalue.Marshal(in)
	require.NoError(t, err)

	var out CurveInfo
	require.NoError(t, attributevalue.Unmarshal(av, &out))
	assert.Equal(t, in, out)
}

func TestParseCurveType(t *testing.T) {
	for _, ct := range CurveTypes() {
		got, err := ParseCurveType(ct.String())
		require.NoError(t, err)
		assert.Equal(t, ct, got)
	}
	got, err := ParseCurveType("easeinout")
	require.NoError(t, err)
	assert.Equal(t, EaseInOut, got)

	_, err = ParseCurveType("Wobble")
	assert.Error(t, err)
}
