/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package colorsetting

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/settingstore/assetstore"
	"github.com/suparena/settingstore/assetstore/filestore"
	"github.com/suparena/settingstore/assetstore/mock"
	"github.com/suparena/settingstore/errors"
	"github.com/suparena/settingstore/setting"
	"github.com/suparena/settingstore/settingmodels"
)

var (
	cRed  = RGBA(1, 0, 0, 1)
	cBlue = RGBA(0, 0, 1, 1)
	mRed  = &Material{Name: "mat_red"}
	mBlue = &Material{Name: "mat_blue"}
)

func scenarioDoc() settingmodels.Document[ColorData] {
	return settingmodels.Document[ColorData]{
		Records: []*ColorData{
			{ColorType: Red, TargetColor: cRed, TargetColorMat: mRed},
			{ColorType: Blue, TargetColor: cBlue, TargetColorMat: mBlue},
		},
	}
}

// newLogSink returns a text logger writing to the returned buffer
func newLogSink() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

// resetInstance swaps in a fresh process singleton for the duration of a test
func resetInstance(t *testing.T) {
	t.Helper()
	prev := instance
	instance = setting.NewLazy(newInstance)
	t.Cleanup(func() {
		instance = prev
		assetstore.SetDefault(nil)
	})
}

func TestScenario(t *testing.T) {
	store := mock.New().WithAsset(Path, scenarioDoc())
	logger, buf := newLogSink()
	s := New(store, setting.WithSink(logger))

	assert.Equal(t, cRed, s.GetColor(Red))
	assert.Empty(t, buf.String(), "hit must not emit diagnostics")

	assert.Equal(t, cRed, s.GetColor(Green))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "there is no color information for the requested type")
	assert.Contains(t, buf.String(), "type=Green")
	assert.Contains(t, buf.String(), "accessor=GetColor")

	buf.Reset()
	assert.Same(t, mBlue, s.GetColorMaterial(Blue))
	assert.Empty(t, buf.String())
	assert.Equal(t, 1, store.LoadCount(Path))
}

func TestEmptyAsset(t *testing.T) {
	logger, buf := newLogSink()
	s := New(mock.New(), setting.WithSink(logger))

	assert.Equal(t, Color{}, s.GetColor(Red))
	assert.Contains(t, buf.String(), "failed to load setting asset")
	assert.Contains(t, buf.String(), "there is no color information")

	buf.Reset()
	assert.Nil(t, s.GetColorMaterial(Blue))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "accessor=GetColorMaterial")
}

func TestMaterialMayBeNilOnHit(t *testing.T) {
	doc := settingmodels.Document[ColorData]{Records: []*ColorData{{ColorType: White, TargetColor: RGBA(1, 1, 1, 1)}}}
	logger, buf := newLogSink()
	s := New(mock.New().WithAsset(Path, doc), setting.WithSink(logger))

	assert.Nil(t, s.GetColorMaterial(White))
	assert.Empty(t, buf.String())
}

func TestLookupColor(t *testing.T) {
	s := New(mock.New().WithAsset(Path, scenarioDoc()), setting.WithSink(setting.NopSink{}))

	res := s.LookupColor(Blue)
	assert.True(t, res.OK())
	assert.Equal(t, cBlue, res.Record.TargetColor)

	res = s.LookupColor(Purple)
	assert.Equal(t, setting.Fallback, res.Outcome)
	assert.Equal(t, Red, res.Record.ColorType)
}

func TestLoadFromResourceDirectory(t *testing.T) {
	fsys := fstest.MapFS{
		"Setting/ColorSetting.yaml": {Data: []byte(`
name: ColorSetting
records:
  - colorType: Red
    targetColor: "#FF0000"
    targetColorMat: {name: mat_red, asset: Materials/Red.mat}
  - ~
  - colorType: blue
    targetColor: {r: 0, g: 0, b: 1}
`)},
	}
	s := New(filestore.NewFS(fsys), setting.WithSink(setting.NopSink{}))
	require.NoError(t, s.Registry().Init(context.Background()))

	assert.Equal(t, cRed, s.GetColor(Red))
	assert.Equal(t, cBlue, s.GetColor(Blue))
	assert.Equal(t, "Materials/Red.mat", s.GetColorMaterial(Red).Asset)
	assert.Equal(t, []ColorType{Red, Blue}, s.Registry().Keys())
	assert.Equal(t, "ColorSetting", s.Registry().Header().Name)
}

func TestInstance(t *testing.T) {
	resetInstance(t)
	store := mock.New().WithAsset(Path, scenarioDoc())
	assetstore.SetDefault(store)

	assert.Same(t, Instance(), Instance())
	assert.True(t, Instance().Registry().Loaded())
	assert.Equal(t, cBlue, GetColor(Blue))
	assert.Same(t, mRed, GetColorMaterial(Red))
	assert.Equal(t, 1, store.LoadCount(Path))
}

func TestInstanceWithoutStore(t *testing.T) {
	resetInstance(t)

	assert.Equal(t, Color{}, GetColor(Red))
	err := Instance().Registry().Err()
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	// the failure is permanent for the process singleton
	assetstore.SetDefault(mock.New().WithAsset(Path, scenarioDoc()))
	assert.Equal(t, Color{}, GetColor(Red))
}

func TestColorTypeText(t *testing.T) {
	for _, ct := range ColorTypes() {
		text, err := ct.MarshalText()
		require.NoError(t, err)

		var back ColorType
		require.NoError(t, back.UnmarshalText([]byte(strings.ToUpper(string(text)))))
		assert.Equal(t, ct, back)
	}

	v, err := ParseColorType("4")
	require.NoError(t, err)
	assert.Equal(t, Red, v)

	_, err = ParseColorType("Chartreuse")
	assert.True(t, errors.IsValidationError(err))

	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "ColorType(99)", ColorType(99).String())
}
