/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/settingstore/errors"
	"github.com/suparena/settingstore/settingmodels"
)

type testRecord struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	fsys := fstest.MapFS{
		"Setting/ColorSetting.yaml": {Data: []byte(
			"name: ColorSetting\n" +
				"updatedAt: \"2025-03-01T10:00:00.000Z\"\n" +
				"records:\n" +
				"  - key: a\n    value: red\n" +
				"  - null\n" +
				"  - key: b\n    value: blue\n")},
		"Setting/CurveSetting.json": {Data: []byte(`{"name":"CurveSetting","records":[{"key":"c","value":"linear"}]}`)},
		"Setting/Both.yml":          {Data: []byte("records:\n  - key: yml\n    value: x\n")},
		"Setting/Both.json":         {Data: []byte(`{"records":[{"key":"json","value":"x"}]}`)},
		"Setting/Broken.yaml":       {Data: []byte("records: [\n")},
		"Setting/Odd.toml":          {Data: []byte("records = []")},
	}
	store := NewFS(fsys)

	t.Run("YAMLWithHeaderAndNullSlot", func(t *testing.T) {
		var doc settingmodels.Document[testRecord]
		require.NoError(t, store.Load(ctx, "Setting/ColorSetting", &doc))

		assert.Equal(t, "ColorSetting", doc.Name)
		require.NotNil(t, doc.UpdatedAt)
		assert.Equal(t, 2025, time.Time(*doc.UpdatedAt).Year())
		require.Len(t, doc.Records, 3)
		assert.Equal(t, "red", doc.Records[0].Value)
		assert.Nil(t, doc.Records[1])
		assert.Equal(t, "blue", doc.Records[2].Value)
	})

	t.Run("JSON", func(t *testing.T) {
		var doc settingmodels.Document[testRecord]
		require.NoError(t, store.Load(ctx, "Setting/CurveSetting", &doc))
		assert.Equal(t, "linear", doc.Records[0].Value)
	})

	t.Run("ExtensionPriority", func(t *testing.T) {
		var doc settingmodels.Document[testRecord]
		require.NoError(t, store.Load(ctx, "Setting/Both", &doc))
		assert.Equal(t, "yml", doc.Records[0].Key)
	})

	t.Run("ExplicitExtension", func(t *testing.T) {
		var doc settingmodels.Document[testRecord]
		require.NoError(t, store.Load(ctx, "Setting/Both.json", &doc))
		assert.Equal(t, "json", doc.Records[0].Key)
	})

	t.Run("Missing", func(t *testing.T) {
		var doc settingmodels.Document[testRecord]
		err := store.Load(ctx, "Setting/Missing", &doc)
		assert.True(t, errors.IsNotFound(err), "expected not found, got %v", err)
	})

	t.Run("UnregisteredExtensionIsNotProbed", func(t *testing.T) {
		var doc settingmodels.Document[testRecord]
		err := store.Load(ctx, "Setting/Odd", &doc)
		assert.True(t, errors.IsNotFound(err), "expected not found, got %v", err)
	})

	t.Run("DecodeError", func(t *testing.T) {
		var doc settingmodels.Document[testRecord]
		err := store.Load(ctx, "Setting/Broken", &doc)
		require.Error(t, err)
		assert.False(t, errors.IsNotFound(err))
	})

	t.Run("InvalidPath", func(t *testing.T) {
		var doc settingmodels.Document[testRecord]
		for _, p := range []string{"", "../escape", "/"} {
			err := store.Load(ctx, p, &doc)
			assert.True(t, errors.IsValidationError(err), "path %q: got %v", p, err)
		}
	})

	t.Run("CancelledContext", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		var doc settingmodels.Document[testRecord]
		assert.ErrorIs(t, store.Load(cctx, "Setting/ColorSetting", &doc), context.Canceled)
	})
}

func TestNewDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Setting"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Setting", "ColorSetting.yaml"),
		[]byte("records:\n  - key: a\n    value: red\n"), 0o644))

	store := New(root)
	assert.Equal(t, root, store.Root())

	var doc settingmodels.Document[testRecord]
	require.NoError(t, store.Load(context.Background(), "Setting/ColorSetting", &doc))
	assert.Equal(t, "red", doc.Records[0].Value)
}
