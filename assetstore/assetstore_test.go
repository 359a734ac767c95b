/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package assetstore

import (
	"context"
	"testing"

	"github.com/suparena/settingstore/errors"
)

func TestDefaultStore(t *testing.T) {
	ctx := context.Background()
	t.Cleanup(func() { SetDefault(nil) })

	t.Run("UnavailableByDefault", func(t *testing.T) {
		err := Default().Load(ctx, "Setting/ColorSetting", new(struct{}))
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got %v", err)
		}
	})

	t.Run("SetDefault", func(t *testing.T) {
		var gotPath string
		SetDefault(StoreFunc(func(ctx context.Context, path string, out any) error {
			gotPath = path
			return nil
		}))

		if err := Default().Load(ctx, "Setting/CurveSetting", new(struct{})); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if gotPath != "Setting/CurveSetting" {
			t.Fatalf("Expected path to be forwarded, got %q", gotPath)
		}
	})

	t.Run("NilRestoresUnavailable", func(t *testing.T) {
		SetDefault(nil)
		if !errors.IsNotFound(Default().Load(ctx, "x", new(struct{}))) {
			t.Fatal("Expected Unavailable after SetDefault(nil)")
		}
	})
}
