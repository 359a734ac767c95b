/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/spf13/cobra"

	"github.com/suparena/settingstore/assetstore"
	"github.com/suparena/settingstore/colorsetting"
	"github.com/suparena/settingstore/curvesetting"
	"github.com/suparena/settingstore/errors"
	"github.com/suparena/settingstore/registry"
	"github.com/suparena/settingstore/settingmodels"
)

func newImportCmd(a *app) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Write a YAML or JSON setting asset to the configured store",
		Long: `import decodes a setting asset file and writes it to the configured store,
replacing the asset at the setting's fixed path. The store must be writable,
which in practice means the dynamodb backend.

The setting kind is taken from --kind, or from the file name when it starts
with ColorSetting or CurveSetting.`,
		Example: `  settingctl import Resources/Setting/ColorSetting.yaml --backend dynamodb
  settingctl import curves.json --kind curve`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, ok := a.store.(assetstore.Writer)
			if !ok {
				return errors.NewValidationError("backend", fmt.Sprintf("%s backend is read-only", a.cfg.Backend))
			}

			file := args[0]
			if kind == "" {
				kind = kindFromName(file)
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			decode, err := registry.GetDecodeFunc(filepath.Ext(file))
			if err != nil {
				return err
			}

			var (
				path    string
				doc     any
				records int
			)
			switch kind {
			case "color":
				d := &settingmodels.Document[colorsetting.ColorData]{}
				if err := decode(data, d); err != nil {
					return fmt.Errorf("failed to decode %s: %w", file, err)
				}
				stamp(&d.Header, "ColorSetting")
				path, doc, records = colorsetting.Path, d, len(d.Records)
			case "curve":
				d := &settingmodels.Document[curvesetting.CurveInfo]{}
				if err := decode(data, d); err != nil {
					return fmt.Errorf("failed to decode %s: %w", file, err)
				}
				stamp(&d.Header, "CurveSetting")
				path, doc, records = curvesetting.Path, d, len(d.Records)
			default:
				return errors.NewValidationError("kind", fmt.Sprintf("unknown setting kind %q, use color or curve", kind))
			}

			if err := w.Put(a.ctx(cmd), path, doc); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			a.logger.Info("setting asset imported", "path", path, "records", records, "backend", a.cfg.Backend)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d records\n", path, records)
			return err
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "setting kind: color or curve")
	return cmd
}

func kindFromName(file string) string {
	base := strings.ToLower(filepath.Base(file))
	switch {
	case strings.HasPrefix(base, "colorsetting"):
		return "color"
	case strings.HasPrefix(base, "curvesetting"):
		return "curve"
	default:
		return ""
	}
}

// stamp fills the header fields an import always carries.
func stamp(h *settingmodels.Header, name string) {
	if h.Name == "" {
		h.Name = name
	}
	now := strfmt.DateTime(time.Now().UTC())
	h.UpdatedAt = &now
}
