/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/suparena/settingstore/errors"
	"github.com/suparena/settingstore/setting"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [color|curve]",
		Short: "Report empty slots and duplicate keys in setting assets",
		Long: `inspect loads the setting assets and reports what the registries will see:
the number of records, empty slots that are skipped, and keys that appear more
than once, in which case the last record answers lookups.

It exits with an error if an asset is missing or not clean.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"color", "curve"},
		RunE: func(cmd *cobra.Command, args []string) error {
			which := "all"
			if len(args) == 1 {
				which = args[0]
			}
			if !slices.Contains([]string{"all", "color", "curve"}, which) {
				return errors.NewValidationError("setting", fmt.Sprintf("unknown setting %q", which))
			}

			ctx := a.ctx(cmd)
			out := cmd.OutOrStdout()
			clean := true
			if which != "curve" {
				reg := a.colors(cmd).Registry()
				clean = report(ctx, out, reg.Name(), reg.Path(), reg.Init, reg.Inspect) && clean
			}
			if which != "color" {
				reg := a.curves(cmd).Registry()
				clean = report(ctx, out, reg.Name(), reg.Path(), reg.Init, reg.Inspect) && clean
			}
			if !clean {
				return fmt.Errorf("setting assets need attention")
			}
			return nil
		},
	}
}

// report initializes one registry and prints its Report. It returns false
// when the asset failed to load or is not clean.
func report[K comparable](ctx context.Context, out io.Writer, name, path string, load func(context.Context) error, inspect func() setting.Report[K]) bool {
	fmt.Fprintf(out, "%s (%s)\n", name, path)
	if err := load(ctx); err != nil {
		fmt.Fprintf(out, "  load failed: %v\n", err)
		return false
	}

	r := inspect()
	fmt.Fprintf(out, "  records: %d\n", r.Records)
	fmt.Fprintf(out, "  keys: %v\n", r.Keys)
	if len(r.Nulls) > 0 {
		fmt.Fprintf(out, "  empty slots: %v\n", r.Nulls)
	}
	dups := slices.SortedFunc(maps.Keys(r.Shadowed), func(a, b K) int {
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})
	for _, k := range dups {
		fmt.Fprintf(out, "  duplicate %v: records %v are shadowed\n", k, r.Shadowed[k])
	}
	return r.Clean()
}
