/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/suparena/settingstore/colorsetting"
	"github.com/suparena/settingstore/curvesetting"
)

func newColorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "color <type>",
		Short: "Print the color registered for a color type",
		Example: `  settingctl color Red
  settingctl color magenta --root Assets/Resources`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := colorsetting.ParseColorType(args[0])
			if err != nil {
				return err
			}
			c := a.colors(cmd).GetColor(t)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", t, c.Hex())
			return err
		},
	}
}

func newMaterialCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "material <type>",
		Short: "Print the material registered for a color type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := colorsetting.ParseColorType(args[0])
			if err != nil {
				return err
			}
			m := a.colors(cmd).GetColorMaterial(t)
			out := cmd.OutOrStdout()
			if m == nil {
				_, err = fmt.Fprintf(out, "%s\t-\n", t)
				return err
			}
			_, err = fmt.Fprintf(out, "%s\t%s\t%s\n", t, m.Name, m.Asset)
			return err
		},
	}
}

func newCurveCmd(a *app) *cobra.Command {
	var at []float64
	cmd := &cobra.Command{
		Use:   "curve <type>",
		Short: "Print the keys of a curve, or sample it with --at",
		Example: `  settingctl curve EaseInOut
  settingctl curve EaseInOut --at 0,0.25,0.5,1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := curvesetting.ParseCurveType(args[0])
			if err != nil {
				return err
			}
			c := a.curves(cmd).GetCurve(t)
			out := cmd.OutOrStdout()

			if len(at) > 0 {
				for _, x := range at {
					fmt.Fprintf(out, "%s\t%s\n", fmtFloat(x), fmtFloat(c.Evaluate(x)))
				}
				return nil
			}
			if c == nil {
				fmt.Fprintf(out, "%s\t-\n", t)
				return nil
			}
			fmt.Fprintf(out, "%s\tpre=%s post=%s\n", t, c.PreWrap, c.PostWrap)
			for _, k := range c.Keys {
				fmt.Fprintf(out, "%s\t%s\tin=%s out=%s\n",
					fmtFloat(k.Time), fmtFloat(k.Value), fmtFloat(k.InTangent), fmtFloat(k.OutTangent))
			}
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&at, "at", nil, "times to sample the curve at")
	return cmd
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
