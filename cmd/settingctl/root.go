/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/suparena/settingstore"
	"github.com/suparena/settingstore/assetstore"
	"github.com/suparena/settingstore/colorsetting"
	"github.com/suparena/settingstore/curvesetting"
	"github.com/suparena/settingstore/setting"
)

// app carries what every subcommand needs once the root has been set up.
type app struct {
	configFile string
	envFile    string
	backend    string
	root       string

	cfg    settingstore.Config
	logger *slog.Logger
	store  assetstore.Store
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "settingctl",
		Short: "Query and manage game setting assets",
		Long: `settingctl resolves colors, materials and curves the way the game does,
reports on the health of setting assets, and imports assets into DynamoDB.

The asset store is selected by configuration: a YAML file given with --config,
SETTINGSTORE_* environment variables, and an optional .env file.`,
		Version:           settingstore.GetVersionInfo().String(),
		SilenceUsage:      true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file (YAML)")
	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "env file loaded before reading the environment")
	cmd.PersistentFlags().StringVarP(&a.backend, "backend", "b", "", "asset store backend, overrides the config")
	cmd.PersistentFlags().StringVarP(&a.root, "root", "r", "", "resource directory for the file backend, overrides the config")

	cmd.AddCommand(
		newColorCmd(a),
		newMaterialCmd(a),
		newCurveCmd(a),
		newInspectCmd(a),
		newImportCmd(a),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := settingstore.ReadConfig(a.configFile, a.envFile)
	if err != nil {
		return err
	}
	if a.backend != "" {
		cfg.Backend = a.backend
	}
	if a.root != "" {
		cfg.ResourceRoot = a.root
	}
	a.cfg = cfg

	a.logger = settingstore.NewLogger(cfg.Log, cmd.ErrOrStderr())
	slog.SetDefault(a.logger)

	a.store, err = settingstore.Open(cmd.Context(), cfg)
	return err
}

func (a *app) ctx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func (a *app) colors(cmd *cobra.Command) *colorsetting.Setting {
	return colorsetting.New(a.store, setting.WithSink(a.logger), setting.WithContext(a.ctx(cmd)))
}

func (a *app) curves(cmd *cobra.Command) *curvesetting.Setting {
	return curvesetting.New(a.store, setting.WithSink(a.logger), setting.WithContext(a.ctx(cmd)))
}
