/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package settingstore

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/suparena/settingstore/assetstore"
	"github.com/suparena/settingstore/assetstore/ddb"
	"github.com/suparena/settingstore/assetstore/filestore"
	"github.com/suparena/settingstore/assetstore/mock"
	"github.com/suparena/settingstore/errors"
	"github.com/suparena/settingstore/settingmodels"
)

// Factory opens an asset store from a Config.
type Factory func(ctx context.Context, cfg Config) (assetstore.Store, error)

// backendRegistry is a thread-safe set of named store factories.
type backendRegistry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

var backends = &backendRegistry{factories: make(map[string]Factory)}

func init() {
	mustRegister("file", openFile)
	mustRegister("dynamodb", openDynamoDB)
	mustRegister("memory", openMemory)
}

func mustRegister(name string, f Factory) {
	if err := RegisterBackend(name, f); err != nil {
		panic(err)
	}
}

// RegisterBackend makes a store factory available to Open under name.
func RegisterBackend(name string, f Factory) error {
	if name == "" {
		return errors.NewValidationError("name", "must not be empty")
	}
	if f == nil {
		return errors.NewValidationError("factory", "must not be nil")
	}
	backends.mu.Lock()
	defer backends.mu.Unlock()

	if _, exists := backends.factories[name]; exists {
		return errors.NewAlreadyExistsError("backend", name)
	}
	backends.factories[name] = f
	return nil
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	backends.mu.RLock()
	defer backends.mu.RUnlock()

	names := make([]string, 0, len(backends.factories))
	for name := range backends.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Open creates the store selected by cfg.Backend. The "memory" backend
// returns an empty *mock.Store; assert to that type and call WithAsset or Put
// to seed it before the registries load.
func Open(ctx context.Context, cfg Config) (assetstore.Store, error) {
	backends.mu.RLock()
	f, ok := backends.factories[cfg.Backend]
	backends.mu.RUnlock()
	if !ok {
		return nil, errors.NewValidationError("backend", fmt.Sprintf("unknown backend %q", cfg.Backend))
	}

	store, err := f(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s backend: %w", cfg.Backend, err)
	}
	slog.Debug("asset store opened", "backend", cfg.Backend)
	return store, nil
}

// Install opens the configured store and makes it the process default used
// by the setting singletons. It must run before the first lookup.
func Install(ctx context.Context, cfg Config) (assetstore.Store, error) {
	store, err := Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	assetstore.SetDefault(store)
	return store, nil
}

func openFile(_ context.Context, cfg Config) (assetstore.Store, error) {
	if cfg.ResourceRoot == "" {
		return nil, errors.NewValidationError("resource_root", "must not be empty")
	}
	return filestore.New(cfg.ResourceRoot), nil
}

func openDynamoDB(ctx context.Context, cfg Config) (assetstore.Store, error) {
	if cfg.AWS.Region == "" {
		return nil, errors.NewValidationError("aws.region", "must not be empty")
	}
	if cfg.AWS.Table == "" {
		return nil, errors.NewValidationError("aws.table", "must not be empty")
	}
	return ddb.NewDynamodbStore(ctx, ddb.ClientConfig{
		AccessKey: cfg.AWS.AccessKey,
		SecretKey: cfg.AWS.SecretKey,
		Region:    cfg.AWS.Region,
		Endpoint:  cfg.AWS.Endpoint,
	}, cfg.AWS.Table, ddb.WithLoadOptions(loadOptions(cfg.Load)...))
}

// openMemory returns an empty *mock.Store. Open hands it out as an
// assetstore.Store, so callers assert it back to *mock.Store to seed assets.
func openMemory(context.Context, Config) (assetstore.Store, error) {
	return mock.New(), nil
}

func loadOptions(lc LoadConfig) []settingmodels.LoadOption {
	var opts []settingmodels.LoadOption
	if lc.PageSize > 0 {
		opts = append(opts, settingmodels.WithPageSize(lc.PageSize))
	}
	if lc.RetryBackoff > 0 {
		opts = append(opts, settingmodels.WithRetryBackoff(lc.RetryBackoff))
	}
	return append(opts,
		settingmodels.WithMaxRetries(lc.MaxRetries),
		settingmodels.WithConsistentRead(lc.ConsistentRead),
	)
}
