/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package assetstore

import (
	"context"
	"sync"

	"github.com/suparena/settingstore/errors"
)

// Store loads setting assets by their well-known path.
// out is a pointer to a settingmodels.Document[R]; implementations decode the
// asset's header and record list into it. An absent asset is reported with an
// error matching errors.ErrNotFound.
type Store interface {
	Load(ctx context.Context, path string, out any) error
}

// Writer is implemented by stores that can replace an asset. doc is a
// settingmodels.Document[R] value or pointer.
type Writer interface {
	Put(ctx context.Context, path string, doc any) error
}

// StoreFunc adapts a function to the Store interface.
type StoreFunc func(ctx context.Context, path string, out any) error

// Load calls f(ctx, path, out).
func (f StoreFunc) Load(ctx context.Context, path string, out any) error {
	return f(ctx, path, out)
}

// Unavailable is a Store for which every asset is absent. It is the default
// store until SetDefault is called.
var Unavailable Store = StoreFunc(func(ctx context.Context, path string, out any) error {
	return errors.NewNotFoundError("unavailable", path)
})

var (
	defaultMu    sync.RWMutex
	defaultStore = Unavailable
)

// SetDefault installs the process-wide store used by setting singletons.
// It must be called before the first singleton access to take effect there;
// passing nil restores Unavailable.
func SetDefault(s Store) {
	if s == nil {
		s = Unavailable
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultStore = s
}

// Default returns the process-wide store.
func Default() Store {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultStore
}
