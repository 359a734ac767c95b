/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of assetstore.Store for testing
package mock

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/suparena/settingstore/errors"
	"github.com/suparena/settingstore/registry"
)

type rawAsset struct {
	format string
	data   []byte
}

// Store is an in-memory assetstore.Store
type Store struct {
	mu        sync.RWMutex
	assets    map[string]any
	raw       map[string]rawAsset
	loads     map[string]int
	loadError error
	loadHook  func(path string)
}

// New creates a new, empty mock Store
func New() *Store {
	return &Store{
		assets: make(map[string]any),
		raw:    make(map[string]rawAsset),
		loads:  make(map[string]int),
	}
}

// WithAsset stores a decoded document (a settingmodels.Document value or pointer) under path
func (m *Store) WithAsset(path string, doc any) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets[path] = doc
	return m
}

// WithRawAsset stores an encoded payload under path; it is decoded with the
// decoder registered for format on every Load
func (m *Store) WithRawAsset(path, format string, data []byte) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw[path] = rawAsset{format: format, data: data}
	return m
}

// WithLoadError makes Load operations return an error
func (m *Store) WithLoadError(err error) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadError = err
	return m
}

// WithLoadHook sets a function called at the start of every Load, before any data is read
func (m *Store) WithLoadHook(f func(path string)) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadHook = f
	return m
}

// Load decodes the asset stored under path into out
func (m *Store) Load(ctx context.Context, path string, out any) error {
	m.mu.Lock()
	m.loads[path]++
	hook := m.loadHook
	loadErr := m.loadError
	m.mu.Unlock()

	if hook != nil {
		hook(path)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if loadErr != nil {
		return loadErr
	}

	m.mu.RLock()
	doc, hasDoc := m.assets[path]
	raw, hasRaw := m.raw[path]
	m.mu.RUnlock()

	switch {
	case hasDoc:
		return assign(out, doc)
	case hasRaw:
		decode, err := registry.GetDecodeFunc(raw.format)
		if err != nil {
			return err
		}
		return decode(raw.data, out)
	default:
		return errors.NewNotFoundError("mock", path)
	}
}

// Put stores doc under path, replacing any earlier asset
func (m *Store) Put(ctx context.Context, path string, doc any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc == nil {
		return errors.NewValidationError("doc", "nil document")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.raw, path)
	m.assets[path] = doc
	return nil
}

// LoadCount returns how many times Load was called for path
func (m *Store) LoadCount(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loads[path]
}

// Clear removes all assets and resets load counts
func (m *Store) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets = make(map[string]any)
	m.raw = make(map[string]rawAsset)
	m.loads = make(map[string]int)
}

// assign copies doc into the value out points to
func assign(out, doc any) error {
	dst := reflect.ValueOf(out)
	if dst.Kind() != reflect.Pointer || dst.IsNil() {
		return errors.NewValidationError("out", "must be a non-nil pointer")
	}
	src := reflect.ValueOf(doc)
	if src.Kind() == reflect.Pointer && src.Type().Elem() == dst.Type().Elem() {
		if src.IsNil() {
			return errors.NewValidationError("doc", "nil document")
		}
		src = src.Elem()
	}
	if !src.Type().AssignableTo(dst.Type().Elem()) {
		return errors.NewValidationError("out", fmt.Sprintf("cannot load %s into %s", src.Type(), dst.Type().Elem()))
	}
	dst.Elem().Set(src)
	return nil
}
