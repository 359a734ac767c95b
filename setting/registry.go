/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package setting

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/metric"

	"github.com/suparena/settingstore/assetstore"
	"github.com/suparena/settingstore/settingmodels"
)

// KeyFunc extracts the lookup key of a record.
type KeyFunc[K comparable, R any] func(*R) K

// Registry resolves records of type R by key K. The record list is loaded from
// a store at a fixed path on first use and indexed once; the index then lives
// for as long as the Registry.
type Registry[K comparable, R any] struct {
	store   assetstore.Store
	path    string
	keyOf   KeyFunc[K, R]
	name    string
	subject string
	sink    Sink
	ctx     context.Context
	metrics *metrics

	once    sync.Once
	mu      sync.RWMutex
	header  settingmodels.Header
	records []*R
	loaded  bool
	loadErr error
	index   map[K]*R
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	name    string
	subject string
	sink    Sink
	ctx     context.Context
	meters  metric.MeterProvider
}

// WithName sets the name used in diagnostics and metrics. Defaults to the path.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithSubject sets the noun used in lookup diagnostics, e.g. "color" in
// "there is no color information". Defaults to "setting".
func WithSubject(subject string) Option {
	return func(o *options) { o.subject = subject }
}

// WithSink routes diagnostics to sink instead of slog.Default().
func WithSink(sink Sink) Option {
	return func(o *options) { o.sink = sink }
}

// WithContext sets the context used when a lookup triggers the first load.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// WithMeterProvider records lookup and load metrics with mp instead of the
// global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meters = mp }
}

// New creates a Registry that loads path from store on first use. Nothing is
// read until Init or the first lookup.
func New[K comparable, R any](store assetstore.Store, path string, keyOf KeyFunc[K, R], opts ...Option) *Registry[K, R] {
	o := options{
		name:    path,
		subject: "setting",
		ctx:     context.Background(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if store == nil {
		store = assetstore.Unavailable
	}

	r := &Registry[K, R]{
		store:   store,
		path:    path,
		keyOf:   keyOf,
		name:    o.name,
		subject: o.subject,
		sink:    o.sink,
		ctx:     o.ctx,
	}
	r.metrics = newMetrics(o.meters, r.name)
	return r
}

// Init loads and indexes the record list. Only the first call, or the first
// lookup if it comes earlier, reads from the store; a failed load is permanent
// and every later call returns the same error. Lookups keep working after a
// failure and degrade to the empty-list policy.
func (r *Registry[K, R]) Init(ctx context.Context) error {
	r.once.Do(func() { r.load(ctx) })
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loadErr
}

func (r *Registry[K, R]) ensure() {
	r.once.Do(func() { r.load(r.ctx) })
}

func (r *Registry[K, R]) load(ctx context.Context) {
	var doc settingmodels.Document[R]
	err := r.store.Load(ctx, r.path, &doc)

	r.mu.Lock()
	if err != nil {
		r.loadErr = err
		r.records = nil
	} else {
		r.header = doc.Header
		r.records = doc.Records
		r.loaded = true
	}
	r.buildIndexLocked()
	count := len(r.index)
	r.mu.Unlock()

	r.metrics.recordLoad(ctx, err == nil)
	if err != nil {
		r.diag().Error("failed to load setting asset, check that the file exists",
			slog.String("setting", r.name),
			slog.String("path", r.path),
			slog.Any("error", err),
		)
		return
	}
	r.logger().Debug("setting asset loaded",
		slog.String("setting", r.name),
		slog.String("path", r.path),
		slog.Int("records", len(doc.Records)),
		slog.Int("keys", count),
	)
}

// buildIndex rebuilds the index from the current record list.
func (r *Registry[K, R]) buildIndex() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buildIndexLocked()
}

// buildIndexLocked clears the index and scans the record list once. Nil
// slots are skipped; a later record replaces an earlier one with the same key.
func (r *Registry[K, R]) buildIndexLocked() {
	clear(r.index)
	if r.index == nil {
		r.index = make(map[K]*R, len(r.records))
	}
	for _, rec := range r.records {
		if rec == nil {
			continue
		}
		r.index[r.keyOf(rec)] = rec
	}
}

// logger returns the sink when it is a *slog.Logger, so traces below warning
// level follow the caller's logger; otherwise slog.Default().
func (r *Registry[K, R]) logger() *slog.Logger {
	if l, ok := r.sink.(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}

func (r *Registry[K, R]) diag() Sink {
	if r.sink != nil {
		return r.sink
	}
	return slog.Default()
}

// Name returns the registry's diagnostic name.
func (r *Registry[K, R]) Name() string {
	return r.name
}

// Path returns the asset path the registry loads from.
func (r *Registry[K, R]) Path() string {
	return r.path
}

// Loaded reports whether the record list was obtained from the store.
func (r *Registry[K, R]) Loaded() bool {
	r.ensure()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

// Err returns the load error, if the store failed to provide the asset.
func (r *Registry[K, R]) Err() error {
	r.ensure()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loadErr
}

// Header returns the loaded asset's header.
func (r *Registry[K, R]) Header() settingmodels.Header {
	r.ensure()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.header
}

// Records returns a copy of the record list, nil slots included.
func (r *Registry[K, R]) Records() []*R {
	r.ensure()
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.records == nil {
		return nil
	}
	out := make([]*R, len(r.records))
	copy(out, r.records)
	return out
}

// Keys returns the indexed keys in the order they first appear in the record list.
func (r *Registry[K, R]) Keys() []K {
	r.ensure()
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]K, 0, len(r.index))
	seen := make(map[K]struct{}, len(r.index))
	for _, rec := range r.records {
		if rec == nil {
			continue
		}
		k := r.keyOf(rec)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of distinct keys in the index.
func (r *Registry[K, R]) Len() int {
	r.ensure()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.index)
}

// Inspect reports null slots and shadowed duplicates in the loaded record list.
func (r *Registry[K, R]) Inspect() Report[K] {
	r.ensure()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Inspect(r.records, r.keyOf)
}
