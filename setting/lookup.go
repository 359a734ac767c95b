/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package setting

import (
	"fmt"
	"log/slog"
)

// Outcome classifies how a lookup was answered.
type Outcome int

const (
	// Hit means the key was registered.
	Hit Outcome = iota
	// Fallback means the key was not registered and the first record stood in.
	Fallback
	// Empty means there were no usable records at all.
	Empty
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Fallback:
		return "fallback"
	case Empty:
		return "empty"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the outcome of a lookup together with the record that answered it.
// Record is nil when Outcome is Empty.
type Result[R any] struct {
	Outcome Outcome
	Record  *R
}

// OK reports whether the requested key was registered.
func (res Result[R]) OK() bool {
	return res.Outcome == Hit
}

// Lookup resolves key without emitting diagnostics. A miss falls back to the
// first non-nil record of the list; a list with no such record is Empty.
func (r *Registry[K, R]) Lookup(key K) Result[R] {
	r.ensure()

	r.mu.RLock()
	res := r.lookupLocked(key)
	r.mu.RUnlock()

	r.metrics.recordLookup(r.ctx, res.Outcome)
	return res
}

func (r *Registry[K, R]) lookupLocked(key K) Result[R] {
	if rec, ok := r.index[key]; ok {
		return Result[R]{Outcome: Hit, Record: rec}
	}
	for _, rec := range r.records {
		if rec != nil {
			return Result[R]{Outcome: Fallback, Record: rec}
		}
	}
	return Result[R]{Outcome: Empty}
}

// Get resolves key to a whole record, applying the fallback policy of Resolve.
func (r *Registry[K, R]) Get(key K) R {
	return Resolve(r, "Get", key, func(rec *R) R { return *rec })
}

// Resolve looks up key and projects the answering record with project.
//
// A registered key yields its record's value with no diagnostic. With no
// usable records an error is reported and the zero V is returned. Otherwise a
// warning names the missing key and the first record's value is returned.
// accessor names the calling method in diagnostics.
func Resolve[K comparable, R any, V any](r *Registry[K, R], accessor string, key K, project func(*R) V) V {
	res := r.Lookup(key)
	switch res.Outcome {
	case Hit:
		return project(res.Record)
	case Fallback:
		r.diag().Warn(fmt.Sprintf("there is no %s information for the requested type", r.subject),
			slog.String("setting", r.name),
			slog.String("accessor", accessor),
			slog.Any("type", key),
		)
		return project(res.Record)
	default:
		r.diag().Error(fmt.Sprintf("there is no %s information", r.subject),
			slog.String("setting", r.name),
			slog.String("accessor", accessor),
		)
		var zero V
		return zero
	}
}
