/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package setting

import "sync"

// Lazy holds a value built on first access. Concurrent first callers block
// until the single construction finishes.
type Lazy[T any] struct {
	once  sync.Once
	build func() T
	value T
}

// NewLazy returns a Lazy that calls build once, on the first Get.
func NewLazy[T any](build func() T) *Lazy[T] {
	return &Lazy[T]{build: build}
}

// Get returns the value, building it if this is the first call.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.value = l.build()
		l.build = nil
	})
	return l.value
}
