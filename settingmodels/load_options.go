/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package settingmodels

import "time"

// LoadOptions configures how a remote store pages and retries while loading an asset
type LoadOptions struct {
	PageSize        int32              // Items per page (default: 100)
	MaxRetries      int                // Retry attempts for transient errors (default: 3)
	RetryBackoff    time.Duration      // Backoff unit between retries (default: 200ms)
	ConsistentRead  bool               // Request strongly consistent reads
	ProgressHandler func(LoadProgress) // Optional progress callback, called after every page
}

// LoadProgress tracks loading progress
type LoadProgress struct {
	ItemsLoaded int64     // Total items read, header included
	PagesLoaded int       // Total pages read
	StartTime   time.Time // When loading started
}

// LoadOption is a functional option for configuring loads
type LoadOption func(*LoadOptions)

// DefaultLoadOptions returns default load options
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		PageSize:     100,
		MaxRetries:   3,
		RetryBackoff: 200 * time.Millisecond,
	}
}

// WithPageSize sets the page size
func WithPageSize(size int32) LoadOption {
	return func(opts *LoadOptions) {
		if size > 0 {
			opts.PageSize = size
		}
	}
}

// WithMaxRetries sets the maximum retry attempts
func WithMaxRetries(retries int) LoadOption {
	return func(opts *LoadOptions) {
		if retries >= 0 {
			opts.MaxRetries = retries
		}
	}
}

// WithRetryBackoff sets the retry backoff duration
func WithRetryBackoff(backoff time.Duration) LoadOption {
	return func(opts *LoadOptions) {
		opts.RetryBackoff = backoff
	}
}

// WithConsistentRead requests strongly consistent reads
func WithConsistentRead(consistent bool) LoadOption {
	return func(opts *LoadOptions) {
		opts.ConsistentRead = consistent
	}
}

// WithProgressHandler sets a progress callback
func WithProgressHandler(handler func(LoadProgress)) LoadOption {
	return func(opts *LoadOptions) {
		opts.ProgressHandler = handler
	}
}
