/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package setting

// Sink receives registry diagnostics. *slog.Logger satisfies it; diagnostics
// never influence what a lookup returns.
type Sink interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
}

// NopSink discards diagnostics.
type NopSink struct{}

func (NopSink) Error(string, ...any) {}
func (NopSink) Warn(string, ...any)  {}
