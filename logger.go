/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package settingstore

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds a logger for lc writing to w. Unknown levels fall back to
// info and unknown formats to text.
func NewLogger(lc LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(lc.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(lc.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
