package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// logFormat selects the slog.Handler used by the CLI, adapted from the
// level/format handler switch found across the example corpus's logging
// packages.
type logFormat string

const (
	logFormatJSON    logFormat = "json"
	logFormatLogfmt  logFormat = "logfmt"
	defaultLogLevel            = "info"
	defaultLogFormat           = string(logFormatLogfmt)
)

func newHandler(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := parseLogLevel(level)
	if err != nil {
		return nil, err
	}
	switch logFormat(strings.ToLower(format)) {
	case logFormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}), nil
	case logFormatLogfmt:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want %q or %q)", format, logFormatJSON, logFormatLogfmt)
	}
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}
