package app

import (
	"io"
	"log/slog"
	"time"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger *slog.Logger
	clock  func() time.Time
	closer io.Closer
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithClock overrides the source of "today" used for due date validation
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.clock = now
	}
}

// WithCloser hands ownership of c to the App; App.Close closes it
func WithCloser(c io.Closer) Option {
	return func(cfg *appConfig) {
		cfg.closer = c
	}
}
