package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/shsenroll/internal/services/student"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	notifier student.Notifier
	logger   *slog.Logger
	clock    func() time.Time
}

// WithNotifier sets where mutation outcomes are reported
func WithNotifier(n student.Notifier) Option {
	return func(cfg *appConfig) {
		cfg.notifier = n
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithClock sets the time source used for age calculation
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.clock = now
	}
}
