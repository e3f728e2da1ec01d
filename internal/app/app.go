package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/shsenroll/internal/database"
	"github.com/thenoetrevino/shsenroll/internal/services/student"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Service layer (business logic)
	StudentService student.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{
		notifier: student.NopNotifier{},
		logger:   slog.Default(),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &App{
		repo: repo,
		StudentService: student.NewService(repo, cfg.notifier,
			student.WithLogger(cfg.logger),
			student.WithClock(cfg.clock)),
	}
}

// Repo returns the underlying repository for direct database access
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close performs cleanup of application resources.
// The database handle is owned by the caller.
func (a *App) Close() error {
	return nil
}
