package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/thenoetrevino/shsenroll/internal/app"
	"github.com/thenoetrevino/shsenroll/internal/cli/styles"
	"github.com/thenoetrevino/shsenroll/internal/config"
	"github.com/thenoetrevino/shsenroll/internal/database"
	"github.com/thenoetrevino/shsenroll/internal/logging"
	"github.com/thenoetrevino/shsenroll/internal/notifications"
)

// CLI represents the CLI application context
type CLI struct {
	App      *app.App // Application container with services
	Notifier *notifications.Terminal
	Colors   config.ColorScheme

	closers []io.Closer
}

// Options controls how NewCLI opens its resources
type Options struct {
	// DBPath overrides the configured database location
	DBPath string
	// Config is loaded from disk when nil
	Config *config.Config
}

// New wraps an existing application. Closers run in reverse order on Close.
func New(application *app.App, notifier *notifications.Terminal, colors config.ColorScheme, closers ...io.Closer) *CLI {
	return &CLI{
		App:      application,
		Notifier: notifier,
		Colors:   colors,
		closers:  closers,
	}
}

// NewCLI loads configuration, starts file logging and opens the database
func NewCLI(ctx context.Context, opts Options) (*CLI, error) {
	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	logFile, err := logging.Init(cfg.Log.Dir, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = cfg.Database.Path
	}
	if dbPath == "" {
		if dbPath, err = database.DefaultPath(); err != nil {
			_ = logFile.Close()
			return nil, err
		}
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Debug("database opened", "path", dbPath)

	styles.Init(cfg.ColorScheme)
	notifier := notifications.NewTerminal(os.Stderr, cfg.ColorScheme)
	notifier.SetInline(!isTerminal(os.Stderr))
	application := app.New(database.NewRepository(db),
		app.WithNotifier(notifier),
		app.WithLogger(logging.Logger))

	return New(application, notifier, cfg.ColorScheme, logFile, db), nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	var errs []error
	if c.App != nil {
		errs = append(errs, c.App.Close())
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i].Close())
	}
	c.closers = nil
	return errors.Join(errs...)
}

// ============================================================================
// CONTEXT
// ============================================================================

type contextKey string

const cliKey contextKey = "cli"

// WithCLI stores the CLI instance for commands to retrieve
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey, c)
}

// GetCLIFromContext returns the CLI instance prepared by the root command
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, errors.New("no context")
	}
	c, ok := ctx.Value(cliKey).(*CLI)
	if !ok || c == nil {
		return nil, errors.New("CLI not initialized")
	}
	return c, nil
}
