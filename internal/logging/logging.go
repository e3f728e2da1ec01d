package logging

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// FileName is the log file created inside the log directory
const FileName = "shsenroll.log"

// DefaultDir returns ~/.shsenroll/logs
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".shsenroll", "logs"), nil
}

// ParseLevel converts a config level name (debug, info, warn, error)
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(name) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}

// Init initializes the logging system, writing logs to <dir>/shsenroll.log.
// An empty dir uses DefaultDir. Uses text format for human readability.
func Init(dir, levelName string) (*os.File, error) {
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	if dir == "" {
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	// Open log file in append mode
	file, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: level,
	})

	// Every record names the operator
	Logger = slog.New(handler).With("operator", Operator())
	slog.SetDefault(Logger)

	// Redirect standard log package output (transaction rollbacks) to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

// Operator returns the name of the account running the process.
// It falls back to $USER and finally to "unknown".
func Operator() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
