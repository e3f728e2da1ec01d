// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/shsenroll/internal/cli"
	"github.com/thenoetrevino/shsenroll/internal/services/student"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command with parsed arguments
	Execute(ctx context.Context, args *Arguments) (any, error)
}

// HandlerFunc adapts a function to the Handler interface
type HandlerFunc func(ctx context.Context, args *Arguments) (any, error)

// Execute calls f(ctx, args)
func (f HandlerFunc) Execute(ctx context.Context, args *Arguments) (any, error) {
	return f(ctx, args)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Flags map[string]any
	Args  []string
	CLI   *cli.CLI
	cmd   *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// Service returns the student service of the running CLI
func (a *Arguments) Service() student.Service {
	return a.CLI.App.StudentService
}

// Command wraps common command execution logic
// Returns a cobra RunE compatible function
func Command(handler Handler, parseFlags func(*cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Get formatter from flags
		jsonOutput, _ := cmd.Flags().GetBool("json")
		quietMode, _ := cmd.Flags().GetBool("quiet")
		formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

		// Parse flags
		if err := parseFlags(cmd); err != nil {
			return fail(formatter, err, false)
		}

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return fail(formatter, err, false)
		}

		// Banners would corrupt machine readable output
		notifier := cliInstance.Notifier
		if notifier != nil {
			notifier.Reset()
			notifier.SetMuted(jsonOutput || quietMode)
		}

		// Build arguments map from all flags
		arguments := &Arguments{
			Flags: parseFlagsToMap(cmd),
			Args:  args,
			CLI:   cliInstance,
			cmd:   cmd,
		}

		// Execute handler
		result, err := handler.Execute(ctx, arguments)
		if err != nil {
			notified := notifier != nil && notifier.Emitted() > 0 && !jsonOutput && !quietMode
			return fail(formatter, err, notified)
		}

		// Common output formatting
		return formatter.Success(result)
	}
}

// SimpleCommand wraps command execution with minimal setup
// Use this for commands that don't need complex flag parsing
func SimpleCommand(handler Handler) func(*cobra.Command, []string) error {
	return Command(handler, func(cmd *cobra.Command) error {
		return nil
	})
}

// fail reports err once and hands it back marked as reported so the root
// can pick the exit code without printing it again.
// Human output is skipped when a notification banner already described it.
func fail(formatter *cli.OutputFormatter, err error, notified bool) error {
	slog.Debug("command failed", "error", err, "exit_code", cli.ExitCodeFor(err))
	if notified {
		return cli.Reported(err)
	}
	message := err.Error()
	var verr *student.ValidationError
	if errors.As(err, &verr) {
		message = verr.Message
	}
	if fmtErr := formatter.Error(cli.ErrorCodeFor(err), message); fmtErr != nil {
		fmt.Fprintf(os.Stderr, "Error formatting error message: %v\n", fmtErr)
	}
	return cli.Reported(err)
}

// parseFlagsToMap converts cobra command flags to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	// Visit all flags that were explicitly set
	cmd.Flags().Visit(func(f *pflag.Flag) {
		// Get the value based on flag type
		switch f.Value.Type() {
		case "string":
			if v, err := cmd.Flags().GetString(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "int":
			if v, err := cmd.Flags().GetInt(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "bool":
			if v, err := cmd.Flags().GetBool(f.Name); err == nil {
				flags[f.Name] = v
			}
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
		}
	})

	return flags
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(string)
	if !ok {
		return defaultVal
	}
	return val
}

// IsSet reports whether the flag was given on the command line
func (a *Arguments) IsSet(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	v, ok := a.Flags[name]
	if !ok {
		return false
	}
	val, ok := v.(bool)
	if !ok {
		return false
	}
	return val
}
