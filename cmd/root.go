package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shsenroll/internal/cli"
	"github.com/thenoetrevino/shsenroll/internal/cli/dashboard"
	"github.com/thenoetrevino/shsenroll/internal/cli/enrollment"
	"github.com/thenoetrevino/shsenroll/internal/cli/setup"
	"github.com/thenoetrevino/shsenroll/internal/cli/student"
)

// NewRootCmd builds the shsenroll command tree.
// Commands reuse a CLI already stored in the context (tests inject one);
// otherwise the first command opens one and the returned cleanup closes it.
func NewRootCmd() (*cobra.Command, func()) {
	var opened *cli.CLI

	rootCmd := &cobra.Command{
		Use:   "shsenroll",
		Short: "shsenroll - senior high school registration and enrollment",
		Long: `shsenroll keeps senior high school registrations and enrollments in a
local SQLite database.

Register students, enroll them in a grade level and strand, and see the
totals on the dashboard. Every command supports --json for scripts and
--quiet to print only IDs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsCLI(cmd) {
				return nil
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if _, err := cli.GetCLIFromContext(ctx); err == nil {
				return nil
			}

			dbPath, _ := cmd.Flags().GetString("db")
			c, err := cli.NewCLI(ctx, cli.Options{DBPath: dbPath})
			if err != nil {
				return err
			}
			opened = c
			cmd.SetContext(cli.WithCLI(ctx, c))
			return nil
		},
	}

	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite database (overrides config)")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	})

	rootCmd.AddCommand(student.StudentCmd())
	rootCmd.AddCommand(enrollment.EnrollmentCmd())
	rootCmd.AddCommand(dashboard.DashboardCmd())
	rootCmd.AddCommand(setup.SetupCmd())

	cleanup := func() {
		if opened == nil {
			return
		}
		if err := opened.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
		opened = nil
	}

	return rootCmd, cleanup
}

func skipsCLI(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[setup.SkipCLIAnnotation] == "true" {
			return true
		}
	}
	return false
}

// Execute runs the root command and returns the process exit code
func Execute(ctx context.Context) int {
	rootCmd, cleanup := NewRootCmd()
	defer cleanup()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !cli.IsReported(err) {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
	}
	return cli.ExitCodeFor(err)
}
