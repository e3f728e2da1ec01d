package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	clipkg "github.com/thenoetrevino/shsenroll/internal/cli"
	"github.com/thenoetrevino/shsenroll/internal/testutil"
)

// ExecuteCLICommand executes a CLI command with a test CLI instance.
// The instance is injected through the context so commands use the test
// database instead of opening the configured one.
func ExecuteCLICommand(t *testing.T, testCLI *clipkg.CLI, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), testCLI, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test CLI
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testCLI *clipkg.CLI, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testCLI == nil {
		t.Fatal("testCLI cannot be nil - SetupCLITest must be called first")
	}

	// Set command args
	cmd.SetArgs(args)

	ctxWithCLI := clipkg.WithCLI(ctx, testCLI)
	cmd.SetContext(ctxWithCLI)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithCLI)
	})

	return output, executeErr
}
