package enrollment

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shsenroll/internal/cli"
	"github.com/thenoetrevino/shsenroll/internal/cli/forms"
	"github.com/thenoetrevino/shsenroll/internal/cli/handler"
)

// DropCmd returns the enrollment drop subcommand
func DropCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Drop a student's enrollment",
		Long: `Drop an enrollment by student ID (requires confirmation unless --force,
--json or --quiet). The registration is kept.

Examples:
  shsenroll enrollment drop --id=S000001
  shsenroll enrollment drop --id=S000001 --force
`,
		RunE: handler.Command(&dropHandler{}, parseIDFlag),
	}

	cmd.Flags().String("id", "", "Student ID (required)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	addOutputFlags(cmd)

	return cmd
}

// dropHandler implements handler.Handler for dropping enrollments
type dropHandler struct{}

// Execute implements the Handler interface
func (h *dropHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := handler.NewFlagParser(args.GetCmd()).ParseStudentID("id")
	if err != nil {
		return nil, err
	}

	if !args.GetBool("force") && !args.GetBool("json") && !args.GetBool("quiet") {
		if !cli.IsInteractive() {
			return nil, cli.ErrNotInteractive
		}
		confirmed := false
		form := forms.ConfirmForm(
			fmt.Sprintf("Drop the enrollment of %s?", id),
			"The registration is kept.",
			&confirmed, args.CLI.Colors)
		if err := form.RunWithContext(ctx); err != nil && !forms.IsAborted(err) {
			return nil, fmt.Errorf("confirmation: %w", err)
		}
		if !confirmed {
			return cli.Cancelled(id), nil
		}
	}

	if _, err := args.Service().DropEnrollment(ctx, id); err != nil {
		return nil, err
	}

	return &cli.MessageResult{
		ID:      id,
		Action:  cli.ActionDropped,
		Message: fmt.Sprintf("Enrollment of %s dropped", id),
	}, nil
}
