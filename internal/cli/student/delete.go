package student

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shsenroll/internal/cli"
	"github.com/thenoetrevino/shsenroll/internal/cli/forms"
	"github.com/thenoetrevino/shsenroll/internal/cli/handler"
)

// DeleteCmd returns the student delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a registered student",
		Long: `Delete a registration by ID (requires confirmation unless --force,
--json or --quiet). A student who is still enrolled cannot be deleted;
drop the enrollment first.

Examples:
  # Delete with confirmation
  shsenroll student delete --id=S000001

  # Skip confirmation
  shsenroll student delete --id=S000001 --force
`,
		RunE: handler.Command(&deleteHandler{}, parseIDFlag),
	}

	cmd.Flags().String("id", "", "Student ID (required)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	addOutputFlags(cmd)

	return cmd
}

// deleteHandler implements handler.Handler for registration deletion
type deleteHandler struct{}

// Execute implements the Handler interface
func (h *deleteHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := handler.NewFlagParser(args.GetCmd()).ParseStudentID("id")
	if err != nil {
		return nil, err
	}
	svc := args.Service()

	// Ask for confirmation unless force or machine output
	if !args.GetBool("force") && !args.GetBool("json") && !args.GetBool("quiet") {
		if !cli.IsInteractive() {
			return nil, cli.ErrNotInteractive
		}
		s, err := svc.GetRegistered(ctx, id)
		if err != nil {
			return nil, err
		}
		confirmed := false
		form := forms.ConfirmForm(
			fmt.Sprintf("Delete %s (%s)?", s.FullName(), id),
			"This cannot be undone.",
			&confirmed, args.CLI.Colors)
		if err := form.RunWithContext(ctx); err != nil && !forms.IsAborted(err) {
			return nil, fmt.Errorf("confirmation: %w", err)
		}
		if !confirmed {
			return cli.Cancelled(id), nil
		}
	}

	if _, err := svc.DeleteRegisteredStudent(ctx, id); err != nil {
		return nil, err
	}

	return &cli.MessageResult{
		ID:      id,
		Action:  cli.ActionDeleted,
		Message: fmt.Sprintf("Student %s deleted", id),
	}, nil
}
