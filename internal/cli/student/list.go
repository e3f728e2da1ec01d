package student

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shsenroll/internal/cli/handler"
)

// ListCmd returns the student list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered students with their enrollment status",
		Long: `List registered students ordered by ID.

--search matches a case-sensitive substring of the ID, names, contact,
guardian name or guardian contact.

Examples:
  shsenroll student list
  shsenroll student list --search="Cruz"
  shsenroll student list --search="0917" --json
`,
		RunE: handler.SimpleCommand(&listHandler{}),
	}

	cmd.Flags().StringP("search", "s", "", "Case-sensitive search text")
	addOutputFlags(cmd)

	return cmd
}

// listHandler implements handler.Handler for listing registrations
type listHandler struct{}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	students, err := args.Service().ListRegistrationStatus(ctx, args.GetString("search", ""))
	if err != nil {
		return nil, err
	}
	return &statusListResult{Students: students, Count: len(students)}, nil
}
