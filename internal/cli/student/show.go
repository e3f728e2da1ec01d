package student

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shsenroll/internal/cli/handler"
)

// ShowCmd returns the student show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a registered student",
		Long: `Show every field of one registration.

Examples:
  shsenroll student show --id=S000001
  shsenroll student show --id=S000001 --json
`,
		RunE: handler.Command(&showHandler{}, parseIDFlag),
	}

	cmd.Flags().String("id", "", "Student ID (required)")
	addOutputFlags(cmd)

	return cmd
}

// showHandler implements handler.Handler for a single registration
type showHandler struct{}

// Execute implements the Handler interface
func (h *showHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := handler.NewFlagParser(args.GetCmd()).ParseStudentID("id")
	if err != nil {
		return nil, err
	}
	s, err := args.Service().GetRegistered(ctx, id)
	if err != nil {
		return nil, err
	}
	return &studentResult{RegisteredStudent: s}, nil
}

func parseIDFlag(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseStudentID("id")
	return err
}
