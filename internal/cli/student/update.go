package student

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shsenroll/internal/cli/handler"
	studentservice "github.com/thenoetrevino/shsenroll/internal/services/student"
)

// UpdateCmd returns the student update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a registered student",
		Long: `Update a registration. Fields not given keep their current value;
the whole record is validated again before it is saved.

Examples:
  shsenroll student update --id=S000001 --contact="09170000000"
  shsenroll student update --id=S000001 --last="Santos" --json
`,
		RunE: handler.Command(&updateHandler{}, parseIDFlag),
	}

	cmd.Flags().String("id", "", "Student ID (required)")
	addProfileFlags(cmd)
	addOutputFlags(cmd)

	return cmd
}

// updateHandler implements handler.Handler for registration updates
type updateHandler struct{}

// Execute implements the Handler interface
func (h *updateHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := handler.NewFlagParser(args.GetCmd()).ParseStudentID("id")
	if err != nil {
		return nil, err
	}

	svc := args.Service()
	current, err := svc.GetRegistered(ctx, id)
	if err != nil {
		return nil, err
	}

	req := studentservice.UpdateStudentRequest{
		ID: id,
		RegisterStudentRequest: studentservice.RegisterStudentRequest{
			FirstName:       current.FirstName,
			MiddleName:      current.MiddleName,
			LastName:        current.LastName,
			Gender:          current.Gender,
			BirthDate:       current.BirthDate,
			Contact:         current.Contact,
			GuardianName:    current.GuardianName,
			GuardianContact: current.GuardianContact,
		},
	}
	for name, field := range profileFlags(&req.RegisterStudentRequest) {
		if args.IsSet(name) {
			*field = args.GetString(name, "")
		}
	}

	if err := svc.UpdateRegisteredStudent(ctx, req); err != nil {
		return nil, err
	}

	updated, err := svc.GetRegistered(ctx, id)
	if err != nil {
		return nil, err
	}
	return &studentResult{RegisteredStudent: updated}, nil
}
