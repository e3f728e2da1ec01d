package enrollment

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shsenroll/internal/cli/handler"
	studentservice "github.com/thenoetrevino/shsenroll/internal/services/student"
)

// UpdateCmd returns the enrollment update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change a student's grade level and strand",
		Long: `Change the grade level and strand of an existing enrollment.

Examples:
  shsenroll enrollment update --id=S000001 --grade=12 --strand=ICT
`,
		RunE: handler.Command(&updateHandler{}, parseIDFlag),
	}

	addPlacementFlags(cmd)
	addOutputFlags(cmd)

	return cmd
}

// updateHandler implements handler.Handler for enrollment updates
type updateHandler struct{}

// Execute implements the Handler interface
func (h *updateHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := handler.NewFlagParser(args.GetCmd()).ParseStudentID("id")
	if err != nil {
		return nil, err
	}
	grade, strand := placement(args)

	if _, err := args.Service().UpdateEnrollment(ctx, studentservice.UpdateEnrollmentRequest{
		StudentID:  id,
		GradeLevel: grade,
		Strand:     strand,
	}); err != nil {
		return nil, err
	}

	return &enrollResult{ID: id, GradeLevel: grade, Strand: strand}, nil
}
