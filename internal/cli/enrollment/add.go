package enrollment

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shsenroll/internal/cli/handler"
	studentservice "github.com/thenoetrevino/shsenroll/internal/services/student"
)

// AddCmd returns the enrollment add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Enroll a registered student",
		Long: `Enroll a registered student in a grade level and strand.
A student can only be enrolled once.

Examples:
  shsenroll enrollment add --id=S000001 --grade=11 --strand=STEM
  shsenroll enrollment add --id=S000001 --grade=12 --strand=humss --json
`,
		RunE: handler.Command(&addHandler{}, parseIDFlag),
	}

	addPlacementFlags(cmd)
	addOutputFlags(cmd)

	return cmd
}

// addHandler implements handler.Handler for enrolling
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := handler.NewFlagParser(args.GetCmd()).ParseStudentID("id")
	if err != nil {
		return nil, err
	}
	grade, strand := placement(args)

	enrolledID, err := args.Service().EnrollStudent(ctx, studentservice.EnrollRequest{
		StudentID:  id,
		GradeLevel: grade,
		Strand:     strand,
	})
	if err != nil {
		return nil, err
	}

	return &enrollResult{ID: enrolledID, GradeLevel: grade, Strand: strand}, nil
}
