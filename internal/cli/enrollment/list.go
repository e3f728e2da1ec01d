package enrollment

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shsenroll/internal/cli/handler"
	"github.com/thenoetrevino/shsenroll/internal/models"
	studentservice "github.com/thenoetrevino/shsenroll/internal/services/student"
)

// ListCmd returns the enrollment list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List enrolled students",
		Long: `List enrolled students ordered by ID. --grade and --strand narrow the
list; "all" or an omitted flag matches everything.

Examples:
  shsenroll enrollment list
  shsenroll enrollment list --grade=11
  shsenroll enrollment list --grade=12 --strand=STEM --json
`,
		RunE: handler.Command(&listHandler{}, parseFilterFlags),
	}

	cmd.Flags().StringP("grade", "g", models.FilterAll, "Grade level filter")
	cmd.Flags().StringP("strand", "s", models.FilterAll, "Strand filter")
	addOutputFlags(cmd)

	return cmd
}

// listHandler implements handler.Handler for listing enrollments
type listHandler struct{}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	filter, err := filterFrom(args.GetCmd())
	if err != nil {
		return nil, err
	}

	svc := args.Service()
	var enrollments []*models.EnrollmentSummary
	if filter.GradeLevel == models.FilterAll && filter.Strand == models.FilterAll {
		enrollments, err = svc.ListEnrolled(ctx)
	} else {
		enrollments, err = svc.FilterEnrolled(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	return &enrollmentListResult{
		Enrollments: enrollments,
		GradeLevel:  filter.GradeLevel,
		Strand:      filter.Strand,
		Count:       len(enrollments),
	}, nil
}

func filterFrom(cmd *cobra.Command) (studentservice.EnrollmentFilter, error) {
	parser := handler.NewFlagParser(cmd)
	grade, err := parser.ParseGrade("grade")
	if err != nil {
		return studentservice.EnrollmentFilter{}, err
	}
	strand, err := parser.ParseStrand("strand")
	if err != nil {
		return studentservice.EnrollmentFilter{}, err
	}
	return studentservice.EnrollmentFilter{GradeLevel: grade, Strand: strand}, nil
}

func parseFilterFlags(cmd *cobra.Command) error {
	_, err := filterFrom(cmd)
	return err
}
