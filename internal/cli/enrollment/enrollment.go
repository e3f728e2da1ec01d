// Package enrollment holds all cli commands related to enrollments
// e.g., shsenroll enrollment ...
package enrollment

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shsenroll/internal/cli"
	"github.com/thenoetrevino/shsenroll/internal/cli/handler"
)

// EnrollmentCmd returns the enrollment parent command
func EnrollmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "enrollment",
		Aliases: []string{"enroll", "enrollments"},
		Short:   "Manage enrollments",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DropCmd())

	return cmd
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

func addPlacementFlags(cmd *cobra.Command) {
	cmd.Flags().String("id", "", "Student ID (required)")
	cmd.Flags().String("grade", "", "Grade level: "+strings.Join(gradeChoices(), ", ")+" (required)")
	cmd.Flags().String("strand", "", "Strand: "+strings.Join(strandChoices(), ", ")+" (required)")
}

// placement reads --grade and --strand for add and update.
// Known values are normalized; anything else is passed through so the
// service can report it.
func placement(args *handler.Arguments) (grade, strand string) {
	grade = strings.TrimSpace(args.GetString("grade", ""))
	if g, err := cli.ParseGrade(grade); err == nil && grade != "" {
		grade = g
	}
	strand = strings.TrimSpace(args.GetString("strand", ""))
	if s, err := cli.ParseStrand(strand); err == nil && strand != "" {
		strand = s
	}
	return grade, strand
}

func parseIDFlag(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseStudentID("id")
	return err
}
