package student

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shsenroll/internal/cli"
	"github.com/thenoetrevino/shsenroll/internal/cli/handler"
	studentservice "github.com/thenoetrevino/shsenroll/internal/services/student"
)

// AgeCmd returns the student age subcommand
func AgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "age",
		Short: "Calculate an age from a birth date",
		Long: `Calculate the age in whole years as of today.

Examples:
  shsenroll student age --birth-date=2009-06-01
  shsenroll student age --birth-date=2009-06-01 --json
`,
		RunE: handler.Command(&ageHandler{}, func(cmd *cobra.Command) error {
			_, err := handler.NewFlagParser(cmd).ParseString("birth-date")
			return err
		}),
	}

	cmd.Flags().String("birth-date", "", "Birth date (YYYY-MM-DD, required)")
	addOutputFlags(cmd)

	return cmd
}

// ageHandler implements handler.Handler for the age calculator
type ageHandler struct{}

// Execute implements the Handler interface
func (h *ageHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	birthDate := args.GetString("birth-date", "")
	age, ok := args.Service().CalculateAge(birthDate)
	if !ok {
		return nil, &studentservice.ValidationError{
			Kind:    studentservice.ErrInvalidBirthDate,
			Title:   "Invalid Input",
			Message: fmt.Sprintf("Birth date %q must be a valid YYYY-MM-DD date.", birthDate),
		}
	}
	return &ageResult{BirthDate: birthDate, Age: age}, nil
}

var _ cli.HumanRenderer = (*ageResult)(nil)
