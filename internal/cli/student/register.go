package student

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shsenroll/internal/cli"
	"github.com/thenoetrevino/shsenroll/internal/cli/forms"
	"github.com/thenoetrevino/shsenroll/internal/cli/handler"
	"github.com/thenoetrevino/shsenroll/internal/models"
	studentservice "github.com/thenoetrevino/shsenroll/internal/services/student"
)

// RegisterCmd returns the student register subcommand
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new student",
		Long: `Register a new student. The student ID (S000001, S000002, ...) is
generated and the age is derived from the birth date.

Examples:
  # Register with flags (human-readable output)
  shsenroll student register --first="Ana" --last="Cruz" --gender="Female" \
    --birth-date="2009-06-01" --contact="09171234567" \
    --guardian-name="Maria Cruz" --guardian-contact="09181234567"

  # Fill the remaining fields in a form
  shsenroll student register --interactive

  # Quiet mode for bash capture
  STUDENT_ID=$(shsenroll student register ... --quiet)
`,
		RunE: handler.Command(&registerHandler{}, parseRegisterFlags),
	}

	addProfileFlags(cmd)
	cmd.Flags().BoolP("interactive", "i", false, "Fill in fields with an interactive form")
	addOutputFlags(cmd)

	return cmd
}

// registerHandler implements handler.Handler for student registration
type registerHandler struct{}

// Execute implements the Handler interface
func (h *registerHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	var req studentservice.RegisterStudentRequest
	for name, field := range profileFlags(&req) {
		*field = args.GetString(name, "")
	}

	if args.GetBool("interactive") {
		confirmed := true
		form := forms.RegisterForm(&req, &confirmed, args.CLI.Colors)
		if err := form.RunWithContext(ctx); err != nil {
			if forms.IsAborted(err) {
				return cli.Cancelled(""), nil
			}
			return nil, fmt.Errorf("registration form: %w", err)
		}
		if !confirmed {
			return cli.Cancelled(""), nil
		}
	}

	svc := args.Service()
	id, err := svc.RegisterStudent(ctx, req)
	if err != nil {
		return nil, err
	}

	age, _ := svc.CalculateAge(req.BirthDate)
	return &registerResult{
		ID:       id,
		FullName: models.FullName(req.FirstName, req.MiddleName, req.LastName),
		Age:      age,
	}, nil
}

func parseRegisterFlags(cmd *cobra.Command) error {
	interactive, _ := cmd.Flags().GetBool("interactive")
	if !interactive {
		return nil
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	if jsonOutput || quietMode {
		return fmt.Errorf("%w: --interactive cannot be combined with --json or --quiet", cli.ErrUsage)
	}
	if !cli.IsInteractive() {
		return fmt.Errorf("%w: --interactive needs a terminal", cli.ErrUsage)
	}
	return nil
}
