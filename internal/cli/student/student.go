// Package student holds all cli commands related to registrations
// e.g., shsenroll student ...
package student

import (
	"github.com/spf13/cobra"
	studentservice "github.com/thenoetrevino/shsenroll/internal/services/student"
)

// StudentCmd returns the student parent command
func StudentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "student",
		Aliases: []string{"students", "reg"},
		Short:   "Manage registered students",
	}

	cmd.AddCommand(RegisterCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(AgeCmd())

	return cmd
}

// addOutputFlags registers the agent-friendly flags every command carries
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// addProfileFlags registers one flag per registration field
func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().String("first", "", "First name")
	cmd.Flags().String("middle", "", "Middle name (optional)")
	cmd.Flags().String("last", "", "Last name")
	cmd.Flags().String("gender", "", "Gender")
	cmd.Flags().String("birth-date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().String("contact", "", "Contact number (11 digits)")
	cmd.Flags().String("guardian-name", "", "Guardian name")
	cmd.Flags().String("guardian-contact", "", "Guardian contact number (11 digits)")
}

// profileFlags maps flag names to the request fields they fill
func profileFlags(req *studentservice.RegisterStudentRequest) map[string]*string {
	return map[string]*string{
		"first":            &req.FirstName,
		"middle":           &req.MiddleName,
		"last":             &req.LastName,
		"gender":           &req.Gender,
		"birth-date":       &req.BirthDate,
		"contact":          &req.Contact,
		"guardian-name":    &req.GuardianName,
		"guardian-contact": &req.GuardianContact,
	}
}
