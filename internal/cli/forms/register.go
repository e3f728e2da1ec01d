package forms

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/shsenroll/internal/config"
	"github.com/thenoetrevino/shsenroll/internal/models"
	"github.com/thenoetrevino/shsenroll/internal/services/student"
)

// Genders offered by the registration form
var Genders = []string{"Male", "Female"}

// RegisterForm creates a huh form that fills req field by field.
// Values already present in req are used as defaults.
func RegisterForm(req *student.RegisterStudentRequest, confirm *bool, colors config.ColorScheme) *huh.Form {
	identity := huh.NewGroup(
		huh.NewInput().
			Key("first_name").
			Title("First Name").
			Validate(required("first name")).
			Value(&req.FirstName),

		huh.NewInput().
			Key("middle_name").
			Title("Middle Name (optional)").
			Value(&req.MiddleName),

		huh.NewInput().
			Key("last_name").
			Title("Last Name").
			Validate(required("last name")).
			Value(&req.LastName),

		huh.NewSelect[string]().
			Key("gender").
			Title("Gender").
			Options(huh.NewOptions(Genders...)...).
			Value(&req.Gender),

		huh.NewInput().
			Key("birth_date").
			Title("Birth Date").
			Placeholder(models.BirthDateLayout).
			Validate(required("birth date")).
			Value(&req.BirthDate),
	).Title("Student")

	contacts := huh.NewGroup(
		huh.NewInput().
			Key("contact").
			Title("Contact Number").
			Placeholder("09171234567").
			CharLimit(models.ContactDigits).
			Validate(contactNumber).
			Value(&req.Contact),

		huh.NewInput().
			Key("guardian_name").
			Title("Guardian Name").
			Validate(required("guardian name")).
			Value(&req.GuardianName),

		huh.NewInput().
			Key("guardian_contact").
			Title("Guardian Contact").
			Placeholder("09181234567").
			CharLimit(models.ContactDigits).
			Validate(contactNumber).
			Value(&req.GuardianContact),

		huh.NewConfirm().
			Key("confirm").
			Title("Register this student?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	).Title("Contacts")

	return huh.NewForm(identity, contacts).
		WithTheme(Theme(colors)).
		WithKeyMap(KeyMap())
}

// ConfirmForm asks a single yes/no question
func ConfirmForm(title, description string, confirm *bool, colors config.ColorScheme) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Key("confirm").
			Title(title).
			Description(description).
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	)).WithTheme(Theme(colors)).WithKeyMap(KeyMap())
}

// IsAborted reports whether the user cancelled a form
func IsAborted(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}

func required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

// contactNumber mirrors the service rule so the form can re-prompt early
func contactNumber(s string) error {
	s = strings.TrimSpace(s)
	if len(s) != models.ContactDigits {
		return fmt.Errorf("must be exactly %d digits", models.ContactDigits)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("must contain digits only")
		}
	}
	return nil
}
