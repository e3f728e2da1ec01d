package student

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/shsenroll/internal/database"
	"github.com/thenoetrevino/shsenroll/internal/models"
)

// idRequest validates a bare student id for delete and drop
type idRequest struct {
	StudentID string `label:"Student ID" validate:"required,studentid"`
}

// newValidator builds the request validator with the enrollment rules.
// Field names in errors come from the label tag.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("label")
	})
	v.RegisterAlias("phone11", fmt.Sprintf("len=%d,number", models.ContactDigits))
	// Registration errors are impossible for these static rules
	_ = v.RegisterValidation("studentid", func(fl validator.FieldLevel) bool {
		return database.IsStudentID(fl.Field().String())
	})
	_ = v.RegisterValidation("grade", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.GradeLevels(), fl.Field().String())
	})
	_ = v.RegisterValidation("strand", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.Strands(), fl.Field().String())
	})
	return v
}

// inspection is the outcome of running the validator over a request
type inspection struct {
	missing []string
	failed  map[string]validator.FieldError
}

func (i inspection) has(field string) bool {
	_, ok := i.failed[field]
	return ok
}

// inspect splits validator failures into missing labels (in field order)
// and other failures keyed by Go field name
func (s *service) inspect(req any) (inspection, error) {
	result := inspection{failed: make(map[string]validator.FieldError)}

	err := s.validate.Struct(req)
	if err == nil {
		return result, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return result, err
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			result.missing = append(result.missing, fe.Field())
			continue
		}
		result.failed[fe.StructField()] = fe
	}
	return result, nil
}

func missingFields(labels []string) *ValidationError {
	return &ValidationError{
		Kind:    ErrMissingFields,
		Title:   "Missing Information",
		Message: "Please fill in: " + strings.Join(labels, ", "),
	}
}

func invalidInput(kind error, message string) *ValidationError {
	return &ValidationError{Kind: kind, Title: "Invalid Input", Message: message}
}

var errInvalidStudentID = invalidInput(ErrInvalidStudentID,
	fmt.Sprintf("Student ID must look like %s.", database.FormatStudentID(1)))

// validateStudent checks a registration and returns the derived age.
// Failures are reported in a fixed order: missing fields, student id,
// birth date, age, contact, guardian contact.
func (s *service) validateStudent(req any, birthDate string) (int, error) {
	found, err := s.inspect(req)
	if err != nil {
		return 0, err
	}
	if len(found.missing) > 0 {
		return 0, missingFields(found.missing)
	}
	if found.has("ID") {
		return 0, errInvalidStudentID
	}
	if found.has("BirthDate") {
		return 0, invalidInput(ErrInvalidBirthDate,
			"Birth date must be a valid date in YYYY-MM-DD format.")
	}

	age, ok := ageOn(birthDate, s.now())
	if !ok {
		return 0, invalidInput(ErrInvalidBirthDate,
			"Birth date must be a valid date in YYYY-MM-DD format.")
	}
	if age < models.MinimumAge {
		return 0, &ValidationError{
			Kind:  ErrUnderage,
			Title: "Age Restriction",
			Message: fmt.Sprintf("Student must be at least %d years old to enroll in Senior High School.",
				models.MinimumAge),
		}
	}

	if found.has("Contact") {
		return 0, invalidInput(ErrInvalidContact,
			fmt.Sprintf("Student contact number must be exactly %d digits.", models.ContactDigits))
	}
	if found.has("GuardianContact") {
		return 0, invalidInput(ErrInvalidGuardianContact,
			fmt.Sprintf("Guardian contact number must be exactly %d digits.", models.ContactDigits))
	}
	return age, nil
}

// validateEnrollment checks an enroll or update-enrollment request
func (s *service) validateEnrollment(req any) error {
	found, err := s.inspect(req)
	if err != nil {
		return err
	}
	if slices.Contains(found.missing, "Grade Level") || slices.Contains(found.missing, "Strand") {
		return &ValidationError{
			Kind:    ErrMissingFields,
			Title:   "Missing Information",
			Message: "Grade and strand are required.",
		}
	}
	if len(found.missing) > 0 {
		return missingFields(found.missing)
	}
	if found.has("StudentID") {
		return errInvalidStudentID
	}
	if found.has("GradeLevel") {
		return invalidInput(ErrInvalidGrade,
			"Grade level must be one of: "+strings.Join(models.GradeLevels(), ", ")+".")
	}
	if found.has("Strand") {
		return invalidInput(ErrInvalidStrand,
			"Strand must be one of: "+strings.Join(models.Strands(), ", ")+".")
	}
	return nil
}

// validateID checks a bare student id
func (s *service) validateID(id string) error {
	found, err := s.inspect(idRequest{StudentID: id})
	if err != nil {
		return err
	}
	if len(found.missing) > 0 {
		return missingFields(found.missing)
	}
	if found.has("StudentID") {
		return errInvalidStudentID
	}
	return nil
}
