package student

import (
	"strings"

	"github.com/thenoetrevino/shsenroll/internal/models"
)

// RegisterStudentRequest encapsulates data for registering a student.
// Age is not accepted; it is always derived from BirthDate.
type RegisterStudentRequest struct {
	FirstName       string `label:"First Name" validate:"required"`
	MiddleName      string `label:"Middle Name"`
	LastName        string `label:"Last Name" validate:"required"`
	Gender          string `label:"Gender" validate:"required"`
	BirthDate       string `label:"Birth Date" validate:"required,datetime=2006-01-02"`
	Contact         string `label:"Contact" validate:"required,phone11"`
	GuardianName    string `label:"Guardian Name" validate:"required"`
	GuardianContact string `label:"Guardian Contact" validate:"required,phone11"`
}

// UpdateStudentRequest overwrites every field of an existing registration
type UpdateStudentRequest struct {
	ID string `label:"Student ID" validate:"required,studentid"`
	RegisterStudentRequest
}

// EnrollRequest encapsulates data for enrolling a registered student
type EnrollRequest struct {
	StudentID  string `label:"Student ID" validate:"required,studentid"`
	GradeLevel string `label:"Grade Level" validate:"required,grade"`
	Strand     string `label:"Strand" validate:"required,strand"`
}

// UpdateEnrollmentRequest changes the grade and strand of an enrollment
type UpdateEnrollmentRequest struct {
	StudentID  string `label:"Student ID" validate:"required,studentid"`
	GradeLevel string `label:"Grade Level" validate:"required,grade"`
	Strand     string `label:"Strand" validate:"required,strand"`
}

// EnrollmentFilter narrows an enrollment listing. Empty or "All" matches
// every value.
type EnrollmentFilter struct {
	GradeLevel string
	Strand     string
}

func (r RegisterStudentRequest) normalized() RegisterStudentRequest {
	return RegisterStudentRequest{
		FirstName:       strings.TrimSpace(r.FirstName),
		MiddleName:      strings.TrimSpace(r.MiddleName),
		LastName:        strings.TrimSpace(r.LastName),
		Gender:          strings.TrimSpace(r.Gender),
		BirthDate:       strings.TrimSpace(r.BirthDate),
		Contact:         strings.TrimSpace(r.Contact),
		GuardianName:    strings.TrimSpace(r.GuardianName),
		GuardianContact: strings.TrimSpace(r.GuardianContact),
	}
}

func (r UpdateStudentRequest) normalized() UpdateStudentRequest {
	return UpdateStudentRequest{
		ID:                     strings.TrimSpace(r.ID),
		RegisterStudentRequest: r.RegisterStudentRequest.normalized(),
	}
}

func (r EnrollRequest) normalized() EnrollRequest {
	return EnrollRequest{
		StudentID:  strings.TrimSpace(r.StudentID),
		GradeLevel: strings.TrimSpace(r.GradeLevel),
		Strand:     strings.TrimSpace(r.Strand),
	}
}

func (r UpdateEnrollmentRequest) normalized() UpdateEnrollmentRequest {
	return UpdateEnrollmentRequest{
		StudentID:  strings.TrimSpace(r.StudentID),
		GradeLevel: strings.TrimSpace(r.GradeLevel),
		Strand:     strings.TrimSpace(r.Strand),
	}
}

// toModel builds the stored record with a derived age
func (r RegisterStudentRequest) toModel(id string, age int) *models.RegisteredStudent {
	return &models.RegisteredStudent{
		ID:              id,
		FirstName:       r.FirstName,
		MiddleName:      r.MiddleName,
		LastName:        r.LastName,
		Gender:          r.Gender,
		BirthDate:       r.BirthDate,
		Age:             age,
		Contact:         r.Contact,
		GuardianName:    r.GuardianName,
		GuardianContact: r.GuardianContact,
	}
}
