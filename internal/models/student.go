package models

import "strings"

// RegisteredStudent is a student's base identity record, independent of any
// enrollment. Age is derived from BirthDate by the service layer.
type RegisteredStudent struct {
	ID              string `json:"id"`
	FirstName       string `json:"first_name"`
	MiddleName      string `json:"middle_name,omitempty"`
	LastName        string `json:"last_name"`
	Gender          string `json:"gender"`
	BirthDate       string `json:"birth_date"`
	Age             int    `json:"age"`
	Contact         string `json:"contact"`
	GuardianName    string `json:"guardian_name"`
	GuardianContact string `json:"guardian_contact"`
}

// FullName returns the student's display name
func (s *RegisteredStudent) FullName() string {
	return FullName(s.FirstName, s.MiddleName, s.LastName)
}

// RegistrationStatus pairs a registration with whether it is enrolled
type RegistrationStatus struct {
	RegisteredStudent
	Enrolled bool `json:"enrolled"`
}

// StatusLabel returns "Enrolled" or "Unenrolled"
func (r *RegistrationStatus) StatusLabel() string {
	if r.Enrolled {
		return "Enrolled"
	}
	return "Unenrolled"
}

// FullName joins the non-empty name parts with single spaces.
// A missing middle name never leaves a double space behind.
func FullName(first, middle, last string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{first, middle, last} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
