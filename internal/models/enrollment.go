package models

// EnrolledStudent assigns a registered student to a grade level and strand.
// ID is shared with the registration.
type EnrolledStudent struct {
	ID         string `json:"id"`
	GradeLevel string `json:"grade_level"`
	Strand     string `json:"strand"`
}

// EnrollmentSummary is an enrollment joined with its registration's name
type EnrollmentSummary struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	GradeLevel string `json:"grade_level"`
	Strand     string `json:"strand"`
}

// EnrollmentCount is the number of enrollments for one grade and strand
type EnrollmentCount struct {
	GradeLevel string
	Strand     string
	Count      int
}
