package models

// ============================================================================
// STUDENT ID CONSTANTS
// ============================================================================

// StudentIDPrefix is the fixed prefix of every registered student id
const StudentIDPrefix = "S"

// StudentIDDigits is the zero-padded width of the numeric suffix
const StudentIDDigits = 6

// ============================================================================
// ENROLLMENT CONSTANTS
// ============================================================================

// Grade levels offered by the senior high school
const (
	Grade11 = "11"
	Grade12 = "12"
)

// Academic strands
const (
	StrandSTEM  = "STEM"
	StrandHUMSS = "HUMSS"
	StrandGAS   = "GAS"
	StrandICT   = "ICT"
)

// FilterAll disables a filter dimension when listing enrollments
const FilterAll = "All"

// GradeLevels lists every valid grade level in display order
func GradeLevels() []string {
	return []string{Grade11, Grade12}
}

// Strands lists every valid strand in dashboard display order
func Strands() []string {
	return []string{StrandSTEM, StrandICT, StrandHUMSS, StrandGAS}
}

// ============================================================================
// REGISTRATION RULES
// ============================================================================

// MinimumAge is the youngest age accepted for senior high school registration
const MinimumAge = 16

// ContactDigits is the exact length of a contact number
const ContactDigits = 11

// BirthDateLayout is the ISO calendar date layout used for birth dates
const BirthDateLayout = "2006-01-02"
