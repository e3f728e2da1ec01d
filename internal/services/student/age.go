package student

import (
	"strings"
	"time"

	"github.com/thenoetrevino/shsenroll/internal/models"
)

// ageOn returns the whole years between birthDate and today.
// The result is negative for birth dates in the future.
func ageOn(birthDate string, today time.Time) (int, bool) {
	birth, err := time.Parse(models.BirthDateLayout, strings.TrimSpace(birthDate))
	if err != nil {
		return 0, false
	}

	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age, true
}
