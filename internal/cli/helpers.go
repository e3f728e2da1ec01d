package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/thenoetrevino/shsenroll/internal/models"
)

// ParseGrade normalizes a grade level flag ("11", "Grade 12", "all")
func ParseGrade(grade string) (string, error) {
	g := strings.TrimSpace(grade)
	if g == "" || strings.EqualFold(g, models.FilterAll) {
		return models.FilterAll, nil
	}
	g = strings.TrimSpace(strings.TrimPrefix(strings.ToLower(g), "grade"))
	if !slices.Contains(models.GradeLevels(), g) {
		return "", fmt.Errorf("%w: invalid grade '%s' (must be: %s)",
			ErrUsage, grade, strings.Join(models.GradeLevels(), ", "))
	}
	return g, nil
}

// ParseStrand normalizes a strand flag ("stem", "HUMSS", "all")
func ParseStrand(strand string) (string, error) {
	s := strings.TrimSpace(strand)
	if s == "" || strings.EqualFold(s, models.FilterAll) {
		return models.FilterAll, nil
	}
	s = strings.ToUpper(s)
	if !slices.Contains(models.Strands(), s) {
		return "", fmt.Errorf("%w: invalid strand '%s' (must be: %s)",
			ErrUsage, strand, strings.Join(models.Strands(), ", "))
	}
	return s, nil
}

// RequireFlag returns a usage error when a string flag is empty
func RequireFlag(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: --%s is required", ErrUsage, name)
	}
	return nil
}

// IsInteractive reports whether stdin and stdout are both terminals, which
// huh forms need
func IsInteractive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

// ErrNotInteractive is returned when a form would run without a terminal
var ErrNotInteractive = fmt.Errorf("%w: this command needs a terminal for confirmation (pass --force to skip it)", ErrUsage)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
