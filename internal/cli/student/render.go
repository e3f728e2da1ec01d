package student

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/shsenroll/internal/cli/styles"
	"github.com/thenoetrevino/shsenroll/internal/models"
)

// registerResult represents the result of a registration
type registerResult struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Age      int    `json:"age"`
}

// GetID implements the GetID interface for quiet mode output
func (r *registerResult) GetID() string {
	return r.ID
}

func (r *registerResult) Human() string {
	return fmt.Sprintf("%s Registered %s as %s (age %d)",
		styles.SuccessStyle.Render("✓"), r.FullName, styles.TitleStyle.Render(r.ID), r.Age)
}

// studentResult wraps a single registration for show and update
type studentResult struct {
	*models.RegisteredStudent
}

func (r *studentResult) GetID() string {
	return r.ID
}

func (r *studentResult) Human() string {
	s := r.RegisteredStudent
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(s.FullName()))
	b.WriteString("  ")
	b.WriteString(styles.SubtitleStyle.Render(s.ID))
	b.WriteString("\n\n")
	for _, line := range []string{
		styles.RenderField("Gender", s.Gender),
		styles.RenderField("Birth Date", s.BirthDate),
		styles.RenderField("Age", strconv.Itoa(s.Age)),
		styles.RenderField("Contact", s.Contact),
	} {
		b.WriteString(line + "\n")
	}
	b.WriteString(styles.SectionStyle.Render("Guardian") + "\n")
	b.WriteString(styles.RenderField("Name", s.GuardianName) + "\n")
	b.WriteString(styles.RenderField("Contact", s.GuardianContact))
	return styles.RenderCard(b.String())
}

// statusListResult is the registration table with enrollment status
type statusListResult struct {
	Students []*models.RegistrationStatus `json:"students"`
	Count    int                          `json:"count"`
}

func (r *statusListResult) GetIDs() []string {
	ids := make([]string, len(r.Students))
	for i, s := range r.Students {
		ids[i] = s.ID
	}
	return ids
}

func (r *statusListResult) Human() string {
	if len(r.Students) == 0 {
		return styles.SubtitleStyle.Render("No registered students found")
	}
	rows := make([][]string, 0, len(r.Students))
	for _, s := range r.Students {
		rows = append(rows, []string{
			s.ID,
			s.FullName(),
			s.Gender,
			strconv.Itoa(s.Age),
			s.Contact,
			s.GuardianName,
			styles.RenderStatus(s.Enrolled),
		})
	}
	table := styles.RenderTable(
		[]string{"ID", "Name", "Gender", "Age", "Contact", "Guardian", "Status"}, rows)
	return table + "\n" + styles.SubtitleStyle.Render(fmt.Sprintf("%d student(s)", r.Count))
}

// ageResult is the derived age for a birth date
type ageResult struct {
	BirthDate string `json:"birth_date"`
	Age       int    `json:"age"`
}

func (r *ageResult) Human() string {
	return styles.RenderField("Age", strconv.Itoa(r.Age))
}
