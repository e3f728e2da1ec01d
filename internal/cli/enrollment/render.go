package enrollment

import (
	"fmt"

	"github.com/thenoetrevino/shsenroll/internal/cli/styles"
	"github.com/thenoetrevino/shsenroll/internal/models"
)

func gradeChoices() []string {
	return models.GradeLevels()
}

func strandChoices() []string {
	return models.Strands()
}

// enrollResult represents an enrollment after add or update
type enrollResult struct {
	ID         string `json:"id"`
	GradeLevel string `json:"grade_level"`
	Strand     string `json:"strand"`
}

// GetID implements the GetID interface for quiet mode output
func (r *enrollResult) GetID() string {
	return r.ID
}

func (r *enrollResult) Human() string {
	return fmt.Sprintf("%s %s is in Grade %s %s",
		styles.SuccessStyle.Render("✓"), styles.TitleStyle.Render(r.ID), r.GradeLevel, r.Strand)
}

// enrollmentListResult is the enrolled table, optionally filtered
type enrollmentListResult struct {
	Enrollments []*models.EnrollmentSummary `json:"enrollments"`
	GradeLevel  string                      `json:"grade_level"`
	Strand      string                      `json:"strand"`
	Count       int                         `json:"count"`
}

func (r *enrollmentListResult) GetIDs() []string {
	ids := make([]string, len(r.Enrollments))
	for i, e := range r.Enrollments {
		ids[i] = e.ID
	}
	return ids
}

func (r *enrollmentListResult) Human() string {
	if len(r.Enrollments) == 0 {
		return styles.SubtitleStyle.Render("No enrolled students found")
	}
	rows := make([][]string, 0, len(r.Enrollments))
	for _, e := range r.Enrollments {
		rows = append(rows, []string{e.ID, e.FullName, e.GradeLevel, e.Strand})
	}
	table := styles.RenderTable([]string{"ID", "Name", "Grade", "Strand"}, rows)
	footer := fmt.Sprintf("%d student(s), grade: %s, strand: %s", r.Count, r.GradeLevel, r.Strand)
	return table + "\n" + styles.SubtitleStyle.Render(footer)
}
