package student

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/shsenroll/internal/models"
)

// Dashboard summarizes registrations and enrollments by grade and strand.
// Every known grade and strand appears, with zero when empty.
func (s *service) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	registered, err := s.repo.CountRegistered(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}

	counts, err := s.repo.GetEnrollmentCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count enrollments: %w", err)
	}

	stats := models.NewDashboardStats()
	stats.Registered = registered
	for _, c := range counts {
		stats.Enrolled += c.Count
		stats.ByGrade[c.GradeLevel] += c.Count
		if stats.ByStrand[c.Strand] == nil {
			stats.ByStrand[c.Strand] = make(map[string]int)
		}
		stats.ByStrand[c.Strand][c.GradeLevel] += c.Count
	}
	stats.Unenrolled = stats.Registered - stats.Enrolled
	return stats, nil
}
