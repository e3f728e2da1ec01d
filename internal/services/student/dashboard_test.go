package student

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	enrollments := []struct{ grade, strand string }{
		{"11", "STEM"},
		{"11", "STEM"},
		{"12", "ICT"},
	}
	for _, e := range enrollments {
		id := mustRegister(t, svc, validRequest())
		_, err := svc.EnrollStudent(ctx, EnrollRequest{StudentID: id, GradeLevel: e.grade, Strand: e.strand})
		require.NoError(t, err)
	}
	mustRegister(t, svc, validRequest())

	stats, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Registered)
	assert.Equal(t, 3, stats.Enrolled)
	assert.Equal(t, 1, stats.Unenrolled)
	assert.Equal(t, map[string]int{"11": 2, "12": 1}, stats.ByGrade)
	assert.Equal(t, 2, stats.ByStrand["STEM"]["11"])
	assert.Equal(t, 0, stats.ByStrand["STEM"]["12"])
	assert.Equal(t, 1, stats.ByStrand["ICT"]["12"])
	assert.Equal(t, map[string]int{"11": 0, "12": 0}, stats.ByStrand["HUMSS"])
	assert.Equal(t, map[string]int{"11": 0, "12": 0}, stats.ByStrand["GAS"])
}

func TestDashboard_Empty(t *testing.T) {
	svc, _, _ := setupService(t)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Registered)
	assert.Zero(t, stats.Enrolled)
	assert.Len(t, stats.ByStrand, 4)
}
