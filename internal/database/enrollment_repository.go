package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/thenoetrevino/shsenroll/internal/models"
)

// EnrollmentRepo handles all enrollment database operations.
type EnrollmentRepo struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// Enroll inserts an enrollment for an existing registration.
// Returns ErrNotFound when the registration is missing and ErrConstraint when
// the student is already enrolled. Check and insert share one transaction.
func (r *EnrollmentRepo) Enroll(ctx context.Context, enrollment *models.EnrolledStudent) (string, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var registered bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM registered_students WHERE id = ?)`, enrollment.ID,
		).Scan(&registered)
		if err != nil {
			return classifyError(err, fmt.Sprintf("failed to check registration of %s", enrollment.ID))
		}
		if !registered {
			return fmt.Errorf("%w: registered student id %s", models.ErrNotFound, enrollment.ID)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO enrolled_students (id, grade_level, strand) VALUES (?, ?, ?)`,
			enrollment.ID, enrollment.GradeLevel, enrollment.Strand,
		)
		if err != nil {
			return classifyError(err, fmt.Sprintf("failed to enroll student %s", enrollment.ID))
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return enrollment.ID, nil
}

// GetAllEnrolled lists every enrollment joined with the student's name
func (r *EnrollmentRepo) GetAllEnrolled(ctx context.Context) ([]*models.EnrollmentSummary, error) {
	return r.querySummaries(ctx, r.enrolledSelect())
}

// FilterEnrolled lists enrollments matching the grade level and strand.
// An empty value or "All" leaves that dimension unfiltered.
func (r *EnrollmentRepo) FilterEnrolled(ctx context.Context, gradeLevel, strand string) ([]*models.EnrollmentSummary, error) {
	builder := r.enrolledSelect()
	where := squirrel.And{}
	if isFilterSet(gradeLevel) {
		where = append(where, squirrel.Eq{"e.grade_level": gradeLevel})
	}
	if isFilterSet(strand) {
		where = append(where, squirrel.Eq{"e.strand": strand})
	}
	if len(where) > 0 {
		builder = builder.Where(where)
	}
	return r.querySummaries(ctx, builder)
}

// IsEnrolled reports whether an enrollment exists for id
func (r *EnrollmentRepo) IsEnrolled(ctx context.Context, id string) (bool, error) {
	var enrolled bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM enrolled_students WHERE id = ?)`, id,
	).Scan(&enrolled)
	if err != nil {
		return false, classifyError(err, fmt.Sprintf("failed to check enrollment of %s", id))
	}
	return enrolled, nil
}

// GetEnrollmentCounts returns enrollment counts grouped by grade and strand
func (r *EnrollmentRepo) GetEnrollmentCounts(ctx context.Context) ([]models.EnrollmentCount, error) {
	query, args, err := r.sb.Select("grade_level", "strand", "COUNT(*)").
		From("enrolled_students").
		GroupBy("grade_level", "strand").
		OrderBy("grade_level", "strand").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build count query: %w", models.ErrStorage, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classifyError(err, "failed to count enrollments")
	}
	defer rows.Close()

	var counts []models.EnrollmentCount
	for rows.Next() {
		var c models.EnrollmentCount
		if err := rows.Scan(&c.GradeLevel, &c.Strand, &c.Count); err != nil {
			return nil, classifyError(err, "failed to scan enrollment count")
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err, "failed to iterate enrollment counts")
	}
	return counts, nil
}

// UpdateEnrollment changes the grade level and strand of an enrollment.
// Returns false when no enrollment has the given id.
func (r *EnrollmentRepo) UpdateEnrollment(ctx context.Context, id, gradeLevel, strand string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE enrolled_students SET grade_level = ?, strand = ? WHERE id = ?`,
		gradeLevel, strand, id,
	)
	if err != nil {
		return false, classifyError(err, fmt.Sprintf("failed to update enrollment %s", id))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, classifyError(err, "failed to read affected rows")
	}
	return affected > 0, nil
}

// DeleteEnrollment drops an enrollment; the registration is kept
func (r *EnrollmentRepo) DeleteEnrollment(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM enrolled_students WHERE id = ?`, id)
	if err != nil {
		return false, classifyError(err, fmt.Sprintf("failed to delete enrollment %s", id))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, classifyError(err, "failed to read affected rows")
	}
	return affected > 0, nil
}

func (r *EnrollmentRepo) enrolledSelect() squirrel.SelectBuilder {
	return r.sb.Select("e.id", "r.first_name", "r.middle_name", "r.last_name", "e.grade_level", "e.strand").
		From("enrolled_students e").
		Join("registered_students r ON e.id = r.id").
		OrderBy("e.id")
}

func (r *EnrollmentRepo) querySummaries(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.EnrollmentSummary, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build enrollment query: %w", models.ErrStorage, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classifyError(err, "failed to query enrollments")
	}
	defer rows.Close()

	var summaries []*models.EnrollmentSummary
	for rows.Next() {
		var (
			s                   models.EnrollmentSummary
			first, middle, last   sql.NullString
		)
		if err := rows.Scan(&s.ID, &first, &middle, &last, &s.GradeLevel, &s.Strand); err != nil {
			return nil, classifyError(err, "failed to scan enrollment")
		}
		s.FullName = models.FullName(first.String, middle.String, last.String)
		summaries = append(summaries, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err, "failed to iterate enrollments")
	}
	return summaries, nil
}

func isFilterSet(value string) bool {
	return value != "" && value != models.FilterAll
}
