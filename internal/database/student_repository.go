package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/thenoetrevino/shsenroll/internal/models"
)

// StudentRepo handles all registered-student database operations.
type StudentRepo struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// studentColumns is the column order scanned by scanStudent
var studentColumns = []string{
	"id", "first_name", "middle_name", "last_name", "gender", "birth_date",
	"age", "contact", "guardian_name", "guardian_contact",
}

// searchColumns are the columns matched by SearchRegistered
var searchColumns = []string{
	"id", "first_name", "middle_name", "last_name",
	"contact", "guardian_name", "guardian_contact",
}

type rowScanner interface {
	Scan(dest ...any) error
}

// AddRegistered inserts a student, generating the next id when none is set.
// Id generation and insert share one transaction.
func (r *StudentRepo) AddRegistered(ctx context.Context, student *models.RegisteredStudent) (string, error) {
	var newID string
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		newID = strings.TrimSpace(student.ID)
		if newID == "" {
			generated, err := generateStudentID(ctx, tx)
			if err != nil {
				return err
			}
			newID = generated
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO registered_students
			(id, first_name, middle_name, last_name, gender, birth_date, age, contact, guardian_name, guardian_contact)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			newID,
			strings.TrimSpace(student.FirstName),
			nullIfEmpty(student.MiddleName),
			strings.TrimSpace(student.LastName),
			strings.TrimSpace(student.Gender),
			nullIfEmpty(student.BirthDate),
			student.Age,
			nullIfEmpty(student.Contact),
			nullIfEmpty(student.GuardianName),
			nullIfEmpty(student.GuardianContact),
		)
		if err != nil {
			return classifyError(err, fmt.Sprintf("failed to insert student %s", newID))
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return newID, nil
}

// GetAllRegistered retrieves every registered student ordered by id
func (r *StudentRepo) GetAllRegistered(ctx context.Context) ([]*models.RegisteredStudent, error) {
	return r.queryStudents(ctx, r.sb.Select(studentColumns...).
		From("registered_students").
		OrderBy("id"))
}

// GetRegistered retrieves a student by id, returning nil when absent
func (r *StudentRepo) GetRegistered(ctx context.Context, id string) (*models.RegisteredStudent, error) {
	query, args, err := r.sb.Select(studentColumns...).
		From("registered_students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build student query: %w", models.ErrStorage, err)
	}

	student, err := scanStudent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classifyError(err, fmt.Sprintf("failed to get student %s", id))
	}
	return student, nil
}

// SearchRegistered returns students whose id, names, contact, guardian name or
// guardian contact contain query. Matching is case-sensitive.
func (r *StudentRepo) SearchRegistered(ctx context.Context, query string) ([]*models.RegisteredStudent, error) {
	builder := r.sb.Select(studentColumns...).
		From("registered_students").
		OrderBy("id")
	if query != "" {
		builder = builder.Where(searchCondition(query, ""))
	}
	return r.queryStudents(ctx, builder)
}

// GetRegistrationStatuses lists students with their enrollment flag.
// A non-empty query applies the same matching as SearchRegistered.
func (r *StudentRepo) GetRegistrationStatuses(ctx context.Context, query string) ([]*models.RegistrationStatus, error) {
	columns := make([]string, 0, len(studentColumns)+1)
	for _, c := range studentColumns {
		columns = append(columns, "r."+c)
	}
	columns = append(columns, "e.id IS NOT NULL")

	builder := r.sb.Select(columns...).
		From("registered_students r").
		LeftJoin("enrolled_students e ON e.id = r.id").
		OrderBy("r.id")
	if query != "" {
		builder = builder.Where(searchCondition(query, "r."))
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build status query: %w", models.ErrStorage, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, classifyError(err, "failed to list registration statuses")
	}
	defer rows.Close()

	var statuses []*models.RegistrationStatus
	for rows.Next() {
		var (
			status   models.RegistrationStatus
			enrolled bool
		)
		student, err := scanStudent(rows, &enrolled)
		if err != nil {
			return nil, classifyError(err, "failed to scan registration status")
		}
		status.RegisteredStudent = *student
		status.Enrolled = enrolled
		statuses = append(statuses, &status)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err, "failed to iterate registration statuses")
	}
	return statuses, nil
}

// CountRegistered returns the number of registered students
func (r *StudentRepo) CountRegistered(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM registered_students`).Scan(&count); err != nil {
		return 0, classifyError(err, "failed to count students")
	}
	return count, nil
}

// UpdateRegistered overwrites every mutable field of a student.
// Returns false when no row has the given id.
func (r *StudentRepo) UpdateRegistered(ctx context.Context, id string, student *models.RegisteredStudent) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE registered_students SET
		first_name = ?, middle_name = ?, last_name = ?, gender = ?,
		birth_date = ?, age = ?, contact = ?, guardian_name = ?, guardian_contact = ?
		WHERE id = ?`,
		strings.TrimSpace(student.FirstName),
		nullIfEmpty(student.MiddleName),
		strings.TrimSpace(student.LastName),
		strings.TrimSpace(student.Gender),
		nullIfEmpty(student.BirthDate),
		student.Age,
		nullIfEmpty(student.Contact),
		nullIfEmpty(student.GuardianName),
		nullIfEmpty(student.GuardianContact),
		id,
	)
	if err != nil {
		return false, classifyError(err, fmt.Sprintf("failed to update student %s", id))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, classifyError(err, "failed to read affected rows")
	}
	return affected > 0, nil
}

// DeleteRegistered removes a student that has no enrollment.
// The enrollment check and the delete share one transaction.
func (r *StudentRepo) DeleteRegistered(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var enrolled bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM enrolled_students WHERE id = ?)`, id,
		).Scan(&enrolled)
		if err != nil {
			return classifyError(err, fmt.Sprintf("failed to check enrollment of %s", id))
		}
		if enrolled {
			return fmt.Errorf("%w: %s", models.ErrDeletionBlocked, id)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM registered_students WHERE id = ?`, id)
		if err != nil {
			return classifyError(err, fmt.Sprintf("failed to delete student %s", id))
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return classifyError(err, "failed to read affected rows")
		}
		deleted = affected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// queryStudents runs a student select and scans every row
func (r *StudentRepo) queryStudents(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.RegisteredStudent, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build student query: %w", models.ErrStorage, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classifyError(err, "failed to query students")
	}
	defer rows.Close()

	var students []*models.RegisteredStudent
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, classifyError(err, "failed to scan student")
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err, "failed to iterate students")
	}
	return students, nil
}

// searchCondition ORs a case-sensitive substring test over searchColumns.
// instr is used instead of LIKE, which folds ASCII case and treats % and _
// as wildcards.
func searchCondition(query, prefix string) squirrel.Or {
	cond := squirrel.Or{}
	for _, c := range searchColumns {
		cond = append(cond, squirrel.Expr("instr("+prefix+c+", ?) > 0", query))
	}
	return cond
}

// scanStudent scans studentColumns followed by any extra destinations
func scanStudent(row rowScanner, extra ...any) (*models.RegisteredStudent, error) {
	var (
		s               models.RegisteredStudent
		middleName      sql.NullString
		gender          sql.NullString
		birthDate       sql.NullString
		age             sql.NullInt64
		contact         sql.NullString
		guardianName    sql.NullString
		guardianContact sql.NullString
	)

	dest := []any{
		&s.ID, &s.FirstName, &middleName, &s.LastName, &gender, &birthDate,
		&age, &contact, &guardianName, &guardianContact,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	s.MiddleName = NullStringToString(middleName)
	s.Gender = NullStringToString(gender)
	s.BirthDate = NullStringToString(birthDate)
	s.Age = nullInt64ToInt(age)
	s.Contact = NullStringToString(contact)
	s.GuardianName = NullStringToString(guardianName)
	s.GuardianContact = NullStringToString(guardianContact)
	return &s, nil
}
