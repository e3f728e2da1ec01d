package student

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/shsenroll/internal/database"
	"github.com/thenoetrevino/shsenroll/internal/models"
)

// Service defines all registration and enrollment business operations
type Service interface {
	// Registration reads
	ListRegistered(ctx context.Context) ([]*models.RegisteredStudent, error)
	GetRegistered(ctx context.Context, id string) (*models.RegisteredStudent, error)
	SearchRegistered(ctx context.Context, query string) ([]*models.RegisteredStudent, error)
	ListRegistrationStatus(ctx context.Context, query string) ([]*models.RegistrationStatus, error)

	// Registration writes
	RegisterStudent(ctx context.Context, req RegisterStudentRequest) (string, error)
	UpdateRegisteredStudent(ctx context.Context, req UpdateStudentRequest) error
	DeleteRegisteredStudent(ctx context.Context, id string) (bool, error)

	// Enrollment reads
	ListEnrolled(ctx context.Context) ([]*models.EnrollmentSummary, error)
	FilterEnrolled(ctx context.Context, filter EnrollmentFilter) ([]*models.EnrollmentSummary, error)

	// Enrollment writes
	EnrollStudent(ctx context.Context, req EnrollRequest) (string, error)
	UpdateEnrollment(ctx context.Context, req UpdateEnrollmentRequest) (bool, error)
	DropEnrollment(ctx context.Context, id string) (bool, error)

	// Derived data
	CalculateAge(birthDate string) (int, bool)
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
}

// Option configures a service
type Option func(*service)

// WithClock sets the time source used for age calculation
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// WithLogger sets the logger used for failed mutations
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// service implements Service interface
type service struct {
	repo     database.DataStore
	notifier Notifier
	validate *validator.Validate
	now      func() time.Time
	logger   *slog.Logger
}

// NewService creates a new student service. A nil notifier discards
// notifications.
func NewService(repo database.DataStore, notifier Notifier, opts ...Option) Service {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	s := &service{
		repo:     repo,
		notifier: notifier,
		validate: newValidator(),
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ============================================================================
// REGISTRATION
// ============================================================================

// ListRegistered retrieves every registered student
func (s *service) ListRegistered(ctx context.Context) ([]*models.RegisteredStudent, error) {
	students, err := s.repo.GetAllRegistered(ctx)
	if err != nil {
		return nil, err
	}
	s.refreshAges(students)
	return students, nil
}

// GetRegistered retrieves a student by id.
// Returns an error matching models.ErrNotFound when absent.
func (s *service) GetRegistered(ctx context.Context, id string) (*models.RegisteredStudent, error) {
	id = strings.TrimSpace(id)
	student, err := s.repo.GetRegistered(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, fmt.Errorf("%w: student %s", models.ErrNotFound, id)
	}
	s.refreshAges([]*models.RegisteredStudent{student})
	return student, nil
}

// SearchRegistered finds students by id, name or contact details
func (s *service) SearchRegistered(ctx context.Context, query string) ([]*models.RegisteredStudent, error) {
	students, err := s.repo.SearchRegistered(ctx, query)
	if err != nil {
		return nil, err
	}
	s.refreshAges(students)
	return students, nil
}

// ListRegistrationStatus lists students with whether each is enrolled
func (s *service) ListRegistrationStatus(ctx context.Context, query string) ([]*models.RegistrationStatus, error) {
	statuses, err := s.repo.GetRegistrationStatuses(ctx, query)
	if err != nil {
		return nil, err
	}
	for _, st := range statuses {
		if age, ok := s.CalculateAge(st.BirthDate); ok {
			st.Age = age
		}
	}
	return statuses, nil
}

// RegisterStudent validates and stores a new student, returning its id
func (s *service) RegisterStudent(ctx context.Context, req RegisterStudentRequest) (string, error) {
	req = req.normalized()

	age, err := s.validateStudent(req, req.BirthDate)
	if err != nil {
		return "", s.reject(err)
	}

	id, err := s.repo.AddRegistered(ctx, req.toModel("", age))
	if err != nil {
		s.logger.Warn("failed to register student", "last_name", req.LastName, "error", err)
		s.notifier.Notify(KindError, storageTitle(err), "Failed to register student: "+err.Error())
		return "", fmt.Errorf("failed to register student: %w", err)
	}

	s.notifier.Notify(KindInfo, "Success", "Student registered successfully!")
	return id, nil
}

// UpdateRegisteredStudent overwrites a registration after validation
func (s *service) UpdateRegisteredStudent(ctx context.Context, req UpdateStudentRequest) error {
	req = req.normalized()

	age, err := s.validateStudent(req, req.BirthDate)
	if err != nil {
		return s.reject(err)
	}

	updated, err := s.repo.UpdateRegistered(ctx, req.ID, req.toModel(req.ID, age))
	if err != nil {
		s.logger.Warn("failed to update student", "student_id", req.ID, "error", err)
		s.notifier.Notify(KindError, storageTitle(err), "Failed to update student: "+err.Error())
		return fmt.Errorf("failed to update student: %w", err)
	}
	if !updated {
		s.notifier.Notify(KindWarning, "Not Found", "Student not found!")
		return fmt.Errorf("%w: student %s", models.ErrNotFound, req.ID)
	}

	s.notifier.Notify(KindInfo, "Success", "Student information updated successfully!")
	return nil
}

// DeleteRegisteredStudent removes a registration that has no enrollment.
// Enrolled students are refused with models.ErrDeletionBlocked.
func (s *service) DeleteRegisteredStudent(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if err := s.validateID(id); err != nil {
		return false, s.reject(err)
	}

	deleted, err := s.repo.DeleteRegistered(ctx, id)
	switch {
	case errors.Is(err, models.ErrDeletionBlocked):
		s.notifier.Notify(KindWarning, "Cannot Delete", "This student is currently enrolled. Drop student first.")
		return false, err
	case err != nil:
		s.logger.Warn("failed to delete student", "student_id", id, "error", err)
		s.notifier.Notify(KindError, "Error", "Deletion failed: "+err.Error())
		return false, fmt.Errorf("failed to delete student: %w", err)
	case !deleted:
		s.notifier.Notify(KindWarning, "Not Found", "Student not found!")
		return false, fmt.Errorf("%w: student %s", models.ErrNotFound, id)
	}

	s.notifier.Notify(KindInfo, "Deleted", "Student information deleted successfully!")
	return true, nil
}

// ============================================================================
// ENROLLMENT
// ============================================================================

// ListEnrolled retrieves every enrollment with the student's full name
func (s *service) ListEnrolled(ctx context.Context) ([]*models.EnrollmentSummary, error) {
	return s.repo.GetAllEnrolled(ctx)
}

// FilterEnrolled retrieves enrollments matching the filter
func (s *service) FilterEnrolled(ctx context.Context, filter EnrollmentFilter) ([]*models.EnrollmentSummary, error) {
	return s.repo.FilterEnrolled(ctx,
		strings.TrimSpace(filter.GradeLevel),
		strings.TrimSpace(filter.Strand))
}

// EnrollStudent enrolls a registered student in a grade level and strand.
// A missing registration matches models.ErrNotFound and a second enrollment
// matches models.ErrConstraint.
func (s *service) EnrollStudent(ctx context.Context, req EnrollRequest) (string, error) {
	req = req.normalized()
	if err := s.validateEnrollment(req); err != nil {
		return "", s.reject(err)
	}

	id, err := s.repo.Enroll(ctx, &models.EnrolledStudent{
		ID:         req.StudentID,
		GradeLevel: req.GradeLevel,
		Strand:     req.Strand,
	})
	switch {
	case errors.Is(err, models.ErrNotFound):
		s.notifier.Notify(KindError, "Enrollment Error",
			fmt.Sprintf("No registered student with ID %s.", req.StudentID))
		return "", err
	case errors.Is(err, models.ErrConstraint):
		s.notifier.Notify(KindWarning, "Already Enrolled", "Student Already Enrolled")
		return "", err
	case err != nil:
		s.logger.Warn("failed to enroll student", "student_id", req.StudentID, "error", err)
		s.notifier.Notify(KindError, "Database Error", "Failed to enroll student: "+err.Error())
		return "", fmt.Errorf("failed to enroll student: %w", err)
	}

	s.notifier.Notify(KindInfo, "Success", "Student successfully enrolled!")
	return id, nil
}

// UpdateEnrollment changes the grade level and strand of an enrollment
func (s *service) UpdateEnrollment(ctx context.Context, req UpdateEnrollmentRequest) (bool, error) {
	req = req.normalized()
	if err := s.validateEnrollment(req); err != nil {
		return false, s.reject(err)
	}

	updated, err := s.repo.UpdateEnrollment(ctx, req.StudentID, req.GradeLevel, req.Strand)
	if err != nil {
		s.logger.Warn("failed to update enrollment", "student_id", req.StudentID, "error", err)
		s.notifier.Notify(KindError, "Error", "Update failed: "+err.Error())
		return false, fmt.Errorf("failed to update enrollment: %w", err)
	}
	if !updated {
		s.notifier.Notify(KindWarning, "Not Found", "Enrollment not found!")
		return false, fmt.Errorf("%w: enrollment %s", models.ErrNotFound, req.StudentID)
	}

	s.notifier.Notify(KindInfo, "Updated", "Student updated successfully!")
	return true, nil
}

// DropEnrollment removes an enrollment, keeping the registration
func (s *service) DropEnrollment(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if err := s.validateID(id); err != nil {
		return false, s.reject(err)
	}

	dropped, err := s.repo.DeleteEnrollment(ctx, id)
	if err != nil {
		s.logger.Warn("failed to drop enrollment", "student_id", id, "error", err)
		s.notifier.Notify(KindError, "Error", "Deletion failed: "+err.Error())
		return false, fmt.Errorf("failed to drop enrollment: %w", err)
	}
	if !dropped {
		s.notifier.Notify(KindWarning, "Not Found", "Enrollment not found!")
		return false, fmt.Errorf("%w: enrollment %s", models.ErrNotFound, id)
	}

	s.notifier.Notify(KindInfo, "Student dropped", "Student record dropped successfully!")
	return true, nil
}

// ============================================================================
// DERIVED DATA
// ============================================================================

// CalculateAge returns whole years since birthDate (YYYY-MM-DD) as of the
// service clock. Future dates give a negative age.
func (s *service) CalculateAge(birthDate string) (int, bool) {
	return ageOn(birthDate, s.now())
}

// refreshAges recomputes Age from BirthDate, leaving unparseable rows as stored
func (s *service) refreshAges(students []*models.RegisteredStudent) {
	for _, st := range students {
		if age, ok := s.CalculateAge(st.BirthDate); ok {
			st.Age = age
		}
	}
}

// reject reports a validation failure and returns it unchanged
func (s *service) reject(err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		s.notifier.Notify(KindWarning, verr.Title, verr.Message)
		return err
	}
	s.notifier.Notify(KindError, "Error", err.Error())
	return err
}

// storageTitle picks the notification title for a failed registration write
func storageTitle(err error) string {
	if errors.Is(err, models.ErrConstraint) {
		return "Repository Error"
	}
	return "Database Error"
}
