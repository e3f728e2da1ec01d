package database

// DataStore defines the unified interface for all data operations needed by the services.
// It is composed of smaller, domain-specific interfaces so consumers can depend
// on only what they use (e.g., StudentReader for read-only views).
type DataStore interface {
	StudentRepository
	EnrollmentRepository
}
