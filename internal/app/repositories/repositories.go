package repositories

import "errors"

// Shared repository errors
var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists is returned when a record with the same key exists.
	ErrAlreadyExists = errors.New("record already exists")
)

// Repositories holds all the repository instances.
// None of them synchronise access; the registration service owns the lock.
type Repositories struct {
	CourseRepository  *CourseRepository
	StudentRepository *StudentRepository
}

// NewRepositories initializes all repositories
func NewRepositories() *Repositories {
	return &Repositories{
		CourseRepository:  NewCourseRepository(),
		StudentRepository: NewStudentRepository(),
	}
}
