package repositories

import (
	"fmt"
	"sort"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// StudentRepository keeps students in memory keyed by ID
type StudentRepository struct {
	students map[string]*models.Student
}

// NewStudentRepository creates an empty StudentRepository
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{
		students: make(map[string]*models.Student),
	}
}

// Create stores a new student. It fails with ErrAlreadyExists and leaves the
// stored student untouched when the ID is taken.
func (r *StudentRepository) Create(student *models.Student) error {
	if student == nil || student.ID == "" {
		return fmt.Errorf("invalid student: id is required")
	}
	if _, exists := r.students[student.ID]; exists {
		return fmt.Errorf("student %s: %w", student.ID, ErrAlreadyExists)
	}

	r.students[student.ID] = student
	logger.Debug().Str("studentId", student.ID).Msg("Student stored")
	return nil
}

// GetByID returns the stored student
func (r *StudentRepository) GetByID(id string) (*models.Student, error) {
	student, ok := r.students[id]
	if !ok {
		return nil, ErrNotFound
	}
	return student, nil
}

// GetAll returns every student ordered by ID
func (r *StudentRepository) GetAll() []*models.Student {
	students := make([]*models.Student, 0, len(r.students))
	for _, s := range r.students {
		students = append(students, s)
	}
	sort.Slice(students, func(i, j int) bool {
		return students[i].ID < students[j].ID
	})
	return students
}

// CountRegistered returns how many students are registered for code
func (r *StudentRepository) CountRegistered(code string) int {
	n := 0
	for _, s := range r.students {
		if s.IsRegistered(code) {
			n++
		}
	}
	return n
}
