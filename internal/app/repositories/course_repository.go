package repositories

import (
	"fmt"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// CourseRepository keeps the course catalog in memory, remembering insertion order
type CourseRepository struct {
	courses map[string]*models.Course
	order   []string
}

// NewCourseRepository creates an empty CourseRepository
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		courses: make(map[string]*models.Course),
	}
}

// Create adds a course to the catalog
func (r *CourseRepository) Create(course *models.Course) error {
	if course == nil || course.Code == "" {
		return fmt.Errorf("invalid course: code is required")
	}
	if _, exists := r.courses[course.Code]; exists {
		return fmt.Errorf("course %s: %w", course.Code, ErrAlreadyExists)
	}

	r.courses[course.Code] = course
	r.order = append(r.order, course.Code)
	logger.Debug().Str("courseCode", course.Code).Int("capacity", course.Capacity).Msg("Course added to catalog")
	return nil
}

// GetByCode returns the stored course. The pointer is live; callers outside
// the service layer must not mutate it.
func (r *CourseRepository) GetByCode(code string) (*models.Course, error) {
	course, ok := r.courses[code]
	if !ok {
		return nil, ErrNotFound
	}
	return course, nil
}

// GetAll returns the stored courses in catalog order
func (r *CourseRepository) GetAll() []*models.Course {
	courses := make([]*models.Course, 0, len(r.order))
	for _, code := range r.order {
		courses = append(courses, r.courses[code])
	}
	return courses
}

// Count returns the number of courses in the catalog
func (r *CourseRepository) Count() int {
	return len(r.order)
}
