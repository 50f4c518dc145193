package services

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/seed"
)

// RegistrationService defines the operations that relate students to courses
type RegistrationService interface {
	AddStudent(ctx context.Context, id, name string) (*models.Student, error)
	AddStudentWithCourses(ctx context.Context, id, name string, courseCodes []string) (*models.Student, []models.RegistrationResult, error)
	RegisterStudent(ctx context.Context, studentID, courseCode string) (*models.Course, error)
	DropCourse(ctx context.Context, studentID, courseCode string) (*models.Course, error)
	DisplayCourses(ctx context.Context) iter.Seq[models.Course]
	DisplayStudentCourses(ctx context.Context, studentID string) (iter.Seq[models.Course], error)
	GetCourse(ctx context.Context, code string) (*models.Course, error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	ListStudents(ctx context.Context) ([]*models.Student, error)
}

// registrationServiceImpl implements RegistrationService.
// mu guards every course and student record; each register/drop applies the
// student-set change and the enrolled-count change inside one critical section.
type registrationServiceImpl struct {
	mu          sync.RWMutex
	courseRepo  *repositories.CourseRepository
	studentRepo *repositories.StudentRepository
	logger      zerolog.Logger
}

// NewRegistrationService creates the registration service. An empty course
// repository is filled with the seed catalog first.
func NewRegistrationService(repos *repositories.Repositories, lgr zerolog.Logger) (RegistrationService, error) {
	if repos.CourseRepository.Count() == 0 {
		if err := seed.CreateDefaultData(repos.CourseRepository, lgr); err != nil {
			return nil, fmt.Errorf("failed to load course catalog: %w", err)
		}
	}

	return &registrationServiceImpl{
		courseRepo:  repos.CourseRepository,
		studentRepo: repos.StudentRepository,
		logger:      lgr.With().Str("component", "registration").Logger(),
	}, nil
}

// AddStudent creates a student with no registered courses
func (s *registrationServiceImpl) AddStudent(ctx context.Context, id, name string) (*models.Student, error) {
	student, _, err := s.AddStudentWithCourses(ctx, id, name, nil)
	return student, err
}

// AddStudentWithCourses creates a student and then tries to register them for
// each given code. Per-code failures are reported in the results and do not
// fail the call; blank codes are skipped.
func (s *registrationServiceImpl) AddStudentWithCourses(ctx context.Context, id, name string, courseCodes []string) (*models.Student, []models.RegistrationResult, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" {
		return nil, nil, apperrors.NewValidationError("student ID cannot be empty")
	}
	if name == "" {
		return nil, nil, apperrors.NewValidationError("student name cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	student := models.NewStudent(id, name)
	if err := s.studentRepo.Create(student); err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			s.logger.Info().Str("studentId", id).Msg("Rejected duplicate student ID")
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrDuplicateID, id)
		}
		return nil, nil, fmt.Errorf("error creating student: %w", err)
	}
	s.logger.Info().Str("studentId", id).Msg("Student added")

	results := make([]models.RegistrationResult, 0, len(courseCodes))
	for _, code := range courseCodes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		result := models.RegistrationResult{CourseCode: code}
		course, err := s.registerLocked(student, code)
		switch {
		case err == nil:
			result.Outcome = models.OutcomeRegistered
		case errors.Is(err, apperrors.ErrCourseNotFound):
			result.Outcome = models.OutcomeCourseNotFound
		case errors.Is(err, apperrors.ErrCourseFull):
			result.Outcome = models.OutcomeCourseFull
		case errors.Is(err, apperrors.ErrAlreadyRegistered):
			result.Outcome = models.OutcomeAlreadyRegistered
		default:
			return nil, nil, err
		}
		result.Course = course
		results = append(results, result)
	}

	return student.Clone(), results, nil
}

// RegisterStudent registers a student for a course and returns the course
// as it stands afterwards
func (s *registrationServiceImpl) RegisterStudent(ctx context.Context, studentID, courseCode string) (*models.Course, error) {
	studentID = strings.TrimSpace(studentID)
	courseCode = strings.TrimSpace(courseCode)

	s.mu.Lock()
	defer s.mu.Unlock()

	student, err := s.studentRepo.GetByID(studentID)
	if err != nil {
		return nil, s.studentNotFound(studentID)
	}

	return s.registerLocked(student, courseCode)
}

// registerLocked performs the checks and both mutations of a registration.
// The caller must hold mu. On failure the returned course is a snapshot of
// the unchanged course, or nil when it does not exist.
func (s *registrationServiceImpl) registerLocked(student *models.Student, courseCode string) (*models.Course, error) {
	course, err := s.courseRepo.GetByCode(courseCode)
	if err != nil {
		return nil, s.courseNotFound(courseCode)
	}

	if student.IsRegistered(courseCode) {
		s.logger.Info().Str("studentId", student.ID).Str("courseCode", courseCode).Msg("Rejected repeat registration")
		return snapshot(course), fmt.Errorf("%w: %s", apperrors.ErrAlreadyRegistered, courseCode)
	}

	if !course.IsAvailable() {
		s.logger.Info().Str("studentId", student.ID).Str("courseCode", courseCode).Int("capacity", course.Capacity).Msg("Rejected registration, course full")
		return snapshot(course), apperrors.NewCustomError(apperrors.ErrCourseFull, fmt.Sprintf("course %s is full", courseCode)).
			WithCode("REG_001").
			WithDetails(map[string]interface{}{
				"courseCode": courseCode,
				"capacity":   course.Capacity,
			})
	}

	student.RegisterCourse(courseCode)
	course.EnrollStudent()

	s.logEnrollment("Student registered", student.ID, course)
	return snapshot(course), nil
}

// DropCourse removes a student from a course and returns the course as it
// stands afterwards
func (s *registrationServiceImpl) DropCourse(ctx context.Context, studentID, courseCode string) (*models.Course, error) {
	studentID = strings.TrimSpace(studentID)
	courseCode = strings.TrimSpace(courseCode)

	s.mu.Lock()
	defer s.mu.Unlock()

	student, err := s.studentRepo.GetByID(studentID)
	if err != nil {
		return nil, s.studentNotFound(studentID)
	}

	course, err := s.courseRepo.GetByCode(courseCode)
	if err != nil {
		return nil, s.courseNotFound(courseCode)
	}

	if !student.IsRegistered(courseCode) {
		s.logger.Info().Str("studentId", studentID).Str("courseCode", courseCode).Msg("Rejected drop, not registered")
		return snapshot(course), apperrors.NewCustomError(apperrors.ErrNotRegistered, fmt.Sprintf("student %s is not registered for %s", studentID, courseCode)).
			WithCode("REG_002")
	}

	student.DropCourse(courseCode)
	course.DropStudent()

	s.logEnrollment("Course dropped", studentID, course)
	return snapshot(course), nil
}

// DisplayCourses returns the catalog in catalog order. Nothing is read until
// the sequence is ranged over, and every range reads the current state.
func (s *registrationServiceImpl) DisplayCourses(ctx context.Context) iter.Seq[models.Course] {
	return func(yield func(models.Course) bool) {
		s.mu.RLock()
		courses := s.courseRepo.GetAll()
		snapshots := make([]models.Course, 0, len(courses))
		for _, c := range courses {
			snapshots = append(snapshots, *c)
		}
		s.mu.RUnlock()

		for _, c := range snapshots {
			if !yield(c) {
				return
			}
		}
	}
}

// DisplayStudentCourses returns the courses a student is registered for,
// ordered by course code
func (s *registrationServiceImpl) DisplayStudentCourses(ctx context.Context, studentID string) (iter.Seq[models.Course], error) {
	studentID = strings.TrimSpace(studentID)

	s.mu.RLock()
	student, err := s.studentRepo.GetByID(studentID)
	s.mu.RUnlock()
	if err != nil {
		return nil, s.studentNotFound(studentID)
	}

	return func(yield func(models.Course) bool) {
		s.mu.RLock()
		codes := student.RegisteredCourses.Codes()
		snapshots := make([]models.Course, 0, len(codes))
		for _, code := range codes {
			course, err := s.courseRepo.GetByCode(code)
			if err != nil {
				// registration only ever records catalog codes
				s.logger.Error().Str("studentId", studentID).Str("courseCode", code).Msg("Registered course missing from catalog")
				continue
			}
			snapshots = append(snapshots, *course)
		}
		s.mu.RUnlock()

		for _, c := range snapshots {
			if !yield(c) {
				return
			}
		}
	}, nil
}

// GetCourse returns a snapshot of one course
func (s *registrationServiceImpl) GetCourse(ctx context.Context, code string) (*models.Course, error) {
	code = strings.TrimSpace(code)

	s.mu.RLock()
	defer s.mu.RUnlock()

	course, err := s.courseRepo.GetByCode(code)
	if err != nil {
		return nil, s.courseNotFound(code)
	}
	return snapshot(course), nil
}

// GetStudent returns a copy of one student
func (s *registrationServiceImpl) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	id = strings.TrimSpace(id)

	s.mu.RLock()
	defer s.mu.RUnlock()

	student, err := s.studentRepo.GetByID(id)
	if err != nil {
		return nil, s.studentNotFound(id)
	}
	return student.Clone(), nil
}

// ListStudents returns copies of all students ordered by ID
func (s *registrationServiceImpl) ListStudents(ctx context.Context) ([]*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.studentRepo.GetAll()
	students := make([]*models.Student, 0, len(stored))
	for _, st := range stored {
		students = append(students, st.Clone())
	}
	return students, nil
}

// logEnrollment logs a course's counter next to the number of students that
// hold its code. Both must agree after every register and drop. The caller
// must hold mu.
func (s *registrationServiceImpl) logEnrollment(msg, studentID string, course *models.Course) {
	event := s.logger.Debug()
	if !event.Enabled() {
		return
	}

	registered := s.studentRepo.CountRegistered(course.Code)
	if registered != course.Enrolled {
		s.logger.Error().Str("courseCode", course.Code).Int("enrolled", course.Enrolled).Int("registered", registered).Msg("Enrolled count out of step with registrations")
	}
	event.Str("studentId", studentID).Str("courseCode", course.Code).Int("enrolled", course.Enrolled).Int("registered", registered).Msg(msg)
}

func (s *registrationServiceImpl) studentNotFound(id string) error {
	s.logger.Debug().Str("studentId", id).Msg("Student not found")
	return fmt.Errorf("%w: %s", apperrors.ErrStudentNotFound, id)
}

func (s *registrationServiceImpl) courseNotFound(code string) error {
	s.logger.Debug().Str("courseCode", code).Msg("Course not found")
	return fmt.Errorf("%w: %s", apperrors.ErrCourseNotFound, code)
}

func snapshot(c *models.Course) *models.Course {
	cp := *c
	return &cp
}
