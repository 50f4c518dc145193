package seed

import (
	"errors"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/registrar/internal/app/models"
	appRepos "github.com/yigit/registrar/internal/app/repositories"
)

// DefaultCourses returns fresh copies of the seed catalog in catalog order.
func DefaultCourses() []*appModels.Course {
	return []*appModels.Course{
		appModels.NewCourse("CS101", "Introduction to Programming", "Learn the basics of programming.", 30),
		appModels.NewCourse("MATH201", "Calculus I", "An introduction to calculus.", 25),
		appModels.NewCourse("BIO301", "Biology Fundamentals", "Study the fundamentals of biology.", 20),
	}
}

// CreateDefaultData loads the seed catalog into the course repository.
// Courses that already exist are left alone.
func CreateDefaultData(courseRepo *appRepos.CourseRepository, lgr zerolog.Logger) error {
	lgr.Debug().Msg("Creating default course catalog...")
	var finalErr error

	for _, course := range DefaultCourses() {
		err := courseRepo.Create(course)
		if errors.Is(err, appRepos.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			lgr.Error().Err(err).Str("courseCode", course.Code).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Debug().Int("courses", courseRepo.Count()).Msg("Default course catalog ready")
	return finalErr
}
