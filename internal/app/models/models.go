package models

// RegistrationOutcome describes what happened to a single course code
// during a bulk registration
type RegistrationOutcome string

const (
	OutcomeRegistered        RegistrationOutcome = "REGISTERED"
	OutcomeCourseNotFound    RegistrationOutcome = "COURSE_NOT_FOUND"
	OutcomeCourseFull        RegistrationOutcome = "COURSE_FULL"
	OutcomeAlreadyRegistered RegistrationOutcome = "ALREADY_REGISTERED"
)

// RegistrationResult is the per-code result of a bulk registration
type RegistrationResult struct {
	CourseCode string              `json:"courseCode" example:"CS101"`
	Outcome    RegistrationOutcome `json:"outcome" example:"REGISTERED"`
	Course     *Course             `json:"course,omitempty"` // Snapshot after registration, nil when the course is unknown
}
