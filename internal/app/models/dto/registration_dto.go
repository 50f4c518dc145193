package dto

import "github.com/yigit/registrar/internal/app/models"

// CreateStudentRequest represents student creation data. Courses are
// optional codes to register for right after the student is created.
type CreateStudentRequest struct {
	ID      string   `json:"id" binding:"required,max=32" example:"S1"`
	Name    string   `json:"name" binding:"required,max=100" example:"Alice"`
	Courses []string `json:"courses" binding:"omitempty,dive,max=16" example:"CS101,MATH201"`
}

// RegisterCourseRequest represents a registration for one course
type RegisterCourseRequest struct {
	CourseCode string `json:"courseCode" binding:"required,max=16" example:"CS101"`
}

// CourseResponse represents a course with its seat information
type CourseResponse struct {
	Code        string `json:"code" example:"CS101"`
	Title       string `json:"title" example:"Introduction to Programming"`
	Description string `json:"description" example:"Learn the basics of programming."`
	Capacity    int    `json:"capacity" example:"30"`
	Enrolled    int    `json:"enrolled" example:"1"`
	Available   bool   `json:"available" example:"true"`
	SeatsLeft   int    `json:"seatsLeft" example:"30"`
}

// StudentResponse represents a student and their registered course codes
type StudentResponse struct {
	ID                string   `json:"id" example:"S1"`
	Name              string   `json:"name" example:"Alice"`
	RegisteredCourses []string `json:"registeredCourses" example:"CS101"`
}

// CreateStudentResponse is returned after a student is created
type CreateStudentResponse struct {
	Student       StudentResponse             `json:"student"`
	Registrations []models.RegistrationResult `json:"registrations"`
}

// StudentCoursesResponse lists the courses of one student
type StudentCoursesResponse struct {
	Student StudentResponse  `json:"student"`
	Courses []CourseResponse `json:"courses"`
}

// NewCourseResponse converts a course model
func NewCourseResponse(c models.Course) CourseResponse {
	return CourseResponse{
		Code:        c.Code,
		Title:       c.Title,
		Description: c.Description,
		Capacity:    c.Capacity,
		Enrolled:    c.Enrolled,
		Available:   c.IsAvailable(),
		SeatsLeft:   c.SeatsLeft(),
	}
}

// NewStudentResponse converts a student model
func NewStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		ID:                s.ID,
		Name:              s.Name,
		RegisteredCourses: s.RegisteredCourses.Codes(),
	}
}
