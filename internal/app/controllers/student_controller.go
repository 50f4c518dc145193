package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// StudentController handles student and registration operations
type StudentController struct {
	registrationService services.RegistrationService
}

// NewStudentController creates a new StudentController
func NewStudentController(registrationService services.RegistrationService) *StudentController {
	return &StudentController{
		registrationService: registrationService,
	}
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Description Creates a student and optionally registers them for the listed courses.
// @Description Per-course failures are reported in the registrations list and do not fail the request.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.CreateStudentResponse} "Student created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 409 {object} dto.APIResponse "Student ID already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	student, results, err := c.registrationService.AddStudentWithCourses(ctx, req.ID, req.Name, req.Courses)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.CreateStudentResponse{
		Student:       dto.NewStudentResponse(student),
		Registrations: results,
	}, "Student created successfully"))
}

// GetAllStudents lists one page of students ordered by ID
// @Summary List students
// @Tags students
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Students retrieved successfully"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.registrationService.ListStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	pageItems, pagination := helpers.Paginate(students, page, size)

	resp := make([]dto.StudentResponse, 0, len(pageItems))
	for _, s := range pageItems {
		resp = append(resp, dto.NewStudentResponse(s))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedResponse{
		Items:      resp,
		Pagination: pagination,
	}, ""))
}

// GetStudentByID retrieves a student
// @Summary Get student details
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.registrationService.GetStudent(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewStudentResponse(student), ""))
}

// GetStudentCourses lists the courses a student is registered for
// @Summary List a student's courses
// @Description Courses are ordered by course code
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentCoursesResponse} "Courses retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id}/courses [get]
func (c *StudentController) GetStudentCourses(ctx *gin.Context) {
	studentID := ctx.Param("id")
	seq, err := c.registrationService.DisplayStudentCourses(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	student, err := c.registrationService.GetStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	courses := make([]dto.CourseResponse, 0)
	for course := range seq {
		courses = append(courses, dto.NewCourseResponse(course))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.StudentCoursesResponse{
		Student: dto.NewStudentResponse(student),
		Courses: courses,
	}, ""))
}

// RegisterCourse registers a student for a course
// @Summary Register for a course
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body dto.RegisterCourseRequest true "Course to register for"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Registration successful"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Student or course not found"
// @Failure 409 {object} dto.APIResponse "Course full or already registered"
// @Router /students/{id}/courses [post]
func (c *StudentController) RegisterCourse(ctx *gin.Context) {
	var req dto.RegisterCourseRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	course, err := c.registrationService.RegisterStudent(ctx, ctx.Param("id"), req.CourseCode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCourseResponse(*course), "Registration successful"))
}

// DropCourse removes a student from a course
// @Summary Drop a course
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Param code path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course dropped successfully"
// @Failure 404 {object} dto.APIResponse "Student or course not found"
// @Failure 409 {object} dto.APIResponse "Student is not registered for this course"
// @Router /students/{id}/courses/{code} [delete]
func (c *StudentController) DropCourse(ctx *gin.Context) {
	course, err := c.registrationService.DropCourse(ctx, ctx.Param("id"), ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCourseResponse(*course), "Course dropped successfully"))
}
