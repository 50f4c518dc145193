package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
)

// CourseController handles catalog operations
type CourseController struct {
	registrationService services.RegistrationService
}

// NewCourseController creates a new CourseController
func NewCourseController(registrationService services.RegistrationService) *CourseController {
	return &CourseController{
		registrationService: registrationService,
	}
}

// GetAllCourses lists the catalog
// @Summary List courses
// @Description Lists every course of the catalog in catalog order
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses retrieved successfully"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses := make([]dto.CourseResponse, 0)
	for course := range c.registrationService.DisplayCourses(ctx) {
		courses = append(courses, dto.NewCourseResponse(course))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses, ""))
}

// GetCourseByCode retrieves a course by its code
// @Summary Get course details
// @Tags courses
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /courses/{code} [get]
func (c *CourseController) GetCourseByCode(ctx *gin.Context) {
	course, err := c.registrationService.GetCourse(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCourseResponse(*course), ""))
}
