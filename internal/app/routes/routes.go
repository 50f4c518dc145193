package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	studentController *controllers.StudentController,
) {
	v1 := router.Group("/api/v1")

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:code", courseController.GetCourseByCode)
	}

	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.POST("", studentController.CreateStudent)
		students.GET("/:id", studentController.GetStudentByID)

		// Registrations of one student
		students.GET("/:id/courses", studentController.GetStudentCourses)
		students.POST("/:id/courses", studentController.RegisterCourse)
		students.DELETE("/:id/courses/:code", studentController.DropCourse)
	}
}
