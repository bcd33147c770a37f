// Package routes wires the HTTP surface to the controllers.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/registra/internal/app/controllers"
	"github.com/campushub/registra/internal/middleware"
	pkgauth "github.com/campushub/registra/internal/pkg/auth"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth       *controllers.AuthController
	Student    *controllers.StudentController
	Course     *controllers.CourseController
	Department *controllers.DepartmentController
	Instructor *controllers.InstructorController
	Dashboard  *controllers.DashboardController
}

// RegisterRoutes mounts the API under /api/v1. Reads are public; mutations
// on records require a manager account; enrollment operations require any
// authenticated account, the role rules live in the service.
func RegisterRoutes(router *gin.Engine, ctrl Controllers, jwtService *pkgauth.JWTService) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	authn := middleware.JWTAuth(jwtService)
	optional := middleware.OptionalJWTAuth(jwtService)
	manager := middleware.ManagerRequired()

	auth := api.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/logout", ctrl.Auth.Logout)
		auth.GET("/me", authn, ctrl.Auth.Me)
	}

	students := api.Group("/students")
	{
		students.GET("", ctrl.Student.GetStudents)
		students.GET("/:id", ctrl.Student.GetStudent)
		students.POST("", authn, manager, ctrl.Student.CreateStudent)
		students.PUT("/:id", authn, manager, ctrl.Student.UpdateStudent)
		students.DELETE("/:id", authn, manager, ctrl.Student.DeleteStudent)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", ctrl.Course.GetCourses)
		courses.GET("/:id", optional, ctrl.Course.GetCourse)
		courses.POST("", authn, manager, ctrl.Course.CreateCourse)
		courses.PUT("/:id", authn, manager, ctrl.Course.UpdateCourse)
		courses.DELETE("/:id", authn, manager, ctrl.Course.DeleteCourse)

		courses.POST("/:id/enrollments", authn, ctrl.Course.AssignStudent)
		courses.POST("/:id/enrollments/self", authn, ctrl.Course.EnrollSelf)
		courses.DELETE("/:id/enrollments/:studentId", authn, ctrl.Course.RemoveStudent)
	}

	departments := api.Group("/departments")
	{
		departments.GET("", ctrl.Department.GetDepartments)
		departments.GET("/:id", ctrl.Department.GetDepartment)
		departments.POST("", authn, manager, ctrl.Department.CreateDepartment)
		departments.PUT("/:id", authn, manager, ctrl.Department.UpdateDepartment)
		departments.DELETE("/:id", authn, manager, ctrl.Department.DeleteDepartment)
	}

	instructors := api.Group("/instructors")
	{
		instructors.GET("", ctrl.Instructor.GetInstructors)
		instructors.GET("/:id", ctrl.Instructor.GetInstructor)
		instructors.POST("", authn, manager, ctrl.Instructor.CreateInstructor)
		instructors.PUT("/:id", authn, manager, ctrl.Instructor.UpdateInstructor)
		instructors.DELETE("/:id", authn, manager, ctrl.Instructor.DeleteInstructor)
	}

	api.GET("/dashboard", authn, ctrl.Dashboard.GetDashboard)
}
