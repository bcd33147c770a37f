package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/app/models/dto"
	"github.com/campushub/registra/internal/app/services"
	"github.com/campushub/registra/internal/middleware"
	"github.com/campushub/registra/internal/pkg/apperrors"
)

// StudentController handles student record endpoints.
type StudentController struct {
	studentService *services.StudentService
	classification *services.ClassificationService
}

// NewStudentController creates a new student controller.
func NewStudentController(studentService *services.StudentService, classification *services.ClassificationService) *StudentController {
	return &StudentController{
		studentService: studentService,
		classification: classification,
	}
}

// GetStudents godoc
// @Summary List students
// @Description Returns all students with classification ranks, highest GPA first.
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse}
// @Router /students [get]
func (ctrl *StudentController) GetStudents(c *gin.Context) {
	students, err := ctrl.studentService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, toStudentResponse(student, ctrl.classification))
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(responses))
}

// GetStudent godoc
// @Summary Student details
// @Description Returns one student with their enrollments.
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentDetailResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /students/{id} [get]
func (ctrl *StudentController) GetStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	student, err := ctrl.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	enrollments, err := ctrl.studentService.GetEnrollments(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	detail := dto.StudentDetailResponse{
		StudentResponse: toStudentResponse(student, ctrl.classification),
		Enrollments:     make([]dto.EnrollmentResponse, 0, len(enrollments)),
	}
	for _, enrollment := range enrollments {
		detail.Enrollments = append(detail.Enrollments, toEnrollmentResponse(enrollment, ctrl.classification))
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(detail))
}

// CreateStudent godoc
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student data"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /students [post]
func (ctrl *StudentController) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	student := &models.Student{
		StudentCode:  req.StudentCode,
		FullName:     req.FullName,
		Email:        req.Email,
		Major:        req.Major,
		GPA:          req.GPA,
		TotalCredits: req.TotalCredits,
		DepartmentID: req.DepartmentID,
	}

	created, err := ctrl.studentService.Create(c.Request.Context(), student)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse(toStudentResponse(created, ctrl.classification)))
}

// UpdateStudent godoc
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Student data"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /students/{id} [put]
func (ctrl *StudentController) UpdateStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	updated, err := ctrl.studentService.Update(c.Request.Context(), id, &models.Student{
		FullName:     req.FullName,
		Email:        req.Email,
		Major:        req.Major,
		GPA:          req.GPA,
		TotalCredits: req.TotalCredits,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(toStudentResponse(updated, ctrl.classification)))
}

// DeleteStudent godoc
// @Summary Delete a student
// @Description Removes the student and their enrollments.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /students/{id} [delete]
func (ctrl *StudentController) DeleteStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.studentService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.MessageResponse{Message: "student deleted"}))
}

// parseIDParam parses a numeric path parameter, writing the error response
// on failure.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(c, apperrors.NewValidationError("invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}
