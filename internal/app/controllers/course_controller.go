package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/registra/internal/app/auth"
	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/app/models/dto"
	"github.com/campushub/registra/internal/app/services"
	"github.com/campushub/registra/internal/middleware"
)

// CourseController handles course and enrollment endpoints.
type CourseController struct {
	courseService     *services.CourseService
	enrollmentService *services.EnrollmentService
	classification    *services.ClassificationService
}

// NewCourseController creates a new course controller.
func NewCourseController(courseService *services.CourseService, enrollmentService *services.EnrollmentService, classification *services.ClassificationService) *CourseController {
	return &CourseController{
		courseService:     courseService,
		enrollmentService: enrollmentService,
		classification:    classification,
	}
}

// GetCourses godoc
// @Summary List courses
// @Description Returns all courses with their active enrollment counts.
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse}
// @Router /courses [get]
func (ctrl *CourseController) GetCourses(c *gin.Context) {
	courses, counts, err := ctrl.courseService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, toCourseResponse(course, counts[course.ID]))
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(responses))
}

// GetCourse godoc
// @Summary Course details
// @Description Returns one course with its roster and the students still
// @Description eligible to join. When the caller is linked to a student
// @Description record, callerEnrolled reflects it.
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseDetailResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{id} [get]
func (ctrl *CourseController) GetCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	identity := auth.CurrentIdentity(c)
	details, err := ctrl.courseService.GetDetails(c.Request.Context(), id, identity.StudentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	response := dto.CourseDetailResponse{
		CourseResponse:    toCourseResponse(details.Course, details.ActiveCount),
		EnrolledStudents:  make([]dto.StudentResponse, 0, len(details.EnrolledStudents)),
		AvailableStudents: make([]dto.StudentResponse, 0, len(details.AvailableStudents)),
		CallerEnrolled:    details.CallerEnrolled,
	}
	for _, student := range details.EnrolledStudents {
		response.EnrolledStudents = append(response.EnrolledStudents, toStudentResponse(student, ctrl.classification))
	}
	for _, student := range details.AvailableStudents {
		response.AvailableStudents = append(response.AvailableStudents, toStudentResponse(student, ctrl.classification))
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(response))
}

// CreateCourse godoc
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course data"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses [post]
func (ctrl *CourseController) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	created, err := ctrl.courseService.Create(c.Request.Context(), &models.Course{
		CourseCode:   req.CourseCode,
		Title:        req.Title,
		Description:  req.Description,
		Credits:      req.Credits,
		Instructor:   req.Instructor,
		Semester:     req.Semester,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		MaxStudents:  req.MaxStudents,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse(toCourseResponse(created, 0)))
}

// UpdateCourse godoc
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Course data"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{id} [put]
func (ctrl *CourseController) UpdateCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	updated, err := ctrl.courseService.Update(c.Request.Context(), id, &models.Course{
		Title:        req.Title,
		Description:  req.Description,
		Credits:      req.Credits,
		Instructor:   req.Instructor,
		Semester:     req.Semester,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		MaxStudents:  req.MaxStudents,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(toCourseResponse(updated, 0)))
}

// DeleteCourse godoc
// @Summary Delete a course
// @Description Removes the course, its enrollments and its sections.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{id} [delete]
func (ctrl *CourseController) DeleteCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.courseService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.MessageResponse{Message: "course deleted"}))
}

// AssignStudent godoc
// @Summary Enroll a student into a course
// @Description Business-rule rejections come back as a failed result with
// @Description HTTP 200, not as a transport error.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.AssignStudentRequest true "Target student"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResult}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{id}/enrollments [post]
func (ctrl *CourseController) AssignStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AssignStudentRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	result, err := ctrl.enrollmentService.AssignStudent(c.Request.Context(), auth.CurrentIdentity(c), id, req.StudentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(toEnrollmentResult(result)))
}

// EnrollSelf godoc
// @Summary Enroll the calling student into a course
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResult}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{id}/enrollments/self [post]
func (ctrl *CourseController) EnrollSelf(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := ctrl.enrollmentService.EnrollSelf(c.Request.Context(), auth.CurrentIdentity(c), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(toEnrollmentResult(result)))
}

// RemoveStudent godoc
// @Summary Remove a student from a course
// @Description Removing a student who is not enrolled succeeds without
// @Description changing anything.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResult}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{id}/enrollments/{studentId} [delete]
func (ctrl *CourseController) RemoveStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	studentID, ok := parseIDParam(c, "studentId")
	if !ok {
		return
	}

	result, err := ctrl.enrollmentService.RemoveStudent(c.Request.Context(), auth.CurrentIdentity(c), id, studentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(toEnrollmentResult(result)))
}
