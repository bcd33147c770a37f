package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/app/models/dto"
	"github.com/campushub/registra/internal/app/services"
	"github.com/campushub/registra/internal/middleware"
)

// InstructorController handles instructor endpoints.
type InstructorController struct {
	instructorService *services.InstructorService
}

// NewInstructorController creates a new instructor controller.
func NewInstructorController(instructorService *services.InstructorService) *InstructorController {
	return &InstructorController{instructorService: instructorService}
}

// GetInstructors godoc
// @Summary List instructors
// @Tags instructors
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.InstructorResponse}
// @Router /instructors [get]
func (ctrl *InstructorController) GetInstructors(c *gin.Context) {
	instructors, err := ctrl.instructorService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	responses := make([]dto.InstructorResponse, 0, len(instructors))
	for _, instructor := range instructors {
		responses = append(responses, toInstructorResponse(instructor))
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(responses))
}

// GetInstructor godoc
// @Summary Instructor details
// @Tags instructors
// @Produce json
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /instructors/{id} [get]
func (ctrl *InstructorController) GetInstructor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	instructor, err := ctrl.instructorService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(toInstructorResponse(instructor)))
}

// CreateInstructor godoc
// @Summary Create an instructor
// @Tags instructors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInstructorRequest true "Instructor data"
// @Success 201 {object} dto.APIResponse{data=dto.InstructorResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /instructors [post]
func (ctrl *InstructorController) CreateInstructor(c *gin.Context) {
	var req dto.CreateInstructorRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	created, err := ctrl.instructorService.Create(c.Request.Context(), &models.Instructor{
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse(toInstructorResponse(created)))
}

// UpdateInstructor godoc
// @Summary Update an instructor
// @Tags instructors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Instructor ID"
// @Param request body dto.UpdateInstructorRequest true "Instructor data"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /instructors/{id} [put]
func (ctrl *InstructorController) UpdateInstructor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateInstructorRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	updated, err := ctrl.instructorService.Update(c.Request.Context(), id, &models.Instructor{
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(toInstructorResponse(updated)))
}

// DeleteInstructor godoc
// @Summary Delete an instructor
// @Description Removes the instructor along with their class sections.
// @Tags instructors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /instructors/{id} [delete]
func (ctrl *InstructorController) DeleteInstructor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.instructorService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.MessageResponse{Message: "instructor deleted"}))
}
