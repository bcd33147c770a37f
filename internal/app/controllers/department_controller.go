package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/app/models/dto"
	"github.com/campushub/registra/internal/app/services"
	"github.com/campushub/registra/internal/middleware"
)

// DepartmentController handles department endpoints.
type DepartmentController struct {
	departmentService *services.DepartmentService
}

// NewDepartmentController creates a new department controller.
func NewDepartmentController(departmentService *services.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// GetDepartments godoc
// @Summary List departments
// @Tags departments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.DepartmentResponse}
// @Router /departments [get]
func (ctrl *DepartmentController) GetDepartments(c *gin.Context) {
	departments, err := ctrl.departmentService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	responses := make([]dto.DepartmentResponse, 0, len(departments))
	for _, department := range departments {
		responses = append(responses, *toDepartmentResponse(department))
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(responses))
}

// GetDepartment godoc
// @Summary Department details
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=dto.DepartmentResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /departments/{id} [get]
func (ctrl *DepartmentController) GetDepartment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	department, err := ctrl.departmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(toDepartmentResponse(department)))
}

// CreateDepartment godoc
// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDepartmentRequest true "Department data"
// @Success 201 {object} dto.APIResponse{data=dto.DepartmentResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /departments [post]
func (ctrl *DepartmentController) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	created, err := ctrl.departmentService.Create(c.Request.Context(), &models.Department{
		Name:           req.Name,
		Faculty:        req.Faculty,
		OfficeLocation: req.OfficeLocation,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse(toDepartmentResponse(created)))
}

// UpdateDepartment godoc
// @Summary Update a department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param request body dto.UpdateDepartmentRequest true "Department data"
// @Success 200 {object} dto.APIResponse{data=dto.DepartmentResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /departments/{id} [put]
func (ctrl *DepartmentController) UpdateDepartment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	updated, err := ctrl.departmentService.Update(c.Request.Context(), id, &models.Department{
		Name:           req.Name,
		Faculty:        req.Faculty,
		OfficeLocation: req.OfficeLocation,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(toDepartmentResponse(updated)))
}

// DeleteDepartment godoc
// @Summary Delete a department
// @Description Records referencing the department keep existing with the
// @Description link cleared.
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /departments/{id} [delete]
func (ctrl *DepartmentController) DeleteDepartment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.departmentService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.MessageResponse{Message: "department deleted"}))
}
