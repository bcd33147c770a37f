package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/registra/internal/app/models/dto"
	"github.com/campushub/registra/internal/app/services"
	"github.com/campushub/registra/internal/middleware"
)

// DashboardController serves the aggregated landing view.
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new dashboard controller.
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary Dashboard aggregates
// @Description Returns headline counts, top students by GPA, per-department
// @Description summaries and distribution breakdowns.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse}
// @Router /dashboard [get]
func (ctrl *DashboardController) GetDashboard(c *gin.Context) {
	dashboard, err := ctrl.dashboardService.GetDashboard(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dashboard))
}
