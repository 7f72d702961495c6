package controllers

import (
	"github.com/gin-gonic/gin"

	"hiddengems/internal/services"
	"hiddengems/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

func (dc *DashboardController) GetStats(c *gin.Context) {
	stats, err := dc.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Dashboard stats fetched successfully")
}

func (dc *DashboardController) GetRecentActivity(c *gin.Context) {
	activity, err := dc.dashboardService.GetRecentActivity(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Recent activity fetched successfully")
}
