package controllers

import (
	"github.com/gin-gonic/gin"
	"motolog-api/services"
	"motolog-api/utils"
)

type DashboardController struct {
	dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

func (dc *DashboardController) GetDashboard(c *gin.Context) {
	dashboard, err := dc.dashboard.Build(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err, "Motorcycle not found", "Failed to fetch dashboard data")
		return
	}

	utils.SendOK(c, dashboard)
}

// GetActivity returns services and events merged into one feed, newest first.
func (dc *DashboardController) GetActivity(c *gin.Context) {
	feed, err := dc.dashboard.Activity(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err, "Motorcycle not found", "Failed to fetch recent activity")
		return
	}

	utils.SendOK(c, feed)
}
