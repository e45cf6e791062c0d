package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"accverse/internal/models"
	"accverse/internal/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// @Summary      Main dashboard widgets (admin)
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Router       /dashboard/main_widgets [get]
func (h *DashboardHandler) MainWidgets(c *gin.Context) {
	data, err := h.dashboardService.MainWidgets()
	if err != nil {
		log.Printf("[dashboard][widgets] failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard data"})
		return
	}
	c.JSON(http.StatusOK, data)
}

// @Summary      Client growth over the last 6 months (admin)
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Router       /dashboard/client-growth [get]
func (h *DashboardHandler) ClientGrowth(c *gin.Context) {
	data, err := h.dashboardService.ClientGrowth()
	if err != nil {
		log.Printf("[dashboard][client-growth] failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch client growth data"})
		return
	}
	if data == nil {
		data = []models.ClientGrowthPoint{}
	}
	c.JSON(http.StatusOK, data)
}
