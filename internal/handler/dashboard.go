package handler

import (
	"net/http"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
}

func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/dashboard/informacion-general", h.informacionGeneral)
}

func (h *DashboardHandler) informacionGeneral(c *gin.Context) {
	resp, err := h.dashboard.InformacionGeneral(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
