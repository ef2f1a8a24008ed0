package handler

import (
	"net/http"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/dto"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/service"

	"github.com/gin-gonic/gin"
)

type VentaHandler struct {
	ventas *service.VentaService
}

func NewVentaHandler(ventas *service.VentaService) *VentaHandler {
	return &VentaHandler{ventas: ventas}
}

func (h *VentaHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/sales")
	g.POST("/procesar-venta", h.procesarVenta)
	g.GET("/obtener-venta/:id", h.obtenerVenta)
	g.POST("/anular-venta/:id", h.anularVenta)
}

func (h *VentaHandler) procesarVenta(c *gin.Context) {
	var req dto.CrearVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	venta, err := h.ventas.ProcesarVenta(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, venta)
}

func (h *VentaHandler) obtenerVenta(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	venta, err := h.ventas.ObtenerVenta(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, venta)
}

func (h *VentaHandler) anularVenta(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.AnularVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	venta, err := h.ventas.AnularVenta(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, venta)
}
