package handler

import (
	"net/http"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/dto"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/service"

	"github.com/gin-gonic/gin"
)

type CajaHandler struct {
	cajas *service.CajaService
}

func NewCajaHandler(cajas *service.CajaService) *CajaHandler {
	return &CajaHandler{cajas: cajas}
}

func (h *CajaHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/caja")
	g.POST("/abrir-caja", h.abrirCaja)
	g.GET("/buscar-caja-abierta-usuario/:id", h.buscarCajaAbierta)
	g.POST("/cerrar-caja", h.cerrarCaja)
	g.GET("/monto-total-caja-actual/:id", h.montoTotalCajaActual)
	g.GET("/ultima-caja-movimiento-usuario/:id", h.ultimaCajaMovimiento)
	g.GET("/ultimas-cajas-usuario", h.ultimasCajasUsuario)
}

func (h *CajaHandler) abrirCaja(c *gin.Context) {
	var req dto.AbrirCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	caja, err := h.cajas.AbrirCaja(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, caja)
}

func (h *CajaHandler) buscarCajaAbierta(c *gin.Context) {
	usuarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	caja, err := h.cajas.BuscarCajaAbierta(c.Request.Context(), usuarioID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, caja)
}

func (h *CajaHandler) cerrarCaja(c *gin.Context) {
	var req dto.CerrarCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	caja, err := h.cajas.CerrarCaja(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, caja)
}

func (h *CajaHandler) montoTotalCajaActual(c *gin.Context) {
	usuarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	montos, err := h.cajas.MontoTotalCajaActual(c.Request.Context(), usuarioID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, montos)
}

func (h *CajaHandler) ultimaCajaMovimiento(c *gin.Context) {
	usuarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	caja, err := h.cajas.UltimaCajaMovimiento(c.Request.Context(), usuarioID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, caja)
}

func (h *CajaHandler) ultimasCajasUsuario(c *gin.Context) {
	var q dto.CajaHistorialQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.cajas.UltimasCajasUsuario(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
