package handler

import (
	"net/http"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/dto"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/service"

	"github.com/gin-gonic/gin"
)

type InventarioHandler struct {
	inventario *service.InventarioService
}

func NewInventarioHandler(inventario *service.InventarioService) *InventarioHandler {
	return &InventarioHandler{inventario: inventario}
}

func (h *InventarioHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/inventory")
	g.GET("", h.listar)
	g.POST("/movimiento", h.registrarMovimiento)
}

func (h *InventarioHandler) listar(c *gin.Context) {
	var q dto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.inventario.Listar(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventarioHandler) registrarMovimiento(c *gin.Context) {
	var req dto.RegistrarMovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	mov, err := h.inventario.RegistrarMovimiento(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mov)
}
