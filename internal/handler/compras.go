package handler

import (
	"net/http"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/dto"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/service"

	"github.com/gin-gonic/gin"
)

type CompraHandler struct {
	compras *service.CompraService
}

func NewCompraHandler(compras *service.CompraService) *CompraHandler {
	return &CompraHandler{compras: compras}
}

func (h *CompraHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/purchases")
	g.POST("", h.crear)
	g.GET("", h.listar)
	g.GET("/resumen", h.resumen)
	g.GET("/proveedor/:proveedorId", h.porProveedor)
	g.GET("/:id", h.obtener)
	g.PATCH("/:id", h.actualizar)
	g.PATCH("/:id/status", h.cambiarEstado)
	g.DELETE("/:id", h.eliminar)
}

func (h *CompraHandler) crear(c *gin.Context) {
	var req dto.CrearCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	compra, err := h.compras.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, compra)
}

func (h *CompraHandler) listar(c *gin.Context) {
	var q dto.CompraQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.compras.FindAll(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CompraHandler) resumen(c *gin.Context) {
	resumen, err := h.compras.Resumen(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumen)
}

func (h *CompraHandler) porProveedor(c *gin.Context) {
	proveedorID, ok := uuidParam(c, "proveedorId")
	if !ok {
		return
	}
	compras, err := h.compras.FindByProveedor(c.Request.Context(), proveedorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, compras)
}

func (h *CompraHandler) obtener(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	compra, err := h.compras.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, compra)
}

func (h *CompraHandler) actualizar(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	compra, err := h.compras.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, compra)
}

func (h *CompraHandler) cambiarEstado(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.CambiarEstadoCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	compra, err := h.compras.CambiarEstado(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, compra)
}

func (h *CompraHandler) eliminar(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.compras.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
