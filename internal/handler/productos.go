package handler

import (
	"net/http"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/dto"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductoHandler struct {
	productos *service.ProductoService
}

func NewProductoHandler(productos *service.ProductoService) *ProductoHandler {
	return &ProductoHandler{productos: productos}
}

func (h *ProductoHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/products")
	g.POST("", h.crear)
	g.GET("", h.listar)
	g.GET("/:id", h.obtener)
	g.PATCH("/:id", h.actualizar)
	g.DELETE("/:id", h.eliminar)
}

func (h *ProductoHandler) crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.productos.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProductoHandler) listar(c *gin.Context) {
	var q dto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.productos.Listar(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductoHandler) obtener(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	p, err := h.productos.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductoHandler) actualizar(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.productos.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductoHandler) eliminar(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.productos.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
