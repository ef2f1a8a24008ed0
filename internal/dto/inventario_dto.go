package dto

import (
	"github.com/Niko2Tech/ProyectoPortafolio/internal/model"
)

// RegistrarMovimientoRequest is the body of POST /api/inventory/movimiento
// (direct stock adjustments outside a sale/purchase flow).
type RegistrarMovimientoRequest struct {
	ProductoID     string  `json:"productoId"     validate:"required,uuid"`
	TipoMovimiento string  `json:"tipoMovimiento" validate:"required,oneof=entrada salida ajuste devolucion"`
	Cantidad       int     `json:"cantidad"       validate:"required,min=1"`
	UsuarioID      string  `json:"usuarioId"      validate:"required,uuid"`
	Comentario     *string `json:"comentario"`
}

// InventarioListResponse is the paginated movement listing.
type InventarioListResponse struct {
	Data []model.InventarioMovimiento `json:"data"`
	Meta PageMeta                     `json:"meta"`
}
