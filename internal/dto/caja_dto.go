package dto

import (
	"github.com/Niko2Tech/ProyectoPortafolio/internal/model"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirCajaRequest struct {
	MontoApertura decimal.Decimal `json:"montoApertura" validate:"min=0"`
	UsuarioID     string          `json:"usuarioId"     validate:"required,uuid"`
}

// CerrarCajaRequest carries the target state explicitly. Closing is
// terminal, so cerrada is the only state this endpoint accepts.
type CerrarCajaRequest struct {
	ID          string          `json:"id"          validate:"required,uuid"`
	MontoCierre decimal.Decimal `json:"montoCierre" validate:"min=0"`
	Comentario  *string         `json:"comentario"`
	UsuarioID   string          `json:"usuarioId"   validate:"required,uuid"`
	Estado      string          `json:"estado"      validate:"required,oneof=cerrada"`
}

// CajaMovimientoParams travels between services (sale flow → caja ledger);
// it is not bound from HTTP directly.
type CajaMovimientoParams struct {
	CajaID         string
	TipoMovimiento string // ingreso | egreso
	MetodoPagoID   int
	Monto          decimal.Decimal
	DocumentoID    string
	TipoDocumento  string
	UsuarioID      string
}

// ─── Query / response DTOs ───────────────────────────────────────────────────

type CajaHistorialQuery struct {
	PageQuery
	UsuarioID string `form:"usuarioId" validate:"required,uuid"`
}

// MontoPorMetodo is one row of GET /api/caja/monto-total-caja-actual/:id.
// Only payment methods with at least one movement appear.
type MontoPorMetodo struct {
	MetodoPagoID int             `json:"metodoPagoId"`
	Nombre       string          `json:"nombre"`
	Monto        decimal.Decimal `json:"monto"`
}

type CajaHistorialResponse struct {
	Data []model.Caja `json:"data"`
	Meta PageMeta     `json:"meta"`
}
