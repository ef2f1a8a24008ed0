package dto

import (
	"github.com/Niko2Tech/ProyectoPortafolio/internal/model"
	"github.com/shopspring/decimal"
)

type CrearCompraDetalleRequest struct {
	ProductoID    string          `json:"productoId"    validate:"required,uuid"`
	Cantidad      int             `json:"cantidad"      validate:"required,min=1"`
	CostoUnitario decimal.Decimal `json:"costoUnitario" validate:"min=0"`
	TotalLinea    decimal.Decimal `json:"totalLinea"    validate:"min=0"`
}

type CrearCompraRequest struct {
	ProveedorID     string                      `json:"proveedorId"     validate:"required,uuid"`
	TipoDocumento   string                      `json:"tipoDocumento"   validate:"required,oneof=factura boleta guia"`
	NumeroDocumento string                      `json:"numeroDocumento" validate:"required,max=20"`
	FechaEmision    string                      `json:"fechaEmision"    validate:"required"`
	FechaRecepcion  *string                     `json:"fechaRecepcion"`
	SubtotalNeto    decimal.Decimal             `json:"subtotalNeto"    validate:"min=0"`
	MontoIVA        decimal.Decimal             `json:"montoIva"        validate:"min=0"`
	Total           decimal.Decimal             `json:"total"           validate:"required"`
	Estado          string                      `json:"estado"          validate:"omitempty,oneof=pendiente recibida pagada anulada"`
	UsuarioID       string                      `json:"usuarioId"       validate:"required,uuid"`
	Detalles        []CrearCompraDetalleRequest `json:"detalles"        validate:"required,min=1,dive"`
}

// ActualizarCompraRequest updates header fields only; line items are
// immutable after creation.
type ActualizarCompraRequest struct {
	TipoDocumento   *string          `json:"tipoDocumento"   validate:"omitempty,oneof=factura boleta guia"`
	NumeroDocumento *string          `json:"numeroDocumento" validate:"omitempty,max=20"`
	FechaEmision    *string          `json:"fechaEmision"`
	FechaRecepcion  *string          `json:"fechaRecepcion"`
	SubtotalNeto    *decimal.Decimal `json:"subtotalNeto"`
	MontoIVA        *decimal.Decimal `json:"montoIva"`
	Total           *decimal.Decimal `json:"total"`
}

type CambiarEstadoCompraRequest struct {
	Estado    string  `json:"estado"    validate:"required,oneof=pendiente recibida pagada anulada"`
	UsuarioID *string `json:"usuarioId" validate:"omitempty,uuid"`
}

// CompraQuery is bound from the query string of GET /api/purchases.
type CompraQuery struct {
	PageQuery
	Estado        string `form:"estado"        validate:"omitempty,oneof=pendiente recibida pagada anulada"`
	TipoDocumento string `form:"tipoDocumento"`
	FechaInicio   string `form:"fechaInicio"`
	FechaFin      string `form:"fechaFin"`
	ProveedorID   string `form:"proveedorId"   validate:"omitempty,uuid"`
}

type CompraListResponse struct {
	Data []model.Compra `json:"data"`
	Meta PageMeta       `json:"meta"`
}

// ResumenComprasResponse is the aggregate card of GET /api/purchases/resumen.
type ResumenComprasResponse struct {
	TotalCompras          int64           `json:"totalCompras"`
	TotalProveedores      int64           `json:"totalProveedores"`
	TotalMontoCompras     decimal.Decimal `json:"totalMontoCompras"`
	ComprasPendientes     int64           `json:"comprasPendientes"`
	ComprasRecibidas      int64           `json:"comprasRecibidas"`
	ComprasUltimos30Dias  decimal.Decimal `json:"comprasUltimos30Dias"`
}
