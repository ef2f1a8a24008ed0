package dto

import "github.com/shopspring/decimal"

// CrearVentaDetalleRequest is one line item of POST /api/sales/procesar-venta.
type CrearVentaDetalleRequest struct {
	ProductoID          string          `json:"productoId"          validate:"required,uuid"`
	Cantidad            int             `json:"cantidad"            validate:"required,min=1"`
	PrecioUnitario      decimal.Decimal `json:"precioUnitario"      validate:"min=0"`
	DescuentoPorcentaje decimal.Decimal `json:"descuentoPorcentaje" validate:"min=0,max=100"`
	TotalLinea          decimal.Decimal `json:"totalLinea"          validate:"min=0"`
}

type CrearVentaRequest struct {
	TipoDocumento string                     `json:"tipoDocumento" validate:"required,oneof=boleta factura"`
	ClienteID     *string                    `json:"clienteId"     validate:"omitempty,uuid"`
	UsuarioID     string                     `json:"usuarioId"     validate:"required,uuid"`
	MetodoPagoID  int                        `json:"metodoPagoId"  validate:"required,min=1"`
	SubtotalNeto  decimal.Decimal            `json:"subtotalNeto"  validate:"min=0"`
	MontoIVA      decimal.Decimal            `json:"montoIva"      validate:"min=0"`
	Total         decimal.Decimal            `json:"total"         validate:"required"`
	Detalles      []CrearVentaDetalleRequest `json:"detalles"      validate:"required,min=1,dive"`
}

type AnularVentaRequest struct {
	UsuarioID string `json:"usuarioId" validate:"required,uuid"`
}
