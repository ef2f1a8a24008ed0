package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de un documento de venta.
const (
	VentaEmitida = "emitida"
	VentaAnulada = "anulada"
)

// DocumentoVenta is a sale header (boleta/factura). NumeroDocumento is
// assigned from the documento_venta_numero_seq sequence inside the sale
// transaction.
type DocumentoVenta struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	NumeroDocumento int64           `gorm:"uniqueIndex;not null" json:"numeroDocumento"`
	TipoDocumento   string          `gorm:"type:varchar(20);not null" json:"tipoDocumento"`
	ClienteID       *uuid.UUID      `gorm:"type:uuid" json:"clienteId"`
	UsuarioID       uuid.UUID       `gorm:"type:uuid;not null" json:"usuarioId"`
	MetodoPagoID    int             `gorm:"not null" json:"metodoPagoId"`
	FechaEmision    time.Time       `gorm:"index;not null" json:"fechaEmision"`
	SubtotalNeto    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotalNeto"`
	MontoIVA        decimal.Decimal `gorm:"column:monto_iva;type:decimal(12,2);not null" json:"montoIva"`
	Total           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Estado          string          `gorm:"type:varchar(20);not null;default:'emitida'" json:"estado"`
	CreatedAt       time.Time       `json:"createdAt"`

	Cliente    *Cliente                `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`
	Usuario    *Usuario                `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
	MetodoPago *MetodoPago             `gorm:"foreignKey:MetodoPagoID" json:"metodoPago,omitempty"`
	Detalles   []DocumentoVentaDetalle `gorm:"foreignKey:DocumentoID" json:"detalles,omitempty"`
}

func (DocumentoVenta) TableName() string { return "documentos_venta" }

// DocumentoVentaDetalle is a sale line item.
type DocumentoVentaDetalle struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DocumentoID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"documentoId"`
	ProductoID          uuid.UUID       `gorm:"type:uuid;not null" json:"productoId"`
	Cantidad            int             `gorm:"not null" json:"cantidad"`
	PrecioUnitario      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"precioUnitario"`
	DescuentoPorcentaje decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"descuentoPorcentaje"`
	TotalLinea          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalLinea"`

	Producto *Producto `gorm:"foreignKey:ProductoID" json:"producto,omitempty"`
}

func (DocumentoVentaDetalle) TableName() string { return "documentos_venta_detalle" }
