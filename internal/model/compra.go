package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una compra.
// pendiente → recibida → pagada; cualquier estado → anulada.
// La transición a "recibida" es la que genera movimientos de entrada en
// inventario.
const (
	CompraPendiente = "pendiente"
	CompraRecibida  = "recibida"
	CompraPagada    = "pagada"
	CompraAnulada   = "anulada"
)

// Compra is a supplier purchase header. (proveedor_id, tipo_documento,
// numero_documento) is unique; duplicates surface as a caller-facing
// conflict.
type Compra struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProveedorID     uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:ux_compras_doc" json:"proveedorId"`
	TipoDocumento   string          `gorm:"type:varchar(20);not null;uniqueIndex:ux_compras_doc" json:"tipoDocumento"`
	NumeroDocumento string          `gorm:"type:varchar(20);not null;uniqueIndex:ux_compras_doc" json:"numeroDocumento"`
	FechaEmision    time.Time       `gorm:"index;not null" json:"fechaEmision"`
	FechaRecepcion  *time.Time      `json:"fechaRecepcion"`
	SubtotalNeto    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotalNeto"`
	MontoIVA        decimal.Decimal `gorm:"column:monto_iva;type:decimal(12,2);not null" json:"montoIva"`
	Total           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Estado          string          `gorm:"type:varchar(20);not null;default:'pendiente'" json:"estado"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`

	Proveedor *Proveedor      `gorm:"foreignKey:ProveedorID" json:"proveedor,omitempty"`
	Detalles  []CompraDetalle `gorm:"foreignKey:CompraID" json:"detalles,omitempty"`
}

// CompraDetalle is a purchase line item.
type CompraDetalle struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompraID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"compraId"`
	ProductoID    uuid.UUID       `gorm:"type:uuid;not null" json:"productoId"`
	Cantidad      int             `gorm:"not null" json:"cantidad"`
	CostoUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"costoUnitario"`
	TotalLinea    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalLinea"`

	Producto *Producto `gorm:"foreignKey:ProductoID" json:"producto,omitempty"`
}
