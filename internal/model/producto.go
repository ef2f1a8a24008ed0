package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is the catalog entry. StockActual is derived state: it only
// changes through InventarioMovimiento rows (or a direct catalog edit) and
// can never go below zero.
type Producto struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SKU          string          `gorm:"column:sku;uniqueIndex;not null" json:"sku"`
	CodigoBarras string          `gorm:"uniqueIndex;not null" json:"codigoBarras"`
	Nombre       string          `gorm:"index;not null" json:"nombre"`
	Descripcion  *string         `json:"descripcion"`
	PrecioNeto   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"precioNeto"`
	PrecioVenta  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"precioVenta"`
	CostoNeto    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"costoNeto"`
	StockActual  int             `gorm:"not null;default:0" json:"stockActual"`
	StockMinimo  int             `gorm:"not null;default:5" json:"stockMinimo"`
	UnidadMedida string          `gorm:"not null;default:'unidad'" json:"unidadMedida"`
	AfectoIVA    bool            `gorm:"column:afecto_iva;not null;default:true" json:"afectoIva"`
	// Categoria/marca/subcategoria live in their own CRUD modules; here they
	// are plain references.
	CategoriaID    *int       `json:"categoriaId"`
	SubcategoriaID *int       `json:"subcategoriaId"`
	MarcaID        *int       `json:"marcaId"`
	ProveedorID    *uuid.UUID `gorm:"type:uuid;index" json:"proveedorId"`
	Activo         bool       `gorm:"not null;default:true" json:"activo"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`

	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID" json:"proveedor,omitempty"`
}
