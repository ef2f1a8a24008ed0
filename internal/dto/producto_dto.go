package dto

import (
	"github.com/Niko2Tech/ProyectoPortafolio/internal/model"
	"github.com/shopspring/decimal"
)

type CrearProductoRequest struct {
	SKU            string          `json:"sku"          validate:"required,max=50"`
	CodigoBarras   string          `json:"codigoBarras" validate:"required,max=50"`
	Nombre         string          `json:"nombre"       validate:"required"`
	Descripcion    *string         `json:"descripcion"`
	PrecioNeto     decimal.Decimal `json:"precioNeto"   validate:"min=0"`
	PrecioVenta    decimal.Decimal `json:"precioVenta"  validate:"min=0"`
	CostoNeto      decimal.Decimal `json:"costoNeto"    validate:"min=0"`
	StockActual    int             `json:"stockActual"  validate:"min=0"`
	StockMinimo    int             `json:"stockMinimo"  validate:"min=0"`
	UnidadMedida   string          `json:"unidadMedida"`
	AfectoIVA      *bool           `json:"afectoIva"`
	CategoriaID    *int            `json:"categoriaId"`
	SubcategoriaID *int            `json:"subcategoriaId"`
	MarcaID        *int            `json:"marcaId"`
	ProveedorID    *string         `json:"proveedorId" validate:"omitempty,uuid"`
}

// ActualizarProductoRequest: nil fields are left untouched. Stock is NOT
// editable here; it only moves through the inventory ledger.
type ActualizarProductoRequest struct {
	SKU            *string          `json:"sku"`
	CodigoBarras   *string          `json:"codigoBarras"`
	Nombre         *string          `json:"nombre"`
	Descripcion    *string          `json:"descripcion"`
	PrecioNeto     *decimal.Decimal `json:"precioNeto"`
	PrecioVenta    *decimal.Decimal `json:"precioVenta"`
	CostoNeto      *decimal.Decimal `json:"costoNeto"`
	StockMinimo    *int             `json:"stockMinimo"`
	UnidadMedida   *string          `json:"unidadMedida"`
	AfectoIVA      *bool            `json:"afectoIva"`
	CategoriaID    *int             `json:"categoriaId"`
	SubcategoriaID *int             `json:"subcategoriaId"`
	MarcaID        *int             `json:"marcaId"`
	ProveedorID    *string          `json:"proveedorId" validate:"omitempty,uuid"`
	Activo         *bool            `json:"activo"`
}

type ProductoListResponse struct {
	Data []model.Producto `json:"data"`
	Meta PageMeta         `json:"meta"`
}
