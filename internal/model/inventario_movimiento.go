package model

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de movimiento de inventario.
// entrada/devolucion suman stock, salida/ajuste restan.
const (
	MovimientoEntrada    = "entrada"
	MovimientoSalida     = "salida"
	MovimientoAjuste     = "ajuste"
	MovimientoDevolucion = "devolucion"
)

// InventarioMovimiento registra cada cambio de stock con su foto antes/después.
// Es append-only: nunca se actualiza ni se borra; las anulaciones generan
// movimientos inversos (devolucion).
type InventarioMovimiento struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProductoID     uuid.UUID `gorm:"type:uuid;not null;index" json:"productoId"`
	TipoMovimiento string    `gorm:"type:varchar(20);not null" json:"tipoMovimiento"`
	Cantidad       int       `gorm:"not null" json:"cantidad"`
	StockAnterior  int       `gorm:"not null" json:"stockAnterior"`
	StockNuevo     int       `gorm:"not null" json:"stockNuevo"`
	UsuarioID      uuid.UUID `gorm:"type:uuid;not null" json:"usuarioId"`
	Comentario     *string   `json:"comentario"`
	Fecha          time.Time `gorm:"index;not null" json:"fecha"`

	Producto *Producto `gorm:"foreignKey:ProductoID" json:"producto,omitempty"`
	Usuario  *Usuario  `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
}

func (InventarioMovimiento) TableName() string { return "inventario_movimientos" }
