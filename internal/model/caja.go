package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de una sesión de caja. "cerrada" es terminal: no hay reapertura.
const (
	CajaAbierta = "abierta"
	CajaCerrada = "cerrada"
)

// Caja represents a cash register session bounding a cashier's shift.
// At most one "abierta" session per user, enforced by a partial unique
// index (see infra schema patches) plus an advisory lock on open.
type Caja struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UsuarioID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"usuarioId"`
	FechaApertura time.Time        `gorm:"not null" json:"fechaApertura"`
	MontoApertura decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"montoApertura"`
	Estado        string           `gorm:"type:varchar(20);not null;default:'abierta'" json:"estado"`
	FechaCierre   *time.Time       `json:"fechaCierre"`
	MontoCierre   *decimal.Decimal `gorm:"type:decimal(12,2)" json:"montoCierre"`
	Comentario    *string          `json:"comentario"`

	Usuario     *Usuario         `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
	Movimientos []CajaMovimiento `gorm:"foreignKey:CajaID" json:"movimientos,omitempty"`
}

// CajaMovimiento is an immutable entry in the cash ledger of a session.
// TipoMovimiento: "ingreso" | "egreso". Session totals are always computed
// by aggregation over these rows, never stored.
type CajaMovimiento struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CajaID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"cajaId"`
	TipoMovimiento string          `gorm:"type:varchar(20);not null" json:"tipoMovimiento"`
	MetodoPagoID   int             `gorm:"not null" json:"metodoPagoId"`
	Monto          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"monto"`
	// DocumentoID + TipoDocumento link the movement to the sale (or other
	// document) that produced it.
	DocumentoID   *uuid.UUID `gorm:"type:uuid" json:"documentoId"`
	TipoDocumento *string    `gorm:"type:varchar(20)" json:"tipoDocumento"`
	UsuarioID     uuid.UUID  `gorm:"type:uuid;not null" json:"usuarioId"`
	Fecha         time.Time  `gorm:"index;not null" json:"fecha"`

	MetodoPago *MetodoPago `gorm:"foreignKey:MetodoPagoID" json:"metodoPago,omitempty"`
}
