package model

import (
	"time"

	"github.com/google/uuid"
)

// Proveedor represents a supplier with Chilean commercial data.
type Proveedor struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RazonSocial    string    `gorm:"not null" json:"razonSocial"`
	NombreFantasia *string   `json:"nombreFantasia"`
	RUT            string    `gorm:"column:rut;uniqueIndex;not null" json:"rut"`
	Giro           *string   `json:"giro"`
	Telefono       *string   `json:"telefono"`
	Email          *string   `json:"email"`
	Direccion      *string   `json:"direccion"`
	Comuna         *string   `json:"comuna"`
	Ciudad         *string   `json:"ciudad"`
	Region         *string   `json:"region"`
	Activo         bool      `gorm:"not null;default:true" json:"activo"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	Productos []Producto `gorm:"foreignKey:ProveedorID" json:"productos,omitempty"`
}

func (Proveedor) TableName() string { return "proveedores" }
