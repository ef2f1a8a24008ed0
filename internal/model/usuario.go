package model

import (
	"time"

	"github.com/google/uuid"
)

// Rol define el perfil de acceso de un usuario.
// Seeded: 1=Venta, 2=Admin, 3=Bodeguero.
type Rol struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Nombre      string `gorm:"uniqueIndex;not null" json:"nombre"`
	Descripcion string `json:"descripcion"`
}

func (Rol) TableName() string { return "roles" }

// Usuario stores system users. Passwords are bcrypt hashes; the hash never
// leaves the API (json:"-").
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nombre       string    `gorm:"not null" json:"nombre"`
	Apellido     string    `json:"apellido"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	RolID        int       `gorm:"not null" json:"rolId"`
	Activo       bool      `gorm:"not null;default:true" json:"activo"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Rol *Rol `gorm:"foreignKey:RolID" json:"rol,omitempty"`
}
