package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is referenced by sale documents. Managed elsewhere; kept here for
// the relation only.
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nombre    string    `gorm:"not null" json:"nombre"`
	RUT       string    `gorm:"column:rut;uniqueIndex" json:"rut"`
	Email     *string   `json:"email"`
	Telefono  *string   `json:"telefono"`
	CreatedAt time.Time `json:"createdAt"`
}
