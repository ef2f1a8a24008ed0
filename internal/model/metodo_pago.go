package model

// MetodoPago is a seeded lookup table (efectivo, débito, crédito,
// transferencia). Its CRUD lives outside this service.
type MetodoPago struct {
	ID     int    `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"uniqueIndex;not null" json:"nombre"`
	Activo bool   `gorm:"not null;default:true" json:"activo"`
}

func (MetodoPago) TableName() string { return "metodos_pago" }
