package dto

import "github.com/Niko2Tech/ProyectoPortafolio/internal/model"

type CrearProveedorRequest struct {
	RazonSocial    string  `json:"razonSocial" validate:"required"`
	NombreFantasia *string `json:"nombreFantasia"`
	RUT            string  `json:"rut"         validate:"required,max=12"`
	Giro           *string `json:"giro"`
	Telefono       *string `json:"telefono"`
	Email          *string `json:"email"       validate:"omitempty,email"`
	Direccion      *string `json:"direccion"`
	Comuna         *string `json:"comuna"`
	Ciudad         *string `json:"ciudad"`
	Region         *string `json:"region"`
}

type ActualizarProveedorRequest struct {
	RazonSocial    *string `json:"razonSocial"`
	NombreFantasia *string `json:"nombreFantasia"`
	RUT            *string `json:"rut"`
	Giro           *string `json:"giro"`
	Telefono       *string `json:"telefono"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Direccion      *string `json:"direccion"`
	Comuna         *string `json:"comuna"`
	Ciudad         *string `json:"ciudad"`
	Region         *string `json:"region"`
	Activo         *bool   `json:"activo"`
}

type ProveedorListResponse struct {
	Data []model.Proveedor `json:"data"`
	Meta PageMeta          `json:"meta"`
}
