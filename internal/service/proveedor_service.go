package service

import (
	"context"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/apierror"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/dto"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/model"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ProveedorService struct {
	proveedores repository.ProveedorRepository
	log         zerolog.Logger
}

func NewProveedorService(proveedores repository.ProveedorRepository, log zerolog.Logger) *ProveedorService {
	return &ProveedorService{proveedores: proveedores, log: log}
}

func (s *ProveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*model.Proveedor, error) {
	p := &model.Proveedor{
		RazonSocial:    req.RazonSocial,
		NombreFantasia: req.NombreFantasia,
		RUT:            req.RUT,
		Giro:           req.Giro,
		Telefono:       req.Telefono,
		Email:          req.Email,
		Direccion:      req.Direccion,
		Comuna:         req.Comuna,
		Ciudad:         req.Ciudad,
		Region:         req.Region,
		Activo:         true,
	}
	if err := s.proveedores.Create(ctx, p); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apierror.Conflict("Ya existe un proveedor con ese RUT")
		}
		return nil, err
	}
	s.log.Info().Str("proveedor_id", p.ID.String()).Str("rut", p.RUT).Msg("proveedor creado")
	return p, nil
}

func (s *ProveedorService) Obtener(ctx context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, err := s.proveedores.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("Proveedor no encontrado")
		}
		return nil, err
	}
	return p, nil
}

func (s *ProveedorService) Listar(ctx context.Context, q dto.PageQuery) (*dto.ProveedorListResponse, error) {
	q.Normalize()
	proveedores, total, err := s.proveedores.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.ProveedorListResponse{
		Data: proveedores,
		Meta: dto.NewPageMeta(total, len(proveedores), q.Limit, q.Page),
	}, nil
}

func (s *ProveedorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*model.Proveedor, error) {
	p, err := s.proveedores.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("Proveedor no encontrado")
		}
		return nil, err
	}

	if req.RazonSocial != nil {
		p.RazonSocial = *req.RazonSocial
	}
	if req.NombreFantasia != nil {
		p.NombreFantasia = req.NombreFantasia
	}
	if req.RUT != nil {
		p.RUT = *req.RUT
	}
	if req.Giro != nil {
		p.Giro = req.Giro
	}
	if req.Telefono != nil {
		p.Telefono = req.Telefono
	}
	if req.Email != nil {
		p.Email = req.Email
	}
	if req.Direccion != nil {
		p.Direccion = req.Direccion
	}
	if req.Comuna != nil {
		p.Comuna = req.Comuna
	}
	if req.Ciudad != nil {
		p.Ciudad = req.Ciudad
	}
	if req.Region != nil {
		p.Region = req.Region
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}

	if err := s.proveedores.Update(ctx, p); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apierror.Conflict("Ya existe un proveedor con ese RUT")
		}
		return nil, err
	}
	return p, nil
}

func (s *ProveedorService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if err := s.proveedores.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return apierror.NotFound("Proveedor no encontrado")
		}
		if repository.IsForeignKeyViolation(err) {
			return apierror.Conflict("El proveedor tiene compras o productos asociados")
		}
		return err
	}
	s.log.Info().Str("proveedor_id", id.String()).Msg("proveedor eliminado")
	return nil
}
