package service

import (
	"context"
	"fmt"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/apierror"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/dto"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/model"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ProductoService covers the catalog CRUD. Stock is deliberately absent from
// the update path; it only moves through the inventory ledger.
type ProductoService struct {
	productos repository.ProductoRepository
	log       zerolog.Logger
}

func NewProductoService(productos repository.ProductoRepository, log zerolog.Logger) *ProductoService {
	return &ProductoService{productos: productos, log: log}
}

func (s *ProductoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error) {
	p := &model.Producto{
		SKU:            req.SKU,
		CodigoBarras:   req.CodigoBarras,
		Nombre:         req.Nombre,
		Descripcion:    req.Descripcion,
		PrecioNeto:     req.PrecioNeto,
		PrecioVenta:    req.PrecioVenta,
		CostoNeto:      req.CostoNeto,
		StockActual:    req.StockActual,
		StockMinimo:    req.StockMinimo,
		UnidadMedida:   req.UnidadMedida,
		AfectoIVA:      true,
		CategoriaID:    req.CategoriaID,
		SubcategoriaID: req.SubcategoriaID,
		MarcaID:        req.MarcaID,
		Activo:         true,
	}
	if req.AfectoIVA != nil {
		p.AfectoIVA = *req.AfectoIVA
	}
	if p.UnidadMedida == "" {
		p.UnidadMedida = "unidad"
	}
	if req.ProveedorID != nil {
		id, err := uuid.Parse(*req.ProveedorID)
		if err != nil {
			return nil, apierror.BadRequest("ID de proveedor inválido")
		}
		p.ProveedorID = &id
	}

	if err := s.productos.Create(ctx, p); err != nil {
		switch {
		case repository.IsUniqueViolation(err):
			return nil, apierror.Conflict("Ya existe un producto con ese SKU o código de barras")
		case repository.IsForeignKeyViolation(err):
			return nil, apierror.BadRequest("El proveedor especificado no existe")
		}
		return nil, err
	}

	s.log.Info().Str("producto_id", p.ID.String()).Str("sku", p.SKU).Msg("producto creado")
	return p, nil
}

func (s *ProductoService) Obtener(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	p, err := s.productos.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound(fmt.Sprintf("Producto con ID %s no encontrado", id))
		}
		return nil, err
	}
	return p, nil
}

func (s *ProductoService) Listar(ctx context.Context, q dto.PageQuery) (*dto.ProductoListResponse, error) {
	q.Normalize()
	productos, total, err := s.productos.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.ProductoListResponse{
		Data: productos,
		Meta: dto.NewPageMeta(total, len(productos), q.Limit, q.Page),
	}, nil
}

func (s *ProductoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*model.Producto, error) {
	p, err := s.productos.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound(fmt.Sprintf("Producto con ID %s no encontrado", id))
		}
		return nil, err
	}

	if req.SKU != nil {
		p.SKU = *req.SKU
	}
	if req.CodigoBarras != nil {
		p.CodigoBarras = *req.CodigoBarras
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.PrecioNeto != nil {
		p.PrecioNeto = *req.PrecioNeto
	}
	if req.PrecioVenta != nil {
		p.PrecioVenta = *req.PrecioVenta
	}
	if req.CostoNeto != nil {
		p.CostoNeto = *req.CostoNeto
	}
	if req.StockMinimo != nil {
		p.StockMinimo = *req.StockMinimo
	}
	if req.UnidadMedida != nil {
		p.UnidadMedida = *req.UnidadMedida
	}
	if req.AfectoIVA != nil {
		p.AfectoIVA = *req.AfectoIVA
	}
	if req.CategoriaID != nil {
		p.CategoriaID = req.CategoriaID
	}
	if req.SubcategoriaID != nil {
		p.SubcategoriaID = req.SubcategoriaID
	}
	if req.MarcaID != nil {
		p.MarcaID = req.MarcaID
	}
	if req.ProveedorID != nil {
		provID, err := uuid.Parse(*req.ProveedorID)
		if err != nil {
			return nil, apierror.BadRequest("ID de proveedor inválido")
		}
		p.ProveedorID = &provID
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}

	if err := s.productos.Update(ctx, p); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apierror.Conflict("Ya existe un producto con ese SKU o código de barras")
		}
		return nil, err
	}
	return p, nil
}

func (s *ProductoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if err := s.productos.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return apierror.NotFound(fmt.Sprintf("Producto con ID %s no encontrado", id))
		}
		if repository.IsForeignKeyViolation(err) {
			return apierror.Conflict("El producto tiene movimientos o documentos asociados")
		}
		return err
	}
	s.log.Info().Str("producto_id", id.String()).Msg("producto eliminado")
	return nil
}
