package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/apierror"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/dto"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/model"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// CompraService manages supplier purchases and their lifecycle. The
// pendiente → recibida transition is the only one with side effects: it
// feeds the received quantities into inventory.
type CompraService struct {
	compras     repository.CompraRepository
	proveedores repository.ProveedorRepository
	productos   repository.ProductoRepository
	inventario  *InventarioService
	log         zerolog.Logger
}

func NewCompraService(compras repository.CompraRepository, proveedores repository.ProveedorRepository, productos repository.ProductoRepository, inventario *InventarioService, log zerolog.Logger) *CompraService {
	return &CompraService{
		compras:     compras,
		proveedores: proveedores,
		productos:   productos,
		inventario:  inventario,
		log:         log,
	}
}

// parseFecha accepts both date-only and full timestamp inputs.
func parseFecha(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Crear registers a purchase with its lines. When it arrives already
// recibida, the entrada movements run in the same transaction.
func (s *CompraService) Crear(ctx context.Context, req dto.CrearCompraRequest) (*model.Compra, error) {
	proveedorID, err := uuid.Parse(req.ProveedorID)
	if err != nil {
		return nil, apierror.BadRequest("ID de proveedor inválido")
	}
	usuarioID, err := uuid.Parse(req.UsuarioID)
	if err != nil {
		return nil, apierror.BadRequest("ID de usuario inválido")
	}
	fechaEmision, err := parseFecha(req.FechaEmision)
	if err != nil {
		return nil, apierror.BadRequest("Fecha de emisión inválida")
	}

	productoIDs := make([]uuid.UUID, 0, len(req.Detalles))
	for _, d := range req.Detalles {
		id, err := uuid.Parse(d.ProductoID)
		if err != nil {
			return nil, apierror.BadRequest(fmt.Sprintf("ID de producto inválido: %s", d.ProductoID))
		}
		productoIDs = append(productoIDs, id)
	}

	// Whole-operation reject: every referenced product must exist before
	// any write happens.
	count, err := s.productos.CountByIDs(ctx, productoIDs)
	if err != nil {
		return nil, err
	}
	if count != int64(len(uniqueIDs(productoIDs))) {
		return nil, apierror.BadRequest("Uno o más productos especificados no existen")
	}

	estado := req.Estado
	if estado == "" {
		estado = model.CompraPendiente
	}

	compra := &model.Compra{
		ProveedorID:     proveedorID,
		TipoDocumento:   req.TipoDocumento,
		NumeroDocumento: req.NumeroDocumento,
		FechaEmision:    fechaEmision,
		SubtotalNeto:    req.SubtotalNeto,
		MontoIVA:        req.MontoIVA,
		Total:           req.Total,
		Estado:          estado,
	}
	if req.FechaRecepcion != nil {
		t, err := parseFecha(*req.FechaRecepcion)
		if err != nil {
			return nil, apierror.BadRequest("Fecha de recepción inválida")
		}
		compra.FechaRecepcion = &t
	}

	err = runTx(ctx, s.compras.DB(), func(tx *gorm.DB) error {
		if err := s.compras.CreateTx(tx, compra); err != nil {
			switch {
			case repository.IsUniqueViolation(err):
				return apierror.Conflict("Ya existe una compra con ese proveedor, tipo y número de documento")
			case repository.IsForeignKeyViolation(err):
				return apierror.BadRequest("El proveedor especificado no existe")
			}
			return err
		}

		detalles := make([]model.CompraDetalle, 0, len(req.Detalles))
		for i, d := range req.Detalles {
			detalles = append(detalles, model.CompraDetalle{
				CompraID:      compra.ID,
				ProductoID:    productoIDs[i],
				Cantidad:      d.Cantidad,
				CostoUnitario: d.CostoUnitario,
				TotalLinea:    d.TotalLinea,
			})
		}
		if err := s.compras.CreateDetallesTx(tx, detalles); err != nil {
			// A product removed between the pre-check and the insert lands
			// here as an FK violation.
			if repository.IsForeignKeyViolation(err) {
				return apierror.BadRequest("Uno o más productos especificados no existen")
			}
			return err
		}

		if estado == model.CompraRecibida {
			return s.registrarEntradasTx(tx, compra, detalles, usuarioID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("compra_id", compra.ID.String()).
		Str("documento", req.TipoDocumento+" "+req.NumeroDocumento).
		Msg("compra registrada")
	return s.compras.FindByIDWithDetalles(ctx, compra.ID)
}

// registrarEntradasTx feeds every purchase line into inventory as an entrada.
func (s *CompraService) registrarEntradasTx(tx *gorm.DB, compra *model.Compra, detalles []model.CompraDetalle, usuarioID uuid.UUID) error {
	comentario := fmt.Sprintf("Compra recibida - Documento: %s %s", compra.TipoDocumento, compra.NumeroDocumento)
	for _, d := range detalles {
		if _, err := s.inventario.RegistrarMovimientoTx(tx, MovimientoParams{
			ProductoID:     d.ProductoID,
			TipoMovimiento: model.MovimientoEntrada,
			Cantidad:       d.Cantidad,
			UsuarioID:      usuarioID,
			Comentario:     &comentario,
		}); err != nil {
			return err
		}
	}
	return nil
}

// CambiarEstado moves a purchase through its lifecycle. Stock only enters
// when transitioning INTO recibida from another state AND a usuarioId is
// present; repeating recibida is a no-op on inventory.
func (s *CompraService) CambiarEstado(ctx context.Context, id uuid.UUID, req dto.CambiarEstadoCompraRequest) (*model.Compra, error) {
	var usuarioID *uuid.UUID
	if req.UsuarioID != nil {
		parsed, err := uuid.Parse(*req.UsuarioID)
		if err != nil {
			return nil, apierror.BadRequest("ID de usuario inválido")
		}
		usuarioID = &parsed
	}

	// The purchase is read under a row lock inside the transaction so two
	// concurrent transitions serialize: the second observes the committed
	// estado and skips the stock entries.
	var (
		estadoAnterior string
		entraRecibida  bool
	)
	err := runTx(ctx, s.compras.DB(), func(tx *gorm.DB) error {
		compra, err := s.compras.FindByIDWithDetallesForUpdateTx(tx, id)
		if err != nil {
			if repository.IsNotFound(err) {
				return apierror.NotFound(fmt.Sprintf("Compra con ID %s no encontrada", id))
			}
			return err
		}
		estadoAnterior = compra.Estado
		entraRecibida = req.Estado == model.CompraRecibida &&
			compra.Estado != model.CompraRecibida &&
			usuarioID != nil

		if err := s.compras.UpdateEstadoTx(tx, id, req.Estado); err != nil {
			return err
		}
		if entraRecibida {
			return s.registrarEntradasTx(tx, compra, compra.Detalles, *usuarioID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("compra_id", id.String()).
		Str("estado_anterior", estadoAnterior).
		Str("estado_nuevo", req.Estado).
		Bool("entradas_generadas", entraRecibida).
		Msg("estado de compra actualizado")
	return s.compras.FindByIDWithDetalles(ctx, id)
}

// FindAll pages through purchases with the full filter set.
func (s *CompraService) FindAll(ctx context.Context, q dto.CompraQuery) (*dto.CompraListResponse, error) {
	q.Normalize()
	compras, total, err := s.compras.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.CompraListResponse{
		Data: compras,
		Meta: dto.NewPageMeta(total, len(compras), q.Limit, q.Page),
	}, nil
}

func (s *CompraService) FindOne(ctx context.Context, id uuid.UUID) (*model.Compra, error) {
	compra, err := s.compras.FindByIDWithDetalles(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound(fmt.Sprintf("Compra con ID %s no encontrada", id))
		}
		return nil, err
	}
	return compra, nil
}

// Actualizar patches header fields. Lines are immutable after creation.
func (s *CompraService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCompraRequest) (*model.Compra, error) {
	compra, err := s.compras.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound(fmt.Sprintf("Compra con ID %s no encontrada", id))
		}
		return nil, err
	}

	if req.TipoDocumento != nil {
		compra.TipoDocumento = *req.TipoDocumento
	}
	if req.NumeroDocumento != nil {
		compra.NumeroDocumento = *req.NumeroDocumento
	}
	if req.FechaEmision != nil {
		t, err := parseFecha(*req.FechaEmision)
		if err != nil {
			return nil, apierror.BadRequest("Fecha de emisión inválida")
		}
		compra.FechaEmision = t
	}
	if req.FechaRecepcion != nil {
		t, err := parseFecha(*req.FechaRecepcion)
		if err != nil {
			return nil, apierror.BadRequest("Fecha de recepción inválida")
		}
		compra.FechaRecepcion = &t
	}
	if req.SubtotalNeto != nil {
		compra.SubtotalNeto = *req.SubtotalNeto
	}
	if req.MontoIVA != nil {
		compra.MontoIVA = *req.MontoIVA
	}
	if req.Total != nil {
		compra.Total = *req.Total
	}

	if err := s.compras.Update(ctx, compra); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apierror.Conflict("Ya existe una compra con ese proveedor, tipo y número de documento")
		}
		return nil, err
	}
	return s.compras.FindByIDWithDetalles(ctx, id)
}

// Eliminar removes a purchase and its lines. Stock already entered through a
// recibida transition is NOT reversed; use an ajuste movement for that.
func (s *CompraService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if err := s.compras.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return apierror.NotFound(fmt.Sprintf("Compra con ID %s no encontrada", id))
		}
		return err
	}
	s.log.Info().Str("compra_id", id.String()).Msg("compra eliminada")
	return nil
}

func (s *CompraService) Resumen(ctx context.Context) (*dto.ResumenComprasResponse, error) {
	return s.compras.Resumen(ctx)
}

// FindByProveedor returns a supplier's purchase history, newest first.
func (s *CompraService) FindByProveedor(ctx context.Context, proveedorID uuid.UUID) ([]model.Compra, error) {
	if _, err := s.proveedores.FindByID(ctx, proveedorID); err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("Proveedor no encontrado")
		}
		return nil, err
	}
	return s.compras.FindByProveedor(ctx, proveedorID)
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
