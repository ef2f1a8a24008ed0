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

// MovimientoParams carries one stock movement through the transactional
// entry point. Sale and purchase flows build these internally; the direct
// adjustment endpoint maps its request DTO onto them.
type MovimientoParams struct {
	ProductoID     uuid.UUID
	TipoMovimiento string
	Cantidad       int
	UsuarioID      uuid.UUID
	Comentario     *string
}

// InventarioService owns every stock mutation in the system. All paths that
// touch Producto.StockActual go through RegistrarMovimientoTx, so the
// movement log and the stored stock can never diverge.
type InventarioService struct {
	productos   repository.ProductoRepository
	movimientos repository.InventarioRepository
	log         zerolog.Logger
}

func NewInventarioService(productos repository.ProductoRepository, movimientos repository.InventarioRepository, log zerolog.Logger) *InventarioService {
	return &InventarioService{productos: productos, movimientos: movimientos, log: log}
}

// RegistrarMovimientoTx applies one movement inside the caller's transaction.
// The product row is locked FOR UPDATE before the stock check, so concurrent
// movements over the same product serialize instead of racing.
func (s *InventarioService) RegistrarMovimientoTx(tx *gorm.DB, p MovimientoParams) (*model.InventarioMovimiento, error) {
	if p.Cantidad <= 0 {
		return nil, apierror.BadRequest("La cantidad debe ser mayor a cero")
	}

	producto, err := s.productos.FindByIDForUpdateTx(tx, p.ProductoID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound(fmt.Sprintf("Producto con ID %s no encontrado", p.ProductoID))
		}
		return nil, err
	}
	if !producto.Activo {
		return nil, apierror.BadRequest(fmt.Sprintf("El producto %s no está activo", producto.Nombre))
	}

	stockAnterior := producto.StockActual
	var stockNuevo int
	switch p.TipoMovimiento {
	case model.MovimientoEntrada, model.MovimientoDevolucion:
		stockNuevo = stockAnterior + p.Cantidad
	case model.MovimientoSalida, model.MovimientoAjuste:
		stockNuevo = stockAnterior - p.Cantidad
	default:
		return nil, apierror.BadRequest("Tipo de movimiento inválido")
	}

	if stockNuevo < 0 {
		return nil, apierror.BadRequest(fmt.Sprintf("El stock no puede ser negativo (stock resultante: %d)", stockNuevo))
	}

	mov := &model.InventarioMovimiento{
		ProductoID:     p.ProductoID,
		TipoMovimiento: p.TipoMovimiento,
		Cantidad:       p.Cantidad,
		StockAnterior:  stockAnterior,
		StockNuevo:     stockNuevo,
		UsuarioID:      p.UsuarioID,
		Comentario:     p.Comentario,
		Fecha:          time.Now(),
	}
	if err := s.movimientos.CreateMovimientoTx(tx, mov); err != nil {
		return nil, err
	}
	if err := s.productos.UpdateStockTx(tx, p.ProductoID, stockNuevo); err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("producto_id", p.ProductoID.String()).
		Str("tipo", p.TipoMovimiento).
		Int("cantidad", p.Cantidad).
		Int("stock_nuevo", stockNuevo).
		Msg("movimiento de inventario registrado")
	return mov, nil
}

// RegistrarMovimiento is the standalone adjustment entry point: one movement
// in its own transaction.
func (s *InventarioService) RegistrarMovimiento(ctx context.Context, req dto.RegistrarMovimientoRequest) (*model.InventarioMovimiento, error) {
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, apierror.BadRequest("ID de producto inválido")
	}
	usuarioID, err := uuid.Parse(req.UsuarioID)
	if err != nil {
		return nil, apierror.BadRequest("ID de usuario inválido")
	}

	var mov *model.InventarioMovimiento
	err = runTx(ctx, s.productos.DB(), func(tx *gorm.DB) error {
		mov, err = s.RegistrarMovimientoTx(tx, MovimientoParams{
			ProductoID:     productoID,
			TipoMovimiento: req.TipoMovimiento,
			Cantidad:       req.Cantidad,
			UsuarioID:      usuarioID,
			Comentario:     req.Comentario,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// Listar returns the paginated movement log with products and users attached.
func (s *InventarioService) Listar(ctx context.Context, q dto.PageQuery) (*dto.InventarioListResponse, error) {
	q.Normalize()
	movimientos, total, err := s.movimientos.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.InventarioListResponse{
		Data: movimientos,
		Meta: dto.NewPageMeta(total, len(movimientos), q.Limit, q.Page),
	}, nil
}
