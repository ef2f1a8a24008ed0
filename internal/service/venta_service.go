package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/apierror"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/dto"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/model"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// VentaService coordinates the sale workflow: document emission, cash ledger
// entry and stock decrement in a single transaction.
type VentaService struct {
	ventas     repository.VentaRepository
	productos  repository.ProductoRepository
	inventario *InventarioService
	caja       *CajaService
	log        zerolog.Logger
}

func NewVentaService(ventas repository.VentaRepository, productos repository.ProductoRepository, inventario *InventarioService, caja *CajaService, log zerolog.Logger) *VentaService {
	return &VentaService{
		ventas:     ventas,
		productos:  productos,
		inventario: inventario,
		caja:       caja,
		log:        log,
	}
}

// ProcesarVenta executes a sale atomically. All validations (open session,
// product existence, stock) run before the first write; any failure rolls
// back everything, including the document number draw.
func (s *VentaService) ProcesarVenta(ctx context.Context, req dto.CrearVentaRequest) (*model.DocumentoVenta, error) {
	usuarioID, err := uuid.Parse(req.UsuarioID)
	if err != nil {
		return nil, apierror.BadRequest("ID de usuario inválido")
	}

	var clienteID *uuid.UUID
	if req.ClienteID != nil {
		id, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			return nil, apierror.BadRequest("ID de cliente inválido")
		}
		clienteID = &id
	}

	productoIDs := make([]uuid.UUID, 0, len(req.Detalles))
	for _, d := range req.Detalles {
		id, err := uuid.Parse(d.ProductoID)
		if err != nil {
			return nil, apierror.BadRequest(fmt.Sprintf("ID de producto inválido: %s", d.ProductoID))
		}
		productoIDs = append(productoIDs, id)
	}

	caja, err := s.caja.BuscarCajaAbierta(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	var venta *model.DocumentoVenta
	err = runTx(ctx, s.ventas.DB(), func(tx *gorm.DB) error {
		// Locking in a fixed order keeps concurrent sales over overlapping
		// products from deadlocking each other.
		ids := append([]uuid.UUID(nil), productoIDs...)
		sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

		productos, err := s.productos.FindByIDsForUpdateTx(tx, ids)
		if err != nil {
			return err
		}
		porID := make(map[uuid.UUID]*model.Producto, len(productos))
		for i := range productos {
			porID[productos[i].ID] = &productos[i]
		}

		for i, d := range req.Detalles {
			p, ok := porID[productoIDs[i]]
			if !ok {
				return apierror.NotFound(fmt.Sprintf("Producto con ID %s no encontrado", d.ProductoID))
			}
			if p.StockActual < d.Cantidad {
				return apierror.BadRequest(fmt.Sprintf(
					"Stock insuficiente para %s. Disponible: %d, Solicitado: %d",
					p.Nombre, p.StockActual, d.Cantidad))
			}
		}

		numero, err := s.ventas.NextNumeroDocumento(tx)
		if err != nil {
			return err
		}

		venta = &model.DocumentoVenta{
			NumeroDocumento: numero,
			TipoDocumento:   req.TipoDocumento,
			ClienteID:       clienteID,
			UsuarioID:       usuarioID,
			MetodoPagoID:    req.MetodoPagoID,
			FechaEmision:    time.Now(),
			SubtotalNeto:    req.SubtotalNeto,
			MontoIVA:        req.MontoIVA,
			Total:           req.Total,
			Estado:          model.VentaEmitida,
		}
		if err := s.ventas.CreateTx(tx, venta); err != nil {
			return err
		}

		detalles := make([]model.DocumentoVentaDetalle, 0, len(req.Detalles))
		for i, d := range req.Detalles {
			detalles = append(detalles, model.DocumentoVentaDetalle{
				DocumentoID:         venta.ID,
				ProductoID:          productoIDs[i],
				Cantidad:            d.Cantidad,
				PrecioUnitario:      d.PrecioUnitario,
				DescuentoPorcentaje: d.DescuentoPorcentaje,
				TotalLinea:          d.TotalLinea,
			})
		}
		if err := s.ventas.CreateDetallesTx(tx, detalles); err != nil {
			return err
		}

		if _, err := s.caja.RegistrarMovimientoTx(tx, dto.CajaMovimientoParams{
			CajaID:         caja.ID.String(),
			TipoMovimiento: "ingreso",
			MetodoPagoID:   req.MetodoPagoID,
			Monto:          req.Total,
			DocumentoID:    venta.ID.String(),
			TipoDocumento:  "venta",
			UsuarioID:      req.UsuarioID,
		}); err != nil {
			return err
		}

		comentario := fmt.Sprintf("Venta - Documento %d", numero)
		for i, d := range req.Detalles {
			if _, err := s.inventario.RegistrarMovimientoTx(tx, MovimientoParams{
				ProductoID:     productoIDs[i],
				TipoMovimiento: model.MovimientoSalida,
				Cantidad:       d.Cantidad,
				UsuarioID:      usuarioID,
				Comentario:     &comentario,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("venta_id", venta.ID.String()).
		Int64("numero_documento", venta.NumeroDocumento).
		Str("total", venta.Total.String()).
		Msg("venta procesada")
	return s.ventas.FindByID(ctx, venta.ID)
}

// ObtenerVenta returns a sale with its lines, customer, payment method and
// cashier attached.
func (s *VentaService) ObtenerVenta(ctx context.Context, id uuid.UUID) (*model.DocumentoVenta, error) {
	venta, err := s.ventas.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("Venta no encontrada")
		}
		return nil, err
	}
	return venta, nil
}

// AnularVenta voids a sale and restores its stock with one devolucion
// movement per line. Voiding is terminal and idempotency is rejected: a sale
// already voided cannot be voided again.
func (s *VentaService) AnularVenta(ctx context.Context, id uuid.UUID, req dto.AnularVentaRequest) (*model.DocumentoVenta, error) {
	usuarioID, err := uuid.Parse(req.UsuarioID)
	if err != nil {
		return nil, apierror.BadRequest("ID de usuario inválido")
	}

	err = runTx(ctx, s.ventas.DB(), func(tx *gorm.DB) error {
		venta, err := s.ventas.FindByIDWithDetallesTx(tx, id)
		if err != nil {
			if repository.IsNotFound(err) {
				return apierror.NotFound("Venta no encontrada")
			}
			return err
		}
		if venta.Estado == model.VentaAnulada {
			return apierror.BadRequest("La venta ya está anulada")
		}

		if err := s.ventas.UpdateEstadoTx(tx, id, model.VentaAnulada); err != nil {
			return err
		}

		comentario := fmt.Sprintf("Anulación de venta - Documento %d", venta.NumeroDocumento)
		for _, d := range venta.Detalles {
			if _, err := s.inventario.RegistrarMovimientoTx(tx, MovimientoParams{
				ProductoID:     d.ProductoID,
				TipoMovimiento: model.MovimientoDevolucion,
				Cantidad:       d.Cantidad,
				UsuarioID:      usuarioID,
				Comentario:     &comentario,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("venta_id", id.String()).Msg("venta anulada")
	return s.ventas.FindByID(ctx, id)
}
