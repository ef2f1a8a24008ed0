package repository

import (
	"context"
	"time"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/dto"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/model"

	"gorm.io/gorm"
)

// DashboardRepository holds the read-only aggregations behind the dashboard.
// Everything is computed fresh per request; no state, no caching. Reads are
// not wrapped in a transaction; a slightly skewed snapshot is acceptable
// for reporting.
type DashboardRepository interface {
	ProductosStockBajo(ctx context.Context) (*dto.CardStockBajo, error)
	VentasHoy(ctx context.Context) (*dto.CardCantidadMonto, error)
	ComprasDelMes(ctx context.Context) (*dto.CardCantidadMonto, error)
	VentasPorDia(ctx context.Context) ([]dto.VentaPorDia, error)
	TopProductos(ctx context.Context) ([]dto.TopProducto, error)
	MetodosPagoMasUsados(ctx context.Context) ([]dto.MetodoPagoUso, error)
	ComprasPorMes(ctx context.Context) ([]dto.CompraPorMes, error)
	MovimientosInventarioPorDia(ctx context.Context) ([]dto.MovimientoInventarioDia, error)
}

type dashboardRepo struct{ db *gorm.DB }

func NewDashboardRepository(db *gorm.DB) DashboardRepository { return &dashboardRepo{db: db} }

func (r *dashboardRepo) ProductosStockBajo(ctx context.Context) (*dto.CardStockBajo, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("activo = true AND (stock_actual = 0 OR stock_actual <= stock_minimo)").
		Order("stock_actual ASC").
		Find(&productos).Error
	if err != nil {
		return nil, err
	}

	card := &dto.CardStockBajo{Productos: []dto.ProductoStockBajo{}}
	for _, p := range productos {
		if p.StockActual == 0 {
			card.SinStock++
		} else if p.StockActual <= p.StockMinimo {
			card.StockBajo++
		}
		if len(card.Productos) < 10 {
			card.Productos = append(card.Productos, dto.ProductoStockBajo{
				ID:          p.ID.String(),
				Nombre:      p.Nombre,
				StockActual: p.StockActual,
				StockMinimo: p.StockMinimo,
			})
		}
	}
	return card, nil
}

func (r *dashboardRepo) VentasHoy(ctx context.Context) (*dto.CardCantidadMonto, error) {
	now := time.Now()
	hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var card dto.CardCantidadMonto
	err := r.db.WithContext(ctx).Model(&model.DocumentoVenta{}).
		Select("COUNT(id) AS cantidad, COALESCE(SUM(total), 0) AS monto").
		Where("fecha_emision >= ? AND fecha_emision < ? AND estado <> ?",
			hoy, hoy.AddDate(0, 0, 1), model.VentaAnulada).
		Scan(&card).Error
	return &card, err
}

func (r *dashboardRepo) ComprasDelMes(ctx context.Context) (*dto.CardCantidadMonto, error) {
	now := time.Now()
	inicioMes := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	finMes := inicioMes.AddDate(0, 1, 0)

	var card dto.CardCantidadMonto
	err := r.db.WithContext(ctx).Model(&model.Compra{}).
		Select("COUNT(id) AS cantidad, COALESCE(SUM(total), 0) AS monto").
		Where("fecha_emision >= ? AND fecha_emision < ? AND estado <> ?",
			inicioMes, finMes, model.CompraAnulada).
		Scan(&card).Error
	return &card, err
}

func (r *dashboardRepo) VentasPorDia(ctx context.Context) ([]dto.VentaPorDia, error) {
	hace30 := time.Now().AddDate(0, 0, -30)
	var rows []dto.VentaPorDia
	err := r.db.WithContext(ctx).Model(&model.DocumentoVenta{}).
		Select("TO_CHAR(fecha_emision, 'YYYY-MM-DD') AS fecha, COALESCE(SUM(total), 0) AS ventas, COUNT(id) AS cantidad").
		Where("fecha_emision >= ? AND estado <> ?", hace30, model.VentaAnulada).
		Group("TO_CHAR(fecha_emision, 'YYYY-MM-DD')").
		Order("fecha ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepo) TopProductos(ctx context.Context) ([]dto.TopProducto, error) {
	hace30 := time.Now().AddDate(0, 0, -30)
	var rows []dto.TopProducto
	err := r.db.WithContext(ctx).
		Table("documentos_venta_detalle").
		Select("productos.nombre AS producto, SUM(documentos_venta_detalle.cantidad) AS cantidad, COALESCE(SUM(documentos_venta_detalle.total_linea), 0) AS monto").
		Joins("JOIN documentos_venta ON documentos_venta.id = documentos_venta_detalle.documento_id").
		Joins("JOIN productos ON productos.id = documentos_venta_detalle.producto_id").
		Where("documentos_venta.fecha_emision >= ? AND documentos_venta.estado <> ?", hace30, model.VentaAnulada).
		Group("productos.nombre").
		Order("cantidad DESC").
		Limit(10).
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepo) MetodosPagoMasUsados(ctx context.Context) ([]dto.MetodoPagoUso, error) {
	hace30 := time.Now().AddDate(0, 0, -30)
	var rows []dto.MetodoPagoUso
	err := r.db.WithContext(ctx).
		Table("documentos_venta").
		Select("metodos_pago.nombre AS metodo, COUNT(documentos_venta.id) AS cantidad, COALESCE(SUM(documentos_venta.total), 0) AS monto").
		Joins("JOIN metodos_pago ON metodos_pago.id = documentos_venta.metodo_pago_id").
		Where("documentos_venta.fecha_emision >= ? AND documentos_venta.estado <> ?", hace30, model.VentaAnulada).
		Group("metodos_pago.nombre").
		Order("cantidad DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepo) ComprasPorMes(ctx context.Context) ([]dto.CompraPorMes, error) {
	hace6Meses := time.Now().AddDate(0, -6, 0)
	var rows []dto.CompraPorMes
	err := r.db.WithContext(ctx).Model(&model.Compra{}).
		Select("TO_CHAR(fecha_emision, 'YYYY-MM') AS mes, COUNT(id) AS cantidad, COALESCE(SUM(total), 0) AS monto").
		Where("fecha_emision >= ? AND estado <> ?", hace6Meses, model.CompraAnulada).
		Group("TO_CHAR(fecha_emision, 'YYYY-MM')").
		Order("mes ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepo) MovimientosInventarioPorDia(ctx context.Context) ([]dto.MovimientoInventarioDia, error) {
	hace30 := time.Now().AddDate(0, 0, -30)
	var rows []dto.MovimientoInventarioDia
	err := r.db.WithContext(ctx).Model(&model.InventarioMovimiento{}).
		Select("TO_CHAR(fecha, 'YYYY-MM-DD') AS fecha, " +
			"COALESCE(SUM(cantidad) FILTER (WHERE tipo_movimiento = 'entrada'), 0) AS entradas, " +
			"COALESCE(SUM(cantidad) FILTER (WHERE tipo_movimiento = 'salida'), 0) AS salidas").
		Where("fecha >= ?", hace30).
		Group("TO_CHAR(fecha, 'YYYY-MM-DD')").
		Order("fecha ASC").
		Scan(&rows).Error
	return rows, err
}
