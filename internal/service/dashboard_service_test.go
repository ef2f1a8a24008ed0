package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/dto"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardRepo struct {
	stockBajo dto.CardStockBajo
	ventasHoy dto.CardCantidadMonto
	compras   dto.CardCantidadMonto
	failWith  error
}

func (r *fakeDashboardRepo) ProductosStockBajo(context.Context) (*dto.CardStockBajo, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	cp := r.stockBajo
	return &cp, nil
}

func (r *fakeDashboardRepo) VentasHoy(context.Context) (*dto.CardCantidadMonto, error) {
	cp := r.ventasHoy
	return &cp, nil
}

func (r *fakeDashboardRepo) ComprasDelMes(context.Context) (*dto.CardCantidadMonto, error) {
	cp := r.compras
	return &cp, nil
}

func (r *fakeDashboardRepo) VentasPorDia(context.Context) ([]dto.VentaPorDia, error) {
	return nil, nil
}

func (r *fakeDashboardRepo) TopProductos(context.Context) ([]dto.TopProducto, error) {
	return []dto.TopProducto{{Producto: "Café", Cantidad: 12, Monto: decimal.NewFromInt(12000)}}, nil
}

func (r *fakeDashboardRepo) MetodosPagoMasUsados(context.Context) ([]dto.MetodoPagoUso, error) {
	return nil, nil
}

func (r *fakeDashboardRepo) ComprasPorMes(context.Context) ([]dto.CompraPorMes, error) {
	return nil, nil
}

func (r *fakeDashboardRepo) MovimientosInventarioPorDia(context.Context) ([]dto.MovimientoInventarioDia, error) {
	return nil, nil
}

func TestInformacionGeneral(t *testing.T) {
	repo := &fakeDashboardRepo{
		stockBajo: dto.CardStockBajo{SinStock: 2, StockBajo: 3, Productos: []dto.ProductoStockBajo{}},
		ventasHoy: dto.CardCantidadMonto{Cantidad: 5, Monto: decimal.NewFromInt(45000)},
		compras:   dto.CardCantidadMonto{Cantidad: 1, Monto: decimal.NewFromInt(90000)},
	}
	svc := NewDashboardService(repo, zerolog.Nop())

	resp, err := svc.InformacionGeneral(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Cards.ProductosStockBajo.SinStock)
	assert.Equal(t, int64(5), resp.Cards.VentasHoy.Cantidad)
	assert.True(t, decimal.NewFromInt(90000).Equal(resp.Cards.ComprasDelMes.Monto))

	// charts with no data serialize as empty arrays, never null
	assert.NotNil(t, resp.Graficos.VentasPorDia)
	assert.Empty(t, resp.Graficos.VentasPorDia)
	require.Len(t, resp.Graficos.TopProductos, 1)
	assert.Equal(t, "Café", resp.Graficos.TopProductos[0].Producto)
}

func TestInformacionGeneralPropagaError(t *testing.T) {
	repo := &fakeDashboardRepo{failWith: errors.New("conexión perdida")}
	svc := NewDashboardService(repo, zerolog.Nop())

	_, err := svc.InformacionGeneral(context.Background())
	require.Error(t, err)
}
