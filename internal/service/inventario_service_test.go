package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/apierror"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/dto"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProducto(t *testing.T, repo *fakeProductoRepo, nombre string, stock int) *model.Producto {
	t.Helper()
	p := &model.Producto{
		SKU:          "SKU-" + nombre,
		CodigoBarras: "780000" + nombre,
		Nombre:       nombre,
		PrecioNeto:   decimal.NewFromInt(840),
		PrecioVenta:  decimal.NewFromInt(1000),
		CostoNeto:    decimal.NewFromInt(600),
		StockActual:  stock,
		StockMinimo:  5,
		Activo:       true,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func newInventarioFixture() (*InventarioService, *fakeProductoRepo, *fakeInventarioRepo) {
	productos := newFakeProductoRepo()
	movimientos := newFakeInventarioRepo()
	svc := NewInventarioService(productos, movimientos, zerolog.Nop())
	return svc, productos, movimientos
}

func TestRegistrarMovimientoEntradaSumaStock(t *testing.T) {
	svc, productos, _ := newInventarioFixture()
	p := seedProducto(t, productos, "Cafe", 10)
	usuario := uuid.New()

	mov, err := svc.RegistrarMovimiento(context.Background(), dto.RegistrarMovimientoRequest{
		ProductoID:     p.ID.String(),
		TipoMovimiento: model.MovimientoEntrada,
		Cantidad:       7,
		UsuarioID:      usuario.String(),
	})
	require.NoError(t, err)

	assert.Equal(t, 10, mov.StockAnterior)
	assert.Equal(t, 17, mov.StockNuevo)
	assert.Equal(t, usuario, mov.UsuarioID)

	actualizado, err := productos.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 17, actualizado.StockActual)
}

func TestRegistrarMovimientoSalidaRestaStock(t *testing.T) {
	svc, productos, _ := newInventarioFixture()
	p := seedProducto(t, productos, "Te", 10)

	mov, err := svc.RegistrarMovimiento(context.Background(), dto.RegistrarMovimientoRequest{
		ProductoID:     p.ID.String(),
		TipoMovimiento: model.MovimientoSalida,
		Cantidad:       4,
		UsuarioID:      uuid.NewString(),
	})
	require.NoError(t, err)
	assert.Equal(t, 6, mov.StockNuevo)
}

func TestRegistrarMovimientoDevolucionYAjuste(t *testing.T) {
	svc, productos, _ := newInventarioFixture()
	p := seedProducto(t, productos, "Azucar", 10)
	usuario := uuid.NewString()

	mov, err := svc.RegistrarMovimiento(context.Background(), dto.RegistrarMovimientoRequest{
		ProductoID:     p.ID.String(),
		TipoMovimiento: model.MovimientoDevolucion,
		Cantidad:       3,
		UsuarioID:      usuario,
	})
	require.NoError(t, err)
	assert.Equal(t, 13, mov.StockNuevo)

	mov, err = svc.RegistrarMovimiento(context.Background(), dto.RegistrarMovimientoRequest{
		ProductoID:     p.ID.String(),
		TipoMovimiento: model.MovimientoAjuste,
		Cantidad:       2,
		UsuarioID:      usuario,
	})
	require.NoError(t, err)
	assert.Equal(t, 11, mov.StockNuevo)
}

func TestRegistrarMovimientoRechazaStockNegativo(t *testing.T) {
	svc, productos, movimientos := newInventarioFixture()
	p := seedProducto(t, productos, "Harina", 3)

	_, err := svc.RegistrarMovimiento(context.Background(), dto.RegistrarMovimientoRequest{
		ProductoID:     p.ID.String(),
		TipoMovimiento: model.MovimientoSalida,
		Cantidad:       5,
		UsuarioID:      uuid.NewString(),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierror.StatusOf(err))
	assert.Contains(t, err.Error(), "no puede ser negativo")
	assert.Contains(t, err.Error(), "-2")

	// nothing written, stock untouched
	actualizado, _ := productos.FindByID(context.Background(), p.ID)
	assert.Equal(t, 3, actualizado.StockActual)
	assert.Empty(t, movimientos.byProducto(p.ID))
}

func TestRegistrarMovimientoTipoInvalido(t *testing.T) {
	svc, productos, _ := newInventarioFixture()
	p := seedProducto(t, productos, "Sal", 3)

	_, err := svc.RegistrarMovimiento(context.Background(), dto.RegistrarMovimientoRequest{
		ProductoID:     p.ID.String(),
		TipoMovimiento: "traslado",
		Cantidad:       1,
		UsuarioID:      uuid.NewString(),
	})
	require.Error(t, err)
	assert.Equal(t, "Tipo de movimiento inválido", err.Error())
}

func TestRegistrarMovimientoProductoInactivo(t *testing.T) {
	svc, productos, _ := newInventarioFixture()
	p := seedProducto(t, productos, "Descontinuado", 3)
	p.Activo = false
	require.NoError(t, productos.Update(context.Background(), p))

	_, err := svc.RegistrarMovimiento(context.Background(), dto.RegistrarMovimientoRequest{
		ProductoID:     p.ID.String(),
		TipoMovimiento: model.MovimientoEntrada,
		Cantidad:       1,
		UsuarioID:      uuid.NewString(),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierror.StatusOf(err))
	assert.Contains(t, err.Error(), "no está activo")
}

func TestRegistrarMovimientoProductoInexistente(t *testing.T) {
	svc, _, _ := newInventarioFixture()

	_, err := svc.RegistrarMovimiento(context.Background(), dto.RegistrarMovimientoRequest{
		ProductoID:     uuid.NewString(),
		TipoMovimiento: model.MovimientoEntrada,
		Cantidad:       1,
		UsuarioID:      uuid.NewString(),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}

func TestListarMovimientosPaginado(t *testing.T) {
	svc, productos, _ := newInventarioFixture()
	p := seedProducto(t, productos, "Arroz", 100)

	for i := 0; i < 12; i++ {
		_, err := svc.RegistrarMovimiento(context.Background(), dto.RegistrarMovimientoRequest{
			ProductoID:     p.ID.String(),
			TipoMovimiento: model.MovimientoSalida,
			Cantidad:       1,
			UsuarioID:      uuid.NewString(),
		})
		require.NoError(t, err)
	}

	resp, err := svc.Listar(context.Background(), dto.PageQuery{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(12), resp.Meta.TotalItems)
	assert.Equal(t, 2, resp.Meta.TotalPages)
	assert.Equal(t, 2, resp.Meta.CurrentPage)
	assert.Equal(t, 2, resp.Meta.ItemCount)
}
