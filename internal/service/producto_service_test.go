package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/apierror"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/dto"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductoFixture() (*ProductoService, *fakeProductoRepo) {
	productos := newFakeProductoRepo()
	return NewProductoService(productos, zerolog.Nop()), productos
}

func TestCrearProducto(t *testing.T) {
	svc, _ := newProductoFixture()

	p, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		SKU:          "CAF-001",
		CodigoBarras: "7801234567890",
		Nombre:       "Café molido 250g",
		PrecioNeto:   decimal.NewFromInt(840),
		PrecioVenta:  decimal.NewFromInt(1000),
		CostoNeto:    decimal.NewFromInt(600),
		StockActual:  20,
		StockMinimo:  5,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.True(t, p.Activo)
	assert.True(t, p.AfectoIVA)
	assert.Equal(t, "unidad", p.UnidadMedida)
}

func TestCrearProductoSKUDuplicado(t *testing.T) {
	svc, productos := newProductoFixture()
	seedProducto(t, productos, "Cafe", 10)

	_, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		SKU:          "SKU-Cafe",
		CodigoBarras: "otro",
		Nombre:       "Otro café",
		PrecioVenta:  decimal.NewFromInt(1000),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apierror.StatusOf(err))
}

func TestActualizarProductoParcial(t *testing.T) {
	svc, productos := newProductoFixture()
	p := seedProducto(t, productos, "Cafe", 10)

	nombre := "Café premium"
	precio := decimal.NewFromInt(1500)
	actualizado, err := svc.Actualizar(context.Background(), p.ID, dto.ActualizarProductoRequest{
		Nombre:      &nombre,
		PrecioVenta: &precio,
	})
	require.NoError(t, err)
	assert.Equal(t, "Café premium", actualizado.Nombre)
	assert.True(t, precio.Equal(actualizado.PrecioVenta))
	// stock is not editable through the catalog
	assert.Equal(t, 10, actualizado.StockActual)
	assert.Equal(t, "SKU-Cafe", actualizado.SKU)
}

func TestObtenerProductoInexistente(t *testing.T) {
	svc, _ := newProductoFixture()

	_, err := svc.Obtener(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}

func TestListarProductosEnvelope(t *testing.T) {
	svc, productos := newProductoFixture()
	for _, n := range []string{"Cafe", "Te", "Azucar"} {
		seedProducto(t, productos, n, 5)
	}

	resp, err := svc.Listar(context.Background(), dto.PageQuery{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(3), resp.Meta.TotalItems)
	assert.Equal(t, 2, resp.Meta.TotalPages)
	assert.Equal(t, 1, resp.Meta.CurrentPage)
}

func TestEliminarProducto(t *testing.T) {
	svc, productos := newProductoFixture()
	p := seedProducto(t, productos, "Cafe", 10)

	require.NoError(t, svc.Eliminar(context.Background(), p.ID))

	err := svc.Eliminar(context.Background(), p.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}
