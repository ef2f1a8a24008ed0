package dto

import "github.com/shopspring/decimal"

// Dashboard payload for GET /api/dashboard/informacion-general.
// Shapes mirror what the frontend charts consume; everything is computed
// fresh per request.

type ProductoStockBajo struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	StockActual int    `json:"stockActual"`
	StockMinimo int    `json:"stockMinimo"`
}

type CardStockBajo struct {
	SinStock  int                 `json:"sinStock"`
	StockBajo int                 `json:"stockBajo"`
	Productos []ProductoStockBajo `json:"productos"`
}

type CardCantidadMonto struct {
	Cantidad int64           `json:"cantidad"`
	Monto    decimal.Decimal `json:"monto"`
}

type VentaPorDia struct {
	Fecha    string          `json:"fecha"`
	Ventas   decimal.Decimal `json:"ventas"`
	Cantidad int64           `json:"cantidad"`
}

type TopProducto struct {
	Producto string          `json:"producto"`
	Cantidad int64           `json:"cantidad"`
	Monto    decimal.Decimal `json:"monto"`
}

type MetodoPagoUso struct {
	Metodo   string          `json:"metodo"`
	Cantidad int64           `json:"cantidad"`
	Monto    decimal.Decimal `json:"monto"`
}

type CompraPorMes struct {
	Mes      string          `json:"mes"`
	Cantidad int64           `json:"cantidad"`
	Monto    decimal.Decimal `json:"monto"`
}

type MovimientoInventarioDia struct {
	Fecha    string `json:"fecha"`
	Entradas int64  `json:"entradas"`
	Salidas  int64  `json:"salidas"`
}

type DashboardCards struct {
	ProductosStockBajo CardStockBajo     `json:"productosStockBajo"`
	VentasHoy          CardCantidadMonto `json:"ventasHoy"`
	ComprasDelMes      CardCantidadMonto `json:"comprasDelMes"`
}

type DashboardGraficos struct {
	VentasPorDia          []VentaPorDia             `json:"ventasPorDia"`
	TopProductos          []TopProducto             `json:"topProductos"`
	MetodosPagoMasUsados  []MetodoPagoUso           `json:"metodosPagoMasUsados"`
	ComprasPorMes         []CompraPorMes            `json:"comprasPorMes"`
	MovimientosInventario []MovimientoInventarioDia `json:"movimientosInventario"`
}

type DashboardResponse struct {
	Cards    DashboardCards    `json:"cards"`
	Graficos DashboardGraficos `json:"graficos"`
}
