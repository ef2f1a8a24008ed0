package service

import (
	"context"
	"sort"
	"sync"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/dto"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository fakes. DB() returns nil so runTx executes the
// callback directly; the tx handle is ignored everywhere.

func uniqueViolation() error     { return &pgconn.PgError{Code: "23505"} }
func foreignKeyViolation() error { return &pgconn.PgError{Code: "23503"} }

// ─── productos ───────────────────────────────────────────────────────────────

type fakeProductoRepo struct {
	mu        sync.Mutex
	productos map[uuid.UUID]*model.Producto
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *fakeProductoRepo) DB() *gorm.DB { return nil }

func (r *fakeProductoRepo) Create(_ context.Context, p *model.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for _, existing := range r.productos {
		if existing.SKU == p.SKU || existing.CodigoBarras == p.CodigoBarras {
			return uniqueViolation()
		}
	}
	cp := *p
	r.productos[p.ID] = &cp
	return nil
}

func (r *fakeProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductoRepo) List(_ context.Context, q dto.PageQuery) ([]model.Producto, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Nombre < all[j].Nombre })
	return page(all, q.Page, q.Limit), int64(len(all)), nil
}

func (r *fakeProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.productos[p.ID] = &cp
	return nil
}

func (r *fakeProductoRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.productos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.productos, id)
	return nil
}

func (r *fakeProductoRepo) CountByIDs(_ context.Context, ids []uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[uuid.UUID]bool)
	var count int64
	for _, id := range ids {
		if _, ok := r.productos[id]; ok && !seen[id] {
			seen[id] = true
			count++
		}
	}
	return count, nil
}

func (r *fakeProductoRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	return r.FindByID(context.Background(), id)
}

func (r *fakeProductoRepo) FindByIDsForUpdateTx(_ *gorm.DB, ids []uuid.UUID) ([]model.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Producto, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.productos[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductoRepo) UpdateStockTx(_ *gorm.DB, id uuid.UUID, stockNuevo int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.StockActual = stockNuevo
	return nil
}

// ─── inventario ──────────────────────────────────────────────────────────────

type fakeInventarioRepo struct {
	mu          sync.Mutex
	movimientos []model.InventarioMovimiento
}

func newFakeInventarioRepo() *fakeInventarioRepo { return &fakeInventarioRepo{} }

func (r *fakeInventarioRepo) CreateMovimientoTx(_ *gorm.DB, m *model.InventarioMovimiento) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *fakeInventarioRepo) List(_ context.Context, q dto.PageQuery) ([]model.InventarioMovimiento, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := append([]model.InventarioMovimiento(nil), r.movimientos...)
	sort.Slice(all, func(i, j int) bool { return all[i].Fecha.After(all[j].Fecha) })
	return page(all, q.Page, q.Limit), int64(len(all)), nil
}

func (r *fakeInventarioRepo) byProducto(id uuid.UUID) []model.InventarioMovimiento {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.InventarioMovimiento
	for _, m := range r.movimientos {
		if m.ProductoID == id {
			out = append(out, m)
		}
	}
	return out
}

// ─── caja ────────────────────────────────────────────────────────────────────

type fakeCajaRepo struct {
	mu          sync.Mutex
	cajas       map[uuid.UUID]*model.Caja
	movimientos []model.CajaMovimiento
	metodos     map[int]string
}

func newFakeCajaRepo() *fakeCajaRepo {
	return &fakeCajaRepo{
		cajas:   make(map[uuid.UUID]*model.Caja),
		metodos: map[int]string{1: "Efectivo", 2: "Tarjeta de débito", 3: "Tarjeta de crédito", 4: "Transferencia"},
	}
}

func (r *fakeCajaRepo) CreateCaja(_ context.Context, c *model.Caja) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.cajas {
		if existing.UsuarioID == c.UsuarioID && existing.Estado == model.CajaAbierta {
			return uniqueViolation()
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.cajas[c.ID] = &cp
	return nil
}

func (r *fakeCajaRepo) FindCajaByID(_ context.Context, id uuid.UUID) (*model.Caja, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cajas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCajaRepo) FindCajaAbiertaPorUsuario(_ context.Context, usuarioID uuid.UUID) (*model.Caja, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *model.Caja
	for _, c := range r.cajas {
		if c.UsuarioID == usuarioID && c.Estado == model.CajaAbierta {
			if latest == nil || c.FechaApertura.After(latest.FechaApertura) {
				latest = c
			}
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *latest
	return &cp, nil
}

func (r *fakeCajaRepo) UpdateCaja(_ context.Context, c *model.Caja) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.cajas[c.ID] = &cp
	return nil
}

func (r *fakeCajaRepo) CreateMovimiento(_ context.Context, m *model.CajaMovimiento) error {
	return r.CreateMovimientoTx(nil, m)
}

func (r *fakeCajaRepo) CreateMovimientoTx(_ *gorm.DB, m *model.CajaMovimiento) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *fakeCajaRepo) MontoTotalPorMetodo(_ context.Context, cajaID uuid.UUID) ([]dto.MontoPorMetodo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sums := make(map[int]decimal.Decimal)
	for _, m := range r.movimientos {
		if m.CajaID == cajaID {
			sums[m.MetodoPagoID] = sums[m.MetodoPagoID].Add(m.Monto)
		}
	}
	ids := make([]int, 0, len(sums))
	for id := range sums {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]dto.MontoPorMetodo, 0, len(ids))
	for _, id := range ids {
		out = append(out, dto.MontoPorMetodo{MetodoPagoID: id, Nombre: r.metodos[id], Monto: sums[id]})
	}
	return out, nil
}

func (r *fakeCajaRepo) UltimaCajaConMovimientos(_ context.Context, usuarioID uuid.UUID) (*model.Caja, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *model.Caja
	for _, c := range r.cajas {
		if c.UsuarioID == usuarioID {
			if latest == nil || c.FechaApertura.After(latest.FechaApertura) {
				latest = c
			}
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *latest
	for _, m := range r.movimientos {
		if m.CajaID == cp.ID {
			cp.Movimientos = append(cp.Movimientos, m)
		}
	}
	return &cp, nil
}

func (r *fakeCajaRepo) ListCajasUsuario(_ context.Context, q dto.CajaHistorialQuery) ([]model.Caja, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	usuarioID, _ := uuid.Parse(q.UsuarioID)
	var all []model.Caja
	for _, c := range r.cajas {
		if c.UsuarioID == usuarioID {
			all = append(all, *c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].FechaApertura.After(all[j].FechaApertura) })
	return page(all, q.Page, q.Limit), int64(len(all)), nil
}

// ─── ventas ──────────────────────────────────────────────────────────────────

type fakeVentaRepo struct {
	mu       sync.Mutex
	ventas   map[uuid.UUID]*model.DocumentoVenta
	detalles []model.DocumentoVentaDetalle
	seq      int64
}

func newFakeVentaRepo() *fakeVentaRepo {
	return &fakeVentaRepo{ventas: make(map[uuid.UUID]*model.DocumentoVenta)}
}

func (r *fakeVentaRepo) DB() *gorm.DB { return nil }

func (r *fakeVentaRepo) CreateTx(_ *gorm.DB, v *model.DocumentoVenta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	cp := *v
	r.ventas[v.ID] = &cp
	return nil
}

func (r *fakeVentaRepo) CreateDetallesTx(_ *gorm.DB, detalles []model.DocumentoVentaDetalle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range detalles {
		if detalles[i].ID == uuid.Nil {
			detalles[i].ID = uuid.New()
		}
		r.detalles = append(r.detalles, detalles[i])
	}
	return nil
}

func (r *fakeVentaRepo) NextNumeroDocumento(_ *gorm.DB) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq, nil
}

func (r *fakeVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.DocumentoVenta, error) {
	return r.findWithDetalles(id)
}

func (r *fakeVentaRepo) FindByIDWithDetallesTx(_ *gorm.DB, id uuid.UUID) (*model.DocumentoVenta, error) {
	return r.findWithDetalles(id)
}

func (r *fakeVentaRepo) findWithDetalles(id uuid.UUID) (*model.DocumentoVenta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *v
	for _, d := range r.detalles {
		if d.DocumentoID == id {
			cp.Detalles = append(cp.Detalles, d)
		}
	}
	return &cp, nil
}

func (r *fakeVentaRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, estado string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.ventas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Estado = estado
	return nil
}

// ─── compras ─────────────────────────────────────────────────────────────────

type fakeCompraRepo struct {
	mu       sync.Mutex
	compras  map[uuid.UUID]*model.Compra
	detalles []model.CompraDetalle
	resumen  dto.ResumenComprasResponse

	// detallesErr, when set, is returned by CreateDetallesTx to stand in for
	// a storage-level failure on the lines insert.
	detallesErr error
	// beforeEstadoLock runs before the locked read of a purchase returns,
	// letting a test interleave a competing state transition.
	beforeEstadoLock func()
}

func newFakeCompraRepo() *fakeCompraRepo {
	return &fakeCompraRepo{compras: make(map[uuid.UUID]*model.Compra)}
}

func (r *fakeCompraRepo) DB() *gorm.DB { return nil }

func (r *fakeCompraRepo) CreateTx(_ *gorm.DB, c *model.Compra) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.compras {
		if existing.ProveedorID == c.ProveedorID &&
			existing.TipoDocumento == c.TipoDocumento &&
			existing.NumeroDocumento == c.NumeroDocumento {
			return uniqueViolation()
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.compras[c.ID] = &cp
	return nil
}

func (r *fakeCompraRepo) CreateDetallesTx(_ *gorm.DB, detalles []model.CompraDetalle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.detallesErr != nil {
		return r.detallesErr
	}
	for i := range detalles {
		if detalles[i].ID == uuid.Nil {
			detalles[i].ID = uuid.New()
		}
		r.detalles = append(r.detalles, detalles[i])
	}
	return nil
}

func (r *fakeCompraRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Compra, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.compras[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompraRepo) FindByIDWithDetalles(_ context.Context, id uuid.UUID) (*model.Compra, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.compras[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	for _, d := range r.detalles {
		if d.CompraID == id {
			cp.Detalles = append(cp.Detalles, d)
		}
	}
	return &cp, nil
}

func (r *fakeCompraRepo) FindByIDWithDetallesForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Compra, error) {
	if r.beforeEstadoLock != nil {
		r.beforeEstadoLock()
	}
	return r.FindByIDWithDetalles(context.Background(), id)
}

func (r *fakeCompraRepo) Update(_ context.Context, c *model.Compra) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	cp.Detalles = nil
	r.compras[c.ID] = &cp
	return nil
}

func (r *fakeCompraRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, estado string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.compras[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Estado = estado
	return nil
}

func (r *fakeCompraRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.compras[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.compras, id)
	return nil
}

func (r *fakeCompraRepo) List(_ context.Context, q dto.CompraQuery) ([]model.Compra, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []model.Compra
	for _, c := range r.compras {
		if q.Estado != "" && c.Estado != q.Estado {
			continue
		}
		all = append(all, *c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return page(all, q.Page, q.Limit), int64(len(all)), nil
}

func (r *fakeCompraRepo) FindByProveedor(_ context.Context, proveedorID uuid.UUID) ([]model.Compra, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Compra
	for _, c := range r.compras {
		if c.ProveedorID == proveedorID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCompraRepo) Resumen(_ context.Context) (*dto.ResumenComprasResponse, error) {
	cp := r.resumen
	return &cp, nil
}

// ─── proveedores ─────────────────────────────────────────────────────────────

type fakeProveedorRepo struct {
	mu          sync.Mutex
	proveedores map[uuid.UUID]*model.Proveedor
}

func newFakeProveedorRepo() *fakeProveedorRepo {
	return &fakeProveedorRepo{proveedores: make(map[uuid.UUID]*model.Proveedor)}
}

func (r *fakeProveedorRepo) Create(_ context.Context, p *model.Proveedor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.proveedores {
		if existing.RUT == p.RUT {
			return uniqueViolation()
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.proveedores[p.ID] = &cp
	return nil
}

func (r *fakeProveedorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Proveedor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.proveedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProveedorRepo) List(_ context.Context, q dto.PageQuery) ([]model.Proveedor, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []model.Proveedor
	for _, p := range r.proveedores {
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].RazonSocial < all[j].RazonSocial })
	return page(all, q.Page, q.Limit), int64(len(all)), nil
}

func (r *fakeProveedorRepo) Update(_ context.Context, p *model.Proveedor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.proveedores[p.ID] = &cp
	return nil
}

func (r *fakeProveedorRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.proveedores[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.proveedores, id)
	return nil
}

// page slices a full result set down to the requested page.
func page[T any](all []T, pageNum, limit int) []T {
	if limit <= 0 {
		limit = 10
	}
	if pageNum <= 0 {
		pageNum = 1
	}
	start := (pageNum - 1) * limit
	if start >= len(all) {
		return []T{}
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
