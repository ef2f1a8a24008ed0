package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/dto"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompraRepository interface {
	CreateTx(tx *gorm.DB, c *model.Compra) error
	CreateDetallesTx(tx *gorm.DB, detalles []model.CompraDetalle) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Compra, error)
	FindByIDWithDetalles(ctx context.Context, id uuid.UUID) (*model.Compra, error)

	// FindByIDWithDetallesForUpdateTx takes a row lock on the purchase so
	// concurrent state transitions serialize; the estado read under the lock
	// is the one that decides whether stock entries run.
	FindByIDWithDetallesForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Compra, error)
	Update(ctx context.Context, c *model.Compra) error
	UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, q dto.CompraQuery) ([]model.Compra, int64, error)
	FindByProveedor(ctx context.Context, proveedorID uuid.UUID) ([]model.Compra, error)
	Resumen(ctx context.Context) (*dto.ResumenComprasResponse, error)
	DB() *gorm.DB
}

type compraRepo struct{ db *gorm.DB }

func NewCompraRepository(db *gorm.DB) CompraRepository { return &compraRepo{db: db} }

func (r *compraRepo) DB() *gorm.DB { return r.db }

func (r *compraRepo) CreateTx(tx *gorm.DB, c *model.Compra) error {
	return tx.Create(c).Error
}

func (r *compraRepo) CreateDetallesTx(tx *gorm.DB, detalles []model.CompraDetalle) error {
	return tx.Create(&detalles).Error
}

func (r *compraRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Compra, error) {
	var c model.Compra
	err := r.db.WithContext(ctx).Preload("Proveedor").First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *compraRepo) FindByIDWithDetalles(ctx context.Context, id uuid.UUID) (*model.Compra, error) {
	var c model.Compra
	err := r.db.WithContext(ctx).
		Preload("Proveedor").
		Preload("Detalles.Producto").
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *compraRepo) FindByIDWithDetallesForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Compra, error) {
	var c model.Compra
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	// Detalles load after the compra row is locked; FOR UPDATE does not mix
	// with the joins a Preload would add.
	if err := tx.Where("compra_id = ?", id).Find(&c.Detalles).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *compraRepo) Update(ctx context.Context, c *model.Compra) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *compraRepo) UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error {
	return tx.Model(&model.Compra{}).Where("id = ?", id).Update("estado", estado).Error
}

func (r *compraRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Select("Detalles").Delete(&model.Compra{ID: id})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List supports the filter set of GET /api/purchases: estado, tipoDocumento,
// fecha range, proveedorId, and a free-text term across numeroDocumento and
// supplier names/rut (plus exact total match when numeric).
func (r *compraRepo) List(ctx context.Context, q dto.CompraQuery) ([]model.Compra, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Compra{}).
		Joins("JOIN proveedores ON proveedores.id = compras.proveedor_id")

	if q.Search != "" {
		like := "%" + q.Search + "%"
		cond := "compras.numero_documento ILIKE ? OR proveedores.nombre_fantasia ILIKE ? OR proveedores.razon_social ILIKE ? OR proveedores.rut ILIKE ?"
		args := []interface{}{like, like, like, like}
		if n, err := strconv.ParseFloat(q.Search, 64); err == nil {
			cond += " OR compras.total = ?"
			args = append(args, n)
		}
		query = query.Where(cond, args...)
	}
	if q.Estado != "" {
		query = query.Where("compras.estado = ?", q.Estado)
	}
	if q.TipoDocumento != "" {
		query = query.Where("compras.tipo_documento = ?", q.TipoDocumento)
	}
	if q.ProveedorID != "" {
		query = query.Where("compras.proveedor_id = ?", q.ProveedorID)
	}
	if q.FechaInicio != "" {
		if t, err := time.Parse("2006-01-02", q.FechaInicio); err == nil {
			query = query.Where("compras.fecha_emision >= ?", t)
		}
	}
	if q.FechaFin != "" {
		if t, err := time.Parse("2006-01-02", q.FechaFin); err == nil {
			query = query.Where("compras.fecha_emision <= ?", t)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var compras []model.Compra
	offset := (q.Page - 1) * q.Limit
	err := query.
		Preload("Proveedor").
		Preload("Detalles").
		Order("compras.created_at DESC").
		Limit(q.Limit).Offset(offset).
		Find(&compras).Error
	return compras, total, err
}

func (r *compraRepo) FindByProveedor(ctx context.Context, proveedorID uuid.UUID) ([]model.Compra, error) {
	var compras []model.Compra
	err := r.db.WithContext(ctx).
		Preload("Proveedor").
		Where("proveedor_id = ?", proveedorID).
		Order("fecha_emision DESC").
		Find(&compras).Error
	return compras, err
}

func (r *compraRepo) Resumen(ctx context.Context) (*dto.ResumenComprasResponse, error) {
	var resumen dto.ResumenComprasResponse
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.Compra{}).Count(&resumen.TotalCompras).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Proveedor{}).Count(&resumen.TotalProveedores).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Compra{}).
		Select("COALESCE(SUM(total), 0)").Scan(&resumen.TotalMontoCompras).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Compra{}).
		Where("estado = ?", model.CompraPendiente).Count(&resumen.ComprasPendientes).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Compra{}).
		Where("estado = ?", model.CompraRecibida).Count(&resumen.ComprasRecibidas).Error; err != nil {
		return nil, err
	}
	hace30 := time.Now().AddDate(0, 0, -30)
	if err := db.Model(&model.Compra{}).
		Where("fecha_emision >= ?", hace30).
		Select("COALESCE(SUM(total), 0)").Scan(&resumen.ComprasUltimos30Dias).Error; err != nil {
		return nil, err
	}
	return &resumen, nil
}
