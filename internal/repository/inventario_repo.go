package repository

import (
	"context"
	"strconv"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/dto"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/model"

	"gorm.io/gorm"
)

// InventarioRepository owns the append-only movement log. Movements are only
// created, never updated or deleted.
type InventarioRepository interface {
	CreateMovimientoTx(tx *gorm.DB, m *model.InventarioMovimiento) error
	List(ctx context.Context, q dto.PageQuery) ([]model.InventarioMovimiento, int64, error)
}

type inventarioRepo struct{ db *gorm.DB }

func NewInventarioRepository(db *gorm.DB) InventarioRepository {
	return &inventarioRepo{db: db}
}

func (r *inventarioRepo) CreateMovimientoTx(tx *gorm.DB, m *model.InventarioMovimiento) error {
	return tx.Create(m).Error
}

// List returns a page of movements enriched with product and user, searching
// across product nombre/sku/codigo_barras, the movement comment, and, when
// the term parses as a number, the quantity.
func (r *inventarioRepo) List(ctx context.Context, q dto.PageQuery) ([]model.InventarioMovimiento, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.InventarioMovimiento{}).
		Joins("JOIN productos ON productos.id = inventario_movimientos.producto_id")

	if q.Search != "" {
		like := "%" + q.Search + "%"
		cond := "productos.nombre ILIKE ? OR productos.sku ILIKE ? OR productos.codigo_barras ILIKE ? OR inventario_movimientos.comentario ILIKE ?"
		args := []interface{}{like, like, like, like}
		if n, err := strconv.Atoi(q.Search); err == nil {
			cond += " OR inventario_movimientos.cantidad = ?"
			args = append(args, n)
		}
		query = query.Where(cond, args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var movimientos []model.InventarioMovimiento
	offset := (q.Page - 1) * q.Limit
	err := query.Preload("Producto").Preload("Usuario").
		Order("inventario_movimientos.fecha DESC").
		Limit(q.Limit).Offset(offset).
		Find(&movimientos).Error
	return movimientos, total, err
}
