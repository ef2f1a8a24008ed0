package repository

import (
	"context"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/dto"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling unit testing via in-memory fakes.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	List(ctx context.Context, q dto.PageQuery) ([]model.Producto, int64, error)
	Update(ctx context.Context, p *model.Producto) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)

	// Used inside transactions; callers must pass the tx instance.
	// The ForUpdate variants take a row lock so concurrent sales cannot race
	// between stock check and decrement.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Producto, error)
	FindByIDsForUpdateTx(tx *gorm.DB, ids []uuid.UUID) ([]model.Producto, error)
	UpdateStockTx(tx *gorm.DB, id uuid.UUID, stockNuevo int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) DB() *gorm.DB { return r.db }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Preload("Proveedor").First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) List(ctx context.Context, q dto.PageQuery) ([]model.Producto, int64, error) {
	var productos []model.Producto
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Producto{})
	if q.Search != "" {
		like := "%" + q.Search + "%"
		query = query.Where("sku ILIKE ? OR codigo_barras ILIKE ? OR nombre ILIKE ?", like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (q.Page - 1) * q.Limit
	err := query.Order("nombre ASC").Limit(q.Limit).Offset(offset).Find(&productos).Error
	return productos, total, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Producto{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productoRepo) CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *productoRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) FindByIDsForUpdateTx(tx *gorm.DB, ids []uuid.UUID) ([]model.Producto, error) {
	var productos []model.Producto
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id IN ?", ids).Find(&productos).Error
	return productos, err
}

func (r *productoRepo) UpdateStockTx(tx *gorm.DB, id uuid.UUID, stockNuevo int) error {
	return tx.Model(&model.Producto{}).Where("id = ?", id).
		Update("stock_actual", stockNuevo).Error
}
