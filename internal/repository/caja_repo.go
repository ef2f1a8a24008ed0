package repository

import (
	"context"
	"strconv"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/dto"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CajaRepository interface {
	CreateCaja(ctx context.Context, c *model.Caja) error
	FindCajaByID(ctx context.Context, id uuid.UUID) (*model.Caja, error)
	// FindCajaAbiertaPorUsuario returns the most recent open session for the
	// user, or gorm.ErrRecordNotFound.
	FindCajaAbiertaPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.Caja, error)
	UpdateCaja(ctx context.Context, c *model.Caja) error
	CreateMovimiento(ctx context.Context, m *model.CajaMovimiento) error
	CreateMovimientoTx(tx *gorm.DB, m *model.CajaMovimiento) error
	// MontoTotalPorMetodo aggregates SUM(monto) per payment method for a
	// session, joined with method names. Methods with no movements do not
	// appear.
	MontoTotalPorMetodo(ctx context.Context, cajaID uuid.UUID) ([]dto.MontoPorMetodo, error)
	// UltimaCajaConMovimientos returns the user's most recent session with
	// its movement log attached.
	UltimaCajaConMovimientos(ctx context.Context, usuarioID uuid.UUID) (*model.Caja, error)
	ListCajasUsuario(ctx context.Context, q dto.CajaHistorialQuery) ([]model.Caja, int64, error)
}

type cajaRepo struct{ db *gorm.DB }

func NewCajaRepository(db *gorm.DB) CajaRepository { return &cajaRepo{db: db} }

func (r *cajaRepo) CreateCaja(ctx context.Context, c *model.Caja) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cajaRepo) FindCajaByID(ctx context.Context, id uuid.UUID) (*model.Caja, error) {
	var c model.Caja
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cajaRepo) FindCajaAbiertaPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.Caja, error) {
	var c model.Caja
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND estado = ?", usuarioID, model.CajaAbierta).
		Order("fecha_apertura DESC").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cajaRepo) UpdateCaja(ctx context.Context, c *model.Caja) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *cajaRepo) CreateMovimiento(ctx context.Context, m *model.CajaMovimiento) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *cajaRepo) CreateMovimientoTx(tx *gorm.DB, m *model.CajaMovimiento) error {
	return tx.Create(m).Error
}

func (r *cajaRepo) MontoTotalPorMetodo(ctx context.Context, cajaID uuid.UUID) ([]dto.MontoPorMetodo, error) {
	var rows []dto.MontoPorMetodo
	err := r.db.WithContext(ctx).
		Table("caja_movimientos").
		Select("caja_movimientos.metodo_pago_id AS metodo_pago_id, metodos_pago.nombre AS nombre, SUM(caja_movimientos.monto) AS monto").
		Joins("JOIN metodos_pago ON metodos_pago.id = caja_movimientos.metodo_pago_id").
		Where("caja_movimientos.caja_id = ?", cajaID).
		Group("caja_movimientos.metodo_pago_id, metodos_pago.nombre").
		Order("caja_movimientos.metodo_pago_id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *cajaRepo) UltimaCajaConMovimientos(ctx context.Context, usuarioID uuid.UUID) (*model.Caja, error) {
	var c model.Caja
	err := r.db.WithContext(ctx).
		Preload("Movimientos", func(db *gorm.DB) *gorm.DB { return db.Order("fecha ASC") }).
		Preload("Movimientos.MetodoPago").
		Where("usuario_id = ?", usuarioID).
		Order("fecha_apertura DESC").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCajasUsuario pages through a user's session history. The free-text
// term matches comment, estado, the opening date (as text) and, when
// numeric, the opening amount.
func (r *cajaRepo) ListCajasUsuario(ctx context.Context, q dto.CajaHistorialQuery) ([]model.Caja, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Caja{}).
		Where("usuario_id = ?", q.UsuarioID)

	if q.Search != "" {
		like := "%" + q.Search + "%"
		cond := "comentario ILIKE ? OR estado ILIKE ? OR TO_CHAR(fecha_apertura, 'YYYY-MM-DD') LIKE ?"
		args := []interface{}{like, like, like}
		if n, err := strconv.ParseFloat(q.Search, 64); err == nil {
			cond += " OR monto_apertura = ?"
			args = append(args, n)
		}
		query = query.Where(cond, args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cajas []model.Caja
	offset := (q.Page - 1) * q.Limit
	err := query.
		Preload("Movimientos").
		Order("fecha_apertura DESC").
		Limit(q.Limit).Offset(offset).
		Find(&cajas).Error
	return cajas, total, err
}
