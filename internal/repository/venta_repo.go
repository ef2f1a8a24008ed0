package repository

import (
	"context"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaRepository interface {
	CreateTx(tx *gorm.DB, v *model.DocumentoVenta) error
	CreateDetallesTx(tx *gorm.DB, detalles []model.DocumentoVentaDetalle) error
	// NextNumeroDocumento pulls the next sale number from the PostgreSQL
	// sequence, atomic under concurrency.
	NextNumeroDocumento(tx *gorm.DB) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.DocumentoVenta, error)
	FindByIDWithDetallesTx(tx *gorm.DB, id uuid.UUID) (*model.DocumentoVenta, error)
	UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.DocumentoVenta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) CreateDetallesTx(tx *gorm.DB, detalles []model.DocumentoVentaDetalle) error {
	return tx.Create(&detalles).Error
}

func (r *ventaRepo) NextNumeroDocumento(tx *gorm.DB) (int64, error) {
	var num int64
	err := tx.Raw("SELECT nextval('documento_venta_numero_seq')").Scan(&num).Error
	return num, err
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.DocumentoVenta, error) {
	var v model.DocumentoVenta
	err := r.db.WithContext(ctx).
		Preload("Detalles.Producto").
		Preload("Cliente").
		Preload("MetodoPago").
		Preload("Usuario").
		First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepo) FindByIDWithDetallesTx(tx *gorm.DB, id uuid.UUID) (*model.DocumentoVenta, error) {
	var v model.DocumentoVenta
	err := tx.Preload("Detalles").First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepo) UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error {
	return tx.Model(&model.DocumentoVenta{}).Where("id = ?", id).Update("estado", estado).Error
}
