package infra

import (
	"fmt"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies idempotent SQL patches that GORM
// cannot express (partial unique indexes, sequences).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates/updates the schema. Shared with integration tooling.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Rol{},
		&model.Usuario{},
		&model.Proveedor{},
		&model.Producto{},
		&model.InventarioMovimiento{},
		&model.MetodoPago{},
		&model.Cliente{},
		&model.Caja{},
		&model.CajaMovimiento{},
		&model.Compra{},
		&model.CompraDetalle{},
		&model.DocumentoVenta{},
		&model.DocumentoVentaDetalle{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot handle.
// Every statement uses IF NOT EXISTS semantics so re-running is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// At most one open caja per user. The open flow also checks before
		// creating; this index closes the check-then-create race at the
		// storage layer.
		{"partial unique index: one caja abierta per usuario", `
CREATE UNIQUE INDEX IF NOT EXISTS ux_cajas_usuario_abierta
    ON cajas (usuario_id)
    WHERE estado = 'abierta'`},
		// Sale document numbers come from a sequence so concurrent sales
		// never collide.
		{"documento venta number sequence",
			`CREATE SEQUENCE IF NOT EXISTS documento_venta_numero_seq START 1`},
		// Movement listings are always read newest-first.
		{"inventario movimientos fecha desc index", `
CREATE INDEX IF NOT EXISTS idx_inventario_movimientos_fecha_desc
    ON inventario_movimientos (fecha DESC)`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("schema patch %q: %w", p.descr, err)
		}
	}
	return nil
}
