// Command seeddata populates the lookup tables and a development admin user.
// Safe to re-run: every insert is an upsert keyed on the natural identifier.
package main

import (
	"github.com/Niko2Tech/ProyectoPortafolio/internal/config"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/infra"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/model"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error cargando configuración")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("error conectando a la base de datos")
	}

	roles := []model.Rol{
		{ID: 1, Nombre: "Venta", Descripcion: "Cajero / punto de venta"},
		{ID: 2, Nombre: "Admin", Descripcion: "Administrador del sistema"},
		{ID: 3, Nombre: "Bodeguero", Descripcion: "Gestión de inventario y compras"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error; err != nil {
		log.Fatal().Err(err).Msg("error creando roles")
	}

	metodos := []model.MetodoPago{
		{ID: 1, Nombre: "Efectivo", Activo: true},
		{ID: 2, Nombre: "Tarjeta de débito", Activo: true},
		{ID: 3, Nombre: "Tarjeta de crédito", Activo: true},
		{ID: 4, Nombre: "Transferencia", Activo: true},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&metodos).Error; err != nil {
		log.Fatal().Err(err).Msg("error creando métodos de pago")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("error generando hash")
	}
	admin := model.Usuario{
		Nombre:       "Admin",
		Apellido:     "Local",
		Email:        "admin@local.cl",
		PasswordHash: string(hash),
		RolID:        2,
		Activo:       true,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&admin).Error; err != nil {
		log.Fatal().Err(err).Msg("error creando usuario admin")
	}

	cliente := model.Cliente{
		Nombre: "Cliente genérico",
		RUT:    "66666666-6",
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "rut"}},
		DoNothing: true,
	}).Create(&cliente).Error; err != nil {
		log.Fatal().Err(err).Msg("error creando cliente genérico")
	}

	log.Info().Msg("datos semilla cargados")
}
