package db

import (
	"fmt"

	"github.com/gestion-empleados/api-trabajadores/internal/auth"
	"github.com/gestion-empleados/api-trabajadores/internal/contratacion"
	"github.com/gestion-empleados/api-trabajadores/internal/cronograma"
	"github.com/gestion-empleados/api-trabajadores/internal/ingreso"
	"github.com/gestion-empleados/api-trabajadores/internal/proyecto"
	"github.com/gestion-empleados/api-trabajadores/internal/retiro"
	"github.com/gestion-empleados/api-trabajadores/internal/seguridadsocial"
	"github.com/gestion-empleados/api-trabajadores/internal/trabajador"
	"github.com/gestion-empleados/api-trabajadores/internal/usuario"
	"gorm.io/gorm"
)

// Migrar crea o actualiza todas las tablas. Trabajador va primero por las llaves foráneas.
func Migrar(database *gorm.DB) error {
	if err := database.AutoMigrate(
		&trabajador.Trabajador{},
		&contratacion.Contratacion{},
		&ingreso.Ingreso{},
		&retiro.Retiro{},
		&seguridadsocial.SeguridadSocial{},
		&proyecto.Proyecto{},
		&cronograma.Cronograma{},
		&usuario.Usuario{},
		&auth.RefreshToken{},
	); err != nil {
		return fmt.Errorf("migrar esquema: %w", err)
	}
	return nil
}
