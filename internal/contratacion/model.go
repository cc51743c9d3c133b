package contratacion

import (
	"errors"
	"time"

	"github.com/gestion-empleados/api-trabajadores/internal/catalogo"
	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"github.com/shopspring/decimal"
)

// Contratacion es la contratación de un trabajador en un año. Única por (trabajador, año).
type Contratacion struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	TrabajadorID uint `gorm:"not null;uniqueIndex:idx_contratacion_trabajador_anio" json:"trabajadorId"`
	Anio         int  `gorm:"not null;index;uniqueIndex:idx_contratacion_trabajador_anio" json:"anio"`

	TipoContrato        string          `gorm:"size:50;not null" json:"tipoContrato"`
	Cargo               string          `gorm:"size:200;not null;default:''" json:"cargo"`
	SalarioContratado   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"salarioContratado"`
	MunicipioBase       string          `gorm:"size:50" json:"municipioBase"`
	FechaInicioContrato models.Fecha    `gorm:"type:date" json:"fechaInicioContrato"`
	FechaFinalContrato  models.Fecha    `gorm:"type:date" json:"fechaFinalContrato"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Contratacion) TableName() string { return "contratacion" }

// Activo indica si el contrato está vigente en la fecha dada. Sin fecha final no vence.
func (c *Contratacion) Activo(hoy time.Time) bool {
	if !c.FechaInicioContrato.Valid || c.FechaInicioContrato.Time.After(hoy) {
		return false
	}
	return !c.FechaFinalContrato.Valid || !c.FechaFinalContrato.Time.Before(hoy)
}

// DiasRestantes devuelve nil para contratos sin fecha final y 0 para los vencidos.
func (c *Contratacion) DiasRestantes(hoy time.Time) *int {
	if !c.FechaFinalContrato.Valid {
		return nil
	}
	d := int(c.FechaFinalContrato.Time.Sub(hoy).Hours() / 24)
	if d < 0 {
		d = 0
	}
	return &d
}

func (c *Contratacion) Validar() error {
	if !catalogo.ContratoValido(c.TipoContrato) {
		return errors.New("tipoContrato inválido")
	}
	if c.MunicipioBase != "" && !catalogo.MunicipioValido(c.MunicipioBase) {
		return errors.New("municipioBase inválido")
	}
	if c.SalarioContratado.IsNegative() {
		return errors.New("salarioContratado no puede ser negativo")
	}
	if c.FechaInicioContrato.Valid && c.FechaFinalContrato.Valid &&
		c.FechaFinalContrato.Time.Before(c.FechaInicioContrato.Time) {
		return errors.New("fechaFinalContrato anterior a fechaInicioContrato")
	}
	return nil
}
