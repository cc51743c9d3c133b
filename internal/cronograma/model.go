package cronograma

import (
	"errors"
	"fmt"
	"time"

	"github.com/gestion-empleados/api-trabajadores/internal/catalogo"
	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cronograma es la novedad mensual de un trabajador. Única por (trabajador, mes).
// Anio se deriva de Mes al guardar.
type Cronograma struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	TrabajadorID uint         `gorm:"not null;uniqueIndex:idx_cronograma_trabajador_mes" json:"trabajadorId"`
	Mes          models.Fecha `gorm:"type:date;not null;uniqueIndex:idx_cronograma_trabajador_mes" json:"mes"`
	Anio         int          `gorm:"not null;index" json:"anio"`

	MunicipioEjecucion string          `gorm:"size:50" json:"municipioEjecucion"`
	SalarioCotizacion  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"salarioCotizacion"`
	DiasLaborados      int             `gorm:"not null;default:0" json:"diasLaborados"`
	SueldoDevengado    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"sueldoDevengado"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Cronograma) TableName() string { return "cronograma" }

var nombresMes = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// PrimerDia normaliza cualquier fecha al primer día de su mes.
func PrimerDia(anio int, mes time.Month) models.Fecha {
	return models.FechaDe(anio, mes, 1)
}

// BeforeSave fija Mes al día 1 y deriva Anio.
func (c *Cronograma) BeforeSave(tx *gorm.DB) error {
	if !c.Mes.Valid {
		return errors.New("mes es obligatorio")
	}
	c.Mes = PrimerDia(c.Mes.Time.Year(), c.Mes.Time.Month())
	c.Anio = c.Mes.Time.Year()
	return nil
}

// MesDisplay devuelve por ejemplo "Enero 2024".
func (c *Cronograma) MesDisplay() string {
	if !c.Mes.Valid {
		return ""
	}
	return fmt.Sprintf("%s %d", nombresMes[c.Mes.Time.Month()-1], c.Mes.Time.Year())
}

func (c *Cronograma) Validar() error {
	if !c.Mes.Valid {
		return errors.New("mes es obligatorio")
	}
	if c.DiasLaborados < 0 || c.DiasLaborados > 31 {
		return errors.New("diasLaborados debe estar entre 0 y 31")
	}
	if c.SalarioCotizacion.IsNegative() || c.SueldoDevengado.IsNegative() {
		return errors.New("los valores no pueden ser negativos")
	}
	if c.MunicipioEjecucion != "" && !catalogo.MunicipioValido(c.MunicipioEjecucion) {
		return errors.New("municipioEjecucion inválido")
	}
	return nil
}
