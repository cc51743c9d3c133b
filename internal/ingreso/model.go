package ingreso

import (
	"time"

	"github.com/gestion-empleados/api-trabajadores/internal/models"
)

// Ingreso agrupa las fechas de vinculación de un trabajador en un año.
type Ingreso struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	TrabajadorID uint `gorm:"not null;uniqueIndex:idx_ingreso_trabajador_anio" json:"trabajadorId"`
	Anio         int  `gorm:"not null;index;uniqueIndex:idx_ingreso_trabajador_anio" json:"anio"`

	FechaIngreso         models.Fecha `gorm:"type:date" json:"fechaIngreso"`
	ExamenIngreso        models.Fecha `gorm:"type:date" json:"examenIngreso"`
	FechaEntregaEPP      models.Fecha `gorm:"column:fecha_entrega_epp;type:date" json:"fechaEntregaEpp"`
	FechaEntregaDotacion models.Fecha `gorm:"type:date" json:"fechaEntregaDotacion"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Ingreso) TableName() string { return "ingreso" }
