package seguridadsocial

import (
	"errors"
	"time"

	"github.com/gestion-empleados/api-trabajadores/internal/catalogo"
	"github.com/gestion-empleados/api-trabajadores/internal/models"
)

// SeguridadSocial guarda las afiliaciones (EPS, caja, pensión, ARL) de un trabajador en un año.
type SeguridadSocial struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	TrabajadorID uint `gorm:"not null;uniqueIndex:idx_seguridad_social_trabajador_anio" json:"trabajadorId"`
	Anio         int  `gorm:"not null;index;uniqueIndex:idx_seguridad_social_trabajador_anio" json:"anio"`

	EPS                    string       `gorm:"column:eps;size:100" json:"eps"`
	FechaAfiliacionEPS     models.Fecha `gorm:"column:fecha_afiliacion_eps;type:date" json:"fechaAfiliacionEps"`
	CajaCompensacion       string       `gorm:"size:100" json:"cajaCompensacion"`
	FechaAfiliacionCaja    models.Fecha `gorm:"type:date" json:"fechaAfiliacionCaja"`
	FondoPension           string       `gorm:"size:100" json:"fondoPension"`
	FechaAfiliacionPension models.Fecha `gorm:"type:date" json:"fechaAfiliacionPension"`
	ARL                    string       `gorm:"column:arl;size:50" json:"arl"`
	Riesgo                 string       `gorm:"size:1" json:"riesgo"`
	FechaAfiliacionARL     models.Fecha `gorm:"column:fecha_afiliacion_arl;type:date" json:"fechaAfiliacionArl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (SeguridadSocial) TableName() string { return "seguridad_social" }

func (s *SeguridadSocial) Validar() error {
	if s.Riesgo != "" && catalogo.CodigoRiesgo(s.Riesgo) != s.Riesgo {
		return errors.New("riesgo debe estar entre 1 y 5")
	}
	if s.ARL != "" && catalogo.CodigoARL(s.ARL) != s.ARL {
		return errors.New("arl inválida")
	}
	return nil
}
