package proyecto

import (
	"time"
)

// Proyecto marca las categorías de proyecto en que participa un trabajador en un año.
type Proyecto struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	TrabajadorID uint `gorm:"not null;uniqueIndex:idx_proyectos_trabajador_anio" json:"trabajadorId"`
	Anio         int  `gorm:"not null;index;uniqueIndex:idx_proyectos_trabajador_anio" json:"anio"`

	Administrativo            bool `gorm:"not null;default:false" json:"administrativo"`
	ConstruccionInstalaciones bool `gorm:"not null;default:false" json:"construccionInstalaciones"`
	ConstruccionRedes         bool `gorm:"not null;default:false" json:"construccionRedes"`
	Servicios                 bool `gorm:"not null;default:false" json:"servicios"`
	MantenimientoRedes        bool `gorm:"not null;default:false" json:"mantenimientoRedes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Proyecto) TableName() string { return "proyectos" }

// Activos lista las categorías marcadas.
func (p *Proyecto) Activos() []string {
	var out []string
	if p.Administrativo {
		out = append(out, "Administrativo")
	}
	if p.ConstruccionInstalaciones {
		out = append(out, "Construcción de Instalaciones")
	}
	if p.ConstruccionRedes {
		out = append(out, "Construcción de Redes")
	}
	if p.Servicios {
		out = append(out, "Servicios")
	}
	if p.MantenimientoRedes {
		out = append(out, "Mantenimiento de Redes")
	}
	return out
}
