package trabajador

import (
	"github.com/gestion-empleados/api-trabajadores/internal/catalogo"
	"github.com/gestion-empleados/api-trabajadores/internal/contratacion"
	"github.com/gestion-empleados/api-trabajadores/internal/cronograma"
	"github.com/gestion-empleados/api-trabajadores/internal/ingreso"
	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"github.com/gestion-empleados/api-trabajadores/internal/proyecto"
	"github.com/gestion-empleados/api-trabajadores/internal/retiro"
	"github.com/gestion-empleados/api-trabajadores/internal/seguridadsocial"
)

type TrabajadorDTO struct {
	Trabajador
	TipoDisplay    string `json:"tipoDisplay"`
	NombreCompleto string `json:"nombreCompleto"`
	Edad           *int   `json:"edad"`
}

func toDTO(t Trabajador) TrabajadorDTO {
	return TrabajadorDTO{
		Trabajador:     t,
		TipoDisplay:    catalogo.TiposIdentificacion.Etiqueta(t.Tipo),
		NombreCompleto: t.NombreCompleto(),
		Edad:           t.Edad(models.Hoy()),
	}
}

// DatosCompletosDTO reúne la ficha del trabajador para un año.
type DatosCompletosDTO struct {
	Trabajador       TrabajadorDTO                    `json:"trabajador"`
	Anio             int                              `json:"anio"`
	Contratacion     *contratacion.ContratacionDTO    `json:"contratacion"`
	Ingreso          *ingreso.Ingreso                 `json:"ingreso"`
	Retiro           *retiro.Retiro                   `json:"retiro"`
	SeguridadSocial  *seguridadsocial.SeguridadSocial `json:"seguridadSocial"`
	Proyectos        *proyecto.Proyecto               `json:"proyectos"`
	ProyectosActivos []string                         `json:"proyectosActivos"`
	Cronograma       []cronograma.Cronograma          `json:"cronograma"`
}

func datosCompletos(t Trabajador, anio int) DatosCompletosDTO {
	out := DatosCompletosDTO{
		Trabajador:       toDTO(t),
		Anio:             anio,
		Cronograma:       t.Cronogramas,
		ProyectosActivos: []string{},
	}
	if out.Cronograma == nil {
		out.Cronograma = []cronograma.Cronograma{}
	}
	if len(t.Contrataciones) > 0 {
		c := contratacion.ToDTO(t.Contrataciones[0])
		out.Contratacion = &c
	}
	if len(t.Ingresos) > 0 {
		out.Ingreso = &t.Ingresos[0]
	}
	if len(t.Retiros) > 0 {
		out.Retiro = &t.Retiros[0]
	}
	if len(t.SeguridadSocial) > 0 {
		out.SeguridadSocial = &t.SeguridadSocial[0]
	}
	if len(t.Proyectos) > 0 {
		out.Proyectos = &t.Proyectos[0]
		if activos := t.Proyectos[0].Activos(); activos != nil {
			out.ProyectosActivos = activos
		}
	}
	return out
}
