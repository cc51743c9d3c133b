package planilla

import (
	"time"

	"github.com/gestion-empleados/api-trabajadores/internal/catalogo"
	"github.com/gestion-empleados/api-trabajadores/internal/contratacion"
	"github.com/gestion-empleados/api-trabajadores/internal/cronograma"
	"github.com/gestion-empleados/api-trabajadores/internal/ingreso"
	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"github.com/gestion-empleados/api-trabajadores/internal/proyecto"
	"github.com/gestion-empleados/api-trabajadores/internal/retiro"
	"github.com/gestion-empleados/api-trabajadores/internal/seguridadsocial"
	"github.com/gestion-empleados/api-trabajadores/internal/trabajador"
	"github.com/shopspring/decimal"
)

// Registro es una fila de la planilla: el trabajador y sus datos de un año.
// Un puntero nil significa que no hay fila guardada para ese dato.
type Registro struct {
	Marcador        string
	Trabajador      trabajador.Trabajador
	Contratacion    *contratacion.Contratacion
	Ingreso         *ingreso.Ingreso
	Retiro          *retiro.Retiro
	SeguridadSocial *seguridadsocial.SeguridadSocial
	Proyecto        *proyecto.Proyecto
	Cronograma      [12]*cronograma.Cronograma
}

// nuevoRegistro prepara todas las filas que una importación guarda, aunque queden vacías.
func nuevoRegistro(anio int) *Registro {
	r := &Registro{
		Trabajador:      trabajador.Trabajador{Anio: anio, Tipo: catalogo.CedulaCiudadania},
		Contratacion:    &contratacion.Contratacion{Anio: anio, TipoContrato: catalogo.PrestacionServicios, SalarioContratado: decimal.Zero},
		Ingreso:         &ingreso.Ingreso{Anio: anio},
		Retiro:          &retiro.Retiro{Anio: anio},
		SeguridadSocial: &seguridadsocial.SeguridadSocial{Anio: anio},
		Proyecto:        &proyecto.Proyecto{Anio: anio},
	}
	for m := range r.Cronograma {
		r.Cronograma[m] = &cronograma.Cronograma{
			Mes:               cronograma.PrimerDia(anio, time.Month(m+1)),
			Anio:              anio,
			SalarioCotizacion: decimal.Zero,
			SueldoDevengado:   decimal.Zero,
		}
	}
	return r
}

// registroDesde arma el registro de exportación con los datos precargados del año.
func registroDesde(t trabajador.Trabajador, anio int) *Registro {
	r := &Registro{Trabajador: t}
	if len(t.Contrataciones) > 0 {
		r.Contratacion = &t.Contrataciones[0]
	}
	if len(t.Ingresos) > 0 {
		r.Ingreso = &t.Ingresos[0]
	}
	if len(t.Retiros) > 0 {
		r.Retiro = &t.Retiros[0]
	}
	if len(t.SeguridadSocial) > 0 {
		r.SeguridadSocial = &t.SeguridadSocial[0]
	}
	if len(t.Proyectos) > 0 {
		r.Proyecto = &t.Proyectos[0]
	}
	for i := range t.Cronogramas {
		c := &t.Cronogramas[i]
		if !c.Mes.Valid || c.Mes.Time.Year() != anio {
			continue
		}
		if m := int(c.Mes.Time.Month()) - 1; r.Cronograma[m] == nil {
			r.Cronograma[m] = c
		}
	}
	return r
}

// Edad mínima usada para inferir la fecha faltante entre nacimiento y expedición.
const aniosMayoriaEdad = 18

var (
	expedicionPorDefecto = models.FechaDe(2000, time.January, 1)
	nacimientoPorDefecto = models.FechaDe(1982, time.January, 1)
)

// inferirFechas completa nacimiento o expedición cuando falta uno de los dos.
// La expedición inferida nunca pasa del año reportado.
func (r *Registro) inferirFechas(anio int) {
	t := &r.Trabajador
	nac, exp := t.FechaNacimiento, t.FechaExpedicionCedula

	switch {
	case nac.Valid && !exp.Valid:
		if nac.Time.Year()+aniosMayoriaEdad <= anio {
			t.FechaExpedicionCedula = nac.AgregarAnios(aniosMayoriaEdad)
		} else {
			t.FechaExpedicionCedula = nac
		}
	case !nac.Valid && exp.Valid:
		t.FechaNacimiento = exp.AgregarAnios(-aniosMayoriaEdad)
	case !nac.Valid && !exp.Valid:
		t.FechaExpedicionCedula = expedicionPorDefecto
		t.FechaNacimiento = nacimientoPorDefecto
	}
}
