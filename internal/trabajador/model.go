package trabajador

import (
	"errors"
	"strings"
	"time"

	"github.com/gestion-empleados/api-trabajadores/internal/catalogo"
	"github.com/gestion-empleados/api-trabajadores/internal/contratacion"
	"github.com/gestion-empleados/api-trabajadores/internal/cronograma"
	"github.com/gestion-empleados/api-trabajadores/internal/ingreso"
	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"github.com/gestion-empleados/api-trabajadores/internal/proyecto"
	"github.com/gestion-empleados/api-trabajadores/internal/retiro"
	"github.com/gestion-empleados/api-trabajadores/internal/seguridadsocial"
)

// Trabajador es la identidad de una persona. Cada importación crea uno nuevo.
type Trabajador struct {
	ID                    uint         `gorm:"primaryKey" json:"id"`
	Tipo                  string       `gorm:"size:2;not null;default:CC" json:"tipo"`
	Numero                string       `gorm:"size:20;not null;index" json:"numero"`
	FechaExpedicionCedula models.Fecha `gorm:"type:date" json:"fechaExpedicionCedula"`
	FechaNacimiento       models.Fecha `gorm:"type:date" json:"fechaNacimiento"`
	PrimerApellido        string       `gorm:"size:100;not null;default:''" json:"primerApellido"`
	SegundoApellido       string       `gorm:"size:100" json:"segundoApellido"`
	PrimerNombre          string       `gorm:"size:100;not null;default:''" json:"primerNombre"`
	SegundoNombre         string       `gorm:"size:100" json:"segundoNombre"`
	Anio                  int          `gorm:"not null;index;default:2025" json:"anio"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Contrataciones  []contratacion.Contratacion       `gorm:"foreignKey:TrabajadorID;constraint:OnDelete:CASCADE" json:"-"`
	Ingresos        []ingreso.Ingreso                 `gorm:"foreignKey:TrabajadorID;constraint:OnDelete:CASCADE" json:"-"`
	Retiros         []retiro.Retiro                   `gorm:"foreignKey:TrabajadorID;constraint:OnDelete:CASCADE" json:"-"`
	SeguridadSocial []seguridadsocial.SeguridadSocial `gorm:"foreignKey:TrabajadorID;constraint:OnDelete:CASCADE" json:"-"`
	Proyectos       []proyecto.Proyecto               `gorm:"foreignKey:TrabajadorID;constraint:OnDelete:CASCADE" json:"-"`
	Cronogramas     []cronograma.Cronograma           `gorm:"foreignKey:TrabajadorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Trabajador) TableName() string { return "trabajadores" }

func (t *Trabajador) NombreCompleto() string {
	partes := []string{t.PrimerNombre, t.SegundoNombre, t.PrimerApellido, t.SegundoApellido}
	var out []string
	for _, p := range partes {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// Edad en años cumplidos a la fecha dada; nil sin fecha de nacimiento.
func (t *Trabajador) Edad(hoy time.Time) *int {
	if !t.FechaNacimiento.Valid {
		return nil
	}
	nac := t.FechaNacimiento.Time
	edad := hoy.Year() - nac.Year()
	if hoy.Month() < nac.Month() || (hoy.Month() == nac.Month() && hoy.Day() < nac.Day()) {
		edad--
	}
	return &edad
}

func (t *Trabajador) Validar() error {
	if !catalogo.IdentificacionValida(t.Tipo) {
		return errors.New("tipo de identificación inválido")
	}
	if strings.TrimSpace(t.Numero) == "" || len(t.Numero) > 20 {
		return errors.New("numero es obligatorio (máximo 20 caracteres)")
	}
	if strings.TrimSpace(t.PrimerNombre) == "" || strings.TrimSpace(t.PrimerApellido) == "" {
		return errors.New("primerNombre y primerApellido son obligatorios")
	}
	return nil
}
