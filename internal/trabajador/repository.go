package trabajador

import (
	"errors"
	"strings"

	"github.com/gestion-empleados/api-trabajadores/internal/contratacion"
	"github.com/gestion-empleados/api-trabajadores/internal/cronograma"
	"github.com/gestion-empleados/api-trabajadores/internal/ingreso"
	"github.com/gestion-empleados/api-trabajadores/internal/proyecto"
	"github.com/gestion-empleados/api-trabajadores/internal/retiro"
	"github.com/gestion-empleados/api-trabajadores/internal/seguridadsocial"
	"gorm.io/gorm"
)

// Filtro de listado; los campos vacíos no filtran.
type Filtro struct {
	Tipo     string
	Anio     int
	Busqueda string
}

type Repository interface {
	Crear(db *gorm.DB, t *Trabajador) error
	BuscarPorID(db *gorm.DB, id uint) (*Trabajador, error)
	BuscarPorDocumento(db *gorm.DB, tipo, numero string, anio int) (*Trabajador, error)
	Listar(db *gorm.DB, f Filtro) ([]Trabajador, error)
	ListarConDatos(db *gorm.DB, anio int, soloContratados bool) ([]Trabajador, error)
	BuscarConDatos(db *gorm.DB, id uint, anio int) (*Trabajador, error)
	AniosConContratacion(db *gorm.DB) ([]int, error)
	Actualizar(db *gorm.DB, t *Trabajador) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Crear(db *gorm.DB, t *Trabajador) error {
	return db.Omit("Contrataciones", "Ingresos", "Retiros", "SeguridadSocial", "Proyectos", "Cronogramas").Create(t).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Trabajador, error) {
	var t Trabajador
	if err := db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// BuscarPorDocumento devuelve el trabajador más antiguo con ese documento y año.
func (r *repositoryImpl) BuscarPorDocumento(db *gorm.DB, tipo, numero string, anio int) (*Trabajador, error) {
	var t Trabajador
	err := db.Where("tipo = ? AND numero = ? AND anio = ?", tipo, numero, anio).Order("id").First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repositoryImpl) Listar(db *gorm.DB, f Filtro) ([]Trabajador, error) {
	q := db.Model(&Trabajador{})
	if f.Tipo != "" {
		q = q.Where("tipo = ?", f.Tipo)
	}
	if f.Anio > 0 {
		q = q.Where("anio = ?", f.Anio)
	}
	if s := strings.TrimSpace(f.Busqueda); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(numero) LIKE ? OR LOWER(primer_nombre) LIKE ? OR LOWER(segundo_nombre) LIKE ? OR LOWER(primer_apellido) LIKE ? OR LOWER(segundo_apellido) LIKE ?",
			like, like, like, like, like,
		)
	}
	var list []Trabajador
	err := q.Order("primer_apellido, segundo_apellido, primer_nombre, id").Find(&list).Error
	return list, err
}

func conDatos(db *gorm.DB, anio int) *gorm.DB {
	delAnio := func(tx *gorm.DB) *gorm.DB { return tx.Where("anio = ?", anio) }
	return db.
		Preload("Contrataciones", delAnio).
		Preload("Ingresos", delAnio).
		Preload("Retiros", delAnio).
		Preload("SeguridadSocial", delAnio).
		Preload("Proyectos", delAnio).
		Preload("Cronogramas", func(tx *gorm.DB) *gorm.DB { return delAnio(tx).Order("mes") })
}

// ListarConDatos trae a los trabajadores ordenados por ID con los hechos del año precargados.
// Con soloContratados sólo entran quienes tienen contratación ese año.
func (r *repositoryImpl) ListarConDatos(db *gorm.DB, anio int, soloContratados bool) ([]Trabajador, error) {
	q := conDatos(db, anio)
	if soloContratados {
		q = q.Where("id IN (?)", db.Model(&contratacion.Contratacion{}).Select("trabajador_id").Where("anio = ?", anio))
	}
	var list []Trabajador
	err := q.Order("id").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarConDatos(db *gorm.DB, id uint, anio int) (*Trabajador, error) {
	var t Trabajador
	if err := conDatos(db, anio).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repositoryImpl) AniosConContratacion(db *gorm.DB) ([]int, error) {
	var anios []int
	err := db.Model(&contratacion.Contratacion{}).Distinct("anio").Order("anio").Pluck("anio", &anios).Error
	return anios, err
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, t *Trabajador) error {
	return db.Omit("Contrataciones", "Ingresos", "Retiros", "SeguridadSocial", "Proyectos", "Cronogramas").Save(t).Error
}

// Eliminar borra al trabajador y todo lo que le pertenece en una transacción.
func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		hijos := []any{
			&contratacion.Contratacion{},
			&ingreso.Ingreso{},
			&retiro.Retiro{},
			&seguridadsocial.SeguridadSocial{},
			&proyecto.Proyecto{},
			&cronograma.Cronograma{},
		}
		for _, h := range hijos {
			if err := tx.Where("trabajador_id = ?", id).Delete(h).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&Trabajador{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// EsNoEncontrado simplifica los chequeos en handlers.
func EsNoEncontrado(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
