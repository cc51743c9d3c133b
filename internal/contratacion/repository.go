package contratacion

import (
	"errors"
	"time"

	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"gorm.io/gorm"
)

type Repository interface {
	Upsert(db *gorm.DB, c *Contratacion) (models.Resultado, error)
	Crear(db *gorm.DB, c *Contratacion) error
	BuscarPorTrabajadorAnio(db *gorm.DB, trabajadorID uint, anio int) (*Contratacion, error)
	ListarPorTrabajador(db *gorm.DB, trabajadorID uint) ([]Contratacion, error)
	ListarPorAnio(db *gorm.DB, anio int) ([]Contratacion, error)
	ListarActivas(db *gorm.DB, hoy time.Time) ([]Contratacion, error)
	Actualizar(db *gorm.DB, c *Contratacion) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Upsert busca por (trabajador, año); actualiza si existe y crea si no.
func (r *repositoryImpl) Upsert(db *gorm.DB, c *Contratacion) (models.Resultado, error) {
	actual, err := r.BuscarPorTrabajadorAnio(db, c.TrabajadorID, c.Anio)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Creado, db.Create(c).Error
	}
	if err != nil {
		return 0, err
	}
	c.ID = actual.ID
	c.CreatedAt = actual.CreatedAt
	return models.Actualizado, db.Save(c).Error
}

func (r *repositoryImpl) Crear(db *gorm.DB, c *Contratacion) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorTrabajadorAnio(db *gorm.DB, trabajadorID uint, anio int) (*Contratacion, error) {
	var c Contratacion
	err := db.Where("trabajador_id = ? AND anio = ?", trabajadorID, anio).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) ListarPorTrabajador(db *gorm.DB, trabajadorID uint) ([]Contratacion, error) {
	var list []Contratacion
	err := db.Where("trabajador_id = ?", trabajadorID).Order("anio DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPorAnio(db *gorm.DB, anio int) ([]Contratacion, error) {
	var list []Contratacion
	err := db.Where("anio = ?", anio).Order("trabajador_id").Find(&list).Error
	return list, err
}

// ListarActivas: inicio <= hoy y (final >= hoy o sin final).
func (r *repositoryImpl) ListarActivas(db *gorm.DB, hoy time.Time) ([]Contratacion, error) {
	var list []Contratacion
	err := db.
		Where("fecha_inicio_contrato IS NOT NULL AND fecha_inicio_contrato <= ?", hoy).
		Where("fecha_final_contrato IS NULL OR fecha_final_contrato >= ?", hoy).
		Order("anio DESC, trabajador_id").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, c *Contratacion) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&Contratacion{}, id).Error
}
