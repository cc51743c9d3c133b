package cronograma

import (
	"errors"

	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"gorm.io/gorm"
)

type Repository interface {
	Upsert(db *gorm.DB, c *Cronograma) (models.Resultado, error)
	Crear(db *gorm.DB, c *Cronograma) error
	BuscarPorID(db *gorm.DB, trabajadorID, id uint) (*Cronograma, error)
	BuscarPorMes(db *gorm.DB, trabajadorID uint, mes models.Fecha) (*Cronograma, error)
	ListarPorTrabajador(db *gorm.DB, trabajadorID uint, anio int) ([]Cronograma, error)
	Actualizar(db *gorm.DB, c *Cronograma) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Upsert busca por (trabajador, mes); actualiza si existe y crea si no.
func (r *repositoryImpl) Upsert(db *gorm.DB, c *Cronograma) (models.Resultado, error) {
	if !c.Mes.Valid {
		return 0, errors.New("mes es obligatorio")
	}
	c.Mes = PrimerDia(c.Mes.Time.Year(), c.Mes.Time.Month())
	actual, err := r.BuscarPorMes(db, c.TrabajadorID, c.Mes)
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

func (r *repositoryImpl) Crear(db *gorm.DB, c *Cronograma) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, trabajadorID, id uint) (*Cronograma, error) {
	var c Cronograma
	if err := db.Where("trabajador_id = ?", trabajadorID).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) BuscarPorMes(db *gorm.DB, trabajadorID uint, mes models.Fecha) (*Cronograma, error) {
	var c Cronograma
	mes = PrimerDia(mes.Time.Year(), mes.Time.Month())
	if err := db.Where("trabajador_id = ? AND mes = ?", trabajadorID, mes).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListarPorTrabajador filtra por año cuando anio > 0.
func (r *repositoryImpl) ListarPorTrabajador(db *gorm.DB, trabajadorID uint, anio int) ([]Cronograma, error) {
	var list []Cronograma
	q := db.Where("trabajador_id = ?", trabajadorID)
	if anio > 0 {
		q = q.Where("anio = ?", anio)
	}
	err := q.Order("mes").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, c *Cronograma) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&Cronograma{}, id).Error
}
