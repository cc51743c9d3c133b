package retiro

import (
	"errors"

	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"gorm.io/gorm"
)

type Repository interface {
	Upsert(db *gorm.DB, i *Retiro) (models.Resultado, error)
	Crear(db *gorm.DB, i *Retiro) error
	BuscarPorTrabajadorAnio(db *gorm.DB, trabajadorID uint, anio int) (*Retiro, error)
	Actualizar(db *gorm.DB, i *Retiro) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Upsert(db *gorm.DB, i *Retiro) (models.Resultado, error) {
	actual, err := r.BuscarPorTrabajadorAnio(db, i.TrabajadorID, i.Anio)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Creado, db.Create(i).Error
	}
	if err != nil {
		return 0, err
	}
	i.ID = actual.ID
	i.CreatedAt = actual.CreatedAt
	return models.Actualizado, db.Save(i).Error
}

func (r *repositoryImpl) Crear(db *gorm.DB, i *Retiro) error {
	return db.Create(i).Error
}

func (r *repositoryImpl) BuscarPorTrabajadorAnio(db *gorm.DB, trabajadorID uint, anio int) (*Retiro, error) {
	var i Retiro
	if err := db.Where("trabajador_id = ? AND anio = ?", trabajadorID, anio).First(&i).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, i *Retiro) error {
	return db.Save(i).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&Retiro{}, id).Error
}
