package usuario

import (
	"errors"
	"strings"

	"github.com/gestion-empleados/api-trabajadores/internal/utils"
	"gorm.io/gorm"
)

var ErrUsuarioExistente = errors.New("el usuario ya existe")

type Repository interface {
	BuscarPorUsername(db *gorm.DB, username string) (*Usuario, error)
	BuscarPorID(db *gorm.DB, id uint) (*Usuario, error)
	Crear(db *gorm.DB, u *Usuario) error
	Listar(db *gorm.DB) ([]Usuario, error)
	// CrearConClave aplica bcrypt a la clave antes de guardar.
	CrearConClave(db *gorm.DB, username, clave, nombre string, isAdmin bool) (*Usuario, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) BuscarPorUsername(db *gorm.DB, username string) (*Usuario, error) {
	var u Usuario
	if err := db.Where("username = ?", strings.TrimSpace(username)).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	var u Usuario
	if err := db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) Crear(db *gorm.DB, u *Usuario) error {
	return db.Create(u).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB) ([]Usuario, error) {
	var list []Usuario
	err := db.Order("username").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) CrearConClave(db *gorm.DB, username, clave, nombre string, isAdmin bool) (*Usuario, error) {
	username = strings.TrimSpace(username)
	if username == "" || clave == "" {
		return nil, errors.New("username y clave son obligatorios")
	}
	if _, err := r.BuscarPorUsername(db, username); err == nil {
		return nil, ErrUsuarioExistente
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashClave(clave)
	if err != nil {
		return nil, err
	}
	u := &Usuario{Username: username, Password: hash, Nombre: nombre, IsAdmin: isAdmin}
	if err := r.Crear(db, u); err != nil {
		return nil, err
	}
	return u, nil
}
