package models

import (
	"errors"

	"gorm.io/gorm"
)

// Resultado indica qué hizo una operación de búsqueda-o-creación.
type Resultado int

const (
	Creado Resultado = iota + 1
	Actualizado
)

func (r Resultado) String() string {
	switch r {
	case Creado:
		return "creado"
	case Actualizado:
		return "actualizado"
	default:
		return "desconocido"
	}
}

var (
	ErrTrabajadorNoEncontrado = errors.New("trabajador no encontrado")
	ErrRegistroExistente      = errors.New("ya existe un registro para ese trabajador y periodo")
)

// TrabajadorExiste evita que los paquetes hijos importen el paquete del trabajador.
func TrabajadorExiste(db *gorm.DB, id uint) error {
	var n int64
	if err := db.Table("trabajadores").Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrTrabajadorNoEncontrado
	}
	return nil
}
