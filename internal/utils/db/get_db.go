package db

import (
	"github.com/gestion-empleados/api-trabajadores/internal/config"
	"gorm.io/gorm"
)

// GetDB carga la configuración, conecta y migra el esquema.
func GetDB() (*gorm.DB, config.Config, error) {
	cfg, err := config.InitConfig()
	if err != nil {
		return nil, config.Config{}, err
	}
	database, err := ConnectDataBase(cfg)
	if err != nil {
		return nil, cfg, err
	}
	if err := Migrar(database); err != nil {
		return nil, cfg, err
	}
	return database, cfg, nil
}
