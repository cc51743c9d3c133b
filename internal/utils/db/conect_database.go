package db

import (
	"fmt"
	"time"

	"github.com/gestion-empleados/api-trabajadores/internal/config"
	"github.com/gestion-empleados/api-trabajadores/internal/logger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// loggerGorm envía a zerolog los errores de SQL. Un registro no encontrado no cuenta como error.
func loggerGorm(log *logger.Logger) gormlogger.Interface {
	return gormlogger.New(log, gormlogger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  gormlogger.Error,
		IgnoreRecordNotFoundError: true,
	})
}

func ConnectDataBase(cfg config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: loggerGorm(logger.New("gorm")),
	}

	switch cfg.DBDriver {
	case config.DriverSQLite:
		return OpenSQLite(cfg.DBPath)
	case config.DriverPostgres:
		username, password, err := retrieveCredentials(cfg)
		if err != nil {
			return nil, err
		}
		var sslMode string
		if cfg.DBSSLModeDisable {
			sslMode = " sslmode=disable"
		}
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s",
			cfg.DBHost, username, password, cfg.DBName, cfg.DBPort, sslMode)
		database, err := gorm.Open(postgres.Open(dsn), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("conectar postgres: %w", err)
		}
		return database, nil
	default:
		return nil, fmt.Errorf("driver no soportado: %s", cfg.DBDriver)
	}
}

// OpenSQLite abre una base sqlite con llaves foráneas activas. path ":memory:" sirve para pruebas.
func OpenSQLite(path string) (*gorm.DB, error) {
	dsn := path
	if path == ":memory:" {
		dsn = "file::memory:"
	}
	database, err := gorm.Open(sqlite.Open(dsn+"?_foreign_keys=on"), &gorm.Config{
		Logger: loggerGorm(logger.New("gorm")),
	})
	if err != nil {
		return nil, fmt.Errorf("conectar sqlite: %w", err)
	}
	if path == ":memory:" {
		// cada conexión nueva vería una base vacía
		sqlDB, err := database.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return database, nil
}
