package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config reúne la configuración del servidor y de la CLI.
type Config struct {
	ServerPort  string
	CorsOrigins []string
	LogLevel    string

	DBDriver         string
	DBHost           string
	DBPort           uint
	DBName           string
	DBUsername       string
	DBPassword       string
	DBSecretID       string
	DBSSLModeDisable bool
	DBPath           string

	AuthRSAPrivatePath string
	AuthKID            string
	AuthIssuer         string
	AuthAudience       string
	CookieSecure       bool

	PlanillaTemplate string
	PlanillaEtiqueta string
	AnioDefecto      int
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_NAME", "relacion_personal")
	v.SetDefault("DB_SSL_MODE_DISABLE", false)
	v.SetDefault("DB_PATH", "relacion_personal.db")

	v.SetDefault("AUTH_ISSUER", "api-trabajadores")
	v.SetDefault("AUTH_AUDIENCE", "relacion-personal-web")
	v.SetDefault("AUTH_KID", "k1")
	v.SetDefault("COOKIE_SECURE", false)

	v.SetDefault("PLANILLA_TEMPLATE", "excel/1. FORMATO RELACION DE PERSONAL_OCTUBRE.xlsx")
	v.SetDefault("PLANILLA_ETIQUETA", "NOVEDADES")
	v.SetDefault("ANIO_DEFECTO", 2025)
}

// InitConfig carga .env (si existe), config.yaml opcional y variables de entorno.
func InitConfig() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("leer config.yaml: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		ServerPort:  v.GetString("SERVER_PORT"),
		CorsOrigins: splitList(v.GetString("CORS_ORIGINS")),
		LogLevel:    strings.ToLower(v.GetString("LOG_LEVEL")),

		DBDriver:         strings.ToLower(v.GetString("DB_DRIVER")),
		DBHost:           v.GetString("DB_HOST"),
		DBPort:           v.GetUint("DB_PORT"),
		DBName:           v.GetString("DB_NAME"),
		DBUsername:       v.GetString("DB_USERNAME"),
		DBPassword:       v.GetString("DB_PASSWORD"),
		DBSecretID:       v.GetString("DB_SECRET_ID"),
		DBSSLModeDisable: v.GetBool("DB_SSL_MODE_DISABLE"),
		DBPath:           v.GetString("DB_PATH"),

		AuthRSAPrivatePath: v.GetString("AUTH_RSA_PRIVATE_PATH"),
		AuthKID:            v.GetString("AUTH_KID"),
		AuthIssuer:         v.GetString("AUTH_ISSUER"),
		AuthAudience:       v.GetString("AUTH_AUDIENCE"),
		CookieSecure:       v.GetBool("COOKIE_SECURE"),

		PlanillaTemplate: v.GetString("PLANILLA_TEMPLATE"),
		PlanillaEtiqueta: v.GetString("PLANILLA_ETIQUETA"),
		AnioDefecto:      v.GetInt("ANIO_DEFECTO"),
	}

	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		return Config{}, fmt.Errorf("DB_DRIVER inválido: %q", cfg.DBDriver)
	}
	if cfg.AnioDefecto < 1900 || cfg.AnioDefecto > 2100 {
		return Config{}, fmt.Errorf("ANIO_DEFECTO fuera de rango: %d", cfg.AnioDefecto)
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
