package main

import (
	"fmt"
	"os"

	"github.com/gestion-empleados/api-trabajadores/internal/config"
	"github.com/gestion-empleados/api-trabajadores/internal/logger"
	"github.com/gestion-empleados/api-trabajadores/internal/utils/db"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, estiloError.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "relacion",
		Short:         "Herramientas de la relación de personal (importar/exportar planillas)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newImportarCmd(),
		newExportarCmd(),
		newCrearAdminCmd(),
		newMigrarCmd(),
	)
	return root
}

// conectar carga la configuración, ajusta el nivel de log y abre la base migrada.
func conectar() (*gorm.DB, config.Config, error) {
	database, cfg, err := db.GetDB()
	if err != nil {
		return nil, cfg, fmt.Errorf("base de datos no disponible: %w", err)
	}
	logger.SetLevel(cfg.LogLevel)
	return database, cfg, nil
}

func newMigrarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrar",
		Short: "Crea o actualiza las tablas",
		RunE: func(cmd *cobra.Command, args []string) error {
			// GetDB ya migra el esquema
			if _, _, err := conectar(); err != nil {
				return err
			}
			fmt.Println(estiloExito.Render("esquema migrado"))
			return nil
		},
	}
}
