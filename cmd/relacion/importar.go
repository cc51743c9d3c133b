package main

import (
	"fmt"

	"github.com/gestion-empleados/api-trabajadores/internal/config"
	"github.com/gestion-empleados/api-trabajadores/internal/logger"
	"github.com/gestion-empleados/api-trabajadores/internal/planilla"
	"github.com/spf13/cobra"
)

type importarOptions struct {
	archivo    string
	anio       int
	hoja       string
	deduplicar bool
}

// completar toma de la configuración lo que no vino por flag.
func (o *importarOptions) completar(cfg config.Config) {
	if o.archivo == "" {
		o.archivo = cfg.PlanillaTemplate
	}
	if o.anio == 0 {
		o.anio = cfg.AnioDefecto
	}
}

func newImportarCmd() *cobra.Command {
	var opts importarOptions

	cmd := &cobra.Command{
		Use:   "importar",
		Short: "Importa una planilla de relación de personal",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, cfg, err := conectar()
			if err != nil {
				return err
			}
			opts.completar(cfg)

			im := planilla.NewImportador(database, logger.New("importar"))
			rep, err := im.ImportarArchivo(cmd.Context(), opts.archivo, planilla.OpcionesImportacion{
				Anio:       opts.anio,
				Hoja:       opts.hoja,
				Etiqueta:   cfg.PlanillaEtiqueta,
				Deduplicar: opts.deduplicar,
			})
			if err != nil {
				return err
			}
			fmt.Println(resumenImportacion(rep))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.archivo, "file", "", "Ruta del archivo .xlsx (por defecto PLANILLA_TEMPLATE)")
	cmd.Flags().IntVar(&opts.anio, "anio", 0, "Año reportado (por defecto ANIO_DEFECTO)")
	cmd.Flags().StringVar(&opts.hoja, "sheet", "", "Hoja a importar (por defecto se detecta)")
	cmd.Flags().BoolVar(&opts.deduplicar, "deduplicar", false, "Reutiliza trabajadores con el mismo documento y año")

	return cmd
}
