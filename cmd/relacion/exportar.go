package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gestion-empleados/api-trabajadores/internal/config"
	"github.com/gestion-empleados/api-trabajadores/internal/logger"
	"github.com/gestion-empleados/api-trabajadores/internal/planilla"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

type exportarOptions struct {
	salida    string
	plantilla string
	anio      int
	hoja      string
	porAnio   bool
}

// completar toma de la configuración lo que no vino por flag. Sin --output se escribe en la plantilla.
func (o *exportarOptions) completar(cfg config.Config) {
	if o.plantilla == "" {
		o.plantilla = cfg.PlanillaTemplate
	}
	if o.salida == "" {
		o.salida = o.plantilla
	}
	if o.anio == 0 {
		o.anio = cfg.AnioDefecto
	}
}

func newExportarCmd() *cobra.Command {
	var opts exportarOptions

	cmd := &cobra.Command{
		Use:   "exportar",
		Short: "Exporta la relación de personal a una planilla",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, cfg, err := conectar()
			if err != nil {
				return err
			}
			opts.completar(cfg)

			plantilla, err := planilla.AbrirPlantilla(opts.plantilla)
			if err != nil {
				return err
			}
			defer plantilla.Close()

			destino, err := abrirSalida(opts.salida)
			if err != nil {
				return err
			}
			defer destino.Close()

			op := planilla.OpcionesExportacion{
				Anio:            opts.anio,
				Modo:            planilla.HojaUnica,
				Etiqueta:        cfg.PlanillaEtiqueta,
				Hoja:            opts.hoja,
				SoloContratados: true,
			}
			if opts.porAnio {
				op.Modo = planilla.PorAnio
			}

			ex := planilla.NewExportador(database, logger.New("exportar"))
			rep, err := ex.Exportar(cmd.Context(), plantilla, destino, op)
			if err != nil {
				return err
			}
			if err := destino.SaveAs(opts.salida); err != nil {
				return fmt.Errorf("guardar %s: %w", opts.salida, err)
			}
			fmt.Println(resumenExportacion(rep, opts.salida))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.salida, "output", "", "Archivo .xlsx de salida (por defecto la plantilla)")
	cmd.Flags().StringVar(&opts.plantilla, "template", "", "Plantilla .xlsx (por defecto PLANILLA_TEMPLATE)")
	cmd.Flags().IntVar(&opts.anio, "anio", 0, "Año a exportar (por defecto ANIO_DEFECTO)")
	cmd.Flags().StringVar(&opts.hoja, "sheet", "", "Nombre de la hoja de destino")
	cmd.Flags().BoolVar(&opts.porAnio, "por-anio", false, "Una hoja por cada año con contrataciones")

	return cmd
}

// abrirSalida reutiliza el libro de salida si ya existe para conservar sus otras hojas.
func abrirSalida(ruta string) (*excelize.File, error) {
	if _, err := os.Stat(ruta); errors.Is(err, os.ErrNotExist) {
		return excelize.NewFile(), nil
	}
	f, err := excelize.OpenFile(ruta)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", ruta, err)
	}
	return f, nil
}
