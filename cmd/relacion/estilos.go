package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gestion-empleados/api-trabajadores/internal/planilla"
)

var (
	estiloExito       = lipgloss.NewStyle().Foreground(lipgloss.Color("#3FB950")).Bold(true)
	estiloAdvertencia = lipgloss.NewStyle().Foreground(lipgloss.Color("#D29922"))
	estiloError       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	estiloTitulo      = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
)

var estiloCaja = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#444444")).
	Padding(0, 1)

func resumenImportacion(rep *planilla.Reporte) string {
	lines := []string{
		estiloTitulo.Render(fmt.Sprintf("Hoja %q (año %d, datos desde la fila %d)", rep.Hoja, rep.Anio, rep.FilaInicio)),
		estiloExito.Render(fmt.Sprintf("creados: %d", rep.Creados)),
		estiloExito.Render(fmt.Sprintf("actualizados: %d", rep.Actualizados)),
	}
	if rep.Omitidos > 0 {
		lines = append(lines, estiloAdvertencia.Render(fmt.Sprintf("omitidos (sin N°): %d", rep.Omitidos)))
	}
	if rep.Errores > 0 {
		lines = append(lines, estiloError.Render(fmt.Sprintf("errores: %d", rep.Errores)))
		for _, f := range rep.Filas {
			if f.Err != nil {
				lines = append(lines, estiloError.Render("  "+f.Err.Error()))
			}
		}
	}
	lines = append(lines, fmt.Sprintf("lote %s", rep.LoteID))
	return estiloCaja.Render(strings.Join(lines, "\n"))
}

func resumenExportacion(rep *planilla.ReporteExportacion, salida string) string {
	lines := []string{estiloTitulo.Render("Exportación " + salida)}
	for _, h := range rep.Hojas {
		l := estiloExito.Render(fmt.Sprintf("%s: %d trabajadores", h.Nombre, h.Filas))
		if h.Errores > 0 {
			l += estiloError.Render(fmt.Sprintf(" (%d errores)", h.Errores))
		}
		lines = append(lines, l)
	}
	if len(rep.Hojas) == 0 {
		lines = append(lines, estiloAdvertencia.Render("no hay años con contrataciones"))
	}
	lines = append(lines, fmt.Sprintf("lote %s", rep.LoteID))
	return estiloCaja.Render(strings.Join(lines, "\n"))
}
