package planilla

import (
	"context"
	"testing"
	"time"

	"github.com/gestion-empleados/api-trabajadores/internal/catalogo"
	"github.com/gestion-empleados/api-trabajadores/internal/contratacion"
	"github.com/gestion-empleados/api-trabajadores/internal/logger"
	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"github.com/gestion-empleados/api-trabajadores/internal/trabajador"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func crearTrabajador(t *testing.T, database *gorm.DB, numero string, anio int) *trabajador.Trabajador {
	t.Helper()
	tr := &trabajador.Trabajador{
		Tipo:                  catalogo.CedulaCiudadania,
		Numero:                numero,
		FechaExpedicionCedula: models.FechaDe(2008, time.May, 10),
		FechaNacimiento:       models.FechaDe(1990, time.May, 10),
		PrimerApellido:        "RUIZ",
		PrimerNombre:          "LUIS",
		Anio:                  anio,
	}
	require.NoError(t, trabajador.NewRepository().Crear(database, tr))
	return tr
}

func crearContratacion(t *testing.T, database *gorm.DB, trabajadorID uint, anio int) {
	t.Helper()
	require.NoError(t, contratacion.NewRepository().Crear(database, &contratacion.Contratacion{
		TrabajadorID:        trabajadorID,
		Anio:                anio,
		TipoContrato:        catalogo.TerminoFijo,
		Cargo:               "Técnico",
		SalarioContratado:   decimal.RequireFromString("1234567.89"),
		MunicipioBase:       "PASTO",
		FechaInicioContrato: models.FechaDe(anio, time.February, 1),
	}))
}

func exportar(t *testing.T, database *gorm.DB, plantilla, destino *excelize.File, op OpcionesExportacion) *ReporteExportacion {
	t.Helper()
	rep, err := NewExportador(database, logger.Nop()).Exportar(context.Background(), plantilla, destino, op)
	require.NoError(t, err)
	return rep
}

func valor(t *testing.T, f *excelize.File, hoja, celda string) string {
	t.Helper()
	v, err := f.GetCellValue(hoja, celda)
	require.NoError(t, err)
	return v
}

func TestExportar_DatosAusentesQuedanEnBlanco(t *testing.T) {
	database := nuevaDB(t)
	tr := crearTrabajador(t, database, "87654321", 2024)
	crearContratacion(t, database, tr.ID, 2024)

	destino := excelize.NewFile()
	rep := exportar(t, database, nil, destino, OpcionesExportacion{Anio: 2024})

	require.Len(t, rep.Hojas, 1)
	assert.Equal(t, "NOVEDADES 2024", rep.Hojas[0].Nombre)
	assert.Equal(t, 1, rep.Hojas[0].Filas)
	assert.Equal(t, []string{"NOVEDADES 2024"}, destino.GetSheetList())

	hoja := "NOVEDADES 2024"
	assert.Equal(t, "N°", valor(t, destino, hoja, "A4"))
	assert.Equal(t, "1", valor(t, destino, hoja, "A5"))
	assert.Equal(t, "CC", valor(t, destino, hoja, "B5"))
	assert.Equal(t, "87654321", valor(t, destino, hoja, "C5"))
	assert.Equal(t, "Término Fijo", valor(t, destino, hoja, "J5"))
	assert.Equal(t, "PASTO", valor(t, destino, hoja, "M5"))
	// sin retiro, seguridad social ni cronograma: T..W y el resto quedan vacíos
	for _, celda := range []string{"T5", "U5", "V5", "W5", "X5", "AF5", "AL5", "AM5"} {
		assert.Empty(t, valor(t, destino, hoja, celda), celda)
	}
}

func TestExportar_SoloContratados(t *testing.T) {
	database := nuevaDB(t)
	con := crearTrabajador(t, database, "1", 2024)
	crearContratacion(t, database, con.ID, 2024)
	crearTrabajador(t, database, "2", 2024)

	rep := exportar(t, database, nil, excelize.NewFile(), OpcionesExportacion{Anio: 2024})
	assert.Equal(t, 2, rep.Hojas[0].Filas)

	rep = exportar(t, database, nil, excelize.NewFile(), OpcionesExportacion{Anio: 2024, SoloContratados: true})
	assert.Equal(t, 1, rep.Hojas[0].Filas)
}

func TestExportar_PorAnio(t *testing.T) {
	database := nuevaDB(t)
	a := crearTrabajador(t, database, "1", 2023)
	crearContratacion(t, database, a.ID, 2023)
	b := crearTrabajador(t, database, "2", 2024)
	crearContratacion(t, database, b.ID, 2024)
	crearContratacion(t, database, a.ID, 2024)

	destino := excelize.NewFile()
	rep := exportar(t, database, nil, destino, OpcionesExportacion{Modo: PorAnio})

	require.Len(t, rep.Hojas, 2)
	assert.Equal(t, "NOVEDADES 2023", rep.Hojas[0].Nombre)
	assert.Equal(t, 1, rep.Hojas[0].Filas)
	assert.Equal(t, "NOVEDADES 2024", rep.Hojas[1].Nombre)
	assert.Equal(t, 2, rep.Hojas[1].Filas)
	filas, errores := rep.Totales()
	assert.Equal(t, 3, filas)
	assert.Equal(t, 0, errores)
}

func TestExportar_ConservaOtrasHojas(t *testing.T) {
	database := nuevaDB(t)
	tr := crearTrabajador(t, database, "1", 2024)
	crearContratacion(t, database, tr.ID, 2024)

	destino := excelize.NewFile()
	require.NoError(t, destino.SetSheetName("Sheet1", "Resumen"))
	require.NoError(t, destino.SetCellValue("Resumen", "A1", "no tocar"))
	_, err := destino.NewSheet("NOVEDADES 2024")
	require.NoError(t, err)
	require.NoError(t, destino.SetCellValue("NOVEDADES 2024", "A5", "viejo"))
	require.NoError(t, destino.SetCellValue("NOVEDADES 2024", "A9", "viejo"))

	exportar(t, database, nil, destino, OpcionesExportacion{Anio: 2024})

	assert.ElementsMatch(t, []string{"Resumen", "NOVEDADES 2024"}, destino.GetSheetList())
	assert.Equal(t, "no tocar", valor(t, destino, "Resumen", "A1"))
	assert.Equal(t, "1", valor(t, destino, "NOVEDADES 2024", "A5"))
	assert.Empty(t, valor(t, destino, "NOVEDADES 2024", "A9"))
}

func TestExportar_ClonaPlantilla(t *testing.T) {
	database := nuevaDB(t)
	tr := crearTrabajador(t, database, "1", 2024)
	crearContratacion(t, database, tr.ID, 2024)

	plantilla := excelize.NewFile()
	_, err := plantilla.NewSheet("NOVEDADES 2024 (2)")
	require.NoError(t, err)
	hp := "NOVEDADES 2024 (2)"
	require.NoError(t, plantilla.SetCellValue(hp, "A1", "RELACIÓN DE PERSONAL"))
	require.NoError(t, plantilla.MergeCell(hp, "A1", "I1"))
	require.NoError(t, plantilla.MergeCell(hp, "AL3", "AO3"))
	require.NoError(t, plantilla.SetCellValue(hp, "AL3", "ENERO"))
	require.NoError(t, plantilla.SetCellValue(hp, "A4", "N°"))
	negrita, err := plantilla.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	require.NoError(t, err)
	require.NoError(t, plantilla.SetCellStyle(hp, "A1", "A1", negrita))
	require.NoError(t, plantilla.SetColWidth(hp, "B", "B", 22))
	require.NoError(t, plantilla.SetRowHeight(hp, 1, 30))
	// datos viejos de la plantilla no se copian
	require.NoError(t, plantilla.SetCellValue(hp, "C5", "dato viejo"))

	destino := excelize.NewFile()
	exportar(t, database, plantilla, destino, OpcionesExportacion{Anio: 2024})

	hoja := "NOVEDADES 2024"
	assert.Equal(t, "RELACIÓN DE PERSONAL", valor(t, destino, hoja, "A1"))
	assert.Equal(t, "ENERO", valor(t, destino, hoja, "AL3"))
	assert.Equal(t, "1", valor(t, destino, hoja, "C5"))

	merges, err := destino.GetMergeCells(hoja)
	require.NoError(t, err)
	var rangos []string
	for _, m := range merges {
		rangos = append(rangos, m.GetStartAxis()+":"+m.GetEndAxis())
	}
	assert.ElementsMatch(t, []string{"A1:I1", "AL3:AO3"}, rangos)

	ancho, err := destino.GetColWidth(hoja, "B")
	require.NoError(t, err)
	assert.InDelta(t, 22, ancho, 0.01)
	alto, err := destino.GetRowHeight(hoja, 1)
	require.NoError(t, err)
	assert.InDelta(t, 30, alto, 0.01)

	id, err := destino.GetCellStyle(hoja, "A1")
	require.NoError(t, err)
	st, err := destino.GetStyle(id)
	require.NoError(t, err)
	require.NotNil(t, st.Font)
	assert.True(t, st.Font.Bold)

	panes, err := destino.GetPanes(hoja)
	require.NoError(t, err)
	assert.True(t, panes.Freeze)
	assert.Equal(t, ColumnasFijas, panes.XSplit)
	assert.Equal(t, UltimaFilaEncabezado, panes.YSplit)
	assert.Equal(t, "J5", panes.TopLeftCell)
}

func TestHojaPlantilla(t *testing.T) {
	f := excelize.NewFile()
	_, err := f.NewSheet("NOVEDADES 2023")
	require.NoError(t, err)

	assert.Equal(t, "NOVEDADES 2023", HojaPlantilla(f, "NOVEDADES", 2024))
	assert.Equal(t, "NOVEDADES 2023", HojaPlantilla(f, "NOVEDADES", 2023))

	_, err = f.NewSheet("NOVEDADES 2024 (2)")
	require.NoError(t, err)
	assert.Equal(t, "NOVEDADES 2024 (2)", HojaPlantilla(f, "NOVEDADES", 2024))
	assert.Equal(t, "Sheet1", HojaPlantilla(f, "NOVEDADES", 2030))
}

func TestExportarImportar_IdaYVuelta(t *testing.T) {
	origen := nuevaDB(t)
	importar(t, origen, libroPlanilla(t, "NOVEDADES 2024", filaCompleta()), OpcionesImportacion{Anio: 2024})

	destino := excelize.NewFile()
	exportar(t, origen, nil, destino, OpcionesExportacion{Anio: 2024})
	buf, err := destino.WriteToBuffer()
	require.NoError(t, err)

	copia := nuevaDB(t)
	rep, err := NewImportador(copia, logger.Nop()).Importar(context.Background(), buf, OpcionesImportacion{Anio: 2024})
	require.NoError(t, err)
	require.Equal(t, 1, rep.Creados)

	leer := func(database *gorm.DB) *trabajador.Trabajador {
		list, err := trabajador.NewRepository().ListarConDatos(database, 2024, false)
		require.NoError(t, err)
		require.Len(t, list, 1)
		return &list[0]
	}
	a, b := leer(origen), leer(copia)

	assert.Equal(t, a.Numero, b.Numero)
	assert.Equal(t, a.Tipo, b.Tipo)
	assert.Equal(t, a.NombreCompleto(), b.NombreCompleto())
	assert.Equal(t, a.FechaNacimiento, b.FechaNacimiento)
	assert.Equal(t, a.FechaExpedicionCedula, b.FechaExpedicionCedula)

	require.Len(t, b.Contrataciones, 1)
	ca, cb := a.Contrataciones[0], b.Contrataciones[0]
	assert.Equal(t, ca.TipoContrato, cb.TipoContrato)
	assert.True(t, ca.SalarioContratado.Equal(cb.SalarioContratado), "%s != %s", ca.SalarioContratado, cb.SalarioContratado)
	assert.Equal(t, ca.FechaInicioContrato, cb.FechaInicioContrato)
	assert.Equal(t, ca.FechaFinalContrato, cb.FechaFinalContrato)

	require.Len(t, b.SeguridadSocial, 1)
	assert.Equal(t, a.SeguridadSocial[0].ARL, b.SeguridadSocial[0].ARL)
	assert.Equal(t, a.SeguridadSocial[0].Riesgo, b.SeguridadSocial[0].Riesgo)

	require.Len(t, b.Proyectos, 1)
	assert.Equal(t, a.Proyectos[0].Activos(), b.Proyectos[0].Activos())

	require.Len(t, b.Cronogramas, 12)
	assert.Equal(t, a.Cronogramas[0].MunicipioEjecucion, b.Cronogramas[0].MunicipioEjecucion)
	assert.Equal(t, a.Cronogramas[0].DiasLaborados, b.Cronogramas[0].DiasLaborados)
	assert.True(t, a.Cronogramas[0].SueldoDevengado.Equal(b.Cronogramas[0].SueldoDevengado))
}

func TestNombreArchivoExportacion(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
	assert.Equal(t, "RELACION_PERSONAL_EXPORT_20240305_140709.xlsx", NombreArchivoExportacion(ts))
}
