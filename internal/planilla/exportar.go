package planilla

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gestion-empleados/api-trabajadores/internal/logger"
	"github.com/gestion-empleados/api-trabajadores/internal/trabajador"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ModoExportacion string

const (
	// HojaUnica: una hoja con todos los trabajadores del año pedido.
	HojaUnica ModoExportacion = "hoja"
	// PorAnio: una hoja por cada año con contrataciones.
	PorAnio ModoExportacion = "anios"
)

const MimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// NombreArchivoExportacion genera RELACION_PERSONAL_EXPORT_<YYYYMMDD_HHMMSS>.xlsx.
func NombreArchivoExportacion(t time.Time) string {
	return fmt.Sprintf("RELACION_PERSONAL_EXPORT_%s.xlsx", t.Format("20060102_150405"))
}

type OpcionesExportacion struct {
	Anio     int
	Modo     ModoExportacion
	Etiqueta string
	// Hoja es el nombre de destino en modo HojaUnica; por defecto "<ETIQUETA> {año}".
	Hoja string
	// HojaPlantilla fuerza la hoja de la plantilla a clonar.
	HojaPlantilla string
	// SoloContratados limita la hoja única a quienes tienen contratación en el año.
	SoloContratados bool
}

func (o OpcionesExportacion) etiqueta() string {
	if o.Etiqueta == "" {
		return EtiquetaPorDefecto
	}
	return o.Etiqueta
}

type HojaExportada struct {
	Nombre  string `json:"nombre"`
	Anio    int    `json:"anio"`
	Filas   int    `json:"filas"`
	Errores int    `json:"errores"`
}

type ReporteExportacion struct {
	LoteID string          `json:"loteId"`
	Hojas  []HojaExportada `json:"hojas"`
}

func (r *ReporteExportacion) Totales() (filas, errores int) {
	for _, h := range r.Hojas {
		filas += h.Filas
		errores += h.Errores
	}
	return filas, errores
}

type Exportador struct {
	DB           *gorm.DB
	Log          *logger.Logger
	trabajadores trabajador.Repository
}

func NewExportador(db *gorm.DB, log *logger.Logger) *Exportador {
	if log == nil {
		log = logger.Nop()
	}
	return &Exportador{DB: db, Log: log, trabajadores: trabajador.NewRepository()}
}

// AbrirPlantilla abre la plantilla o devuelve ErrArchivoNoEncontrado.
func AbrirPlantilla(ruta string) (*excelize.File, error) {
	if _, err := os.Stat(ruta); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrArchivoNoEncontrado, ruta)
	}
	return excelize.OpenFile(ruta)
}

// HojaPlantilla elige la hoja a clonar: "<E> {año} (2)", "<E> {año}", "<E> {año-1}" o la activa.
func HojaPlantilla(f *excelize.File, etiqueta string, anio int) string {
	candidatas := []string{
		fmt.Sprintf("%s %d (2)", etiqueta, anio),
		fmt.Sprintf("%s %d", etiqueta, anio),
		fmt.Sprintf("%s %d", etiqueta, anio-1),
	}
	for _, c := range candidatas {
		if idx, _ := f.GetSheetIndex(c); idx >= 0 {
			return c
		}
	}
	return f.GetSheetName(f.GetActiveSheetIndex())
}

// Exportar escribe en destino las hojas pedidas. plantilla puede ser nil: se usa un encabezado básico.
// Una hoja de destino que ya exista se reemplaza; las demás hojas de destino se conservan.
func (ex *Exportador) Exportar(ctx context.Context, plantilla, destino *excelize.File, op OpcionesExportacion) (*ReporteExportacion, error) {
	rep := &ReporteExportacion{LoteID: uuid.NewString()}
	log := ex.Log.Con("lote", rep.LoteID)
	db := ex.DB.WithContext(ctx)

	type trabajo struct {
		hoja            string
		anio            int
		soloContratados bool
	}
	var trabajos []trabajo

	switch op.Modo {
	case PorAnio:
		anios, err := ex.trabajadores.AniosConContratacion(db)
		if err != nil {
			return nil, fmt.Errorf("años con contratación: %w", err)
		}
		for _, a := range anios {
			trabajos = append(trabajos, trabajo{fmt.Sprintf("%s %d", op.etiqueta(), a), a, true})
		}
	default:
		hoja := op.Hoja
		if hoja == "" {
			hoja = fmt.Sprintf("%s %d", op.etiqueta(), op.Anio)
		}
		trabajos = append(trabajos, trabajo{hoja, op.Anio, op.SoloContratados})
	}

	for _, tr := range trabajos {
		list, err := ex.trabajadores.ListarConDatos(db, tr.anio, tr.soloContratados)
		if err != nil {
			return nil, fmt.Errorf("consultar trabajadores %d: %w", tr.anio, err)
		}
		if err := ex.prepararHoja(plantilla, destino, tr.hoja, tr.anio, op); err != nil {
			return nil, fmt.Errorf("preparar hoja %s: %w", tr.hoja, err)
		}
		h := ex.escribirFilas(destino, tr.hoja, tr.anio, list, log)
		rep.Hojas = append(rep.Hojas, h)
		log.Infof("hoja %q: %d trabajadores, %d errores", h.Nombre, h.Filas, h.Errores)
	}

	quitarHojaPorDefecto(destino, rep)
	if len(rep.Hojas) > 0 {
		if idx, _ := destino.GetSheetIndex(rep.Hojas[0].Nombre); idx >= 0 {
			destino.SetActiveSheet(idx)
		}
	}
	return rep, nil
}

func (ex *Exportador) prepararHoja(plantilla, destino *excelize.File, hoja string, anio int, op OpcionesExportacion) error {
	if idx, _ := destino.GetSheetIndex(hoja); idx >= 0 {
		if len(destino.GetSheetList()) == 1 {
			// un libro no puede quedar sin hojas
			tmp := "__tmp__"
			if _, err := destino.NewSheet(tmp); err != nil {
				return err
			}
		}
		if err := destino.DeleteSheet(hoja); err != nil {
			return err
		}
	}
	if _, err := destino.NewSheet(hoja); err != nil {
		return err
	}
	if idx, _ := destino.GetSheetIndex("__tmp__"); idx >= 0 {
		if err := destino.DeleteSheet("__tmp__"); err != nil {
			return err
		}
	}

	if plantilla == nil {
		return encabezadoBasico(destino, hoja)
	}
	hojaOrigen := op.HojaPlantilla
	if hojaOrigen == "" {
		hojaOrigen = HojaPlantilla(plantilla, op.etiqueta(), anio)
	}
	return nuevoClonador(plantilla, hojaOrigen, destino).Clonar(hoja, PrimeraFilaEncabezado)
}

// quitarHojaPorDefecto elimina la "Sheet1" vacía de un libro nuevo.
func quitarHojaPorDefecto(f *excelize.File, rep *ReporteExportacion) {
	const porDefecto = "Sheet1"
	for _, h := range rep.Hojas {
		if h.Nombre == porDefecto {
			return
		}
	}
	if idx, _ := f.GetSheetIndex(porDefecto); idx < 0 || len(f.GetSheetList()) < 2 {
		return
	}
	if filas, err := f.GetRows(porDefecto); err == nil && len(filas) == 0 {
		_ = f.DeleteSheet(porDefecto)
	}
}

type estilosDatos struct {
	fecha  int
	moneda int
}

func nuevosEstilos(f *excelize.File) (estilosDatos, error) {
	formatoFecha := "dd/mm/yyyy"
	fecha, err := f.NewStyle(&excelize.Style{CustomNumFmt: &formatoFecha})
	if err != nil {
		return estilosDatos{}, err
	}
	moneda, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return estilosDatos{}, err
	}
	return estilosDatos{fecha: fecha, moneda: moneda}, nil
}

func (ex *Exportador) escribirFilas(f *excelize.File, hoja string, anio int, list []trabajador.Trabajador, log *logger.Logger) HojaExportada {
	out := HojaExportada{Nombre: hoja, Anio: anio}
	estilos, err := nuevosEstilos(f)
	if err != nil {
		log.Error(err, "no se pudieron crear los estilos de datos")
	}

	for i, t := range list {
		fila := PrimeraFilaDatos + i
		if err := EscribirRegistro(f, hoja, fila, i+1, registroDesde(t, anio), estilos); err != nil {
			out.Errores++
			log.ErrorFila(err, fila, fmt.Sprintf("trabajador %d no exportado", t.ID))
			continue
		}
		out.Filas++
	}
	return out
}

// EscribirRegistro escribe una fila con la tabla de columnas. Los datos ausentes quedan en blanco.
func EscribirRegistro(f *excelize.File, hoja string, fila, secuencia int, reg *Registro, estilos estilosDatos) error {
	celda, _ := excelize.CoordinatesToCellName(ColumnaMarcador+1, fila)
	if err := f.SetCellValue(hoja, celda, secuencia); err != nil {
		return err
	}
	for _, c := range Columnas {
		v := c.exportar(reg)
		if v == nil {
			continue
		}
		celda, _ := excelize.CoordinatesToCellName(c.Columna+1, fila)
		if err := f.SetCellValue(hoja, celda, v); err != nil {
			return fmt.Errorf("%s: %w", c.Nombre, err)
		}
		var estilo int
		switch c.Tipo {
		case TipoFecha:
			estilo = estilos.fecha
		case TipoDecimal:
			estilo = estilos.moneda
		}
		if estilo != 0 {
			if err := f.SetCellStyle(hoja, celda, celda, estilo); err != nil {
				return fmt.Errorf("%s: %w", c.Nombre, err)
			}
		}
	}
	return nil
}
