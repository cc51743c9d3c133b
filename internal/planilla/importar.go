package planilla

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gestion-empleados/api-trabajadores/internal/contratacion"
	"github.com/gestion-empleados/api-trabajadores/internal/cronograma"
	"github.com/gestion-empleados/api-trabajadores/internal/ingreso"
	"github.com/gestion-empleados/api-trabajadores/internal/logger"
	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"github.com/gestion-empleados/api-trabajadores/internal/proyecto"
	"github.com/gestion-empleados/api-trabajadores/internal/retiro"
	"github.com/gestion-empleados/api-trabajadores/internal/seguridadsocial"
	"github.com/gestion-empleados/api-trabajadores/internal/trabajador"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var (
	ErrArchivoNoEncontrado = errors.New("archivo no encontrado")
	ErrHojaNoEncontrada    = errors.New("hoja no encontrada")
	ErrInicioDatos         = errors.New("no se pudo encontrar el inicio de los datos")
)

const EtiquetaPorDefecto = "NOVEDADES"

// filas revisadas para encontrar el inicio de datos
const filasDeteccion = 10

type OpcionesImportacion struct {
	Anio     int
	Hoja     string
	Etiqueta string
	// Deduplicar reutiliza un trabajador existente con el mismo (tipo, numero, anio).
	Deduplicar bool
}

func (o OpcionesImportacion) etiqueta() string {
	if o.Etiqueta == "" {
		return EtiquetaPorDefecto
	}
	return o.Etiqueta
}

// ResultadoFila es el desenlace de una fila de datos.
type ResultadoFila struct {
	Fila         int              `json:"fila"`
	Marcador     string           `json:"marcador"`
	TrabajadorID uint             `json:"trabajadorId,omitempty"`
	Resultado    models.Resultado `json:"-"`
	Estado       string           `json:"estado"`
	Err          error            `json:"-"`
	Mensaje      string           `json:"error,omitempty"`
}

func (r ResultadoFila) OK() bool { return r.Err == nil }

type Reporte struct {
	LoteID       string          `json:"loteId"`
	Hoja         string          `json:"hoja"`
	Anio         int             `json:"anio"`
	FilaInicio   int             `json:"filaInicio"`
	Creados      int             `json:"creados"`
	Actualizados int             `json:"actualizados"`
	Errores      int             `json:"errores"`
	Omitidos     int             `json:"omitidos"`
	Filas        []ResultadoFila `json:"filas"`
}

func (r *Reporte) agregar(res ResultadoFila) {
	switch {
	case res.Err != nil:
		r.Errores++
		res.Estado = "error"
		res.Mensaje = res.Err.Error()
	case res.Resultado == models.Actualizado:
		r.Actualizados++
		res.Estado = res.Resultado.String()
	default:
		r.Creados++
		res.Estado = models.Creado.String()
	}
	r.Filas = append(r.Filas, res)
}

type Importador struct {
	DB  *gorm.DB
	Log *logger.Logger

	trabajadores    trabajador.Repository
	contrataciones  contratacion.Repository
	ingresos        ingreso.Repository
	retiros         retiro.Repository
	seguridadSocial seguridadsocial.Repository
	proyectos       proyecto.Repository
	cronogramas     cronograma.Repository
}

func NewImportador(db *gorm.DB, log *logger.Logger) *Importador {
	if log == nil {
		log = logger.Nop()
	}
	return &Importador{
		DB:              db,
		Log:             log,
		trabajadores:    trabajador.NewRepository(),
		contrataciones:  contratacion.NewRepository(),
		ingresos:        ingreso.NewRepository(),
		retiros:         retiro.NewRepository(),
		seguridadSocial: seguridadsocial.NewRepository(),
		proyectos:       proyecto.NewRepository(),
		cronogramas:     cronograma.NewRepository(),
	}
}

func (im *Importador) ImportarArchivo(ctx context.Context, ruta string, op OpcionesImportacion) (*Reporte, error) {
	if _, err := os.Stat(ruta); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrArchivoNoEncontrado, ruta)
	}
	f, err := excelize.OpenFile(ruta)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", ruta, err)
	}
	defer f.Close()
	return im.ImportarLibro(ctx, f, op)
}

func (im *Importador) Importar(ctx context.Context, r io.Reader, op OpcionesImportacion) (*Reporte, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("leer libro: %w", err)
	}
	defer f.Close()
	return im.ImportarLibro(ctx, f, op)
}

// DetectarHoja prueba "<ETIQUETA> {año}", "<ETIQUETA> {año} (2)" y "<ETIQUETA> {yy}"; si no, la primera hoja.
func DetectarHoja(f *excelize.File, etiqueta string, anio int) (string, bool) {
	hojas := f.GetSheetList()
	candidatas := []string{
		fmt.Sprintf("%s %d", etiqueta, anio),
		fmt.Sprintf("%s %d (2)", etiqueta, anio),
		fmt.Sprintf("%s %02d", etiqueta, anio%100),
	}
	for _, c := range candidatas {
		for _, h := range hojas {
			if h == c {
				return h, true
			}
		}
	}
	if len(hojas) == 0 {
		return "", false
	}
	return hojas[0], false
}

// DetectarInicioDatos busca en la columna A de las primeras filas el marcador "N°"
// (los datos empiezan en la fila siguiente) o un número (los datos empiezan ahí).
// Devuelve el índice base 0 de la fila.
func DetectarInicioDatos(filas [][]string) (int, error) {
	for i := 0; i < len(filas) && i < filasDeteccion; i++ {
		if len(filas[i]) == 0 {
			continue
		}
		v := strings.TrimSpace(filas[i][ColumnaMarcador])
		switch {
		case v == "":
			continue
		case esMarcadorEncabezado(v):
			return i + 1, nil
		case esDigitos(v):
			return i, nil
		}
	}
	return 0, ErrInicioDatos
}

func esMarcadorEncabezado(v string) bool {
	switch strings.ToUpper(v) {
	case "N°", "Nº", "NO.", "N.°":
		return true
	}
	return false
}

func esDigitos(s string) bool {
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}

func (im *Importador) ImportarLibro(ctx context.Context, f *excelize.File, op OpcionesImportacion) (*Reporte, error) {
	hoja := op.Hoja
	if hoja == "" {
		var encontrada bool
		hoja, encontrada = DetectarHoja(f, op.etiqueta(), op.Anio)
		if hoja == "" {
			return nil, ErrHojaNoEncontrada
		}
		if !encontrada {
			im.Log.Warnf("no se encontró hoja para %d, usando: %s", op.Anio, hoja)
		}
	} else if idx, _ := f.GetSheetIndex(hoja); idx < 0 {
		return nil, fmt.Errorf("%w: %q (disponibles: %s)", ErrHojaNoEncontrada, hoja, strings.Join(f.GetSheetList(), ", "))
	}

	filas, err := f.GetRows(hoja, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("leer hoja %s: %w", hoja, err)
	}
	inicio, err := DetectarInicioDatos(filas)
	if err != nil {
		return nil, err
	}

	rep := &Reporte{LoteID: uuid.NewString(), Hoja: hoja, Anio: op.Anio, FilaInicio: inicio + 1}
	log := im.Log.Con("lote", rep.LoteID)
	log.Infof("importando hoja %q año %d desde la fila %d", hoja, op.Anio, rep.FilaInicio)

	db := im.DB.WithContext(ctx)
	for i := inicio; i < len(filas); i++ {
		celdas := filas[i]
		if celda(celdas, ColumnaMarcador) == "" {
			rep.Omitidos++
			continue
		}
		descartarSerialesDeTexto(f, hoja, i+1, celdas)
		res := im.importarFila(db, celdas, i+1, op)
		if res.Err != nil {
			log.ErrorFila(res.Err, res.Fila, "fila no importada")
		}
		rep.agregar(res)
	}

	log.Infof("importación terminada: %d creados, %d actualizados, %d errores", rep.Creados, rep.Actualizados, rep.Errores)
	return rep, nil
}

func celda(celdas []string, col int) string {
	if col < len(celdas) {
		return strings.TrimSpace(celdas[col])
	}
	return ""
}

// descartarSerialesDeTexto vacía las celdas de fecha escritas como texto que sólo tienen
// un número ("2024"): un serial de Excel sólo vale en una celda numérica.
func descartarSerialesDeTexto(f *excelize.File, hoja string, fila int, celdas []string) {
	for _, c := range Columnas {
		if c.Tipo != TipoFecha || c.Columna >= len(celdas) {
			continue
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(celdas[c.Columna]), 64); err != nil {
			continue
		}
		nombre, _ := excelize.CoordinatesToCellName(c.Columna+1, fila)
		tipo, err := f.GetCellType(hoja, nombre)
		if err != nil {
			continue
		}
		if tipo == excelize.CellTypeSharedString || tipo == excelize.CellTypeInlineString {
			celdas[c.Columna] = ""
		}
	}
}

// LeerRegistro aplica la tabla de columnas a una fila.
func LeerRegistro(celdas []string, anio int) *Registro {
	reg := nuevoRegistro(anio)
	reg.Marcador = celda(celdas, ColumnaMarcador)
	for _, c := range Columnas {
		c.importar(reg, celda(celdas, c.Columna))
	}
	reg.inferirFechas(anio)
	return reg
}

// importarFila guarda un registro en su propia transacción.
func (im *Importador) importarFila(db *gorm.DB, celdas []string, fila int, op OpcionesImportacion) (res ResultadoFila) {
	res.Fila = fila
	res.Marcador = celda(celdas, ColumnaMarcador)

	defer func() {
		if p := recover(); p != nil {
			res.Err = fmt.Errorf("fila %d: %v", fila, p)
		}
	}()

	reg := LeerRegistro(celdas, op.Anio)
	err := db.Transaction(func(tx *gorm.DB) error {
		r, err := im.guardarTrabajador(tx, reg, op)
		if err != nil {
			return err
		}
		res.Resultado = r
		return im.guardarDatos(tx, reg)
	})
	if err != nil {
		res.Err = fmt.Errorf("fila %d: %w", fila, err)
		return res
	}
	res.TrabajadorID = reg.Trabajador.ID
	return res
}

func (im *Importador) guardarTrabajador(tx *gorm.DB, reg *Registro, op OpcionesImportacion) (models.Resultado, error) {
	t := &reg.Trabajador
	// sin número no hay documento con qué deduplicar
	if op.Deduplicar && t.Numero != "" {
		existente, err := im.trabajadores.BuscarPorDocumento(tx, t.Tipo, t.Numero, t.Anio)
		if err == nil {
			t.ID, t.CreatedAt = existente.ID, existente.CreatedAt
			return models.Actualizado, im.trabajadores.Actualizar(tx, t)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
	}
	return models.Creado, im.trabajadores.Crear(tx, t)
}

// guardarDatos hace upsert de los cinco datos anuales y de los doce meses, aunque vengan vacíos.
func (im *Importador) guardarDatos(tx *gorm.DB, reg *Registro) error {
	id := reg.Trabajador.ID

	reg.Contratacion.TrabajadorID = id
	if _, err := im.contrataciones.Upsert(tx, reg.Contratacion); err != nil {
		return fmt.Errorf("contratación: %w", err)
	}
	reg.Ingreso.TrabajadorID = id
	if _, err := im.ingresos.Upsert(tx, reg.Ingreso); err != nil {
		return fmt.Errorf("ingreso: %w", err)
	}
	reg.Retiro.TrabajadorID = id
	if _, err := im.retiros.Upsert(tx, reg.Retiro); err != nil {
		return fmt.Errorf("retiro: %w", err)
	}
	reg.SeguridadSocial.TrabajadorID = id
	if _, err := im.seguridadSocial.Upsert(tx, reg.SeguridadSocial); err != nil {
		return fmt.Errorf("seguridad social: %w", err)
	}
	reg.Proyecto.TrabajadorID = id
	if _, err := im.proyectos.Upsert(tx, reg.Proyecto); err != nil {
		return fmt.Errorf("proyectos: %w", err)
	}
	for m, c := range reg.Cronograma {
		c.TrabajadorID = id
		if _, err := im.cronogramas.Upsert(tx, c); err != nil {
			return fmt.Errorf("cronograma mes %d: %w", m+1, err)
		}
	}
	return nil
}
