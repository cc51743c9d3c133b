package planilla

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gestion-empleados/api-trabajadores/internal/logger"
	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// límite del formulario multipart (en memoria; el resto va a disco)
const maxMemoriaFormulario = 32 << 20

type Handler struct {
	DB          *gorm.DB
	Importador  *Importador
	Exportador  *Exportador
	Plantilla   string
	Etiqueta    string
	AnioDefecto int
	Log         *logger.Logger
}

func NewHandler(db *gorm.DB, plantilla, etiqueta string, anioDefecto int) *Handler {
	log := logger.New("planilla")
	return &Handler{
		DB:          db,
		Importador:  NewImportador(db, log),
		Exportador:  NewExportador(db, log),
		Plantilla:   plantilla,
		Etiqueta:    etiqueta,
		AnioDefecto: anioDefecto,
		Log:         log,
	}
}

// GET /trabajadores/exportar-excel?anio=&modo=hoja|anios
func (h *Handler) Exportar(w http.ResponseWriter, r *http.Request) {
	anio, ok := models.AnioConsulta(r, h.AnioDefecto)
	if !ok {
		http.Error(w, "Año inválido", http.StatusBadRequest)
		return
	}
	modo := ModoExportacion(r.URL.Query().Get("modo"))
	if modo == "" {
		modo = HojaUnica
	}
	if modo != HojaUnica && modo != PorAnio {
		http.Error(w, "modo inválido (hoja|anios)", http.StatusBadRequest)
		return
	}

	var plantilla *excelize.File
	if h.Plantilla != "" {
		p, err := AbrirPlantilla(h.Plantilla)
		switch {
		case errors.Is(err, ErrArchivoNoEncontrado):
			h.Log.Warnf("plantilla %s no encontrada, se usa encabezado básico", h.Plantilla)
		case err != nil:
			h.Log.Error(err, "no se pudo abrir la plantilla")
			http.Error(w, "Error al abrir la plantilla", http.StatusInternalServerError)
			return
		default:
			plantilla = p
			defer p.Close()
		}
	}

	destino := excelize.NewFile()
	defer destino.Close()

	_, err := h.Exportador.Exportar(r.Context(), plantilla, destino, OpcionesExportacion{
		Anio:     anio,
		Modo:     modo,
		Etiqueta: h.Etiqueta,
	})
	if err != nil {
		h.Log.Error(err, "exportación fallida")
		http.Error(w, "Error al exportar", http.StatusInternalServerError)
		return
	}

	buf, err := destino.WriteToBuffer()
	if err != nil {
		http.Error(w, "Error al generar el archivo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", MimeXLSX)
	w.Header().Set("Content-Disposition", `attachment; filename="`+NombreArchivoExportacion(time.Now())+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = w.Write(buf.Bytes())
}

// POST /trabajadores/importar-excel (multipart: archivo, anio, hoja, deduplicar)
func (h *Handler) Importar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMemoriaFormulario); err != nil {
		http.Error(w, "Formulario inválido", http.StatusBadRequest)
		return
	}
	archivo, _, err := r.FormFile("archivo")
	if err != nil {
		http.Error(w, "El campo 'archivo' es obligatorio", http.StatusBadRequest)
		return
	}
	defer archivo.Close()

	anio := h.AnioDefecto
	if s := r.FormValue("anio"); s != "" {
		anio, err = strconv.Atoi(s)
		if err != nil || anio < 1900 || anio > 2100 {
			http.Error(w, "Año inválido", http.StatusBadRequest)
			return
		}
	}
	dedup, _ := strconv.ParseBool(r.FormValue("deduplicar"))

	rep, err := h.Importador.Importar(r.Context(), archivo, OpcionesImportacion{
		Anio:       anio,
		Hoja:       r.FormValue("hoja"),
		Etiqueta:   h.Etiqueta,
		Deduplicar: dedup,
	})
	switch {
	case errors.Is(err, ErrHojaNoEncontrada), errors.Is(err, ErrInicioDatos):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		h.Log.Error(err, "importación fallida")
		http.Error(w, "No se pudo leer el archivo", http.StatusBadRequest)
		return
	}
	models.ResponderJSON(w, http.StatusOK, rep)
}
