package trabajador

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gestion-empleados/api-trabajadores/internal/catalogo"
	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"gorm.io/gorm"
)

type Handler struct {
	DB          *gorm.DB
	Repository  Repository
	AnioDefecto int
}

func NewHandler(db *gorm.DB, anioDefecto int) *Handler {
	return &Handler{DB: db, Repository: NewRepository(), AnioDefecto: anioDefecto}
}

// GET /trabajadores?tipo=&anio=&search=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := Filtro{Tipo: q.Get("tipo"), Busqueda: q.Get("search")}
	if s := q.Get("anio"); s != "" {
		anio, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "Año inválido", http.StatusBadRequest)
			return
		}
		f.Anio = anio
	}

	list, err := h.Repository.Listar(h.DB, f)
	if err != nil {
		http.Error(w, "Error al listar trabajadores", http.StatusInternalServerError)
		return
	}
	out := make([]TrabajadorDTO, 0, len(list))
	for _, t := range list {
		out = append(out, toDTO(t))
	}
	models.ResponderJSON(w, http.StatusOK, out)
}

// POST /trabajadores
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var t Trabajador
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	t.ID = 0
	if t.Tipo == "" {
		t.Tipo = catalogo.CedulaCiudadania
	}
	if t.Anio == 0 {
		t.Anio = h.AnioDefecto
	}
	if err := t.Validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repository.Crear(h.DB, &t); err != nil {
		http.Error(w, "Error al crear trabajador", http.StatusInternalServerError)
		return
	}
	models.ResponderJSON(w, http.StatusCreated, toDTO(t))
}

// GET /trabajadores/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, ok := models.IDRuta(r, "id")
	if !ok {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	t, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "Trabajador no encontrado", http.StatusNotFound)
		return
	}
	models.ResponderJSON(w, http.StatusOK, toDTO(*t))
}

// PUT /trabajadores/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, ok := models.IDRuta(r, "id")
	if !ok {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	actual, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "Trabajador no encontrado", http.StatusNotFound)
		return
	}

	t := *actual
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	t.ID, t.CreatedAt = actual.ID, actual.CreatedAt
	if err := t.Validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repository.Actualizar(h.DB, &t); err != nil {
		http.Error(w, "Error al actualizar trabajador", http.StatusInternalServerError)
		return
	}
	models.ResponderJSON(w, http.StatusOK, toDTO(t))
}

// DELETE /trabajadores/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, ok := models.IDRuta(r, "id")
	if !ok {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Eliminar(h.DB, id); err != nil {
		if EsNoEncontrado(err) {
			http.Error(w, "Trabajador no encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Error al eliminar trabajador", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /trabajadores/{id}/datos-completos?anio=
func (h *Handler) DatosCompletos(w http.ResponseWriter, r *http.Request) {
	id, ok := models.IDRuta(r, "id")
	if !ok {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	anio, ok := models.AnioConsulta(r, h.AnioDefecto)
	if !ok {
		http.Error(w, "Año inválido", http.StatusBadRequest)
		return
	}

	t, err := h.Repository.BuscarConDatos(h.DB, id, anio)
	if err != nil {
		if EsNoEncontrado(err) {
			http.Error(w, "Trabajador no encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Error al consultar trabajador", http.StatusInternalServerError)
		return
	}
	models.ResponderJSON(w, http.StatusOK, datosCompletos(*t, anio))
}
