package cronograma

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

type CronogramaDTO struct {
	Cronograma
	MesDisplay string `json:"mesDisplay"`
}

func toDTO(c Cronograma) CronogramaDTO {
	return CronogramaDTO{Cronograma: c, MesDisplay: c.MesDisplay()}
}

// ParseMes acepta "YYYY-MM" o "YYYY-MM-DD" y devuelve el primer día del mes.
func ParseMes(s string) (models.Fecha, error) {
	for _, layout := range []string{"2006-01", models.FormatoFecha} {
		if t, err := time.Parse(layout, s); err == nil {
			return PrimerDia(t.Year(), t.Month()), nil
		}
	}
	return models.Fecha{}, errors.New("mes inválido, use YYYY-MM")
}

// GET /trabajadores/{id}/cronograma?mes=YYYY-MM | ?anio=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	id, ok := models.IDRuta(r, "id")
	if !ok {
		http.Error(w, "ID de trabajador inválido", http.StatusBadRequest)
		return
	}

	if s := r.URL.Query().Get("mes"); s != "" {
		mes, err := ParseMes(s)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		c, err := h.Repository.BuscarPorMes(h.DB, id, mes)
		if err != nil {
			http.Error(w, "No existe cronograma para este mes", http.StatusNotFound)
			return
		}
		models.ResponderJSON(w, http.StatusOK, toDTO(*c))
		return
	}

	anio := 0
	if s := r.URL.Query().Get("anio"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "Año inválido", http.StatusBadRequest)
			return
		}
		anio = v
	}
	list, err := h.Repository.ListarPorTrabajador(h.DB, id, anio)
	if err != nil {
		http.Error(w, "Error al listar cronograma", http.StatusInternalServerError)
		return
	}
	out := make([]CronogramaDTO, 0, len(list))
	for _, c := range list {
		out = append(out, toDTO(c))
	}
	models.ResponderJSON(w, http.StatusOK, out)
}

// POST /trabajadores/{id}/cronograma
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	id, ok := models.IDRuta(r, "id")
	if !ok {
		http.Error(w, "ID de trabajador inválido", http.StatusBadRequest)
		return
	}
	if err := models.TrabajadorExiste(h.DB, id); err != nil {
		http.Error(w, "Trabajador no encontrado", http.StatusNotFound)
		return
	}

	var c Cronograma
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	c.ID, c.TrabajadorID = 0, id
	if err := c.Validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.BuscarPorMes(h.DB, id, c.Mes); err == nil {
		http.Error(w, models.ErrRegistroExistente.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repository.Crear(h.DB, &c); err != nil {
		http.Error(w, "Error al guardar cronograma", http.StatusInternalServerError)
		return
	}
	models.ResponderJSON(w, http.StatusCreated, toDTO(c))
}

// PUT /trabajadores/{id}/cronograma/{cid}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, ok1 := models.IDRuta(r, "id")
	cid, ok2 := models.IDRuta(r, "cid")
	if !ok1 || !ok2 {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	actual, err := h.Repository.BuscarPorID(h.DB, id, cid)
	if err != nil {
		http.Error(w, "Cronograma no encontrado", http.StatusNotFound)
		return
	}

	c := *actual
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	c.ID, c.TrabajadorID, c.CreatedAt = actual.ID, actual.TrabajadorID, actual.CreatedAt
	if err := c.Validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if otro, err := h.Repository.BuscarPorMes(h.DB, id, c.Mes); err == nil && otro.ID != c.ID {
		http.Error(w, models.ErrRegistroExistente.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repository.Actualizar(h.DB, &c); err != nil {
		http.Error(w, "Error al actualizar cronograma", http.StatusInternalServerError)
		return
	}
	models.ResponderJSON(w, http.StatusOK, toDTO(c))
}

// DELETE /trabajadores/{id}/cronograma/{cid}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, ok1 := models.IDRuta(r, "id")
	cid, ok2 := models.IDRuta(r, "cid")
	if !ok1 || !ok2 {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.BuscarPorID(h.DB, id, cid); err != nil {
		http.Error(w, "Cronograma no encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repository.Eliminar(h.DB, cid); err != nil {
		http.Error(w, "Error al eliminar cronograma", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
