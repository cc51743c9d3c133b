package proyecto

import (
	"encoding/json"
	"net/http"

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

func (h *Handler) clave(w http.ResponseWriter, r *http.Request) (uint, int, bool) {
	id, ok := models.IDRuta(r, "id")
	if !ok {
		http.Error(w, "ID de trabajador inválido", http.StatusBadRequest)
		return 0, 0, false
	}
	anio, ok := models.AnioConsulta(r, h.AnioDefecto)
	if !ok {
		http.Error(w, "Año inválido", http.StatusBadRequest)
		return 0, 0, false
	}
	return id, anio, true
}

// GET /trabajadores/{id}/proyectos?anio=
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	id, anio, ok := h.clave(w, r)
	if !ok {
		return
	}
	i, err := h.Repository.BuscarPorTrabajadorAnio(h.DB, id, anio)
	if err != nil {
		http.Error(w, "No existe asignación de proyectos para este año", http.StatusNotFound)
		return
	}
	models.ResponderJSON(w, http.StatusOK, i)
}

// POST /trabajadores/{id}/proyectos?anio=
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	id, anio, ok := h.clave(w, r)
	if !ok {
		return
	}
	if err := models.TrabajadorExiste(h.DB, id); err != nil {
		http.Error(w, "Trabajador no encontrado", http.StatusNotFound)
		return
	}
	if _, err := h.Repository.BuscarPorTrabajadorAnio(h.DB, id, anio); err == nil {
		http.Error(w, models.ErrRegistroExistente.Error(), http.StatusBadRequest)
		return
	}

	var i Proyecto
	if err := json.NewDecoder(r.Body).Decode(&i); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	i.ID, i.TrabajadorID, i.Anio = 0, id, anio
	if err := h.Repository.Crear(h.DB, &i); err != nil {
		http.Error(w, "Error al guardar proyectos", http.StatusInternalServerError)
		return
	}
	models.ResponderJSON(w, http.StatusCreated, i)
}

// PUT /trabajadores/{id}/proyectos?anio=
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, anio, ok := h.clave(w, r)
	if !ok {
		return
	}
	actual, err := h.Repository.BuscarPorTrabajadorAnio(h.DB, id, anio)
	if err != nil {
		http.Error(w, "No existe asignación de proyectos para este año", http.StatusNotFound)
		return
	}
	i := *actual
	if err := json.NewDecoder(r.Body).Decode(&i); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	i.ID, i.TrabajadorID, i.Anio, i.CreatedAt = actual.ID, actual.TrabajadorID, actual.Anio, actual.CreatedAt
	if err := h.Repository.Actualizar(h.DB, &i); err != nil {
		http.Error(w, "Error al actualizar proyectos", http.StatusInternalServerError)
		return
	}
	models.ResponderJSON(w, http.StatusOK, i)
}

// DELETE /trabajadores/{id}/proyectos?anio=
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, anio, ok := h.clave(w, r)
	if !ok {
		return
	}
	actual, err := h.Repository.BuscarPorTrabajadorAnio(h.DB, id, anio)
	if err != nil {
		http.Error(w, "No existe asignación de proyectos para este año", http.StatusNotFound)
		return
	}
	if err := h.Repository.Eliminar(h.DB, actual.ID); err != nil {
		http.Error(w, "Error al eliminar proyectos", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
