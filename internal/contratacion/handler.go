package contratacion

import (
	"encoding/json"
	"errors"
	"net/http"

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

// ContratacionDTO agrega los campos calculados.
type ContratacionDTO struct {
	Contratacion
	TipoContratoDisplay string `json:"tipoContratoDisplay"`
	ContratoActivo      bool   `json:"contratoActivo"`
	DiasRestantes       *int   `json:"diasRestantes"`
}

func ToDTO(c Contratacion) ContratacionDTO {
	hoy := models.Hoy()
	return ContratacionDTO{
		Contratacion:        c,
		TipoContratoDisplay: catalogo.EtiquetaContrato(c.TipoContrato),
		ContratoActivo:      c.Activo(hoy),
		DiasRestantes:       c.DiasRestantes(hoy),
	}
}

func toDTOs(list []Contratacion) []ContratacionDTO {
	out := make([]ContratacionDTO, 0, len(list))
	for _, c := range list {
		out = append(out, ToDTO(c))
	}
	return out
}

// trabajador y año a partir de la ruta y ?anio=
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

// GET /trabajadores/{id}/contratacion?anio=
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	id, anio, ok := h.clave(w, r)
	if !ok {
		return
	}
	c, err := h.Repository.BuscarPorTrabajadorAnio(h.DB, id, anio)
	if err != nil {
		http.Error(w, "No existe contratación para este año", http.StatusNotFound)
		return
	}
	models.ResponderJSON(w, http.StatusOK, ToDTO(*c))
}

// POST /trabajadores/{id}/contratacion?anio=
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

	var c Contratacion
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	c.ID = 0
	c.TrabajadorID = id
	c.Anio = anio
	if err := c.Validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repository.Crear(h.DB, &c); err != nil {
		http.Error(w, "Error al guardar contratación", http.StatusInternalServerError)
		return
	}
	models.ResponderJSON(w, http.StatusCreated, ToDTO(c))
}

// PUT /trabajadores/{id}/contratacion?anio=
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, anio, ok := h.clave(w, r)
	if !ok {
		return
	}
	actual, err := h.Repository.BuscarPorTrabajadorAnio(h.DB, id, anio)
	if err != nil {
		http.Error(w, "No existe contratación para este año", http.StatusNotFound)
		return
	}

	c := *actual
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	c.ID, c.TrabajadorID, c.Anio, c.CreatedAt = actual.ID, actual.TrabajadorID, actual.Anio, actual.CreatedAt
	if err := c.Validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repository.Actualizar(h.DB, &c); err != nil {
		http.Error(w, "Error al actualizar contratación", http.StatusInternalServerError)
		return
	}
	models.ResponderJSON(w, http.StatusOK, ToDTO(c))
}

// DELETE /trabajadores/{id}/contratacion?anio=
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, anio, ok := h.clave(w, r)
	if !ok {
		return
	}
	actual, err := h.Repository.BuscarPorTrabajadorAnio(h.DB, id, anio)
	if err != nil {
		http.Error(w, "No existe contratación para este año", http.StatusNotFound)
		return
	}
	if err := h.Repository.Eliminar(h.DB, actual.ID); err != nil {
		http.Error(w, "Error al eliminar contratación", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /trabajadores/{id}/contrataciones
func (h *Handler) ListarPorTrabajador(w http.ResponseWriter, r *http.Request) {
	id, ok := models.IDRuta(r, "id")
	if !ok {
		http.Error(w, "ID de trabajador inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repository.ListarPorTrabajador(h.DB, id)
	if err != nil {
		http.Error(w, "Error al listar contrataciones", http.StatusInternalServerError)
		return
	}
	models.ResponderJSON(w, http.StatusOK, toDTOs(list))
}

// GET /contrataciones?anio=
func (h *Handler) ListarPorAnio(w http.ResponseWriter, r *http.Request) {
	anio, ok := models.AnioConsulta(r, h.AnioDefecto)
	if !ok {
		http.Error(w, "Año inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repository.ListarPorAnio(h.DB, anio)
	if err != nil {
		http.Error(w, "Error al listar contrataciones", http.StatusInternalServerError)
		return
	}
	models.ResponderJSON(w, http.StatusOK, toDTOs(list))
}

// GET /contrataciones/activas
func (h *Handler) ListarActivas(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarActivas(h.DB, models.Hoy())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Error al listar contratos activos", http.StatusInternalServerError)
		return
	}
	models.ResponderJSON(w, http.StatusOK, toDTOs(list))
}
