package usuario

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gestion-empleados/api-trabajadores/internal/auth"
	"github.com/gestion-empleados/api-trabajadores/internal/logger"
	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"github.com/gestion-empleados/api-trabajadores/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Log        *logger.Logger
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Log:        logger.New("usuario"),
	}
}

// POST /auth/login
// Valida usuario/clave, emite access token RS256 y deja el refresh token en cookie httpOnly.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	u, err := h.Repository.BuscarPorUsername(h.DB, req.Username)
	if err != nil || !utils.VerificarClave(u.Password, req.Password) {
		http.Error(w, "Credenciales inválidas", http.StatusUnauthorized)
		return
	}

	access, err := auth.IssueTokensOnLogin(h.DB, w, u.ID, u.IsAdmin)
	if err != nil {
		h.Log.Error(err, "error al generar tokens")
		http.Error(w, "Error al generar tokens", http.StatusInternalServerError)
		return
	}
	models.ResponderJSON(w, http.StatusOK, auth.NuevaRespuesta(access))
}

// GET /auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.UsuarioID(r.Context())
	u, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "Usuario no encontrado", http.StatusNotFound)
		return
	}
	models.ResponderJSON(w, http.StatusOK, u)
}

// GET /usuarios (sólo administradores)
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.Listar(h.DB)
	if err != nil {
		http.Error(w, "Error al listar usuarios", http.StatusInternalServerError)
		return
	}
	models.ResponderJSON(w, http.StatusOK, list)
}

// POST /usuarios (sólo administradores)
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req CrearUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	u, err := h.Repository.CrearConClave(h.DB, req.Username, req.Password, req.Nombre, req.IsAdmin)
	if errors.Is(err, ErrUsuarioExistente) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	models.ResponderJSON(w, http.StatusCreated, u)
}
