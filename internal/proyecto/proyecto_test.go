package proyecto

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func nuevaDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(&Proyecto{}))
	require.NoError(t, database.Exec("CREATE TABLE trabajadores (id integer PRIMARY KEY)").Error)
	require.NoError(t, database.Exec("INSERT INTO trabajadores (id) VALUES (1)").Error)
	return database
}

func TestActivos(t *testing.T) {
	assert.Nil(t, (&Proyecto{}).Activos())
	p := Proyecto{ConstruccionInstalaciones: true, Servicios: true}
	assert.Equal(t, []string{"Construcción de Instalaciones", "Servicios"}, p.Activos())
}

func TestRepository_UpsertMantieneUnoPorAnio(t *testing.T) {
	database := nuevaDB(t)
	repo := NewRepository()

	res, err := repo.Upsert(database, &Proyecto{TrabajadorID: 1, Anio: 2024, Administrativo: true})
	require.NoError(t, err)
	assert.Equal(t, models.Creado, res)

	res, err = repo.Upsert(database, &Proyecto{TrabajadorID: 1, Anio: 2024, ConstruccionRedes: true})
	require.NoError(t, err)
	assert.Equal(t, models.Actualizado, res)

	p, err := repo.BuscarPorTrabajadorAnio(database, 1, 2024)
	require.NoError(t, err)
	assert.False(t, p.Administrativo)
	assert.True(t, p.ConstruccionRedes)
}

func TestHandler_Ciclo(t *testing.T) {
	h := NewHandler(nuevaDB(t), 2025)
	r := mux.NewRouter()
	r.HandleFunc("/trabajadores/{id}/proyectos", h.Buscar).Methods("GET")
	r.HandleFunc("/trabajadores/{id}/proyectos", h.Crear).Methods("POST")
	r.HandleFunc("/trabajadores/{id}/proyectos", h.Actualizar).Methods("PUT")
	r.HandleFunc("/trabajadores/{id}/proyectos", h.Eliminar).Methods("DELETE")

	hacer := func(metodo, url, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(metodo, url, strings.NewReader(body)))
		return rec
	}

	rec := hacer("POST", "/trabajadores/1/proyectos?anio=2024", `{"servicios":true}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, http.StatusBadRequest, hacer("POST", "/trabajadores/1/proyectos?anio=2024", `{}`).Code)

	rec = hacer("PUT", "/trabajadores/1/proyectos?anio=2024", `{"mantenimientoRedes":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var p Proyecto
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
	assert.True(t, p.Servicios)
	assert.True(t, p.MantenimientoRedes)

	assert.Equal(t, http.StatusNotFound, hacer("GET", "/trabajadores/1/proyectos", "").Code)
	assert.Equal(t, http.StatusNoContent, hacer("DELETE", "/trabajadores/1/proyectos?anio=2024", "").Code)
}
