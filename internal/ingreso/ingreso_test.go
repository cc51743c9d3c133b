package ingreso

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

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
	require.NoError(t, database.AutoMigrate(&Ingreso{}))
	require.NoError(t, database.Exec("CREATE TABLE trabajadores (id integer PRIMARY KEY)").Error)
	require.NoError(t, database.Exec("INSERT INTO trabajadores (id) VALUES (1)").Error)
	return database
}

func TestRepository_Upsert(t *testing.T) {
	database := nuevaDB(t)
	repo := NewRepository()

	res, err := repo.Upsert(database, &Ingreso{TrabajadorID: 1, Anio: 2024, FechaIngreso: models.FechaDe(2024, time.January, 15)})
	require.NoError(t, err)
	assert.Equal(t, models.Creado, res)

	res, err = repo.Upsert(database, &Ingreso{
		TrabajadorID:    1,
		Anio:            2024,
		FechaIngreso:    models.FechaDe(2024, time.January, 15),
		FechaEntregaEPP: models.FechaDe(2024, time.January, 16),
	})
	require.NoError(t, err)
	assert.Equal(t, models.Actualizado, res)

	i, err := repo.BuscarPorTrabajadorAnio(database, 1, 2024)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-16", i.FechaEntregaEPP.String())
	assert.False(t, i.ExamenIngreso.Valid)
}

func TestHandler_Crear(t *testing.T) {
	h := NewHandler(nuevaDB(t), 2024)
	r := mux.NewRouter()
	r.HandleFunc("/trabajadores/{id}/ingreso", h.Crear).Methods("POST")
	r.HandleFunc("/trabajadores/{id}/ingreso", h.Buscar).Methods("GET")

	crear := func(url, body string) int {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("POST", url, strings.NewReader(body)))
		return rec.Code
	}
	assert.Equal(t, http.StatusCreated, crear("/trabajadores/1/ingreso", `{"fechaIngreso":"2024-01-15"}`))
	assert.Equal(t, http.StatusBadRequest, crear("/trabajadores/1/ingreso", `{"fechaIngreso":"2024-01-15"}`))
	assert.Equal(t, http.StatusBadRequest, crear("/trabajadores/1/ingreso?anio=2023", `{"fechaIngreso":"15/01/2024"}`))
	assert.Equal(t, http.StatusNotFound, crear("/trabajadores/2/ingreso", `{}`))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/trabajadores/1/ingreso", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fechaIngreso":"2024-01-15"`)
}
