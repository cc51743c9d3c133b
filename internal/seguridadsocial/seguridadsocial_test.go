package seguridadsocial

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

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
	require.NoError(t, database.AutoMigrate(&SeguridadSocial{}))
	require.NoError(t, database.Exec("CREATE TABLE trabajadores (id integer PRIMARY KEY)").Error)
	require.NoError(t, database.Exec("INSERT INTO trabajadores (id) VALUES (1)").Error)
	return database
}

func TestValidar(t *testing.T) {
	tests := []struct {
		name    string
		s       SeguridadSocial
		wantErr bool
	}{
		{name: "empty", s: SeguridadSocial{}},
		{name: "full", s: SeguridadSocial{EPS: "Emssanar", ARL: "POSITIVA", Riesgo: "3"}},
		{name: "unlisted arl", s: SeguridadSocial{ARL: "ARL DEL SUR"}},
		{name: "roman risk", s: SeguridadSocial{Riesgo: "III"}, wantErr: true},
		{name: "risk out of range", s: SeguridadSocial{Riesgo: "6"}, wantErr: true},
		{name: "lowercase arl", s: SeguridadSocial{ARL: "sura"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validar()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHandler_Ciclo(t *testing.T) {
	h := NewHandler(nuevaDB(t), 2024)
	r := mux.NewRouter()
	r.HandleFunc("/trabajadores/{id}/seguridad-social", h.Buscar).Methods("GET")
	r.HandleFunc("/trabajadores/{id}/seguridad-social", h.Crear).Methods("POST")
	r.HandleFunc("/trabajadores/{id}/seguridad-social", h.Actualizar).Methods("PUT")
	r.HandleFunc("/trabajadores/{id}/seguridad-social", h.Eliminar).Methods("DELETE")

	hacer := func(metodo, url, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(metodo, url, strings.NewReader(body)))
		return rec
	}

	rec := hacer("POST", "/trabajadores/1/seguridad-social", `{"eps":"Emssanar","arl":"POSITIVA","riesgo":"2","fechaAfiliacionArl":"2024-02-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var creado SeguridadSocial
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&creado))
	assert.Equal(t, 2024, creado.Anio)
	assert.Equal(t, "2024-02-01", creado.FechaAfiliacionARL.String())

	assert.Equal(t, http.StatusBadRequest, hacer("POST", "/trabajadores/1/seguridad-social", `{}`).Code)
	assert.Equal(t, http.StatusNotFound, hacer("POST", "/trabajadores/9/seguridad-social", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, hacer("POST", "/trabajadores/1/seguridad-social?anio=2023", `{"riesgo":"9"}`).Code)
	assert.Equal(t, http.StatusBadRequest, hacer("GET", "/trabajadores/1/seguridad-social?anio=x", "").Code)

	rec = hacer("PUT", "/trabajadores/1/seguridad-social", `{"riesgo":"4"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = hacer("GET", "/trabajadores/1/seguridad-social?anio=2024", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var leido SeguridadSocial
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&leido))
	assert.Equal(t, "4", leido.Riesgo)
	assert.Equal(t, "Emssanar", leido.EPS)

	assert.Equal(t, http.StatusNotFound, hacer("GET", "/trabajadores/1/seguridad-social?anio=2023", "").Code)
	assert.Equal(t, http.StatusNoContent, hacer("DELETE", "/trabajadores/1/seguridad-social", "").Code)
	assert.Equal(t, http.StatusNotFound, hacer("DELETE", "/trabajadores/1/seguridad-social", "").Code)
}
