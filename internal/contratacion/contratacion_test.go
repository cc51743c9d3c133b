package contratacion

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gestion-empleados/api-trabajadores/internal/catalogo"
	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
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
	require.NoError(t, database.AutoMigrate(&Contratacion{}))
	require.NoError(t, database.Exec("CREATE TABLE trabajadores (id integer PRIMARY KEY)").Error)
	require.NoError(t, database.Exec("INSERT INTO trabajadores (id) VALUES (1), (2)").Error)
	return database
}

func TestContratacion_Activo(t *testing.T) {
	hoy := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		inicio models.Fecha
		final  models.Fecha
		want   bool
		dias   *int
	}{
		{name: "sin inicio", want: false},
		{name: "vigente sin final", inicio: models.FechaDe(2024, time.January, 1), want: true},
		{name: "vigente con final", inicio: models.FechaDe(2024, time.January, 1), final: models.FechaDe(2024, time.June, 25), want: true, dias: ptr(10)},
		{name: "termina hoy", inicio: models.FechaDe(2024, time.January, 1), final: models.FechaDe(2024, time.June, 15), want: true, dias: ptr(0)},
		{name: "vencido", inicio: models.FechaDe(2024, time.January, 1), final: models.FechaDe(2024, time.March, 1), want: false, dias: ptr(0)},
		{name: "futuro", inicio: models.FechaDe(2024, time.July, 1), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Contratacion{FechaInicioContrato: tt.inicio, FechaFinalContrato: tt.final}
			assert.Equal(t, tt.want, c.Activo(hoy))
			assert.Equal(t, tt.dias, c.DiasRestantes(hoy))
		})
	}
}

func ptr(n int) *int { return &n }

func TestContratacion_Validar(t *testing.T) {
	ok := Contratacion{TipoContrato: catalogo.TerminoFijo, MunicipioBase: "PASTO"}
	assert.NoError(t, ok.Validar())

	malTipo := ok
	malTipo.TipoContrato = "OTRO"
	assert.Error(t, malTipo.Validar())

	malMunicipio := ok
	malMunicipio.MunicipioBase = "BOGOTA"
	assert.Error(t, malMunicipio.Validar())

	negativo := ok
	negativo.SalarioContratado = decimal.NewFromInt(-1)
	assert.Error(t, negativo.Validar())

	fechas := ok
	fechas.FechaInicioContrato = models.FechaDe(2024, time.May, 1)
	fechas.FechaFinalContrato = models.FechaDe(2024, time.April, 1)
	assert.Error(t, fechas.Validar())
}

func TestRepository_Upsert(t *testing.T) {
	database := nuevaDB(t)
	repo := NewRepository()

	c := &Contratacion{TrabajadorID: 1, Anio: 2024, TipoContrato: catalogo.TerminoFijo, Cargo: "Auxiliar"}
	res, err := repo.Upsert(database, c)
	require.NoError(t, err)
	assert.Equal(t, models.Creado, res)

	otra := &Contratacion{TrabajadorID: 1, Anio: 2024, TipoContrato: catalogo.ObraLabor, Cargo: "Técnico"}
	res, err = repo.Upsert(database, otra)
	require.NoError(t, err)
	assert.Equal(t, models.Actualizado, res)
	assert.Equal(t, c.ID, otra.ID)

	list, err := repo.ListarPorTrabajador(database, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Técnico", list[0].Cargo)
	assert.Equal(t, catalogo.ObraLabor, list[0].TipoContrato)
}

func TestRepository_ListarActivas(t *testing.T) {
	database := nuevaDB(t)
	repo := NewRepository()
	hoy := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Crear(database, &Contratacion{TrabajadorID: 1, Anio: 2024, TipoContrato: catalogo.TerminoFijo,
		FechaInicioContrato: models.FechaDe(2024, time.January, 1)}))
	require.NoError(t, repo.Crear(database, &Contratacion{TrabajadorID: 2, Anio: 2024, TipoContrato: catalogo.TerminoFijo,
		FechaInicioContrato: models.FechaDe(2024, time.January, 1), FechaFinalContrato: models.FechaDe(2024, time.March, 31)}))
	require.NoError(t, repo.Crear(database, &Contratacion{TrabajadorID: 2, Anio: 2023, TipoContrato: catalogo.TerminoFijo}))

	list, err := repo.ListarActivas(database, hoy)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, uint(1), list[0].TrabajadorID)
}

func router(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/trabajadores/{id}/contratacion", h.Buscar).Methods("GET")
	r.HandleFunc("/trabajadores/{id}/contratacion", h.Crear).Methods("POST")
	r.HandleFunc("/trabajadores/{id}/contratacion", h.Actualizar).Methods("PUT")
	r.HandleFunc("/trabajadores/{id}/contratacion", h.Eliminar).Methods("DELETE")
	return r
}

func hacer(r http.Handler, metodo, url, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(metodo, url, strings.NewReader(body)))
	return rec
}

func TestHandler_CicloCompleto(t *testing.T) {
	r := router(NewHandler(nuevaDB(t), 2024))
	body := `{"tipoContrato":"TERMINO_FIJO","cargo":"Auxiliar","salarioContratado":"1500000.50","fechaInicioContrato":"2024-01-15"}`

	rec := hacer(r, "POST", "/trabajadores/1/contratacion?anio=2024", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var dto map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dto))
	assert.Equal(t, "Término Fijo", dto["tipoContratoDisplay"])
	assert.Equal(t, "2024-01-15", dto["fechaInicioContrato"])
	assert.Nil(t, dto["fechaFinalContrato"])

	rec = hacer(r, "POST", "/trabajadores/1/contratacion?anio=2024", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = hacer(r, "POST", "/trabajadores/99/contratacion?anio=2024", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = hacer(r, "PUT", "/trabajadores/1/contratacion?anio=2024", `{"cargo":"Coordinador"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dto))
	assert.Equal(t, "Coordinador", dto["cargo"])
	assert.Equal(t, "TERMINO_FIJO", dto["tipoContrato"])

	rec = hacer(r, "GET", "/trabajadores/1/contratacion?anio=2023", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = hacer(r, "DELETE", "/trabajadores/1/contratacion?anio=2024", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = hacer(r, "GET", "/trabajadores/1/contratacion?anio=2024", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Validaciones(t *testing.T) {
	r := router(NewHandler(nuevaDB(t), 2024))

	assert.Equal(t, http.StatusBadRequest, hacer(r, "GET", "/trabajadores/abc/contratacion", "").Code)
	assert.Equal(t, http.StatusBadRequest, hacer(r, "GET", "/trabajadores/1/contratacion?anio=12", "").Code)
	assert.Equal(t, http.StatusBadRequest, hacer(r, "POST", "/trabajadores/1/contratacion", `{"tipoContrato":"X"}`).Code)
	assert.Equal(t, http.StatusBadRequest, hacer(r, "POST", "/trabajadores/1/contratacion", `{`).Code)
}
