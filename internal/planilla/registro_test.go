package planilla

import (
	"testing"
	"time"

	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestInferirFechas(t *testing.T) {
	tests := []struct {
		name           string
		nacimiento     models.Fecha
		expedicion     models.Fecha
		wantNacimiento models.Fecha
		wantExpedicion models.Fecha
	}{
		{
			name:           "sólo nacimiento",
			nacimiento:     models.FechaDe(1990, time.May, 10),
			wantNacimiento: models.FechaDe(1990, time.May, 10),
			wantExpedicion: models.FechaDe(2008, time.May, 10),
		},
		{
			name:           "menor de edad en el año reportado",
			nacimiento:     models.FechaDe(2010, time.January, 1),
			wantNacimiento: models.FechaDe(2010, time.January, 1),
			wantExpedicion: models.FechaDe(2010, time.January, 1),
		},
		{
			name:           "sólo expedición",
			expedicion:     models.FechaDe(2010, time.May, 1),
			wantNacimiento: models.FechaDe(1992, time.May, 1),
			wantExpedicion: models.FechaDe(2010, time.May, 1),
		},
		{
			name:           "ninguna",
			wantNacimiento: models.FechaDe(1982, time.January, 1),
			wantExpedicion: models.FechaDe(2000, time.January, 1),
		},
		{
			name:           "29 de febrero",
			nacimiento:     models.FechaDe(2000, time.February, 29),
			wantNacimiento: models.FechaDe(2000, time.February, 29),
			wantExpedicion: models.FechaDe(2018, time.March, 1),
		},
		{
			name:           "ambas se respetan",
			nacimiento:     models.FechaDe(1985, time.June, 1),
			expedicion:     models.FechaDe(2010, time.July, 1),
			wantNacimiento: models.FechaDe(1985, time.June, 1),
			wantExpedicion: models.FechaDe(2010, time.July, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := nuevoRegistro(2024)
			r.Trabajador.FechaNacimiento = tt.nacimiento
			r.Trabajador.FechaExpedicionCedula = tt.expedicion

			r.inferirFechas(2024)

			assert.Equal(t, tt.wantNacimiento, r.Trabajador.FechaNacimiento)
			assert.Equal(t, tt.wantExpedicion, r.Trabajador.FechaExpedicionCedula)
		})
	}
}

func TestNuevoRegistro_AllocatesEveryMonth(t *testing.T) {
	r := nuevoRegistro(2024)
	for m, c := range r.Cronograma {
		if assert.NotNil(t, c) {
			assert.Equal(t, models.FechaDe(2024, time.Month(m+1), 1), c.Mes)
		}
	}
	assert.NotNil(t, r.Retiro)
	assert.Equal(t, 2024, r.Contratacion.Anio)
}

func TestColumnas_Layout(t *testing.T) {
	vistas := map[int]bool{}
	for _, c := range Columnas {
		assert.False(t, vistas[c.Columna], "columna repetida %d", c.Columna)
		vistas[c.Columna] = true
	}
	// 36 columnas fijas más 4 por cada mes
	assert.Len(t, Columnas, 36+12*ColumnasPorMes)
	assert.Equal(t, 37, ColumnaMes(1))
	assert.Equal(t, 81, ColumnaMes(12))
	assert.Equal(t, 85, UltimaColumna)
}
