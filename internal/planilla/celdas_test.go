package planilla

import (
	"testing"
	"time"

	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		valid bool
	}{
		{"1.234.567,89", "1234567.89", true},
		{"1234.56", "1234.56", true},
		{"1234,56", "1234.56", true},
		{"$ 1.300.000,00", "1300000", true},
		// puntos de miles sin coma decimal no se aceptan
		{"1.300.000", "", false},
		{"  2500000 ", "2500000", true},
		{"", "", false},
		{"N/A", "", false},
		{"abc", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseDecimal(tt.in)
			assert.Equal(t, tt.valid, got.Valid)
			if tt.valid {
				assert.True(t, got.Decimal.Equal(decimal.RequireFromString(tt.want)), "got %s", got.Decimal)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"SI", "sí", "Yes", "TRUE", "1", "x", "✓", " X "} {
		assert.True(t, ParseBool(v), v)
	}
	for _, v := range []string{"", "NO", "0", "false", "N/A", "tal vez"} {
		assert.False(t, ParseBool(v), v)
	}
}

func TestParseFecha(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want models.Fecha
	}{
		{"serial", "45292", models.FechaDe(2024, time.January, 1)},
		{"serial con decimales", "45306.5", models.FechaDe(2024, time.January, 15)},
		{"iso", "2024-03-01", models.FechaDe(2024, time.March, 1)},
		{"iso con hora", "2024-03-01 00:00:00", models.FechaDe(2024, time.March, 1)},
		{"dia primero", "15/01/2024", models.FechaDe(2024, time.January, 15)},
		{"dia primero con guiones", "15-01-2024", models.FechaDe(2024, time.January, 15)},
		{"barras iso", "2024/01/15", models.FechaDe(2024, time.January, 15)},
		{"vacio", "", models.Fecha{}},
		{"na", "n/a", models.Fecha{}},
		{"cero", "0", models.Fecha{}},
		{"texto", "pendiente", models.Fecha{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFecha(tt.in))
		})
	}
}

func TestParseEntero(t *testing.T) {
	n, ok := ParseEntero("30")
	assert.True(t, ok)
	assert.Equal(t, 30, n)

	n, ok = ParseEntero("29,7")
	assert.True(t, ok)
	assert.Equal(t, 29, n)

	_, ok = ParseEntero("")
	assert.False(t, ok)
	assert.Equal(t, 0, enteroOCero("N/A"))
}
