package models

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFecha_JSON(t *testing.T) {
	var v struct {
		Inicio Fecha `json:"inicio"`
		Fin    Fecha `json:"fin"`
		Otro   Fecha `json:"otro"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"inicio":"2024-03-05","fin":null,"otro":"2024-03-05T22:10:00Z"}`), &v))

	assert.Equal(t, FechaDe(2024, time.March, 5), v.Inicio)
	assert.False(t, v.Fin.Valid)
	assert.Equal(t, FechaDe(2024, time.March, 5), v.Otro)

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"inicio":"2024-03-05","fin":null,"otro":"2024-03-05"}`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`{"inicio":"05/03/2024"}`), &v))
}

func TestParseFecha(t *testing.T) {
	f, err := ParseFecha("  ")
	require.NoError(t, err)
	assert.False(t, f.Valid)
	assert.Nil(t, f.Ptr())

	f, err = ParseFecha("2023-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2023-12-31", f.String())
	require.NotNil(t, f.Ptr())

	_, err = ParseFecha("2023-02-30")
	assert.Error(t, err)
}

func TestAgregarAnios(t *testing.T) {
	assert.Equal(t, "1992-05-01", FechaDe(2010, time.May, 1).AgregarAnios(-18).String())
	assert.Equal(t, "2001-03-01", FechaDe(2000, time.February, 29).AgregarAnios(1).String())
	assert.False(t, Fecha{}.AgregarAnios(5).Valid)
}

func TestAnioConsulta(t *testing.T) {
	tests := []struct {
		url    string
		anio   int
		valido bool
	}{
		{"/x", 2025, true},
		{"/x?anio=2023", 2023, true},
		{"/x?anio=23", 0, false},
		{"/x?anio=abc", 0, false},
	}
	for _, tt := range tests {
		anio, ok := AnioConsulta(httptest.NewRequest("GET", tt.url, nil), 2025)
		assert.Equal(t, tt.valido, ok, tt.url)
		assert.Equal(t, tt.anio, anio, tt.url)
	}
}

func TestIDRuta(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest("GET", "/", nil), map[string]string{"id": "42", "cero": "0"})

	id, ok := IDRuta(r, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	_, ok = IDRuta(r, "cero")
	assert.False(t, ok)
	_, ok = IDRuta(r, "falta")
	assert.False(t, ok)
}
