package catalogo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizar(t *testing.T) {
	assert.Equal(t, "CEDULA DE CIUDADANIA", Normalizar("  Cédula   de ciudadanía "))
	assert.Equal(t, "EL PENOL", Normalizar("El Peñol"))
	assert.Equal(t, "", Normalizar("   "))
}

func TestCodigoIdentificacion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"CÉDULA DE CIUDADANÍA", "CC"},
		{"cedula de ciudadania", "CC"},
		{"Cédula de Extranjería", "CE"},
		{"PASAPORTE", "PA"},
		{"Tarjeta de identidad", "TI"},
		{"TI", "TI"},
		{"", "CC"},
		{"licencia", "CC"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CodigoIdentificacion(tt.in))
		})
	}
}

func TestCodigoContrato(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Prestación de Servicios", PrestacionServicios},
		{"TÉRMINO INDEFINIDO", TerminoIndefinido},
		{"termino fijo", TerminoFijo},
		{"Obra o Labor", ObraLabor},
		{"APRENDIZAJE", Aprendizaje},
		{"OBRA_LABOR", ObraLabor},
		{"", PrestacionServicios},
		{"contrato raro", PrestacionServicios},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CodigoContrato(tt.in))
		})
	}
}

func TestEtiquetaContrato_RoundTrip(t *testing.T) {
	for _, o := range TiposContrato {
		assert.Equal(t, o.Codigo, CodigoContrato(EtiquetaContrato(o.Codigo)))
	}
	assert.Equal(t, "DESCONOCIDO", EtiquetaContrato("DESCONOCIDO"))
}

func TestCodigoMunicipio(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"N/A", ""},
		{"x", ""},
		{"", ""},
		{"Pasto", "PASTO"},
		{"el peñol", "EL_PENOL"},
		{"EL_PENOL", "EL_PENOL"},
		{"Gualmatán", "GUALMATN"},
		{"San Pedro de Cartago", "SAN_PEDRO_CARTAGO"},
		{"Túquerres", "TUQUERRES"},
		{"Bogotá", "BOGOTÁ"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CodigoMunicipio(tt.in))
		})
	}
	assert.Len(t, Municipios, 64)
}

func TestCodigoRiesgo(t *testing.T) {
	assert.Equal(t, "1", CodigoRiesgo("I"))
	assert.Equal(t, "4", CodigoRiesgo("Riesgo IV"))
	assert.Equal(t, "5", CodigoRiesgo("5"))
	assert.Equal(t, "3", CodigoRiesgo("3.0"))
	assert.Equal(t, "", CodigoRiesgo("7"))
	assert.Equal(t, "", CodigoRiesgo(""))
}

func TestCodigoARL(t *testing.T) {
	assert.Equal(t, "SURA", CodigoARL("Sura"))
	assert.Equal(t, "BOLIVAR", CodigoARL("Bolívar"))
	assert.Equal(t, "POSITIVA", CodigoARL("POSITIVA COMPAÑIA DE SEGUROS"))
	assert.Equal(t, "SURA", CodigoARL("ARL Sura"))
	assert.Equal(t, "COLSANITAS", CodigoARL("colsanitas"))
}
