package catalogo

import "strings"

// Administradoras de riesgos laborales.
var ARLs = Lista{
	{"POSITIVA", "Positiva Compañía de Seguros"},
	{"SURA", "ARL Sura"},
	{"BOLIVAR", "Seguros Bolívar"},
	{"EQUIDAD", "La Equidad Seguros"},
	{"LIBERTY", "Liberty Seguros"},
	{"MAPFRE", "Mapfre Seguros"},
	{"COLMENA", "Colmena Seguros"},
	{"AURORA", "Seguros de Vida Aurora"},
	{"OTRA", "Otra"},
}

var Riesgos = Lista{
	{"1", "Riesgo I"},
	{"2", "Riesgo II"},
	{"3", "Riesgo III"},
	{"4", "Riesgo IV"},
	{"5", "Riesgo V"},
}

var romanos = map[string]string{"I": "1", "II": "2", "III": "3", "IV": "4", "V": "5"}

// CodigoARL deja el nombre en mayúsculas sin tildes. Un nombre fuera de la Lista se conserva.
func CodigoARL(s string) string {
	n := Normalizar(s)
	for _, o := range ARLs {
		if n == o.Codigo || strings.HasPrefix(n, o.Codigo+" ") || strings.HasSuffix(n, " "+o.Codigo) {
			return o.Codigo
		}
	}
	return n
}

// CodigoRiesgo acepta "III", "3", "RIESGO 3" o "Riesgo III". Lo irreconocible es "".
func CodigoRiesgo(s string) string {
	n := strings.TrimPrefix(Normalizar(s), "RIESGO ")
	n = strings.TrimPrefix(n, "CLASE ")
	if c, ok := romanos[n]; ok {
		return c
	}
	// "3.0" llega así desde celdas numéricas
	n = strings.TrimSuffix(n, ".0")
	if Riesgos.valido(n) {
		return n
	}
	return ""
}
