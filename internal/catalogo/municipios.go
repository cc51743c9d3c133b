package catalogo

import "strings"

// Municipios de Nariño.
var Municipios = Lista{
	{"ALBAN", "Albán"},
	{"ALDANA", "Aldana"},
	{"ANCUYA", "Ancuyá"},
	{"ARBOLEDA", "Arboleda"},
	{"BARBACOAS", "Barbacoas"},
	{"BELEN", "Belén"},
	{"BUESACO", "Buesaco"},
	{"COLON", "Colón"},
	{"CONSACA", "Consacá"},
	{"CONTADERO", "Contadero"},
	{"CORDOBA", "Córdoba"},
	{"CUASPUD", "Cuaspúd"},
	{"CUMBAL", "Cumbal"},
	{"CUMBITARA", "Cumbitara"},
	{"CHACHAGUI", "Chachagüí"},
	{"EL_CHARCO", "El Charco"},
	{"EL_PENOL", "El Peñol"},
	{"EL_ROSARIO", "El Rosario"},
	{"EL_TABLON", "El Tablón"},
	{"EL_TAMBO", "El Tambo"},
	{"FRANCISCO_PIZARRO", "Francisco Pizarro"},
	{"FUNES", "Fúnes"},
	{"GUACHUCAL", "Guachucal"},
	{"GUAITARILLA", "Guaitarilla"},
	{"GUALMATN", "Gualmatán"},
	{"ILES", "Iles"},
	{"IMUES", "Imués"},
	{"IPIALES", "Ipiales"},
	{"LA_CRUZ", "La Cruz"},
	{"LA_FLORIDA", "La Florida"},
	{"LA_LLANADA", "La Llanada"},
	{"LA_TOLA", "La Tola"},
	{"LA_UNION", "La Unión"},
	{"LEIVA", "Leiva"},
	{"LINARES", "Linares"},
	{"LOS_ANDES", "Los Andes"},
	{"MAGUI_PAYAN", "Magüí Payán"},
	{"MALLAMA", "Mallama"},
	{"MOSQUERA", "Mosquera"},
	{"NARINO", "Nariño"},
	{"OLAYA_HERRERA", "Olaya Herrera"},
	{"OSPINA", "Ospina"},
	{"PASTO", "Pasto"},
	{"POLICARPA", "Policarpa"},
	{"POTOSI", "Potosí"},
	{"PROVIDENCIA", "Providencia"},
	{"PUERRES", "Puerres"},
	{"PUPIALES", "Pupiales"},
	{"RICAURTE", "Ricaurte"},
	{"ROBERTO_PAYAN", "Roberto Payán"},
	{"SAMANIEGO", "Samaniego"},
	{"SAN_BERNARDO", "San Bernardo"},
	{"SAN_LORENZO", "San Lorenzo"},
	{"SAN_PABLO", "San Pablo"},
	{"SAN_PEDRO_CARTAGO", "San Pedro de Cartago"},
	{"SANDONA", "Sandoná"},
	{"SANTA_BARBARA", "Santa Bárbara"},
	{"SANTACRUZ", "Santacruz"},
	{"SAPUYES", "Sapuyes"},
	{"TAMINANGO", "Taminango"},
	{"TANGUA", "Tangua"},
	{"TUMACO", "Tumaco"},
	{"TUQUERRES", "Túquerres"},
	{"YACUANQUER", "Yacuanquer"},
}

var aliasMunicipio = func() map[string]string {
	m := map[string]string{
		"GUALMATAN":             "GUALMATN",
		"SAN ANDRES DE TUMACO":  "TUMACO",
		"SANTA CRUZ":            "SANTACRUZ",
		"SAN PEDRO":             "SAN_PEDRO_CARTAGO",
		"CARTAGO":               "SAN_PEDRO_CARTAGO",
		"SAN JUAN DE PASTO":     "PASTO",
		"MAGUI":                 "MAGUI_PAYAN",
		"BARBACOAS NARINO":      "BARBACOAS",
		"EL PENOL NARINO":       "EL_PENOL",
		"FRANCISCO PIZARRO SAL": "FRANCISCO_PIZARRO",
	}
	for _, o := range Municipios {
		m[claveMunicipio(o.Codigo)] = o.Codigo
		m[claveMunicipio(o.Etiqueta)] = o.Codigo
	}
	return m
}()

func claveMunicipio(s string) string {
	return Normalizar(strings.ReplaceAll(s, "_", " "))
}

// EsMarcadorVacio reconoce los marcadores de celda sin dato.
func EsMarcadorVacio(s string) bool {
	switch Normalizar(s) {
	case "", "N/A", "NA", "X":
		return true
	}
	return false
}

// CodigoMunicipio traduce el nombre o código de un municipio a su código.
// "N/A" y "X" se guardan vacíos; un nombre fuera de la Lista se conserva en mayúsculas.
func CodigoMunicipio(s string) string {
	if EsMarcadorVacio(s) {
		return ""
	}
	if c, ok := aliasMunicipio[claveMunicipio(s)]; ok {
		return c
	}
	return strings.ToUpper(strings.TrimSpace(s))
}

func EtiquetaMunicipio(codigo string) string { return Municipios.Etiqueta(codigo) }

func MunicipioValido(codigo string) bool { return Municipios.valido(codigo) }
