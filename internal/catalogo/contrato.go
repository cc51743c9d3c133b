package catalogo

const (
	PrestacionServicios = "PRESTACION_SERVICIOS"
	TerminoIndefinido   = "TERMINO_INDEFINIDO"
	TerminoFijo         = "TERMINO_FIJO"
	ObraLabor           = "OBRA_LABOR"
	Aprendizaje         = "APRENDIZAJE"
)

var TiposContrato = Lista{
	{PrestacionServicios, "Prestación de Servicios"},
	{TerminoIndefinido, "Término Indefinido"},
	{TerminoFijo, "Término Fijo"},
	{ObraLabor, "Obra o Labor"},
	{Aprendizaje, "Aprendizaje"},
}

var aliasContrato = map[string]string{
	"PRESTACION DE SERVICIOS": PrestacionServicios,
	"PRESTACION SERVICIOS":    PrestacionServicios,
	"OPS":                     PrestacionServicios,
	"TERMINO INDEFINIDO":      TerminoIndefinido,
	"INDEFINIDO":              TerminoIndefinido,
	"TERMINO FIJO":            TerminoFijo,
	"FIJO":                    TerminoFijo,
	"OBRA O LABOR":            ObraLabor,
	"OBRA LABOR":              ObraLabor,
	"OBRA Y LABOR":            ObraLabor,
	"APRENDIZAJE":             Aprendizaje,
}

// CodigoContrato traduce una etiqueta libre al código del tipo de contrato.
// Lo desconocido o vacío es prestación de servicios.
func CodigoContrato(s string) string {
	n := Normalizar(s)
	if TiposContrato.valido(n) {
		return n
	}
	if c, ok := aliasContrato[n]; ok {
		return c
	}
	return PrestacionServicios
}

// EtiquetaContrato devuelve la etiqueta de presentación; un código desconocido se devuelve tal cual.
func EtiquetaContrato(codigo string) string { return TiposContrato.Etiqueta(codigo) }

func ContratoValido(codigo string) bool { return TiposContrato.valido(codigo) }
