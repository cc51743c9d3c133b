package catalogo

const (
	CedulaCiudadania  = "CC"
	CedulaExtranjeria = "CE"
	Pasaporte         = "PA"
	TarjetaIdentidad  = "TI"
)

var TiposIdentificacion = Lista{
	{CedulaCiudadania, "Cédula de Ciudadanía"},
	{CedulaExtranjeria, "Cédula de Extranjería"},
	{Pasaporte, "Pasaporte"},
	{TarjetaIdentidad, "Tarjeta de Identidad"},
}

// claves ya normalizadas (sin tildes)
var aliasIdentificacion = map[string]string{
	"CEDULA DE CIUDADANIA":  CedulaCiudadania,
	"CEDULA CIUDADANIA":     CedulaCiudadania,
	"CEDULA":                CedulaCiudadania,
	"CC":                    CedulaCiudadania,
	"C.C.":                  CedulaCiudadania,
	"CEDULA DE EXTRANJERIA": CedulaExtranjeria,
	"CEDULA EXTRANJERIA":    CedulaExtranjeria,
	"CE":                    CedulaExtranjeria,
	"C.E.":                  CedulaExtranjeria,
	"PASAPORTE":             Pasaporte,
	"PA":                    Pasaporte,
	"TARJETA DE IDENTIDAD":  TarjetaIdentidad,
	"TI":                    TarjetaIdentidad,
	"T.I.":                  TarjetaIdentidad,
}

// CodigoIdentificacion traduce una etiqueta libre a CC/CE/PA/TI. Lo desconocido es CC.
func CodigoIdentificacion(s string) string {
	if c, ok := aliasIdentificacion[Normalizar(s)]; ok {
		return c
	}
	return CedulaCiudadania
}

func IdentificacionValida(codigo string) bool { return TiposIdentificacion.valido(codigo) }
