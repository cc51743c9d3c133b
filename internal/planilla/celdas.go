package planilla

import (
	"strconv"
	"strings"
	"time"

	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Las celdas llegan como texto crudo: una fecha nativa es su número de serie.

var formatosFecha = []string{
	"2006-1-2",
	"2/1/2006",
	"2-1-2006",
	"2006/1/2",
}

// serial máximo que Excel acepta (31/12/9999)
const serialMaximo = 2958465

var valoresVerdaderos = map[string]bool{
	"SI": true, "SÍ": true, "YES": true, "TRUE": true, "1": true, "X": true, "✓": true,
}

func esNA(s string) bool {
	return strings.EqualFold(s, "N/A")
}

// ParseFecha convierte una celda en fecha. Vacío, "N/A" o texto no reconocido dan fecha nula.
// Un número se toma como serial de Excel; los números guardados como texto se descartan antes de llegar aquí.
func ParseFecha(celda string) models.Fecha {
	s := strings.TrimSpace(celda)
	if s == "" || esNA(s) {
		return models.Fecha{}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial <= 0 || serial > serialMaximo {
			return models.Fecha{}
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return models.Fecha{}
		}
		return models.NuevaFecha(t)
	}

	// "2024-03-01 00:00:00" o "2024-03-01T00:00:00Z"
	if len(s) > 10 && (s[10] == ' ' || s[10] == 'T') {
		s = s[:10]
	}
	for _, layout := range formatosFecha {
		if t, err := time.Parse(layout, s); err == nil {
			return models.NuevaFecha(t)
		}
	}
	return models.Fecha{}
}

// ParseDecimal aplica las reglas de separadores colombianos:
// con "." y "," el punto es de miles y la coma decimal; sólo "," es decimal; sólo "." se deja igual.
func ParseDecimal(celda string) decimal.NullDecimal {
	s := strings.TrimSpace(celda)
	if s == "" || esNA(s) {
		return decimal.NullDecimal{}
	}
	s = strings.TrimSpace(strings.TrimPrefix(s, "$"))
	s = strings.ReplaceAll(s, " ", "")

	switch {
	case strings.Contains(s, ".") && strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ",", ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// ParseEntero pasa por ParseDecimal y trunca.
func ParseEntero(celda string) (int, bool) {
	d := ParseDecimal(celda)
	if !d.Valid {
		return 0, false
	}
	return int(d.Decimal.IntPart()), true
}

// ParseBool es verdadero sólo para SI, SÍ, YES, TRUE, 1, X o ✓ (sin importar mayúsculas).
func ParseBool(celda string) bool {
	return valoresVerdaderos[strings.ToUpper(strings.TrimSpace(celda))]
}

// ParseTexto recorta espacios.
func ParseTexto(celda string) string {
	return strings.TrimSpace(celda)
}

func decimalOCero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

func enteroOCero(celda string) int {
	n, _ := ParseEntero(celda)
	return n
}
