package catalogo

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalizar pasa a mayúsculas, quita tildes y colapsa espacios.
func Normalizar(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	return strings.Join(strings.Fields(quitarTildes(s)), " ")
}

// NFD y descarte de marcas combinantes (Mn)
func quitarTildes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}

// Opcion es un par código/etiqueta de una lista cerrada.
type Opcion struct {
	Codigo   string `json:"codigo"`
	Etiqueta string `json:"etiqueta"`
}

// Lista es una enumeración cerrada en orden de presentación.
type Lista []Opcion

// Etiqueta devuelve la etiqueta del código o el código mismo si no existe.
func (l Lista) Etiqueta(codigo string) string {
	for _, o := range l {
		if o.Codigo == codigo {
			return o.Etiqueta
		}
	}
	return codigo
}

func (l Lista) valido(codigo string) bool {
	for _, o := range l {
		if o.Codigo == codigo {
			return true
		}
	}
	return false
}
