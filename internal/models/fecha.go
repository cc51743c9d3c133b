package models

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const FormatoFecha = "2006-01-02"

// Fecha es una fecha de calendario opcional. En JSON viaja como "YYYY-MM-DD" o null.
type Fecha struct {
	sql.NullTime
}

// NuevaFecha normaliza t a medianoche UTC.
func NuevaFecha(t time.Time) Fecha {
	y, m, d := t.Date()
	return Fecha{sql.NullTime{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}}
}

// FechaDe construye una fecha válida a partir de año, mes y día.
func FechaDe(anio int, mes time.Month, dia int) Fecha {
	return NuevaFecha(time.Date(anio, mes, dia, 0, 0, 0, 0, time.UTC))
}

// ParseFecha acepta "YYYY-MM-DD"; vacío produce una fecha nula.
func ParseFecha(s string) (Fecha, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Fecha{}, nil
	}
	t, err := time.Parse(FormatoFecha, s)
	if err != nil {
		return Fecha{}, fmt.Errorf("fecha inválida %q", s)
	}
	return NuevaFecha(t), nil
}

func (f Fecha) String() string {
	if !f.Valid {
		return ""
	}
	return f.Time.Format(FormatoFecha)
}

// Ptr devuelve nil si la fecha es nula.
func (f Fecha) Ptr() *time.Time {
	if !f.Valid {
		return nil
	}
	t := f.Time
	return &t
}

// AgregarAnios suma (o resta) años. El 29 de febrero pasa al 1 de marzo en años no bisiestos.
func (f Fecha) AgregarAnios(n int) Fecha {
	if !f.Valid {
		return f
	}
	return NuevaFecha(f.Time.AddDate(n, 0, 0))
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.String())
}

func (f *Fecha) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = Fecha{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	// también se aceptan marcas de tiempo completas
	if len(s) > len(FormatoFecha) {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("fecha inválida %q", s)
		}
		*f = NuevaFecha(t)
		return nil
	}
	parsed, err := ParseFecha(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
