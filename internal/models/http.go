package models

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// ResponderJSON escribe v como JSON con el estado indicado.
func ResponderJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// IDRuta lee una variable numérica de la ruta.
func IDRuta(r *http.Request, nombre string) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[nombre], 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// AnioConsulta lee ?anio=; si falta usa el año por defecto.
func AnioConsulta(r *http.Request, porDefecto int) (int, bool) {
	s := r.URL.Query().Get("anio")
	if s == "" {
		return porDefecto, true
	}
	anio, err := strconv.Atoi(s)
	if err != nil || anio < 1900 || anio > 2100 {
		return 0, false
	}
	return anio, true
}

// Hoy devuelve la fecha actual a medianoche UTC.
func Hoy() time.Time {
	return NuevaFecha(time.Now()).Time
}
