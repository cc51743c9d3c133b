package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	l := New("planilla").WithOutput(&buf).Con("lote", "abc")

	l.ErrorFila(errors.New("fecha inválida"), 7, "fila con error")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "planilla", entry["componente"])
	assert.Equal(t, "abc", entry["lote"])
	assert.Equal(t, float64(7), entry["fila"])
	assert.Equal(t, "fecha inválida", entry["error"])
}

func TestSetLevel_FiltersDebug(t *testing.T) {
	defer SetLevel("info")

	var buf bytes.Buffer
	SetLevel("warn")
	l := New("x").WithOutput(&buf)
	l.Info("oculto")
	assert.Empty(t, buf.String())

	l.Warn("visible")
	assert.Contains(t, buf.String(), "visible")

	SetLevel("nivel-raro")
	assert.Equal(t, "info", nivelGlobal.String())
}

func TestPrintf_EscribeComoError(t *testing.T) {
	var buf bytes.Buffer
	New("gorm").WithOutput(&buf).Printf("%s [%d]", "SELECT 1", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "SELECT 1 [3]", entry["message"])
}
