package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashClave_Verificar(t *testing.T) {
	hash, err := HashClave("s3creta")
	require.NoError(t, err)

	assert.NotEqual(t, "s3creta", hash)
	assert.True(t, VerificarClave(hash, "s3creta"))
	assert.False(t, VerificarClave(hash, "otra"))
}

func TestGenerarClaveTemporal(t *testing.T) {
	a, err := GenerarClaveTemporal(4)
	require.NoError(t, err)
	assert.Len(t, a, 12)

	b, err := GenerarClaveTemporal(20)
	require.NoError(t, err)
	assert.Len(t, b, 20)
	assert.NotEqual(t, a, b)
}
