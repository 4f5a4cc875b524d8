package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	v, err := ParseDecimal("1234,5")
	require.NoError(t, err)
	assert.Equal(t, 1234.5, v)

	v, err = ParseDecimal("  42  ")
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	v, err = ParseDecimal("")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v), "empty cell should parse as missing")

	_, err = ParseDecimal("abc")
	assert.Error(t, err)
}

func TestFormatDecimalRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, 1234.5, 0.1, 1e9, 123456.789012345, -3.25} {
		s := FormatDecimal(v)
		back, err := ParseDecimal(s)
		require.NoError(t, err)
		assert.Equal(t, v, back, "value should survive format/parse unchanged")
	}
}

func TestFormatDecimalMissing(t *testing.T) {
	assert.Equal(t, "", FormatDecimal(math.NaN()))
}

func TestCleanHeader(t *testing.T) {
	assert.Equal(t, "GRUPO DE CULTIVO", CleanHeader("GRUPO  DE CULTIVO"))
	assert.Equal(t, "Área Sembrada (ha)", CleanHeader("Área\nSembrada\n(ha)"))
	assert.Equal(t, "AÑO", CleanHeader("  AÑO  "))
}
