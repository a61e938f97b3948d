package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBRL(t *testing.T) {
	cases := map[float64]string{
		0:       "R$ 0,00",
		25:      "R$ 25,00",
		45.5:    "R$ 45,50",
		250:     "R$ 250,00",
		1234.56: "R$ 1.234,56",
		9999.9:  "R$ 9.999,90",
		1000000: "R$ 1.000.000,00",
		0.05:    "R$ 0,05",
	}

	for value, want := range cases {
		assert.Equal(t, want, BRL(value), "value %v", value)
	}
}

func TestBRLNegative(t *testing.T) {
	assert.Equal(t, "-R$ 10,00", BRL(-10))
}

func TestBRLRoundsToCents(t *testing.T) {
	assert.Equal(t, "R$ 0,13", BRL(0.1299))
	assert.Equal(t, "R$ 19,99", BRL(19.994))
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "10/06/2024", DisplayDate("2024-06-10"))
	assert.Equal(t, "01/01/2025", DisplayDate("2025-01-01"))

	// fora do formato interno: devolve como veio
	assert.Equal(t, "2024", DisplayDate("2024"))
	assert.Equal(t, "", DisplayDate(""))
}
