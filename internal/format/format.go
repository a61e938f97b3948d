package format

import (
	"fmt"
	"math"
	"strings"
)

// Formatos de borda do produto, preservados byte a byte: moeda pt-BR/BRL
// com símbolo prefixado e data de exibição DD/MM/YYYY.

// BRL formata um valor em reais: 1234.5 → "R$ 1.234,50".
func BRL(value float64) string {
	cents := int64(math.Round(math.Abs(value) * 100))
	intPart := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", intPart)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	sign := ""
	if value < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), frac)
}

// DisplayDate inverte a forma interna YYYY-MM-DD para DD/MM/YYYY. Entrada
// fora do formato é devolvida como veio.
func DisplayDate(isoDate string) string {
	parts := strings.Split(isoDate, "-")
	if len(parts) != 3 {
		return isoDate
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}
