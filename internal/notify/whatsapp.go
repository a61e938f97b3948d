package notify

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/BruksfildServices01/barber-booking/internal/format"
)

// Composição do deep link de WhatsApp mostrado após a confirmação. É um
// formatador puro de string: nada é enviado por aqui.

// CountryCallingCode prefixa todo telefone no link (Brasil).
const CountryCallingCode = "55"

// WhatsAppLink monta a URL wa.me com a mensagem de confirmação preenchida.
// date chega na forma interna YYYY-MM-DD.
func WhatsAppLink(phone, serviceName, date, slot string) string {
	message := fmt.Sprintf(
		"Olá! Confirmo meu agendamento: %s dia %s às %s",
		serviceName,
		format.DisplayDate(date),
		slot,
	)

	return fmt.Sprintf(
		"https://wa.me/%s%s?text=%s",
		CountryCallingCode,
		OnlyDigits(phone),
		url.QueryEscape(message),
	)
}

// OnlyDigits descarta máscara de telefone ("(11) 99999-8888" → "11999998888").
func OnlyDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
