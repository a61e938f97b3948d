package validators

import "unicode"

// IsPhoneValid aceita telefones brasileiros com 10 ou 11 dígitos (DDD +
// número), ignorando máscara. A validação é superficial: o telefone só
// alimenta o link de WhatsApp.
func IsPhoneValid(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == ' ' || r == '(' || r == ')' || r == '-' || r == '+':
			// máscara tolerada
		default:
			return false
		}
	}
	return digits >= 10 && digits <= 11
}
