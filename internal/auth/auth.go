package auth

import "crypto/subtle"

// Verifier é o ponto de troca do controle de acesso administrativo: o fluxo
// só conhece esta interface, então um mecanismo real pode substituir o par
// estático sem tocar nos handlers.
type Verifier interface {
	Verify(user, pass string) bool
}

// StaticVerifier compara contra um par literal de credenciais. É um
// placeholder declarado: sem hash, sem token de sessão e sem expiração.
// Cada requisição administrativa reverifica o par.
type StaticVerifier struct {
	user string
	pass string
}

func NewStaticVerifier(user, pass string) *StaticVerifier {
	return &StaticVerifier{user: user, pass: pass}
}

func (v *StaticVerifier) Verify(user, pass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(v.user)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(v.pass)) == 1
	return userOK && passOK
}
