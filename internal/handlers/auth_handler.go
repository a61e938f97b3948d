package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
)

type AuthHandler struct {
	verifier auth.Verifier
}

func NewAuthHandler(verifier auth.Verifier) *AuthHandler {
	return &AuthHandler{verifier: verifier}
}

// --------- Requests ---------

type LoginRequest struct {
	User string `json:"user" binding:"required"`
	Pass string `json:"pass" binding:"required"`
}

// --------- Handlers ---------

// Login só confirma o par de credenciais para o painel abrir; não emite
// token nem cria sessão. Toda rota administrativa reverifica via Basic auth.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !h.verifier.Verify(req.User, req.Pass) {
		metrics.IncAdminLogin("denied")
		httperr.Unauthorized(c, "invalid_credentials", "Acesso Negado. Verifique suas credenciais.")
		return
	}

	metrics.IncAdminLogin("granted")
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
