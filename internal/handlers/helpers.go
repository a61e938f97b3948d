package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// writeBusinessError mapeia o código de negócio para o status HTTP: busca
// ausente vira 404, campo faltante ou inválido vira 400.
func writeBusinessError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	if code == "" {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	if strings.HasSuffix(code, "_not_found") {
		httperr.NotFound(c, code, "Registro não encontrado.")
		return
	}

	httperr.BadRequest(c, code, "Dados inválidos: "+code+".")
}
