package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
)

const ContextAdminUser = "adminUser"

// AdminAuth protege as rotas administrativas reverificando o par de
// credenciais via Basic auth em toda requisição. Não existe sessão nem
// token: o verificador decide, e só ele.
func AdminAuth(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="admin"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_credentials"})
			return
		}

		if !verifier.Verify(user, pass) {
			metrics.IncAdminLogin("denied")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}

		c.Set(ContextAdminUser, user)
		c.Next()
	}
}
