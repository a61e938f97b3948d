package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
)

func okRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})
	return r
}

func get(r *gin.Engine, opts ...func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for _, opt := range opts {
		opt(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitExhaustsBurst(t *testing.T) {
	// rps baixo, burst 3: a quarta requisição imediata deve estourar
	r := okRouter(RateLimit(0.001, 3))

	for i := 0; i < 3; i++ {
		w := get(r)
		require.Equal(t, http.StatusOK, w.Code, "requisição %d dentro do burst", i+1)
	}

	w := get(r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate_limited")
}

func TestRateLimitDefaultBurst(t *testing.T) {
	l := newRateLimiter(1, 0)
	assert.Equal(t, 5, l.burst)
}

func TestAdminAuth(t *testing.T) {
	verifier := auth.NewStaticVerifier("adm1", "0000")
	r := okRouter(AdminAuth(verifier))

	w := get(r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing_credentials")
	assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Basic")

	w = get(r, func(req *http.Request) { req.SetBasicAuth("adm1", "1111") })
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_credentials")

	w = get(r, func(req *http.Request) { req.SetBasicAuth("adm1", "0000") })
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAuthExposesActor(t *testing.T) {
	verifier := auth.NewStaticVerifier("adm1", "0000")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AdminAuth(verifier))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"actor": c.GetString(ContextAdminUser)})
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.SetBasicAuth("adm1", "0000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"actor":"adm1"`)
}
