package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddlewares())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestCORSOriginFromEnv(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://app.sparklean.example")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	corsRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.sparklean.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSOriginDefault(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGIN", "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	corsRouter().ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflightAborts(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/ping", nil)
	corsRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
