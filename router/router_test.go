package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"moneytracker/config"
	"moneytracker/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	cfg := &config.Config{Server: config.ServerConfig{Mode: gin.TestMode}}
	middleware.InitAuth(cfg)
	return SetupRouter(cfg)
}

func TestHealth(t *testing.T) {
	r := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	r := newTestRouter()

	routes := [][2]string{
		{"GET", "/api/auth/user"},
		{"GET", "/api/dashboard"},
		{"GET", "/api/transactions"},
		{"GET", "/api/transactions/export"},
		{"POST", "/api/savings-goals"},
		{"POST", "/api/savings-goals/x/add"},
		{"GET", "/api/bills/upcoming"},
		{"POST", "/api/bills/upcoming/notify"},
		{"POST", "/api/bills/x/pay"},
	}
	for _, route := range routes {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(route[0], route[1], nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, route[1])
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"), route[1])
	}
}

func TestCORSMiddleware(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest("OPTIONS", "/api/dashboard", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 204, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestSwaggerDoc(t *testing.T) {
	r := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/swagger/doc.json", nil))

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "/api/bills/{id}/pay")
}
