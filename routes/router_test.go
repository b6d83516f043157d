package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"debatecoach/controllers"
	"debatecoach/db"
	"debatecoach/internal/logger"
	"debatecoach/services"

	"github.com/gin-gonic/gin"
)

func newRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.Nop()
	return SetupRouter(Deps{
		Log:            log,
		AllowedOrigins: origins,
		Debate: controllers.NewDebateController(log,
			services.NewDebateGenerator(log),
			services.NewTextGenerator(log, nil),
		),
		Status: controllers.NewStatusController(log, services.NewStatusService(db.NewMemoryStore())),
	})
}

func TestRoutesRegistered(t *testing.T) {
	r := newRouter([]string{"*"})

	cases := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/api/", "", http.StatusOK},
		{http.MethodGet, "/api/status", "", http.StatusOK},
		{http.MethodPost, "/api/status", `{"client_name":"x"}`, http.StatusOK},
		{http.MethodPost, "/api/generate-debate", `{"topic":"Four day work week"}`, http.StatusOK},
		{http.MethodPost, "/api/generate-text", `{"prompt":"hi"}`, http.StatusServiceUnavailable},
		{http.MethodPost, "/api/gemini-generate", `{"prompt":"hi"}`, http.StatusServiceUnavailable},
		{http.MethodGet, "/api/missing", "", http.StatusNotFound},
	}
	for _, c := range cases {
		req := httptest.NewRequest(c.method, c.path, strings.NewReader(c.body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != c.want {
			t.Errorf("%s %s: expected %d, got %d", c.method, c.path, c.want, w.Code)
		}
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	r := newRouter([]string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodOptions, "/api/generate-debate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Expected origin to be allowed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected disallowed origin to be rejected, got %d", w.Code)
	}
}

func TestCORSConfigWildcard(t *testing.T) {
	for _, origins := range [][]string{nil, {"*"}, {"http://a.test", "*"}} {
		cfg := corsConfig(origins)
		if cfg.AllowAllOrigins || len(cfg.AllowOrigins) != 0 || cfg.AllowOriginFunc == nil {
			t.Errorf("origins %v: expected origin func config, got %+v", origins, cfg)
		}
	}
}

func TestCORSWildcardEchoesOriginWithCredentials(t *testing.T) {
	r := newRouter([]string{"*"})

	req := httptest.NewRequest(http.MethodOptions, "/api/generate-debate", nil)
	req.Header.Set("Origin", "http://app.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://app.example" {
		t.Errorf("Expected request origin echoed, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Expected credentials allowed, got %q", got)
	}
}
