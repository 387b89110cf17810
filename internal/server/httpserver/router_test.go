package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yndnr/gitops-demo/internal/core/domain"
	"github.com/yndnr/gitops-demo/internal/core/service"
	"github.com/yndnr/gitops-demo/internal/server/httpserver/handler"
	"github.com/yndnr/gitops-demo/internal/telemetry/metric"
)

func newTestRouter(t *testing.T, mutate func(*RouterConfig)) (http.Handler, *RouterConfig) {
	t.Helper()
	log, _ := newTestLogger(t)
	reg := metric.NewRegistry()
	svc := service.NewGreetingService(domain.GreetingSettings{ApplicationName: "router-app", Port: "9000"})

	cfg := &RouterConfig{
		Handler:     handler.New(svc, reg, log.Slog()),
		Metrics:     reg,
		Logger:      log,
		EnableAudit: true,
	}
	if mutate != nil {
		mutate(cfg)
	}
	return NewRouter(cfg), cfg
}

func TestRouter_Greeting(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{
		"message":     "Hello from GitOps Demo!",
		"application": "router-app",
		"port":        "9000",
		"status":      "running",
	}, body)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/hello", nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `gitops_demo_http_requests_total{method="GET",route="GET /api/hello",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), `gitops_demo_greetings_served_total{endpoint="api"} 1`)
}

func TestRouter_MetricsDisabled(t *testing.T) {
	r, _ := newTestRouter(t, func(c *RouterConfig) { c.Metrics = nil })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_RateLimitSkipsProbes(t *testing.T) {
	r, _ := newTestRouter(t, func(c *RouterConfig) { c.RateLimit = 1 })

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRouter_NotFoundAndMethod(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/hello", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_Ready(t *testing.T) {
	r, cfg := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	cfg.Handler.SetReady(true)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_TrustProxy(t *testing.T) {
	send := func(r http.Handler, xff string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", xff)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	untrusted, _ := newTestRouter(t, func(c *RouterConfig) { c.RateLimit = 1 })
	assert.Equal(t, http.StatusOK, send(untrusted, "1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, send(untrusted, "2.2.2.2"))

	trusted, _ := newTestRouter(t, func(c *RouterConfig) {
		c.RateLimit = 1
		c.TrustProxy = true
	})
	assert.Equal(t, http.StatusOK, send(trusted, "1.1.1.1"))
	assert.Equal(t, http.StatusOK, send(trusted, "2.2.2.2"))
}
