package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"formsd/internal/config"
	"formsd/internal/forms"
	"formsd/internal/logger"
	"formsd/internal/metrics"
	"formsd/internal/storage"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, origin string) *Server {
	t.Helper()
	logger.Replace(zap.NewNop())

	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg, reg)
	cfg := config.AppConfig{
		Server: config.ServerConfig{Port: "0", FrontendURL: origin, PublicURL: "http://localhost:5173", ShutdownTimeout: time.Second},
		Log:    config.LogConfig{Level: "error"},
	}
	return New(cfg, forms.NewService(storage.NewMemory(), forms.WithObserver(m)), m)
}

func TestCORSWithConfiguredOrigin(t *testing.T) {
	s := newTestServer(t, "https://app.example.com/")

	req := httptest.NewRequest(http.MethodOptions, "/api/forms", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}

func TestCORSAnyOrigin(t *testing.T) {
	s := newTestServer(t, "*")

	req := httptest.NewRequest(http.MethodGet, "/api/forms", nil)
	req.Header.Set(echo.HeaderOrigin, "http://somewhere.test")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://somewhere.test", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestRequestIDAndMetrics(t *testing.T) {
	s := newTestServer(t, "*")

	req := httptest.NewRequest(http.MethodPost, "/api/forms", strings.NewReader(`{"id":"f1","title":"T","fields":[]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "formsd_forms_saved_total 1")
	assert.Contains(t, rec.Body.String(), `route="/api/forms"`)
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newTestServer(t, "*")
	s.addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestGommonLevel(t *testing.T) {
	assert.Equal(t, log.DEBUG, gommonLevel("debug"))
	assert.Equal(t, log.WARN, gommonLevel("WARN"))
	assert.Equal(t, log.ERROR, gommonLevel("error"))
	assert.Equal(t, log.ERROR, gommonLevel(""))
}
