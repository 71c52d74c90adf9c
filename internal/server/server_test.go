package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgserver "github.com/DjordjeVuckovic/arith-hunter/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func testConfig() *Config {
	return &Config{Port: "8080", CorsOrigins: []string{"*"}}
}

func TestServer_HealthCheck(t *testing.T) {
	s := New(testConfig(), pkgserver.NewOkHealthChecker()).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks()

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_HealthCheckUnhealthy(t *testing.T) {
	hc := pkgserver.NewProbeHealthChecker(func(ctx context.Context) error {
		return errors.New("probe failed")
	})
	s := New(testConfig(), hc).SetupHealthChecks("/healthz")

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestServer_ErrorHandlerMapsUnknownRoutes(t *testing.T) {
	s := New(testConfig(), nil).SetupErrorHandler()

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}
