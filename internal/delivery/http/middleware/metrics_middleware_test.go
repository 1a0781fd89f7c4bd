package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware_Handle(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := NewMetricsMiddleware(registry)
	require.NoError(t, err)

	e := echo.New()
	e.Use(m.Handle)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/boom", func(echo.Context) error { return echo.NewHTTPError(http.StatusTeapot, "boom") })

	for _, path := range []string{"/health", "/health", "/boom"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/health", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/boom", "418")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.inFlight))
}

func TestMetricsMiddleware_DuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := NewMetricsMiddleware(registry)
	require.NoError(t, err)

	_, err = NewMetricsMiddleware(registry)
	assert.Error(t, err)
}
