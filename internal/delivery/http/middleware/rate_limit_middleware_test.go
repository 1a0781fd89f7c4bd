package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"habit/config"
	deliverycontext "habit/internal/delivery/context"
	domainerrors "habit/internal/domain/errors"
	mockService "habit/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newRateLimitMiddleware(t *testing.T, enabled bool) *RateLimitMiddleware {
	cfg := newAuthConfig()
	cfg.RateLimit = &config.RateLimitConfig{Enabled: enabled, PerSecond: 1, Burst: 2}

	m := NewRateLimitMiddleware(cfg, NewAuthMiddleware(mockService.NewMockTokenService(t), cfg))
	fixed := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	return m
}

func callWithOperation(m *RateLimitMiddleware, operation, ip string) error {
	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	req.RemoteAddr = ip + ":5123"
	req = req.WithContext(deliverycontext.WithOperation(req.Context(), operation))
	c := echo.New().NewContext(req, httptest.NewRecorder())

	return m.Handle(func(echo.Context) error { return nil })(c)
}

func TestRateLimitMiddleware_ThrottlesPublicOperations(t *testing.T) {
	m := newRateLimitMiddleware(t, true)

	assert.NoError(t, callWithOperation(m, "login", "10.0.0.1"))
	assert.NoError(t, callWithOperation(m, "login", "10.0.0.1"))
	assert.ErrorIs(t, callWithOperation(m, "login", "10.0.0.1"), domainerrors.ErrTooManyRequests)

	// buckets are per address
	assert.NoError(t, callWithOperation(m, "login", "10.0.0.2"))
}

func TestRateLimitMiddleware_SkipsOtherOperations(t *testing.T) {
	m := newRateLimitMiddleware(t, true)

	for range 5 {
		assert.NoError(t, callWithOperation(m, "member", "10.0.0.1"))
		assert.NoError(t, callWithOperation(m, "IntrospectionQuery", "10.0.0.1"))
	}
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	m := newRateLimitMiddleware(t, false)

	for range 5 {
		assert.NoError(t, callWithOperation(m, "login", "10.0.0.1"))
	}
}

func TestRateLimitMiddleware_EvictIdle(t *testing.T) {
	m := newRateLimitMiddleware(t, true)
	assert.NoError(t, callWithOperation(m, "login", "10.0.0.1"))
	assert.Len(t, m.buckets, 1)

	later := time.Date(2024, 3, 1, 0, 10, 0, 0, time.UTC)
	m.now = func() time.Time { return later }
	m.evictIdle()

	assert.Empty(t, m.buckets)
}
