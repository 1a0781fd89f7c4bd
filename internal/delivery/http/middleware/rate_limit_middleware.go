package middleware

import (
	"context"
	"sync"
	"time"

	"habit/config"
	deliverycontext "habit/internal/delivery/context"
	"habit/internal/delivery/http/request"
	domainerrors "habit/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL       = 5 * time.Minute
	limiterSweepInterval = time.Minute
)

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware throttles public operations per client IP. Those
// operations run without a token, so they are the ones open to guessing.
type RateLimitMiddleware struct {
	enabled   bool
	perSecond rate.Limit
	burst     int
	isPublic  func(operation string) bool
	now       func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(cfg *config.Config, auth *AuthMiddleware) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		enabled:   cfg.RateLimit.Enabled,
		perSecond: rate.Limit(cfg.RateLimit.PerSecond),
		burst:     cfg.RateLimit.Burst,
		isPublic:  auth.IsPublic,
		now:       time.Now,
		buckets:   make(map[string]*bucket),
	}
}

// Handle must run after AuthMiddleware.Authenticate, which stores the operation name.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		operation := deliverycontext.GetOperation(c.Request().Context())
		if !m.isPublic(operation) || operation == request.IntrospectionOperation {
			return next(c)
		}

		if !m.allow(c.RealIP()) {
			return domainerrors.ErrTooManyRequests.WrapMessage("[" + operation + "] too many requests from this address")
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) allow(ip string) bool {
	if ip == "" {
		ip = "unknown"
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.buckets[ip]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(m.perSecond, m.burst)}
		m.buckets[ip] = b
	}
	b.lastSeen = m.now()

	return b.limiter.AllowN(b.lastSeen, 1)
}

// Sweep drops buckets idle for longer than the TTL until ctx is done.
func (m *RateLimitMiddleware) Sweep(ctx context.Context) {
	ticker := time.NewTicker(limiterSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.evictIdle()
		}
	}
}

func (m *RateLimitMiddleware) evictIdle() {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for ip, b := range m.buckets {
		if now.Sub(b.lastSeen) > limiterIdleTTL {
			delete(m.buckets, ip)
		}
	}
}
