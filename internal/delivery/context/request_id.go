package context

import (
	"context"
	"log/slog"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestScope holds the request id and the logger derived from it.
	KeyRequestScope ContextKey = "request_scope"

	// KeyAuthResult is the key for storing the outcome of access token verification.
	KeyAuthResult ContextKey = "auth_result"

	// KeyOperation is the key for storing the GraphQL operation name.
	KeyOperation ContextKey = "operation"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

type requestScope struct {
	id     string
	logger *slog.Logger
}

// WithRequestScope stores the request id and a logger already tagged with it.
func WithRequestScope(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyRequestScope, requestScope{id: requestID, logger: logger})
}

// RequestID returns the id of the current request, or "".
func RequestID(ctx context.Context) string {
	scope, _ := ctx.Value(KeyRequestScope).(requestScope)

	return scope.id
}

// GetLogger returns the request-scoped logger, or nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	scope, _ := ctx.Value(KeyRequestScope).(requestScope)

	return scope.logger
}

// GetLoggerOrDefault is GetLogger with a fallback for background work and tests.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
