package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"habit/config"
	deliverycontext "habit/internal/delivery/context"
	"habit/internal/delivery/http/request"
	domainerrors "habit/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoggerMiddleware logs every GraphQL operation with its caller.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging. Preflight and introspection requests are skipped.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		if c.Request().Method != http.MethodOptions {
			m.logOperation(c, start, err)
		}

		return err
	}
}

// logOperation reads the context after next returned, when the auth
// middleware has stored the operation and the caller identity.
func (m *LoggerMiddleware) logOperation(c echo.Context, start time.Time, err error) {
	req := c.Request()
	ctx := req.Context()

	operation := deliverycontext.GetOperation(ctx)
	if operation == request.IntrospectionOperation {
		return
	}

	latency := time.Since(start)
	status := responseStatus(c, err)
	fields := []slog.Attr{
		slog.String("operation", operation),
		slog.String("method", req.Method),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("time", start.Format(time.RFC3339)),
	}

	if identity := deliverycontext.IdentityFromContext(ctx); identity != nil {
		fields = append(fields, slog.String("username", identity.Username))
	}

	// Variables may carry passwords; they are only logged in debug mode
	if envelope := request.Cached(c); envelope != nil && m.debug {
		fields = append(fields,
			slog.Any("variables", envelope.Variables),
			slog.String("query", envelope.Query),
		)
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		logLevel = slog.LevelError
	case status >= http.StatusBadRequest:
		logLevel = slog.LevelWarn
	}

	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, logLevel, "GraphQL operation", fields...)
}

// responseStatus is the status the error handler will write when err has not
// been rendered yet.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
