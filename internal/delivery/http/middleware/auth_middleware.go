package middleware

import (
	"net/http"
	"strings"

	"habit/config"
	deliverycontext "habit/internal/delivery/context"
	"habit/internal/delivery/http/request"
	domainerrors "habit/internal/domain/errors"
	"habit/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware verifies the access token of GraphQL requests.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	public   map[string]struct{}
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	public := make(map[string]struct{}, len(cfg.Auth.PublicOperations))
	for _, operation := range cfg.Auth.PublicOperations {
		public[operation] = struct{}{}
	}

	return &AuthMiddleware{tokenSvc: tokenSvc, public: public}
}

// Authenticate records the verification outcome in the request context and
// always calls next. The GraphQL handler decides how to answer a failed
// verification, so this middleware never writes a response itself.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if req.Method == http.MethodOptions {
			return next(c)
		}

		operation := request.OperationName(c)
		ctx := deliverycontext.WithOperation(req.Context(), operation)
		if !m.IsPublic(operation) {
			ctx = deliverycontext.WithAuthResult(ctx, m.verify(req.Header.Get(echo.HeaderAuthorization)))
		}
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// IsPublic reports whether operation may run without an access token.
func (m *AuthMiddleware) IsPublic(operation string) bool {
	_, ok := m.public[operation]

	return ok
}

func (m *AuthMiddleware) verify(header string) deliverycontext.AuthResult {
	token := bearerToken(header)
	if token == "" || token == "null" {
		return deliverycontext.AuthResult{Err: domainerrors.ErrAccessTokenNotProvided}
	}

	identity, err := m.tokenSvc.VerifyAccessToken(token)
	if err != nil {
		return deliverycontext.AuthResult{Err: err}
	}

	return deliverycontext.AuthResult{Identity: identity}
}

// bearerToken returns the credential following the scheme, e.g. "Bearer <token>".
func bearerToken(header string) string {
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return ""
	}

	return fields[1]
}
