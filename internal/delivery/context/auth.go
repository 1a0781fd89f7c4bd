package context

import (
	"context"

	"habit/internal/domain/entity"
)

// AuthResult records what the auth middleware concluded about the caller.
// Exactly one of Identity and Err is set once verification ran. Public
// operations carry a zero AuthResult.
type AuthResult struct {
	Identity *entity.Identity
	Err      error
}

// WithAuthResult returns a new context carrying the auth outcome.
func WithAuthResult(ctx context.Context, result AuthResult) context.Context {
	return context.WithValue(ctx, KeyAuthResult, result)
}

// GetAuthResult extracts the auth outcome. ok is false when the middleware never ran.
func GetAuthResult(ctx context.Context) (AuthResult, bool) {
	result, ok := ctx.Value(KeyAuthResult).(AuthResult)

	return result, ok
}

// IdentityFromContext returns the verified caller identity, or nil.
func IdentityFromContext(ctx context.Context) *entity.Identity {
	result, ok := GetAuthResult(ctx)
	if !ok || result.Err != nil {
		return nil
	}

	return result.Identity
}

// WithIdentity is a shorthand for a successful AuthResult.
func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return WithAuthResult(ctx, AuthResult{Identity: identity})
}

// WithOperation returns a new context carrying the GraphQL operation name.
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, KeyOperation, operation)
}

// GetOperation extracts the GraphQL operation name, or "".
func GetOperation(ctx context.Context) string {
	operation, _ := ctx.Value(KeyOperation).(string)

	return operation
}
