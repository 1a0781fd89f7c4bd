// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"habit/internal/domain/entity"
)

// LoginInput defines the credentials submitted at login. Password is the
// client-side digest, hashed again before lookup.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput carries the issued tokens. The refresh token is only ever
// handed to the cookie writer.
type LoginOutput struct {
	Member *entity.Member
	Tokens *entity.TokenPair
}

// RenewInput defines the data required to renew an access token.
type RenewInput struct {
	Username string
	// RefreshToken is the value read from the refresh cookie.
	RefreshToken string
}

// SessionUsecase defines login, logout and access token renewal.
type SessionUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context) error
	Renew(ctx context.Context, input RenewInput) (*entity.RenewedToken, error)
}
