package service

import (
	"time"

	"habit/internal/domain/entity"
)

// TokenService issues and verifies the access/refresh token pair.
type TokenService interface {
	// IssueLoginTokens signs both tokens for identity.
	IssueLoginTokens(identity entity.Identity) (*entity.TokenPair, error)

	// VerifyAccessToken returns the embedded identity, or ErrInvalidAccessToken /
	// ErrExpiredAccessToken.
	VerifyAccessToken(token string) (*entity.Identity, error)

	// VerifyAndRenew checks a refresh token and signs a fresh access token for
	// its identity. Any failure is ErrInvalidRefreshToken.
	VerifyAndRenew(refreshToken string) (*entity.RenewedToken, error)

	// RefreshTokenTTL is the lifetime of refresh tokens, used for cookie max-age.
	RefreshTokenTTL() time.Duration
}
