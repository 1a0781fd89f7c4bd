// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"habit/config"
	"habit/internal/domain/entity"
	domainerrors "habit/internal/domain/errors"
	"habit/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	// expiryMargin is subtracted from the expiry reported to clients so they
	// renew before the token is actually rejected.
	expiryMargin = time.Second
)

// Claims is the payload of both token kinds.
type Claims struct {
	Member entity.Identity `json:"member"`
	Type   string          `json:"type"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg, time.Now)
}

func newJWTService(cfg *config.Config, now func() time.Time) (*jwtService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	s := &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     30 * time.Minute,
		refreshTTL:    180 * 24 * time.Hour,
		now:           now,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			s.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			s.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return s, nil
}

// IssueLoginTokens implements service.TokenService.
func (s *jwtService) IssueLoginTokens(identity entity.Identity) (*entity.TokenPair, error) {
	now := s.now()

	accessToken, err := s.sign(identity, tokenTypeAccess, now, s.accessTTL, s.accessSecret)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.sign(identity, tokenTypeRefresh, now, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return nil, err
	}

	return &entity.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    s.clientExpiry(now),
	}, nil
}

// VerifyAccessToken implements service.TokenService.
func (s *jwtService) VerifyAccessToken(token string) (*entity.Identity, error) {
	claims, err := s.parse(token, s.accessSecret, tokenTypeAccess)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrExpiredAccessToken.WithDetails(err.Error())
		}

		return nil, domainerrors.ErrInvalidAccessToken.WithDetails(err.Error())
	}

	identity := claims.Member

	return &identity, nil
}

// VerifyAndRenew implements service.TokenService.
func (s *jwtService) VerifyAndRenew(refreshToken string) (*entity.RenewedToken, error) {
	claims, err := s.parse(refreshToken, s.refreshSecret, tokenTypeRefresh)
	if err != nil {
		return nil, domainerrors.ErrInvalidRefreshToken.WithDetails(err.Error())
	}

	now := s.now()
	accessToken, err := s.sign(claims.Member, tokenTypeAccess, now, s.accessTTL, s.accessSecret)
	if err != nil {
		return nil, err
	}

	return &entity.RenewedToken{
		AccessToken: accessToken,
		Username:    claims.Member.Username,
		ExpiresAt:   s.clientExpiry(now),
	}, nil
}

// RefreshTokenTTL implements service.TokenService.
func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) clientExpiry(issuedAt time.Time) int64 {
	return issuedAt.Add(s.accessTTL - expiryMargin).UnixMilli()
}

func (s *jwtService) sign(identity entity.Identity, tokenType string, now time.Time, ttl time.Duration, secret []byte) (string, error) {
	claims := Claims{
		Member: identity,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrapf(err, "sign %s token", tokenType)
	}

	return signed, nil
}

func (s *jwtService) parse(token string, secret []byte, tokenType string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	if claims.Type != tokenType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	return claims, nil
}
