package auth

import (
	"strings"
	"testing"
	"time"

	"habit/config"
	"habit/internal/domain/entity"
	domainerrors "habit/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestJWTService(t *testing.T, clock *fakeClock) *jwtService {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
	}

	svc, err := newJWTService(cfg, clock.Now)
	require.NoError(t, err)

	return svc
}

var testIdentity = entity.Identity{ID: 7, Username: "tester01"}

func TestJWTService_IssueLoginTokens(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock)

	pair, err := svc.IssueLoginTokens(testIdentity)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	wantExpiry := clock.now.Add(30*time.Minute - time.Second).UnixMilli()
	assert.Equal(t, wantExpiry, pair.ExpiresAt)

	identity, err := svc.VerifyAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, *identity)
}

func TestJWTService_AccessTokenExpiry(t *testing.T) {
	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: issuedAt}
	svc := newTestJWTService(t, clock)

	pair, err := svc.IssueLoginTokens(testIdentity)
	require.NoError(t, err)

	clock.now = issuedAt.Add(29 * time.Minute)
	identity, err := svc.VerifyAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, testIdentity.Username, identity.Username)

	clock.now = issuedAt.Add(31 * time.Minute)
	_, err = svc.VerifyAccessToken(pair.AccessToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrExpiredAccessToken)
}

func TestJWTService_VerifyAccessToken_Invalid(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock)

	pair, err := svc.IssueLoginTokens(testIdentity)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "tampered signature", token: tamper(pair.AccessToken)},
		{name: "refresh token used as access token", token: pair.RefreshToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyAccessToken(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidAccessToken)
		})
	}
}

func TestJWTService_VerifyAccessToken_TamperedAndExpiredIsInvalid(t *testing.T) {
	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: issuedAt}
	svc := newTestJWTService(t, clock)

	pair, err := svc.IssueLoginTokens(testIdentity)
	require.NoError(t, err)

	clock.now = issuedAt.Add(time.Hour)
	_, err = svc.VerifyAccessToken(tamper(pair.AccessToken))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAccessToken)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidAccessToken.Message(), err.Error())
	assert.NotEmpty(t, appErr.Details())
}

func TestJWTService_VerifyAccessToken_RejectsOtherAlgorithms(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock)

	claims := Claims{
		Member: testIdentity,
		Type:   tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Minute)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(unsigned)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAccessToken)
}

func TestJWTService_VerifyAndRenew(t *testing.T) {
	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: issuedAt}
	svc := newTestJWTService(t, clock)

	pair, err := svc.IssueLoginTokens(testIdentity)
	require.NoError(t, err)

	clock.now = issuedAt.Add(24 * time.Hour)
	renewed, err := svc.VerifyAndRenew(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, testIdentity.Username, renewed.Username)
	assert.Equal(t, clock.now.Add(30*time.Minute-time.Second).UnixMilli(), renewed.ExpiresAt)

	identity, err := svc.VerifyAccessToken(renewed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, *identity)
}

func TestJWTService_VerifyAndRenew_Failures(t *testing.T) {
	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: issuedAt}
	svc := newTestJWTService(t, clock)

	pair, err := svc.IssueLoginTokens(testIdentity)
	require.NoError(t, err)

	_, err = svc.VerifyAndRenew(tamper(pair.RefreshToken))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)

	_, err = svc.VerifyAndRenew(pair.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)

	clock.now = issuedAt.Add(181 * 24 * time.Hour)
	_, err = svc.VerifyAndRenew(pair.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_UsesConfiguredTTLs(t *testing.T) {
	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "a", Refresh: "r"},
		Auth:      &config.AuthConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour},
	}
	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}

	svc, err := newJWTService(cfg, clock.Now)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.RefreshTokenTTL())

	pair, err := svc.IssueLoginTokens(testIdentity)
	require.NoError(t, err)
	assert.Equal(t, clock.now.Add(59*time.Second).UnixMilli(), pair.ExpiresAt)
}

// tamper replaces the first signature character.
func tamper(token string) string {
	i := strings.LastIndex(token, ".") + 1
	replacement := "A"
	if token[i] == 'A' {
		replacement = "B"
	}

	return token[:i] + replacement + token[i+1:]
}
