package graph

import (
	"context"

	"habit/internal/domain/entity"
	"habit/internal/usecase"
)

type accessTokenResolver struct {
	tokens *entity.TokenPair
}

func (r *accessTokenResolver) AccessToken() string { return r.tokens.AccessToken }
func (r *accessTokenResolver) Exp() float64        { return float64(r.tokens.ExpiresAt) }

type renewedTokenResolver struct {
	token *entity.RenewedToken
}

func (r *renewedTokenResolver) Username() string    { return r.token.Username }
func (r *renewedTokenResolver) AccessToken() string { return r.token.AccessToken }
func (r *renewedTokenResolver) Exp() float64        { return float64(r.token.ExpiresAt) }

// Login verifies the credentials, stores the refresh token in the cookie and
// returns the access token.
func (r *Resolver) Login(ctx context.Context, args struct {
	Username string
	Password string
}) (*accessTokenResolver, error) {
	output, err := r.sessions.Login(ctx, usecase.LoginInput{Username: args.Username, Password: args.Password})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	r.cookie.Set(ctx, output.Tokens.RefreshToken)

	return &accessTokenResolver{tokens: output.Tokens}, nil
}

// Logout forgets the stored refresh token and expires the cookie.
func (r *Resolver) Logout(ctx context.Context) (bool, error) {
	if err := r.sessions.Logout(ctx); err != nil {
		return false, r.fail(ctx, err)
	}
	r.cookie.Clear(ctx)

	return true, nil
}

// Renew exchanges the refresh cookie for a new access token.
func (r *Resolver) Renew(ctx context.Context, args struct{ Username string }) (*renewedTokenResolver, error) {
	token, err := r.sessions.Renew(ctx, usecase.RenewInput{
		Username:     args.Username,
		RefreshToken: r.cookie.Read(ctx),
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return &renewedTokenResolver{token: token}, nil
}
