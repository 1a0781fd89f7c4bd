package impl

import (
	"context"
	"log/slog"

	deliverycontext "habit/internal/delivery/context"
	"habit/internal/domain/entity"
	domainerrors "habit/internal/domain/errors"
	"habit/internal/domain/repository"
	"habit/internal/domain/service"
	"habit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager    repository.TransactionManager
	memberRepo   repository.MemberRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	MemberRepo   repository.MemberRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:    params.TxManager,
		memberRepo:   params.MemberRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials, issues a token pair and stores the refresh
// token. The caller sets the refresh cookie only after this returns.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	var output *usecase.LoginOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		memberRepo := repoFactory.NewMemberRepository()

		// 1. Find the member by username and derived hash
		member, err := memberRepo.FindByCredentials(ctx, input.Username, srv.hasher.Hash(input.Username, input.Password))
		if err != nil {
			if errors.Is(err, repository.ErrMemberNotFound) {
				return domainerrors.ErrLogInFailure.WrapMessage("[login] member matching provided information does not exist")
			}

			return errors.Wrap(err, "failed to find member")
		}

		// 2. Issue tokens
		tokens, err := srv.tokenService.IssueLoginTokens(member.Identity())
		if err != nil {
			return errors.Wrap(err, "failed to issue tokens")
		}

		// 3. Persist the refresh token so renewals can be matched against it
		if err := memberRepo.UpdateRefreshToken(ctx, member.ID, &tokens.RefreshToken); err != nil {
			return errors.Wrap(err, "failed to store refresh token")
		}

		member.RefreshToken = tokens.RefreshToken
		output = &usecase.LoginOutput{Member: member, Tokens: tokens}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Member logged in", slog.Int64("member_id", output.Member.ID))

	return output, nil
}

// Logout clears the caller's stored refresh token.
func (srv *sessionService) Logout(ctx context.Context) error {
	identity, err := requireIdentity(ctx, deliverycontext.IdentityFromContext)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewMemberRepository().UpdateRefreshToken(ctx, identity.ID, nil); err != nil {
			if errors.Is(err, repository.ErrMemberNotFound) {
				return domainerrors.ErrMemberNotFound.WrapMessage("[logout] member does not exist")
			}

			return errors.Wrap(err, "failed to clear refresh token")
		}

		return nil
	})
	if err != nil {
		return err
	}
	srv.log(ctx).Info("Member logged out", slog.Int64("member_id", identity.ID))

	return nil
}

// Renew exchanges the refresh cookie for a new access token. The cookie value
// must equal the token stored at the last login.
func (srv *sessionService) Renew(ctx context.Context, input usecase.RenewInput) (*entity.RenewedToken, error) {
	member, err := srv.memberRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domainerrors.ErrMemberNotFound.WrapMessage("[renew] member with provided username does not exist")
		}

		return nil, errors.Wrap(err, "failed to find member")
	}

	if input.RefreshToken == "" || member.RefreshToken == "" || input.RefreshToken != member.RefreshToken {
		return nil, domainerrors.ErrUnauthorizedRefreshToken.WrapMessage("[renew] this token is not authorized for token renewal")
	}

	renewed, err := srv.tokenService.VerifyAndRenew(input.RefreshToken)
	if err != nil {
		return nil, err
	}

	return renewed, nil
}
