package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"habit/config"
	deliverycontext "habit/internal/delivery/context"
	"habit/internal/delivery/http/graph"
	"habit/internal/delivery/http/validator"
	"habit/internal/domain/entity"
	domainerrors "habit/internal/domain/errors"
	mockService "habit/internal/mocks/service"
	mockUsecase "habit/internal/mocks/usecase"
	"habit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	members  *mockUsecase.MockMemberUsecase
	sessions *mockUsecase.MockSessionUsecase
	handler  *GraphQLHandler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := mockService.NewMockTokenService(t)
	tokens.EXPECT().RefreshTokenTTL().Return(time.Hour)
	cookie := graph.NewRefreshCookie(&config.Config{
		SecretKey: config.SecretKeyConfig{Cookie: "cookie-secret"},
		Cookie:    &config.CookieConfig{SameSite: "strict"},
	}, tokens)

	f := &handlerFixture{
		members:  mockUsecase.NewMockMemberUsecase(t),
		sessions: mockUsecase.NewMockSessionUsecase(t),
	}
	schema, err := graph.NewSchema(graph.NewResolver(graph.ResolverParams{
		MemberUsecase:   f.members,
		SessionUsecase:  f.sessions,
		ScheduleUsecase: mockUsecase.NewMockScheduleUsecase(t),
		UnitUsecase:     mockUsecase.NewMockUnitUsecase(t),
		LogUsecase:      mockUsecase.NewMockLogUsecase(t),
		Cookie:          cookie,
		Logger:          logger,
	}), logger)
	require.NoError(t, err)
	f.handler = NewGraphQLHandler(schema, logger)

	return f
}

func (f *handlerFixture) serve(t *testing.T, req *http.Request, auth *deliverycontext.AuthResult) (*httptest.ResponseRecorder, error) {
	t.Helper()

	if auth != nil {
		req = req.WithContext(deliverycontext.WithAuthResult(req.Context(), *auth))
	}
	e := echo.New()
	e.Validator = validator.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, f.handler.Serve(c)
}

func postGraphQL(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

type responseBody struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message    string `json:"message"`
		Extensions struct {
			HTTP graph.HTTPExtension `json:"http"`
		} `json:"extensions"`
	} `json:"errors"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) responseBody {
	t.Helper()

	var body responseBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestGraphQLHandler_AuthFailureShortCircuits(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "missing token", err: domainerrors.ErrAccessTokenNotProvided, wantStatus: http.StatusForbidden, wantCode: "ACCESS_TOKEN_NOT_PROVIDED"},
		{name: "expired token", err: domainerrors.ErrExpiredAccessToken, wantStatus: http.StatusUnauthorized, wantCode: "EXPIRED_ACCESS_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)

			rec, err := f.serve(t, postGraphQL(`{"query":"{ member { id } }"}`), &deliverycontext.AuthResult{Err: tt.err})
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			require.Len(t, body.Errors, 1)
			assert.Equal(t, tt.wantStatus, body.Errors[0].Extensions.HTTP.Status)
			assert.Equal(t, tt.wantCode, body.Errors[0].Extensions.HTTP.Code)
		})
	}
}

func TestGraphQLHandler_ExecutesWithIdentity(t *testing.T) {
	f := newHandlerFixture(t)
	identity := &entity.Identity{ID: 1, Username: "owner01"}
	f.members.EXPECT().
		GetCurrentMember(mock.MatchedBy(func(ctx context.Context) bool {
			got := deliverycontext.IdentityFromContext(ctx)

			return got != nil && got.Username == "owner01"
		})).
		Return(&entity.Member{ID: 1, Username: "owner01", Gender: entity.GenderMale}, nil)

	rec, err := f.serve(t, postGraphQL(`{"query":"query Me { member { username gender } }","operationName":"Me"}`),
		&deliverycontext.AuthResult{Identity: identity})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Empty(t, body.Errors)
	assert.JSONEq(t, `{"member":{"username":"owner01","gender":"MALE"}}`, string(body.Data))
}

func TestGraphQLHandler_ResolverErrorKeepsStatusOK(t *testing.T) {
	f := newHandlerFixture(t)
	f.sessions.EXPECT().Login(mock.Anything, usecase.LoginInput{Username: "ghost01", Password: "digest"}).
		Return(nil, domainerrors.ErrLogInFailure)

	rec, err := f.serve(t, postGraphQL(`{"query":"mutation { login(username: \"ghost01\", password: \"digest\") { accessToken } }"}`), nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "LOG_IN_FAILURE", body.Errors[0].Extensions.HTTP.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestGraphQLHandler_LoginSetsCookie(t *testing.T) {
	f := newHandlerFixture(t)
	f.sessions.EXPECT().Login(mock.Anything, mock.Anything).Return(&usecase.LoginOutput{
		Tokens: &entity.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresAt: 1},
	}, nil)

	rec, err := f.serve(t, postGraphQL(`{"query":"mutation { login(username: \"owner01\", password: \"digest\") { accessToken } }"}`), nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "refreshToken", cookies[0].Name)
	assert.True(t, strings.HasPrefix(cookies[0].Value, "s:refresh."))
}

func TestGraphQLHandler_MalformedEnvelope(t *testing.T) {
	f := newHandlerFixture(t)

	_, err := f.serve(t, postGraphQL(`{"operationName":"Me"}`), nil)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
