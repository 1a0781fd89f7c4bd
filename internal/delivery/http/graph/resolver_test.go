package graph

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"habit/config"
	"habit/internal/domain/entity"
	domainerrors "habit/internal/domain/errors"
	"habit/internal/domain/validation"
	mockService "habit/internal/mocks/service"
	mockUsecase "habit/internal/mocks/usecase"
	"habit/internal/usecase"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type graphFixture struct {
	members   *mockUsecase.MockMemberUsecase
	sessions  *mockUsecase.MockSessionUsecase
	schedules *mockUsecase.MockScheduleUsecase
	units     *mockUsecase.MockUnitUsecase
	logs      *mockUsecase.MockLogUsecase
	cookie    *RefreshCookie
	schema    *graphql.Schema
}

func newGraphFixture(t *testing.T) *graphFixture {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Cookie: "cookie-secret"},
		Cookie:    &config.CookieConfig{Domain: "localhost", Secure: true, SameSite: "strict"},
	}
	tokens := mockService.NewMockTokenService(t)
	tokens.EXPECT().RefreshTokenTTL().Return(time.Hour)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &graphFixture{
		members:   mockUsecase.NewMockMemberUsecase(t),
		sessions:  mockUsecase.NewMockSessionUsecase(t),
		schedules: mockUsecase.NewMockScheduleUsecase(t),
		units:     mockUsecase.NewMockUnitUsecase(t),
		logs:      mockUsecase.NewMockLogUsecase(t),
		cookie:    NewRefreshCookie(cfg, tokens),
	}

	schema, err := NewSchema(NewResolver(ResolverParams{
		MemberUsecase:   f.members,
		SessionUsecase:  f.sessions,
		ScheduleUsecase: f.schedules,
		UnitUsecase:     f.units,
		LogUsecase:      f.logs,
		Cookie:          f.cookie,
		Logger:          logger,
	}), logger)
	require.NoError(t, err)
	f.schema = schema

	return f
}

func (f *graphFixture) exec(req *http.Request, res http.ResponseWriter, query string, variables map[string]any) *graphql.Response {
	ctx := WithHTTP(req.Context(), req, res)

	return f.schema.Exec(ctx, query, "", variables)
}

func (f *graphFixture) run(t *testing.T, query string, variables map[string]any) (*graphql.Response, *httptest.ResponseRecorder) {
	t.Helper()

	rec := httptest.NewRecorder()
	resp := f.exec(httptest.NewRequest(http.MethodPost, "/graphql", nil), rec, query, variables)

	return resp, rec
}

func httpExtension(t *testing.T, resp *graphql.Response) HTTPExtension {
	t.Helper()

	require.Len(t, resp.Errors, 1)
	ext, ok := resp.Errors[0].Extensions["http"].(HTTPExtension)
	require.True(t, ok, "unexpected extensions %#v", resp.Errors[0].Extensions)

	return ext
}

func TestLogin_SetsSignedRefreshCookie(t *testing.T) {
	f := newGraphFixture(t)
	f.sessions.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Username: "owner01", Password: "digest"}).
		Return(&usecase.LoginOutput{
			Member: &entity.Member{ID: 1, Username: "owner01"},
			Tokens: &entity.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresAt: 1700000000000},
		}, nil)

	resp, rec := f.run(t, `mutation { login(username: "owner01", password: "digest") { accessToken exp } }`, nil)

	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"login":{"accessToken":"access","exp":1700000000000}}`, string(resp.Data))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, refreshCookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.NotContains(t, cookie.Value, "access")

	next := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	next.AddCookie(&http.Cookie{Name: refreshCookieName, Value: cookie.Value})
	assert.Equal(t, "refresh", f.cookie.Read(WithHTTP(context.Background(), next, httptest.NewRecorder())))
}

func TestLogin_FailureReportsStatus(t *testing.T) {
	f := newGraphFixture(t)
	f.sessions.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrLogInFailure)

	resp, rec := f.run(t, `mutation { login(username: "owner01", password: "wrong") { accessToken } }`, nil)

	ext := httpExtension(t, resp)
	assert.Equal(t, http.StatusNotFound, ext.Status)
	assert.Equal(t, "LOG_IN_FAILURE", ext.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestRenew_ReadsVerifiedCookie(t *testing.T) {
	tests := []struct {
		name      string
		cookie    func(rc *RefreshCookie) string
		wantToken string
	}{
		{name: "signed cookie", cookie: func(rc *RefreshCookie) string { return rc.sign("refresh") }, wantToken: "refresh"},
		{name: "tampered cookie", cookie: func(rc *RefreshCookie) string { return rc.sign("refresh") + "x" }, wantToken: ""},
		{name: "unsigned cookie", cookie: func(*RefreshCookie) string { return "refresh" }, wantToken: ""},
		{
			name:      "cookie-signature value",
			cookie:    func(*RefreshCookie) string { return "s:refresh.iV1Ru7RkCGspVRR1o/W4DOgLmySOyorFl4BI9ewKM2g" },
			wantToken: "refresh",
		},
		{
			name:      "url-safe signature",
			cookie:    func(*RefreshCookie) string { return "s:refresh.iV1Ru7RkCGspVRR1o_W4DOgLmySOyorFl4BI9ewKM2g" },
			wantToken: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGraphFixture(t)
			f.sessions.EXPECT().
				Renew(mock.Anything, usecase.RenewInput{Username: "owner01", RefreshToken: tt.wantToken}).
				Return(&entity.RenewedToken{Username: "owner01", AccessToken: "renewed", ExpiresAt: 42}, nil)

			req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
			req.AddCookie(&http.Cookie{Name: refreshCookieName, Value: tt.cookie(f.cookie)})
			resp := f.exec(req, httptest.NewRecorder(), `mutation { renew(username: "owner01") { username accessToken exp } }`, nil)

			require.Empty(t, resp.Errors)
			assert.JSONEq(t, `{"renew":{"username":"owner01","accessToken":"renewed","exp":42}}`, string(resp.Data))
		})
	}
}

func TestLogout_ExpiresCookie(t *testing.T) {
	f := newGraphFixture(t)
	f.sessions.EXPECT().Logout(mock.Anything).Return(nil)

	resp, rec := f.run(t, `mutation { logout }`, nil)

	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"logout":true}`, string(resp.Data))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestCreateMember_ValidationFailure(t *testing.T) {
	f := newGraphFixture(t)
	failures := []validation.Failure{
		{Name: "username", Code: validation.CodeDuplicate, Message: "이미 존재하는 아이디입니다."},
		{Name: "gender", Code: validation.CodeWrongInput, Message: "성별은(는) MALE,FEMALE,OTHER 중 하나여야 합니다."},
	}
	f.members.EXPECT().
		CreateMember(mock.Anything, usecase.CreateMemberInput{
			Username: "taken01",
			Password: "digest",
			FullName: "홍길동",
			Gender:   "NONE",
		}).
		Return(nil, domainerrors.NewValidationError("createMember", failures))

	resp, _ := f.run(t, `mutation($username: String!) {
		createMember(username: $username, password: "digest", fullName: "홍길동", gender: "NONE") { id }
	}`, map[string]any{"username": "taken01"})

	ext := httpExtension(t, resp)
	assert.Equal(t, "[createMember] Validation failed", resp.Errors[0].Message)
	assert.Equal(t, http.StatusBadRequest, ext.Status)
	assert.Equal(t, "VALIDATION_FAILURE", ext.Code)
	require.Len(t, ext.ValidationResult, 2)
	assert.False(t, ext.ValidationResult[0].OK)
	assert.Equal(t, failures[0], ext.ValidationResult[0].Error)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"validationResult":[{"ok":false,"error":{"name":"username"`)
}

func TestMember_InternalErrorIsHidden(t *testing.T) {
	f := newGraphFixture(t)
	f.members.EXPECT().GetCurrentMember(mock.Anything).Return(nil, errors.New("connection refused"))

	resp, _ := f.run(t, `{ member { id } }`, nil)

	ext := httpExtension(t, resp)
	assert.Equal(t, http.StatusInternalServerError, ext.Status)
	assert.Equal(t, "INTERNAL_ERROR", ext.Code)
	assert.NotContains(t, resp.Errors[0].Message, "connection refused")
}

func TestMember_Fields(t *testing.T) {
	f := newGraphFixture(t)
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	f.members.EXPECT().GetCurrentMember(mock.Anything).Return(&entity.Member{
		ID:        7,
		Username:  "owner01",
		Password:  "hash",
		FullName:  "홍길동",
		Gender:    entity.GenderOther,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}, nil)

	resp, _ := f.run(t, `{ member { id username fullName gender dateOfBirth createdAt } }`, nil)

	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"member":{
		"id":7,"username":"owner01","fullName":"홍길동","gender":"OTHER",
		"dateOfBirth":null,"createdAt":"2024-03-01T09:00:00Z"
	}}`, string(resp.Data))
}

func TestAllSchedulesByMember_Tree(t *testing.T) {
	f := newGraphFixture(t)
	kg := &entity.Unit{ID: 3, Name: "kg"}
	child := &entity.Schedule{
		ID:    2,
		Name:  "#squat",
		Depth: 2,
		Logs:  []*entity.Log{{ID: 9, Value: 80, UnitID: kg.ID, Unit: kg}, {ID: 10, Value: 1, UnitID: 4}},
	}
	root := &entity.Schedule{ID: 1, Name: "#gym", Depth: 1, Units: []*entity.Unit{kg}, Children: []*entity.Schedule{child}}
	f.schedules.EXPECT().ListRootSchedules(mock.Anything, "owner01", "2024-03-01").Return([]*entity.Schedule{root}, nil)

	resp, _ := f.run(t, `{
		allSchedulesByMember(createdBy: "owner01", createdAt: "2024-03-01") {
			id name depth units { name }
			scheduleData { id depth logData { id value unit { id name } } }
		}
	}`, nil)

	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"allSchedulesByMember":[{
		"id":1,"name":"#gym","depth":1,"units":[{"name":"kg"}],
		"scheduleData":[{"id":2,"depth":2,"logData":[
			{"id":9,"value":80,"unit":{"id":3,"name":"kg"}},
			{"id":10,"value":1,"unit":{"id":4,"name":""}}
		]}]
	}]}`, string(resp.Data))
}

func TestAllSchedulesByMember_EmptyList(t *testing.T) {
	f := newGraphFixture(t)
	f.schedules.EXPECT().ListRootSchedules(mock.Anything, "owner01", "2024-03-01").Return(nil, nil)

	resp, _ := f.run(t, `{ allSchedulesByMember(createdBy: "owner01", createdAt: "2024-03-01") { id } }`, nil)

	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"allSchedulesByMember":[]}`, string(resp.Data))
}

func TestUpdateSchedule_UnitsArgument(t *testing.T) {
	t.Run("omitted units keep the set", func(t *testing.T) {
		f := newGraphFixture(t)
		f.schedules.EXPECT().
			UpdateSchedule(mock.Anything, mock.MatchedBy(func(in usecase.UpdateScheduleInput) bool {
				return in.ID == 5 && in.Name != nil && *in.Name == "#run" && in.UnitIDs == nil
			})).
			Return(&entity.Schedule{ID: 5, Name: "#run", Depth: 1}, nil)

		resp, _ := f.run(t, `mutation { updateSchedule(id: 5, name: "#run") { name } }`, nil)
		require.Empty(t, resp.Errors)
	})

	t.Run("empty units clear the set", func(t *testing.T) {
		f := newGraphFixture(t)
		f.schedules.EXPECT().
			UpdateSchedule(mock.Anything, mock.MatchedBy(func(in usecase.UpdateScheduleInput) bool {
				return in.UnitIDs != nil && len(*in.UnitIDs) == 0
			})).
			Return(&entity.Schedule{ID: 5, Name: "#run", Depth: 1}, nil)

		resp, _ := f.run(t, `mutation { updateSchedule(id: 5, units: []) { id } }`, nil)
		require.Empty(t, resp.Errors)
	})
}

func TestCreateSchedule_PassesParentAndUnits(t *testing.T) {
	f := newGraphFixture(t)
	f.schedules.EXPECT().
		CreateSchedule(mock.Anything, usecase.CreateScheduleInput{Name: "#sub", UnitIDs: []int64{3, 4}, ParentID: int64Ptr(int32Ptr(1))}).
		Return(&entity.Schedule{ID: 2, Name: "#sub", Depth: 2}, nil)

	resp, _ := f.run(t, `mutation { createSchedule(name: "#sub", units: [3, 4], parent: 1) { id depth } }`, nil)

	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"createSchedule":{"id":2,"depth":2}}`, string(resp.Data))
}

func TestDeleteLog_Forbidden(t *testing.T) {
	f := newGraphFixture(t)
	f.logs.EXPECT().DeleteLog(mock.Anything, int64(9)).Return(domainerrors.ErrForbidden.WrapMessage("log 9"))

	resp, _ := f.run(t, `mutation { deleteLog(id: 9) }`, nil)

	ext := httpExtension(t, resp)
	assert.Equal(t, http.StatusForbidden, ext.Status)
	assert.Equal(t, "FORBIDDEN", ext.Code)
	assert.Equal(t, resp.Errors[0].Message, ext.Message)
}

func TestUnit_MissingReturnsNull(t *testing.T) {
	f := newGraphFixture(t)
	f.units.EXPECT().FindUnit(mock.Anything, (*int64)(nil), mock.MatchedBy(func(name *string) bool {
		return name != nil && *name == "kg"
	})).Return(nil, nil)

	resp, _ := f.run(t, `{ unit(name: "kg") { id } }`, nil)

	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"unit":null}`, string(resp.Data))
}

func int32Ptr(v int32) *int32 { return &v }
