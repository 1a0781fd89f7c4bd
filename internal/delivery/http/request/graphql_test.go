package request

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) echo.Context {
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestParse_Post(t *testing.T) {
	body := `{"query":"mutation login { login(username:\"a\", password:\"b\") { exp } }","operationName":"login","variables":{"x":1}}`
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := newContext(req)

	parsed, err := Parse(c)
	require.NoError(t, err)
	assert.Equal(t, "login", parsed.OperationName)
	assert.Equal(t, float64(1), parsed.Variables["x"])

	again, err := Parse(c)
	require.NoError(t, err)
	assert.Same(t, parsed, again)
	assert.Same(t, parsed, Cached(c))
}

func TestParse_Get(t *testing.T) {
	q := url.Values{}
	q.Set("query", "{ member { id } }")
	q.Set("operationName", "member")
	q.Set("variables", `{"id":3}`)
	c := newContext(httptest.NewRequest(http.MethodGet, "/graphql?"+q.Encode(), nil))

	parsed, err := Parse(c)
	require.NoError(t, err)
	assert.Equal(t, "{ member { id } }", parsed.Query)
	assert.Equal(t, "member", OperationName(c))
	assert.Equal(t, float64(3), parsed.Variables["id"])
}

func TestParse_Errors(t *testing.T) {
	t.Run("malformed body is cached", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query":`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c := newContext(req)

		_, err := Parse(c)
		require.Error(t, err)
		_, again := Parse(c)
		assert.Equal(t, err, again)
		assert.Empty(t, OperationName(c))
		assert.Nil(t, Cached(c))
	})

	t.Run("variables are not an object", func(t *testing.T) {
		c := newContext(httptest.NewRequest(http.MethodGet, "/graphql?query=x&variables=%5B1%5D", nil))

		_, err := Parse(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("unsupported method", func(t *testing.T) {
		c := newContext(httptest.NewRequest(http.MethodPut, "/graphql", nil))

		_, err := Parse(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusMethodNotAllowed, httpErr.Code)
	})
}
