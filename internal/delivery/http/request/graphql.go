// Package request holds the decoded GraphQL request envelope shared by the
// middlewares and the GraphQL handler.
package request

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	keyGraphQLRequest = "graphql_request"
	keyGraphQLError   = "graphql_request_error"

	// IntrospectionOperation is the operation name tools send for schema introspection.
	IntrospectionOperation = "IntrospectionQuery"
)

// GraphQL is the standard GraphQL-over-HTTP envelope.
type GraphQL struct {
	Query         string         `json:"query" query:"query" validate:"required"`
	OperationName string         `json:"operationName" query:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// Parse decodes the envelope from the body (POST) or the query string (GET).
// The body can only be read once, so the outcome is cached on the echo context
// and later calls return the same result.
func Parse(c echo.Context) (*GraphQL, error) {
	if cached, ok := c.Get(keyGraphQLRequest).(*GraphQL); ok {
		return cached, nil
	}
	if cached, ok := c.Get(keyGraphQLError).(error); ok {
		return nil, cached
	}

	req, err := decode(c)
	if err != nil {
		c.Set(keyGraphQLError, err)

		return nil, err
	}
	c.Set(keyGraphQLRequest, req)

	return req, nil
}

// Cached returns the envelope if an earlier Parse succeeded.
func Cached(c echo.Context) *GraphQL {
	req, _ := c.Get(keyGraphQLRequest).(*GraphQL)

	return req
}

// OperationName returns the operation name of the request, or "" when the
// envelope cannot be decoded.
func OperationName(c echo.Context) string {
	req, err := Parse(c)
	if err != nil {
		return ""
	}

	return req.OperationName
}

func decode(c echo.Context) (*GraphQL, error) {
	req := new(GraphQL)

	switch c.Request().Method {
	case http.MethodGet:
		req.Query = c.QueryParam("query")
		req.OperationName = c.QueryParam("operationName")
		if raw := c.QueryParam("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				return nil, echo.NewHTTPError(http.StatusBadRequest, "variables must be a JSON object").SetInternal(err)
			}
		}
	case http.MethodPost:
		if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
			return nil, errors.WithStack(err)
		}
	default:
		return nil, echo.NewHTTPError(http.StatusMethodNotAllowed, "graphql accepts GET and POST")
	}

	if c.Echo().Validator != nil {
		if err := c.Validate(req); err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "query is required").SetInternal(err)
		}
	}

	return req, nil
}
