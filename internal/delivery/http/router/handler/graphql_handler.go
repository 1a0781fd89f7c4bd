// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "habit/internal/delivery/context"
	"habit/internal/delivery/http/graph"
	"habit/internal/delivery/http/request"

	graphql "github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"
	"github.com/labstack/echo/v4"
)

// GraphQLHandler executes GraphQL operations.
type GraphQLHandler struct {
	schema *graphql.Schema
	logger *slog.Logger
}

// NewGraphQLHandler is the constructor for GraphQLHandler, injected by Fx.
func NewGraphQLHandler(schema *graphql.Schema, logger *slog.Logger) *GraphQLHandler {
	return &GraphQLHandler{schema: schema, logger: logger}
}

// Serve runs the operation. A failed access token verification is answered
// with a GraphQL error before anything is executed.
func (h *GraphQLHandler) Serve(c echo.Context) error {
	envelope, err := request.Parse(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if result, ok := deliverycontext.GetAuthResult(ctx); ok && result.Err != nil {
		gqlErr := graph.NewError(deliverycontext.GetLoggerOrDefault(ctx, h.logger), result.Err)

		return c.JSON(gqlErr.Status(), &graphql.Response{
			Errors: []*gqlerrors.QueryError{{
				Message:       gqlErr.Error(),
				ResolverError: result.Err,
				Extensions:    gqlErr.Extensions(),
			}},
		})
	}

	ctx = graph.WithHTTP(ctx, c.Request(), c.Response())
	resp := h.schema.Exec(ctx, envelope.Query, envelope.OperationName, envelope.Variables)

	return c.JSON(http.StatusOK, resp)
}
