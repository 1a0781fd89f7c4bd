// Package graph exposes the usecases as a GraphQL schema.
package graph

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	deliverycontext "habit/internal/delivery/context"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/pkg/errors"
)

// maxQueryDepth allows a full five-level schedule tree with its logs and units.
const maxQueryDepth = 16

//go:embed schema.graphql
var schemaSDL string

// NewSchema parses the SDL and binds it to the resolver.
func NewSchema(resolver *Resolver, logger *slog.Logger) (*graphql.Schema, error) {
	schema, err := graphql.ParseSchema(schemaSDL, resolver,
		graphql.MaxDepth(maxQueryDepth),
		graphql.Logger(panicLogger{logger: logger}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse graphql schema")
	}

	return schema, nil
}

// panicLogger reports resolver panics through slog.
type panicLogger struct {
	logger *slog.Logger
}

func (l panicLogger) LogPanic(ctx context.Context, value any) {
	deliverycontext.GetLoggerOrDefault(ctx, l.logger).Error("GraphQL resolver panic",
		slog.String("operation", deliverycontext.GetOperation(ctx)),
		slog.String("panic", fmt.Sprint(value)),
	)
}
