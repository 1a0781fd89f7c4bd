package impl

import (
	"context"
	"io"
	"log/slog"

	deliverycontext "habit/internal/delivery/context"
	"habit/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var owner = &entity.Identity{ID: 1, Username: "owner01"}

func ownerCtx() context.Context {
	return deliverycontext.WithIdentity(context.Background(), owner)
}

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func intPtr(i int) *int { return &i }

func memberOf(id int64, username string) *entity.Member {
	return &entity.Member{ID: id, Username: username}
}
