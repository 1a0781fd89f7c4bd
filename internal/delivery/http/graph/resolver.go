package graph

import (
	"context"
	"log/slog"

	deliverycontext "habit/internal/delivery/context"
	"habit/internal/usecase"

	"go.uber.org/fx"
)

// Resolver is the root resolver. Query and mutation fields are spread over
// the *_resolver.go files by resource.
type Resolver struct {
	members   usecase.MemberUsecase
	sessions  usecase.SessionUsecase
	schedules usecase.ScheduleUsecase
	units     usecase.UnitUsecase
	logs      usecase.LogUsecase
	cookie    *RefreshCookie
	logger    *slog.Logger
}

// ResolverParams holds dependencies for Resolver, injected by Fx.
type ResolverParams struct {
	fx.In

	MemberUsecase   usecase.MemberUsecase
	SessionUsecase  usecase.SessionUsecase
	ScheduleUsecase usecase.ScheduleUsecase
	UnitUsecase     usecase.UnitUsecase
	LogUsecase      usecase.LogUsecase
	Cookie          *RefreshCookie
	Logger          *slog.Logger
}

// NewResolver is the constructor for Resolver.
func NewResolver(params ResolverParams) *Resolver {
	return &Resolver{
		members:   params.MemberUsecase,
		sessions:  params.SessionUsecase,
		schedules: params.ScheduleUsecase,
		units:     params.UnitUsecase,
		logs:      params.LogUsecase,
		cookie:    params.Cookie,
		logger:    params.Logger,
	}
}

func (r *Resolver) fail(ctx context.Context, err error) error {
	return NewError(deliverycontext.GetLoggerOrDefault(ctx, r.logger), err)
}

func int64Ptr(v *int32) *int64 {
	if v == nil {
		return nil
	}
	id := int64(*v)

	return &id
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)

	return &i
}

// int64s flattens a nullable [Int] argument. Null items are dropped.
func int64s(values *[]*int32) []int64 {
	if values == nil {
		return nil
	}

	ids := make([]int64, 0, len(*values))
	for _, v := range *values {
		if v != nil {
			ids = append(ids, int64(*v))
		}
	}

	return ids
}

func boolPtr(b bool) *bool {
	return &b
}
