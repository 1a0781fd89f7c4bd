package graph

import (
	"context"

	"habit/internal/domain/entity"
)

type unitResolver struct {
	u *entity.Unit
}

func newUnitResolver(u *entity.Unit) *unitResolver {
	if u == nil {
		return nil
	}

	return &unitResolver{u: u}
}

func (r *unitResolver) ID() int32    { return int32(r.u.ID) }
func (r *unitResolver) Name() string { return r.u.Name }

func newUnitResolvers(units []*entity.Unit) *[]*unitResolver {
	if units == nil {
		return nil
	}

	resolvers := make([]*unitResolver, 0, len(units))
	for _, u := range units {
		resolvers = append(resolvers, newUnitResolver(u))
	}

	return &resolvers
}

func (r *Resolver) Unit(ctx context.Context, args struct {
	ID   *int32
	Name *string
}) (*unitResolver, error) {
	unit, err := r.units.FindUnit(ctx, int64Ptr(args.ID), args.Name)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return newUnitResolver(unit), nil
}

func (r *Resolver) CreateUnit(ctx context.Context, args struct{ Name string }) (*unitResolver, error) {
	unit, err := r.units.CreateUnit(ctx, args.Name)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return newUnitResolver(unit), nil
}
