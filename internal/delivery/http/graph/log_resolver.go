package graph

import (
	"context"

	"habit/internal/domain/entity"
	"habit/internal/usecase"

	graphql "github.com/graph-gophers/graphql-go"
)

type logResolver struct {
	l *entity.Log
}

func newLogResolver(l *entity.Log) *logResolver {
	if l == nil {
		return nil
	}

	return &logResolver{l: l}
}

func newLogResolvers(logs []*entity.Log) *[]*logResolver {
	if logs == nil {
		return nil
	}

	resolvers := make([]*logResolver, 0, len(logs))
	for _, l := range logs {
		resolvers = append(resolvers, newLogResolver(l))
	}

	return &resolvers
}

func (r *logResolver) ID() int32                   { return int32(r.l.ID) }
func (r *logResolver) Value() int32                { return int32(r.l.Value) }
func (r *logResolver) Schedule() *scheduleResolver { return newScheduleResolver(r.l.Schedule) }
func (r *logResolver) CreatedBy() *memberResolver  { return newMemberResolver(r.l.CreatedBy) }
func (r *logResolver) CreatedAt() graphql.Time     { return graphql.Time{Time: r.l.CreatedAt} }
func (r *logResolver) UpdatedAt() graphql.Time     { return graphql.Time{Time: r.l.UpdatedAt} }

// Unit is non-null in the schema; every log query loads it, and the id alone
// is returned if it was not.
func (r *logResolver) Unit() *unitResolver {
	if r.l.Unit == nil {
		return &unitResolver{u: &entity.Unit{ID: r.l.UnitID}}
	}

	return newUnitResolver(r.l.Unit)
}

func (r *Resolver) Log(ctx context.Context, args struct{ ID int32 }) (*logResolver, error) {
	log, err := r.logs.GetLog(ctx, int64(args.ID))
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return newLogResolver(log), nil
}

func (r *Resolver) CreateLog(ctx context.Context, args struct {
	Value    int32
	Unit     int32
	Schedule int32
}) (*logResolver, error) {
	log, err := r.logs.CreateLog(ctx, usecase.CreateLogInput{
		Value:      int(args.Value),
		UnitID:     int64(args.Unit),
		ScheduleID: int64(args.Schedule),
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return newLogResolver(log), nil
}

func (r *Resolver) UpdateLog(ctx context.Context, args struct {
	ID    int32
	Value *int32
	Unit  *int32
}) (*logResolver, error) {
	log, err := r.logs.UpdateLog(ctx, usecase.UpdateLogInput{
		ID:     int64(args.ID),
		Value:  intPtr(args.Value),
		UnitID: int64Ptr(args.Unit),
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return newLogResolver(log), nil
}

func (r *Resolver) DeleteLog(ctx context.Context, args struct{ ID int32 }) (bool, error) {
	if err := r.logs.DeleteLog(ctx, int64(args.ID)); err != nil {
		return false, r.fail(ctx, err)
	}

	return true, nil
}
