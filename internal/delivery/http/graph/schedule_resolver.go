package graph

import (
	"context"

	"habit/internal/domain/entity"
	"habit/internal/usecase"

	graphql "github.com/graph-gophers/graphql-go"
)

type scheduleResolver struct {
	s *entity.Schedule
}

func newScheduleResolver(s *entity.Schedule) *scheduleResolver {
	if s == nil {
		return nil
	}

	return &scheduleResolver{s: s}
}

func newScheduleResolvers(schedules []*entity.Schedule) *[]*scheduleResolver {
	if schedules == nil {
		return nil
	}

	resolvers := make([]*scheduleResolver, 0, len(schedules))
	for _, s := range schedules {
		resolvers = append(resolvers, newScheduleResolver(s))
	}

	return &resolvers
}

func (r *scheduleResolver) ID() int32                  { return int32(r.s.ID) }
func (r *scheduleResolver) Name() string               { return r.s.Name }
func (r *scheduleResolver) Depth() int32               { return int32(r.s.Depth) }
func (r *scheduleResolver) Units() *[]*unitResolver    { return newUnitResolvers(r.s.Units) }
func (r *scheduleResolver) Parent() *scheduleResolver  { return newScheduleResolver(r.s.Parent) }
func (r *scheduleResolver) CreatedBy() *memberResolver { return newMemberResolver(r.s.CreatedBy) }
func (r *scheduleResolver) CreatedAt() graphql.Time    { return graphql.Time{Time: r.s.CreatedAt} }
func (r *scheduleResolver) UpdatedAt() graphql.Time    { return graphql.Time{Time: r.s.UpdatedAt} }

// ScheduleData resolves the child schedules.
func (r *scheduleResolver) ScheduleData() *[]*scheduleResolver {
	return newScheduleResolvers(r.s.Children)
}

// LogData resolves the logs, already restricted to the requested day.
func (r *scheduleResolver) LogData() *[]*logResolver {
	return newLogResolvers(r.s.Logs)
}

func (r *Resolver) Schedule(ctx context.Context, args struct {
	ID        int32
	CreatedAt *string
}) (*scheduleResolver, error) {
	schedule, err := r.schedules.GetSchedule(ctx, int64(args.ID), args.CreatedAt)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return newScheduleResolver(schedule), nil
}

func (r *Resolver) AllSchedulesByMember(ctx context.Context, args struct {
	CreatedBy string
	CreatedAt string
}) (*[]*scheduleResolver, error) {
	schedules, err := r.schedules.ListRootSchedules(ctx, args.CreatedBy, args.CreatedAt)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	if schedules == nil {
		schedules = []*entity.Schedule{}
	}

	return newScheduleResolvers(schedules), nil
}

func (r *Resolver) CreateSchedule(ctx context.Context, args struct {
	Name   string
	Units  *[]*int32
	Parent *int32
}) (*scheduleResolver, error) {
	schedule, err := r.schedules.CreateSchedule(ctx, usecase.CreateScheduleInput{
		Name:     args.Name,
		UnitIDs:  int64s(args.Units),
		ParentID: int64Ptr(args.Parent),
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return newScheduleResolver(schedule), nil
}

func (r *Resolver) UpdateSchedule(ctx context.Context, args struct {
	ID    int32
	Name  *string
	Units *[]*int32
}) (*scheduleResolver, error) {
	input := usecase.UpdateScheduleInput{ID: int64(args.ID), Name: args.Name}
	if args.Units != nil {
		ids := int64s(args.Units)
		input.UnitIDs = &ids
	}

	schedule, err := r.schedules.UpdateSchedule(ctx, input)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return newScheduleResolver(schedule), nil
}

func (r *Resolver) DeleteSchedule(ctx context.Context, args struct{ ID int32 }) (*bool, error) {
	if err := r.schedules.DeleteSchedule(ctx, int64(args.ID)); err != nil {
		return nil, r.fail(ctx, err)
	}

	return boolPtr(true), nil
}
