package graph

import (
	"context"

	"habit/internal/domain/entity"
	"habit/internal/usecase"

	graphql "github.com/graph-gophers/graphql-go"
)

type memberResolver struct {
	m *entity.Member
}

func newMemberResolver(m *entity.Member) *memberResolver {
	if m == nil {
		return nil
	}

	return &memberResolver{m: m}
}

func (r *memberResolver) ID() int32               { return int32(r.m.ID) }
func (r *memberResolver) Username() string        { return r.m.Username }
func (r *memberResolver) FullName() string        { return r.m.FullName }
func (r *memberResolver) Gender() string          { return string(r.m.Gender) }
func (r *memberResolver) CreatedAt() graphql.Time { return graphql.Time{Time: r.m.CreatedAt} }
func (r *memberResolver) UpdatedAt() graphql.Time { return graphql.Time{Time: r.m.UpdatedAt} }

func (r *memberResolver) DateOfBirth() *string {
	if r.m.DateOfBirth == "" {
		return nil
	}

	return &r.m.DateOfBirth
}

// Member resolves the member identified by the access token.
func (r *Resolver) Member(ctx context.Context) (*memberResolver, error) {
	member, err := r.members.GetCurrentMember(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return newMemberResolver(member), nil
}

func (r *Resolver) CreateMember(ctx context.Context, args struct {
	Username    string
	Password    string
	FullName    string
	Gender      string
	DateOfBirth *string
}) (*memberResolver, error) {
	member, err := r.members.CreateMember(ctx, usecase.CreateMemberInput{
		Username:    args.Username,
		Password:    args.Password,
		FullName:    args.FullName,
		Gender:      args.Gender,
		DateOfBirth: args.DateOfBirth,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return newMemberResolver(member), nil
}

func (r *Resolver) UpdateMember(ctx context.Context, args struct {
	ID          int32
	Password    *string
	FullName    *string
	Gender      *string
	DateOfBirth *string
}) (*memberResolver, error) {
	member, err := r.members.UpdateMember(ctx, usecase.UpdateMemberInput{
		ID:          int64(args.ID),
		Password:    args.Password,
		FullName:    args.FullName,
		Gender:      args.Gender,
		DateOfBirth: args.DateOfBirth,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return newMemberResolver(member), nil
}

func (r *Resolver) DeleteMember(ctx context.Context) (bool, error) {
	if err := r.members.DeleteMember(ctx); err != nil {
		return false, r.fail(ctx, err)
	}

	return true, nil
}

func (r *Resolver) CheckUsernameDuplicacy(ctx context.Context, args struct{ Username string }) (bool, error) {
	duplicate, err := r.members.CheckUsernameDuplicacy(ctx, args.Username)
	if err != nil {
		return false, r.fail(ctx, err)
	}

	return duplicate, nil
}

func (r *Resolver) PasswordCheck(ctx context.Context, args struct{ Password string }) (bool, error) {
	ok, err := r.members.PasswordCheck(ctx, args.Password)
	if err != nil {
		return false, r.fail(ctx, err)
	}

	return ok, nil
}
