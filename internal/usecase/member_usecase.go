package usecase

import (
	"context"

	"habit/internal/domain/entity"
)

// CreateMemberInput defines the data required to register a member.
type CreateMemberInput struct {
	Username    string
	Password    string
	FullName    string
	Gender      string
	DateOfBirth *string
}

// UpdateMemberInput lists the member fields that may change. Nil fields are left untouched.
type UpdateMemberInput struct {
	ID          int64
	Password    *string
	FullName    *string
	Gender      *string
	DateOfBirth *string
}

// MemberUsecase defines the member account operations.
type MemberUsecase interface {
	// GetCurrentMember returns the member identified by the access token.
	GetCurrentMember(ctx context.Context) (*entity.Member, error)
	CreateMember(ctx context.Context, input CreateMemberInput) (*entity.Member, error)
	// UpdateMember is only allowed on the caller's own account.
	UpdateMember(ctx context.Context, input UpdateMemberInput) (*entity.Member, error)
	// DeleteMember removes the caller's account together with everything it created.
	DeleteMember(ctx context.Context) error
	CheckUsernameDuplicacy(ctx context.Context, username string) (bool, error)
	// PasswordCheck reports whether password belongs to the caller.
	PasswordCheck(ctx context.Context, password string) (bool, error)
}
