// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"habit/internal/domain/entity"
)

var (
	// ErrMemberNotFound is returned when no member matches the lookup.
	ErrMemberNotFound = errors.New("member not found")
	// ErrDuplicateUsername is returned when a username is already registered.
	ErrDuplicateUsername = errors.New("username already exists")
)

// MemberUpdate lists the member fields that may change. Nil fields are left untouched.
type MemberUpdate struct {
	Password    *string
	FullName    *string
	Gender      *entity.Gender
	DateOfBirth *string
}

// MemberRepository defines the persistence operations for members.
type MemberRepository interface {
	// FindByID retrieves a member by id.
	FindByID(ctx context.Context, id int64) (*entity.Member, error)

	// FindByUsername retrieves a member by username.
	FindByUsername(ctx context.Context, username string) (*entity.Member, error)

	// FindByCredentials retrieves the member whose username and password hash both match.
	FindByCredentials(ctx context.Context, username, passwordHash string) (*entity.Member, error)

	// ExistsByUsername reports whether the username is taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create persists a new member and fills in its id and timestamps.
	Create(ctx context.Context, member *entity.Member) error

	// Update applies a partial update and returns the stored member.
	Update(ctx context.Context, id int64, update MemberUpdate) (*entity.Member, error)

	// UpdateRefreshToken stores the member's current refresh token. Nil clears it.
	UpdateRefreshToken(ctx context.Context, id int64, token *string) error

	// Delete removes the member and, through cascading keys, everything it created.
	Delete(ctx context.Context, id int64) error
}
