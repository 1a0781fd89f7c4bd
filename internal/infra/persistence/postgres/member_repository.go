// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"habit/internal/domain/entity"
	domainerrors "habit/internal/domain/errors"
	"habit/internal/domain/repository"
	"habit/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// memberRepository implements repository.MemberRepository using GORM.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

// FindByID retrieves a member by id.
func (repo *memberRepository) FindByID(ctx context.Context, id int64) (*entity.Member, error) {
	return repo.first(ctx, "find member by id", "id = ?", id)
}

// FindByUsername retrieves a member by username.
func (repo *memberRepository) FindByUsername(ctx context.Context, username string) (*entity.Member, error) {
	return repo.first(ctx, "find member by username", "username = ?", username)
}

// FindByCredentials retrieves the member matching both username and password hash.
func (repo *memberRepository) FindByCredentials(ctx context.Context, username, passwordHash string) (*entity.Member, error) {
	return repo.first(ctx, "find member by credentials", "username = ? AND password = ?", username, passwordHash)
}

func (repo *memberRepository) first(ctx context.Context, op string, query string, args ...any) (*entity.Member, error) {
	var memberM model.MemberModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&memberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}

	return toMemberDomain(&memberM), nil
}

// ExistsByUsername reports whether the username is already registered.
func (repo *memberRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "count members by username")
	}

	return count > 0, nil
}

// Create persists a new member.
func (repo *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	memberM := fromMemberDomain(member)

	if err := repo.db.WithContext(ctx).Create(memberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUsername
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required member information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create member")
	}

	member.ID = memberM.ID
	member.CreatedAt = memberM.CreatedAt
	member.UpdatedAt = memberM.UpdatedAt

	return nil
}

// Update applies the non-nil fields of update.
func (repo *memberRepository) Update(ctx context.Context, id int64, update repository.MemberUpdate) (*entity.Member, error) {
	updates := map[string]any{}
	if update.Password != nil {
		updates["password"] = *update.Password
	}
	if update.FullName != nil {
		updates["full_name"] = *update.FullName
	}
	if update.Gender != nil {
		updates["gender"] = string(*update.Gender)
	}
	if update.DateOfBirth != nil {
		updates["date_of_birth"] = *update.DateOfBirth
	}

	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).Model(&model.MemberModel{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update member")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrMemberNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// UpdateRefreshToken stores or clears the member's refresh token.
func (repo *memberRepository) UpdateRefreshToken(ctx context.Context, id int64, token *string) error {
	result := repo.db.WithContext(ctx).Model(&model.MemberModel{}).Where("id = ?", id).Update("refresh_token", token)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

// Delete removes the member. Schedules and logs go with it through ON DELETE CASCADE.
func (repo *memberRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.MemberModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete member")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}
