// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"

	deliverycontext "habit/internal/delivery/context"
	"habit/internal/domain/entity"
	domainerrors "habit/internal/domain/errors"
	"habit/internal/domain/repository"
	"habit/internal/domain/service"
	"habit/internal/domain/validation"
	"habit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	usernameMinLength = 6
	usernameMaxLength = 20
	// passwordLength is the length of the client-side SHA-256 digest in base64.
	passwordLength    = 44
	fullNameMaxLength = 10

	genderMessage          = "성별은(는) 남성, 여성, 선택안함 중 하나여야 합니다."
	invalidPasswordMessage = "올바르지 않은 비밀번호입니다."
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

	usernameName    = validation.Name{Eng: "username", Kor: "아이디"}
	passwordName    = validation.Name{Eng: "password", Kor: "비밀번호"}
	fullNameName    = validation.Name{Eng: "fullName", Kor: "이름"}
	genderName      = validation.Name{Eng: "gender", Kor: "성별"}
	dateOfBirthName = validation.Name{Eng: "dateOfBirth", Kor: "생년월일"}
)

// memberService implements the MemberUsecase interface.
type memberService struct {
	memberRepo  repository.MemberRepository
	hasher      service.PasswordHasher
	memberGuard ownershipGuard[*entity.Member]
	logger      *slog.Logger
}

// MemberServiceParams holds dependencies for MemberService, injected by Fx.
type MemberServiceParams struct {
	fx.In

	MemberRepo repository.MemberRepository
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
}

// NewMemberService is the constructor for memberService.
func NewMemberService(params MemberServiceParams) usecase.MemberUsecase {
	return &memberService{
		memberRepo:  params.MemberRepo,
		hasher:      params.Hasher,
		memberGuard: newOwnershipGuard("member", params.MemberRepo.FindByID, repository.ErrMemberNotFound),
		logger:      params.Logger,
	}
}

func (srv *memberService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCurrentMember returns the member identified by the access token.
func (srv *memberService) GetCurrentMember(ctx context.Context) (*entity.Member, error) {
	identity, err := requireIdentity(ctx, deliverycontext.IdentityFromContext)
	if err != nil {
		return nil, err
	}

	member, err := srv.memberRepo.FindByID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domainerrors.ErrMemberNotFound.WrapMessage("[member] token refers to a removed member")
		}

		return nil, errors.Wrap(err, "failed to find member")
	}

	return member, nil
}

// CreateMember registers a new member after validating every field.
func (srv *memberService) CreateMember(ctx context.Context, input usecase.CreateMemberInput) (*entity.Member, error) {
	srv.log(ctx).Info("Creating member", slog.String("username", input.Username))

	err := validate(ctx, "createMember",
		validation.Length{
			Field: validation.Field{Name: usernameName, Value: input.Username},
			Min:   usernameMinLength,
			Max:   usernameMaxLength,
		},
		validation.Pattern{
			Field: validation.Field{Name: usernameName, Value: input.Username, Required: true},
			Expr:  usernamePattern,
		},
		validation.Uniqueness{
			Field:  validation.Field{Name: usernameName, Value: input.Username, Required: true},
			Exists: srv.memberRepo.ExistsByUsername,
		},
		validation.Length{
			Field:  validation.Field{Name: passwordName, Value: input.Password, Required: true},
			Equals: passwordLength,
		},
		validation.Length{
			Field: validation.Field{Name: fullNameName, Value: input.FullName, Required: true},
			Max:   fullNameMaxLength,
		},
		validation.Enumeration{
			Field:   validation.Field{Name: genderName, Value: input.Gender, Required: true, Message: genderMessage},
			Options: entity.GenderOptions(),
		},
		validation.DateFormat{
			Field: validation.Field{Name: dateOfBirthName, Value: input.DateOfBirth},
		},
	)
	if err != nil {
		return nil, err
	}

	member := &entity.Member{
		Username: input.Username,
		Password: srv.hasher.Hash(input.Username, input.Password),
		FullName: input.FullName,
		Gender:   entity.Gender(input.Gender),
	}
	if dob := nonEmpty(input.DateOfBirth); dob != nil {
		member.DateOfBirth = *dob
	}

	if err := srv.memberRepo.Create(ctx, member); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, domainerrors.ErrConflict.WrapMessage("[createMember] username already exists")
		}
		srv.log(ctx).Error("Failed to create member", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create member")
	}

	return member, nil
}

// UpdateMember changes the caller's own account.
func (srv *memberService) UpdateMember(ctx context.Context, input usecase.UpdateMemberInput) (*entity.Member, error) {
	_, identity, err := srv.memberGuard.check(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	input.Password = nonEmpty(input.Password)
	input.FullName = nonEmpty(input.FullName)
	input.Gender = nonEmpty(input.Gender)
	input.DateOfBirth = nonEmpty(input.DateOfBirth)

	err = validate(ctx, "updateMember",
		validation.Length{
			Field:  validation.Field{Name: passwordName, Value: input.Password, Message: invalidPasswordMessage},
			Equals: passwordLength,
		},
		validation.Length{
			Field: validation.Field{Name: fullNameName, Value: input.FullName},
			Max:   fullNameMaxLength,
		},
		validation.Enumeration{
			Field:   validation.Field{Name: genderName, Value: input.Gender, Message: genderMessage},
			Options: entity.GenderOptions(),
		},
		validation.DateFormat{
			Field: validation.Field{Name: dateOfBirthName, Value: input.DateOfBirth},
		},
	)
	if err != nil {
		return nil, err
	}

	update := repository.MemberUpdate{
		FullName:    input.FullName,
		DateOfBirth: input.DateOfBirth,
	}
	if input.Password != nil {
		hashed := srv.hasher.Hash(identity.Username, *input.Password)
		update.Password = &hashed
	}
	if input.Gender != nil {
		gender := entity.Gender(*input.Gender)
		update.Gender = &gender
	}

	member, err := srv.memberRepo.Update(ctx, input.ID, update)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("member does not exist")
		}

		return nil, errors.Wrap(err, "failed to update member")
	}
	srv.log(ctx).Info("Member updated", slog.Int64("member_id", member.ID))

	return member, nil
}

// DeleteMember removes the caller's account.
func (srv *memberService) DeleteMember(ctx context.Context) error {
	identity, err := requireIdentity(ctx, deliverycontext.IdentityFromContext)
	if err != nil {
		return err
	}

	if err := srv.memberRepo.Delete(ctx, identity.ID); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return domainerrors.ErrMemberNotFound.WrapMessage("[deleteMember] member already removed")
		}

		return errors.Wrap(err, "failed to delete member")
	}
	srv.log(ctx).Info("Member deleted", slog.Int64("member_id", identity.ID))

	return nil
}

// CheckUsernameDuplicacy reports whether username is already registered.
func (srv *memberService) CheckUsernameDuplicacy(ctx context.Context, username string) (bool, error) {
	exists, err := srv.memberRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return false, errors.Wrap(err, "failed to check username")
	}

	return exists, nil
}

// PasswordCheck reports whether password matches the caller's stored hash.
func (srv *memberService) PasswordCheck(ctx context.Context, password string) (bool, error) {
	identity, err := requireIdentity(ctx, deliverycontext.IdentityFromContext)
	if err != nil {
		return false, err
	}

	_, err = srv.memberRepo.FindByCredentials(ctx, identity.Username, srv.hasher.Hash(identity.Username, password))
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to check password")
	}

	return true, nil
}
