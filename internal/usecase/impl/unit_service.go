package impl

import (
	"context"
	"log/slog"
	"regexp"

	deliverycontext "habit/internal/delivery/context"
	"habit/internal/domain/entity"
	domainerrors "habit/internal/domain/errors"
	"habit/internal/domain/repository"
	"habit/internal/domain/validation"
	"habit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const unitNameMaxLength = 10

var (
	unitNamePattern = regexp.MustCompile("^[a-zA-Z0-9ㄱ-힣_\"'/\\-`+=$!%~^&*()<>[\\]{}?]+$")

	unitNameName = validation.Name{Eng: "unit", Kor: "단위"}
)

// unitService implements the UnitUsecase interface.
type unitService struct {
	unitRepo repository.UnitRepository
	logger   *slog.Logger
}

// UnitServiceParams holds dependencies for UnitService, injected by Fx.
type UnitServiceParams struct {
	fx.In

	UnitRepo repository.UnitRepository
	Logger   *slog.Logger
}

// NewUnitService is the constructor for unitService.
func NewUnitService(params UnitServiceParams) usecase.UnitUsecase {
	return &unitService{
		unitRepo: params.UnitRepo,
		logger:   params.Logger,
	}
}

func (srv *unitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindUnit looks the unit up by id first, then by name.
func (srv *unitService) FindUnit(ctx context.Context, id *int64, name *string) (*entity.Unit, error) {
	var (
		unit *entity.Unit
		err  error
	)

	switch {
	case id != nil:
		unit, err = srv.unitRepo.FindByID(ctx, *id)
	case nonEmpty(name) != nil:
		unit, err = srv.unitRepo.FindByName(ctx, *name)
	default:
		return nil, domainerrors.NewValidationError("unit", []validation.Failure{{
			Name:    "id",
			Code:    validation.CodeWrongInput,
			Message: "고유번호 또는 단위명 중 하나는 필수 입력 항목입니다.",
		}})
	}
	if err != nil {
		if errors.Is(err, repository.ErrUnitNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find unit")
	}

	return unit, nil
}

// CreateUnit registers a new unit name. An existing name is a conflict.
func (srv *unitService) CreateUnit(ctx context.Context, name string) (*entity.Unit, error) {
	_, err := srv.unitRepo.FindByName(ctx, name)
	switch {
	case err == nil:
		return nil, domainerrors.ErrConflict.WrapMessage("[createUnit] unit with provided name already exists")
	case !errors.Is(err, repository.ErrUnitNotFound):
		return nil, errors.Wrap(err, "failed to find unit")
	}

	err = validate(ctx, "createUnit",
		validation.Length{
			Field: validation.Field{Name: unitNameName, Value: name, Required: true},
			Max:   unitNameMaxLength,
		},
		validation.Pattern{
			Field: validation.Field{Name: unitNameName, Value: name, Required: true},
			Expr:  unitNamePattern,
		},
	)
	if err != nil {
		return nil, err
	}

	unit := &entity.Unit{Name: name}
	if err := srv.unitRepo.Create(ctx, unit); err != nil {
		if errors.Is(err, repository.ErrDuplicateUnit) {
			return nil, domainerrors.ErrConflict.WrapMessage("[createUnit] unit with provided name already exists")
		}

		return nil, errors.Wrap(err, "failed to create unit")
	}
	srv.log(ctx).Info("Unit created", slog.Int64("unit_id", unit.ID), slog.String("name", unit.Name))

	return unit, nil
}
