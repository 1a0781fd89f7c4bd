package impl

import (
	"context"
	"log/slog"

	deliverycontext "habit/internal/delivery/context"
	"habit/internal/domain/entity"
	domainerrors "habit/internal/domain/errors"
	"habit/internal/domain/repository"
	"habit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// logService implements the LogUsecase interface.
type logService struct {
	logRepo       repository.LogRepository
	unitRepo      repository.UnitRepository
	scheduleGuard ownershipGuard[*entity.Schedule]
	logGuard      ownershipGuard[*entity.Log]
	logger        *slog.Logger
}

// LogServiceParams holds dependencies for LogService, injected by Fx.
type LogServiceParams struct {
	fx.In

	LogRepo      repository.LogRepository
	ScheduleRepo repository.ScheduleRepository
	UnitRepo     repository.UnitRepository
	Logger       *slog.Logger
}

// NewLogService is the constructor for logService.
func NewLogService(params LogServiceParams) usecase.LogUsecase {
	return &logService{
		logRepo:       params.LogRepo,
		unitRepo:      params.UnitRepo,
		scheduleGuard: newOwnershipGuard("schedule", params.ScheduleRepo.FindByID, repository.ErrScheduleNotFound),
		logGuard:      newOwnershipGuard("log", params.LogRepo.FindByID, repository.ErrLogNotFound),
		logger:        params.Logger,
	}
}

func (srv *logService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetLog returns the log, or nil when it does not exist.
func (srv *logService) GetLog(ctx context.Context, id int64) (*entity.Log, error) {
	log, err := srv.logRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLogNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find log")
	}

	return log, nil
}

// CreateLog records a value under a schedule owned by the caller.
func (srv *logService) CreateLog(ctx context.Context, input usecase.CreateLogInput) (*entity.Log, error) {
	schedule, identity, err := srv.scheduleGuard.check(ctx, input.ScheduleID)
	if err != nil {
		return nil, err
	}

	if err := srv.ensureUnit(ctx, input.UnitID); err != nil {
		return nil, err
	}

	log := &entity.Log{
		Value:       input.Value,
		UnitID:      input.UnitID,
		ScheduleID:  schedule.ID,
		CreatedByID: identity.ID,
	}
	if err := srv.logRepo.Create(ctx, log); err != nil {
		return nil, errors.Wrap(err, "failed to create log")
	}
	srv.log(ctx).Info("Log created", slog.Int64("log_id", log.ID), slog.Int64("schedule_id", schedule.ID))

	return log, nil
}

// UpdateLog changes the value and/or unit of a log owned by the caller.
func (srv *logService) UpdateLog(ctx context.Context, input usecase.UpdateLogInput) (*entity.Log, error) {
	if _, _, err := srv.logGuard.check(ctx, input.ID); err != nil {
		return nil, err
	}

	if input.UnitID != nil {
		if err := srv.ensureUnit(ctx, *input.UnitID); err != nil {
			return nil, err
		}
	}

	log, err := srv.logRepo.Update(ctx, input.ID, repository.LogUpdate{Value: input.Value, UnitID: input.UnitID})
	if err != nil {
		if errors.Is(err, repository.ErrLogNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("log does not exist")
		}

		return nil, errors.Wrap(err, "failed to update log")
	}

	return log, nil
}

// DeleteLog removes a log owned by the caller.
func (srv *logService) DeleteLog(ctx context.Context, id int64) error {
	if _, _, err := srv.logGuard.check(ctx, id); err != nil {
		return err
	}

	if err := srv.logRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLogNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("log does not exist")
		}

		return errors.Wrap(err, "failed to delete log")
	}
	srv.log(ctx).Info("Log deleted", slog.Int64("log_id", id))

	return nil
}

func (srv *logService) ensureUnit(ctx context.Context, id int64) error {
	if _, err := srv.unitRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUnitNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("unit does not exist")
		}

		return errors.Wrap(err, "failed to find unit")
	}

	return nil
}
