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

type logRepository struct {
	db *gorm.DB
}

// NewLogRepository is the constructor for logRepository.
func NewLogRepository(db *gorm.DB) repository.LogRepository {
	return &logRepository{db: db}
}

// FindByID retrieves a log with its unit, creator and schedule, including the schedule's own logs.
func (repo *logRepository) FindByID(ctx context.Context, id int64) (*entity.Log, error) {
	var logM model.LogModel
	err := repo.db.WithContext(ctx).
		Preload("Unit").
		Preload("Schedule").
		Preload("Schedule.Logs", orderByID).
		Preload("Schedule.Logs.Unit").
		Preload("CreatedBy").
		First(&logM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLogNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find log by id")
	}

	return toLogDomain(&logM), nil
}

// Create persists a log and reloads it with its relations.
func (repo *logRepository) Create(ctx context.Context, log *entity.Log) error {
	logM := fromLogDomain(log)
	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("referenced schedule, unit or member does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create log")
	}

	stored, err := repo.FindByID(ctx, logM.ID)
	if err != nil {
		return err
	}
	*log = *stored

	return nil
}

// Update applies the non-nil fields of update.
func (repo *logRepository) Update(ctx context.Context, id int64, update repository.LogUpdate) (*entity.Log, error) {
	updates := map[string]any{}
	if update.Value != nil {
		updates["value"] = *update.Value
	}
	if update.UnitID != nil {
		updates["unit_id"] = *update.UnitID
	}

	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).Model(&model.LogModel{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			if isForeignKeyConstraintViolation(result.Error) {
				return nil, domainerrors.ErrNotFound.WrapMessage("referenced unit does not exist")
			}

			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update log")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrLogNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

func (repo *logRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.LogModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete log")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLogNotFound
	}

	return nil
}
