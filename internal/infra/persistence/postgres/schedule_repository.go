package postgres

import (
	"context"
	"strings"

	"habit/internal/domain/entity"
	domainerrors "habit/internal/domain/errors"
	"habit/internal/domain/repository"
	"habit/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	// ancestorLevels covers every ancestor of a schedule at the maximum depth.
	ancestorLevels = 4
	// descendantLevels covers every descendant of a root schedule.
	descendantLevels = 4
)

type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository is the constructor for scheduleRepository.
func NewScheduleRepository(db *gorm.DB) repository.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// FindByID retrieves a schedule with its creator, units and parent.
func (repo *scheduleRepository) FindByID(ctx context.Context, id int64) (*entity.Schedule, error) {
	var scheduleM model.ScheduleModel
	err := repo.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("Parent").
		Preload("Parent.Units", orderByID).
		Preload("Units", orderByID).
		First(&scheduleM, "id = ?", id).Error
	if err != nil {
		return nil, scheduleLookupError(err, "find schedule by id")
	}

	return toScheduleDomain(&scheduleM), nil
}

// FindDetail retrieves a schedule with its ancestors, units, two levels of children and logs.
func (repo *scheduleRepository) FindDetail(ctx context.Context, id int64, day *entity.DayRange) (*entity.Schedule, error) {
	q := repo.db.WithContext(ctx).
		Preload(strings.TrimSuffix(strings.Repeat("Parent.", ancestorLevels), ".")).
		Preload("Units", orderByID).
		Preload("CreatedBy").
		Preload("Logs", logsOn(day)).
		Preload("Logs.Unit").
		Preload("Children", orderByID).
		Preload("Children.Units", orderByID).
		Preload("Children.CreatedBy").
		Preload("Children.Logs", logsOn(day)).
		Preload("Children.Logs.Unit").
		Preload("Children.Children", orderByID).
		Preload("Children.Children.Units", orderByID)

	var scheduleM model.ScheduleModel
	if err := q.First(&scheduleM, "id = ?", id).Error; err != nil {
		return nil, scheduleLookupError(err, "find schedule detail")
	}

	return toScheduleDomain(&scheduleM), nil
}

// FindRootsByMember retrieves the member's root schedules with the whole subtree.
func (repo *scheduleRepository) FindRootsByMember(ctx context.Context, memberID int64, day entity.DayRange) ([]*entity.Schedule, error) {
	q := repo.db.WithContext(ctx).Where("created_by_id = ? AND parent_id IS NULL", memberID).Order("id")

	prefix := ""
	for level := 0; level <= descendantLevels; level++ {
		q = q.Preload(prefix+"Units", orderByID).
			Preload(prefix+"Logs", logsOn(&day)).
			Preload(prefix + "Logs.Unit")
		if level < descendantLevels {
			q = q.Preload(prefix+"Children", orderByID)
		}
		prefix += "Children."
	}

	var scheduleMs []*model.ScheduleModel
	if err := q.Find(&scheduleMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find root schedules by member")
	}

	schedules := make([]*entity.Schedule, 0, len(scheduleMs))
	for _, m := range scheduleMs {
		schedules = append(schedules, toScheduleDomain(m))
	}

	return schedules, nil
}

// CountChildren counts the direct children of a schedule.
func (repo *scheduleRepository) CountChildren(ctx context.Context, parentID int64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ScheduleModel{}).
		Where("parent_id = ?", parentID).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "count child schedules")
	}

	return count, nil
}

// Create persists the schedule, connects the existing units by id and reloads it.
func (repo *scheduleRepository) Create(ctx context.Context, schedule *entity.Schedule, unitIDs []int64) error {
	scheduleM := fromScheduleDomain(schedule)
	scheduleM.Units = unitModelsFromIDs(unitIDs)

	// Units.* is omitted so only the join rows are written, never the units themselves.
	if err := repo.db.WithContext(ctx).Omit("Units.*").Create(scheduleM).Error; err != nil {
		return scheduleWriteError(err, "failed to create schedule")
	}

	stored, err := repo.FindByID(ctx, scheduleM.ID)
	if err != nil {
		return err
	}
	*schedule = *stored

	return nil
}

// Update applies a partial update. A non-nil UnitIDs replaces the unit set.
func (repo *scheduleRepository) Update(ctx context.Context, id int64, update repository.ScheduleUpdate) (*entity.Schedule, error) {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scheduleM := &model.ScheduleModel{ID: id}

		if update.Name != nil {
			result := tx.Model(scheduleM).Update("name", *update.Name)
			if result.Error != nil {
				return scheduleWriteError(result.Error, "failed to update schedule")
			}
			if result.RowsAffected == 0 {
				return repository.ErrScheduleNotFound
			}
		}

		if update.UnitIDs != nil {
			association := tx.Model(scheduleM).Omit("Units.*").Association("Units")
			var err error
			if len(*update.UnitIDs) == 0 {
				err = association.Clear()
			} else {
				err = association.Replace(unitModelsFromIDs(*update.UnitIDs))
			}
			if err != nil {
				return scheduleWriteError(err, "failed to replace schedule units")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return repo.FindByID(ctx, id)
}

// Delete removes the schedule. Children, logs and unit links are removed by ON DELETE CASCADE.
func (repo *scheduleRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ScheduleModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete schedule")
	}
	if result.RowsAffected == 0 {
		return repository.ErrScheduleNotFound
	}

	return nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// logsOn restricts preloaded logs to the given day. A nil day keeps every log.
func logsOn(day *entity.DayRange) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if day == nil {
			return db.Order("id")
		}

		return db.Where("created_at >= ? AND created_at < ?", day.From, day.To).Order("id")
	}
}

func scheduleLookupError(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrScheduleNotFound
	}

	return domainerrors.NewDatabaseExecuteError(err, op)
}

func scheduleWriteError(err error, op string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrNotFound.WrapMessage("referenced parent, unit or member does not exist")
	case isCheckConstraintViolation(err):
		return domainerrors.ErrMaxDepthExceeded.WrapMessage("schedule depth out of range")
	default:
		return domainerrors.NewDatabaseExecuteError(err, op)
	}
}
