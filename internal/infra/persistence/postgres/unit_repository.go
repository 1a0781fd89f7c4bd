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

type unitRepository struct {
	db *gorm.DB
}

// NewUnitRepository is the constructor for unitRepository.
func NewUnitRepository(db *gorm.DB) repository.UnitRepository {
	return &unitRepository{db: db}
}

func (repo *unitRepository) FindByID(ctx context.Context, id int64) (*entity.Unit, error) {
	return repo.first(ctx, "find unit by id", "id = ?", id)
}

func (repo *unitRepository) FindByName(ctx context.Context, name string) (*entity.Unit, error) {
	return repo.first(ctx, "find unit by name", "name = ?", name)
}

func (repo *unitRepository) first(ctx context.Context, op string, query string, args ...any) (*entity.Unit, error) {
	var unitM model.UnitModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&unitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUnitNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}

	return toUnitDomain(&unitM), nil
}

func (repo *unitRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Unit, error) {
	if len(ids) == 0 {
		return []*entity.Unit{}, nil
	}

	var unitMs []*model.UnitModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&unitMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find units by ids")
	}

	return toUnitsDomain(unitMs), nil
}

func (repo *unitRepository) Create(ctx context.Context, unit *entity.Unit) error {
	unitM := &model.UnitModel{Name: unit.Name}
	if err := repo.db.WithContext(ctx).Create(unitM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUnit
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create unit")
	}

	unit.ID = unitM.ID

	return nil
}
