package repository

import (
	"context"
	"errors"

	"habit/internal/domain/entity"
)

var (
	// ErrUnitNotFound is returned when no unit matches the lookup.
	ErrUnitNotFound = errors.New("unit not found")
	// ErrDuplicateUnit is returned when a unit name is already registered.
	ErrDuplicateUnit = errors.New("unit already exists")
)

// UnitRepository defines the persistence operations for units.
type UnitRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Unit, error)
	FindByName(ctx context.Context, name string) (*entity.Unit, error)
	// FindByIDs returns the units that exist among ids; missing ids are omitted.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Unit, error)
	Create(ctx context.Context, unit *entity.Unit) error
}
