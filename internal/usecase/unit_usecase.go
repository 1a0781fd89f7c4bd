package usecase

import (
	"context"

	"habit/internal/domain/entity"
)

// UnitUsecase defines the unit catalogue operations.
type UnitUsecase interface {
	// FindUnit looks a unit up by id, or by name when id is nil. It returns nil
	// when nothing matches.
	FindUnit(ctx context.Context, id *int64, name *string) (*entity.Unit, error)
	CreateUnit(ctx context.Context, name string) (*entity.Unit, error)
}
