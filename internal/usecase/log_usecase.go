package usecase

import (
	"context"

	"habit/internal/domain/entity"
)

// CreateLogInput defines the data required to record a log under a schedule.
type CreateLogInput struct {
	Value      int
	UnitID     int64
	ScheduleID int64
}

// UpdateLogInput lists the log fields that may change. Nil fields are left untouched.
type UpdateLogInput struct {
	ID     int64
	Value  *int
	UnitID *int64
}

// LogUsecase defines the log operations.
type LogUsecase interface {
	// GetLog returns nil when the log does not exist.
	GetLog(ctx context.Context, id int64) (*entity.Log, error)
	CreateLog(ctx context.Context, input CreateLogInput) (*entity.Log, error)
	UpdateLog(ctx context.Context, input UpdateLogInput) (*entity.Log, error)
	DeleteLog(ctx context.Context, id int64) error
}
