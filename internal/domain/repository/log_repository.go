package repository

import (
	"context"
	"errors"

	"habit/internal/domain/entity"
)

// ErrLogNotFound is returned when no log matches the lookup.
var ErrLogNotFound = errors.New("log not found")

// LogUpdate lists the log fields that may change. Nil fields are left untouched.
type LogUpdate struct {
	Value  *int
	UnitID *int64
}

// LogRepository defines the persistence operations for logs.
type LogRepository interface {
	// FindByID retrieves a log with its unit, schedule and creator.
	FindByID(ctx context.Context, id int64) (*entity.Log, error)

	// Create persists a log and fills in its id and timestamps.
	Create(ctx context.Context, log *entity.Log) error

	// Update applies a partial update and returns the stored log.
	Update(ctx context.Context, id int64, update LogUpdate) (*entity.Log, error)

	Delete(ctx context.Context, id int64) error
}
