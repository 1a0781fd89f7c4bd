package repository

import (
	"context"
	"errors"

	"habit/internal/domain/entity"
)

// ErrScheduleNotFound is returned when no schedule matches the lookup.
var ErrScheduleNotFound = errors.New("schedule not found")

// ScheduleUpdate lists the schedule fields that may change. A non-nil UnitIDs
// replaces the whole unit set.
type ScheduleUpdate struct {
	Name    *string
	UnitIDs *[]int64
}

// ScheduleRepository defines the persistence operations for schedules.
type ScheduleRepository interface {
	// FindByID retrieves a schedule with its creator, units and parent.
	FindByID(ctx context.Context, id int64) (*entity.Schedule, error)

	// FindDetail retrieves a schedule with its ancestors, units, two levels of
	// children and its creator. Logs are limited to day when it is set.
	FindDetail(ctx context.Context, id int64, day *entity.DayRange) (*entity.Schedule, error)

	// FindRootsByMember retrieves the member's root schedules with every
	// descendant, units and the logs recorded on day.
	FindRootsByMember(ctx context.Context, memberID int64, day entity.DayRange) ([]*entity.Schedule, error)

	// CountChildren counts the direct children of a schedule.
	CountChildren(ctx context.Context, parentID int64) (int64, error)

	// Create persists a schedule and connects the given unit ids.
	Create(ctx context.Context, schedule *entity.Schedule, unitIDs []int64) error

	// Update applies a partial update and returns the stored schedule.
	Update(ctx context.Context, id int64, update ScheduleUpdate) (*entity.Schedule, error)

	// Delete removes a schedule together with its descendants and logs.
	Delete(ctx context.Context, id int64) error
}
