package usecase

import (
	"context"

	"habit/internal/domain/entity"
)

// CreateScheduleInput defines the data required to create a schedule.
// A nil ParentID creates a root schedule.
type CreateScheduleInput struct {
	Name     string
	UnitIDs  []int64
	ParentID *int64
}

// UpdateScheduleInput lists the schedule fields that may change. A non-nil
// UnitIDs replaces the unit set.
type UpdateScheduleInput struct {
	ID      int64
	Name    *string
	UnitIDs *[]int64
}

// ScheduleUsecase defines the schedule tree operations.
type ScheduleUsecase interface {
	// GetSchedule returns nil when the schedule does not exist. CreatedAt, when
	// set, restricts logs to that day.
	GetSchedule(ctx context.Context, id int64, createdAt *string) (*entity.Schedule, error)
	// ListRootSchedules returns the member's root schedules with every
	// descendant and the logs recorded on createdAt.
	ListRootSchedules(ctx context.Context, username, createdAt string) ([]*entity.Schedule, error)
	CreateSchedule(ctx context.Context, input CreateScheduleInput) (*entity.Schedule, error)
	UpdateSchedule(ctx context.Context, input UpdateScheduleInput) (*entity.Schedule, error)
	DeleteSchedule(ctx context.Context, id int64) error
}
