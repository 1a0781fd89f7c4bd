package entity

import "time"

// Log is a numeric record attached to a schedule.
type Log struct {
	ID          int64
	Value       int
	UnitID      int64
	Unit        *Unit
	ScheduleID  int64
	Schedule    *Schedule
	CreatedByID int64
	CreatedBy   *Member
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerUsername implements Owned.
func (l *Log) OwnerUsername() string {
	if l.CreatedBy == nil {
		return ""
	}

	return l.CreatedBy.Username
}
