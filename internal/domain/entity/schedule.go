package entity

import "time"

// RootScheduleDepth is the depth of a schedule without a parent.
const RootScheduleDepth = 1

// Schedule is a node in a member's schedule tree.
type Schedule struct {
	ID          int64
	Name        string
	Depth       int
	ParentID    *int64
	Parent      *Schedule
	Children    []*Schedule
	Units       []*Unit
	Logs        []*Log
	CreatedByID int64
	CreatedBy   *Member
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerUsername implements Owned.
func (s *Schedule) OwnerUsername() string {
	if s.CreatedBy == nil {
		return ""
	}

	return s.CreatedBy.Username
}

// UnitIDs returns the ids of the attached units in order.
func (s *Schedule) UnitIDs() []int64 {
	ids := make([]int64, 0, len(s.Units))
	for _, u := range s.Units {
		ids = append(ids, u.ID)
	}

	return ids
}
