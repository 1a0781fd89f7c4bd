package model

import "time"

// ScheduleModel mirrors the 'schedules' table. Units are linked through 'schedule_units'.
type ScheduleModel struct {
	ID          int64            `gorm:"primaryKey;autoIncrement"`
	Name        string           `gorm:"type:varchar(21);not null"`
	Depth       int              `gorm:"not null"`
	ParentID    *int64           `gorm:"index"`
	Parent      *ScheduleModel   `gorm:"foreignKey:ParentID"`
	Children    []*ScheduleModel `gorm:"foreignKey:ParentID"`
	Units       []*UnitModel     `gorm:"many2many:schedule_units;joinForeignKey:ScheduleID;joinReferences:UnitID"`
	Logs        []*LogModel      `gorm:"foreignKey:ScheduleID"`
	CreatedByID int64            `gorm:"not null;index"`
	CreatedBy   *MemberModel     `gorm:"foreignKey:CreatedByID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScheduleModel) TableName() string {
	return "schedules"
}

// UnitModel mirrors the 'units' table.
type UnitModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(10);uniqueIndex;not null"`
}

// TableName explicitly sets the table name for GORM.
func (UnitModel) TableName() string {
	return "units"
}
