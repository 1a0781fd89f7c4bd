package model

import "time"

// LogModel mirrors the 'logs' table.
type LogModel struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	Value       int            `gorm:"not null"`
	UnitID      int64          `gorm:"not null;index"`
	Unit        *UnitModel     `gorm:"foreignKey:UnitID"`
	ScheduleID  int64          `gorm:"not null;index"`
	Schedule    *ScheduleModel `gorm:"foreignKey:ScheduleID"`
	CreatedByID int64          `gorm:"not null;index"`
	CreatedBy   *MemberModel   `gorm:"foreignKey:CreatedByID"`
	CreatedAt   time.Time      `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LogModel) TableName() string {
	return "logs"
}
