package model

import "time"

// MemberModel mirrors the 'members' table.
type MemberModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Username     string  `gorm:"type:varchar(20);uniqueIndex;not null"`
	Password     string  `gorm:"type:varchar(64);not null"`
	FullName     string  `gorm:"type:varchar(10);not null"`
	Gender       string  `gorm:"type:varchar(10);not null"`
	DateOfBirth  *string `gorm:"type:varchar(10)"`
	RefreshToken *string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}
