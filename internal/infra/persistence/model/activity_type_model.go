package model

import "time"

// ActivityTypeModel mirrors the 'activity_types' table.
type ActivityTypeModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Weight      int    `gorm:"not null"`
	Icon        string `gorm:"type:varchar(100)"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityTypeModel) TableName() string {
	return "activity_types"
}
