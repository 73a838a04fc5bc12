package model

import "time"

// UserActivityModel mirrors the 'user_activities' table. CreatedAt is
// indexed because the replay query range-scans it.
type UserActivityModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	UserID         int64  `gorm:"index;not null"`
	PropertyID     int64  `gorm:"index;not null"`
	ActivityTypeID int64  `gorm:"index;not null"`
	Note           string `gorm:"type:text"`
	Latitude       *float64
	Longitude      *float64
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time

	User         *UserModel         `gorm:"foreignKey:UserID"`
	Property     *PropertyModel     `gorm:"foreignKey:PropertyID"`
	ActivityType *ActivityTypeModel `gorm:"foreignKey:ActivityTypeID"`
}

// TableName explicitly sets the table name for GORM.
func (UserActivityModel) TableName() string {
	return "user_activities"
}
