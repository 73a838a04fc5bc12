// Package model contains the GORM persistence models mirroring the database
// tables. They are mapped to and from pure domain entities by the postgres
// repositories.
package model

import "time"

// UserModel mirrors the 'users' table. Status and LastSeen together encode
// durable presence: LastSeen is set only while the user is OFFLINE and holds
// the replay watermark.
type UserModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Email         string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name          string `gorm:"type:varchar(100);not null"`
	PasswordHash  string `gorm:"type:varchar(255);not null"`
	Role          string `gorm:"type:varchar(20);not null;default:'SALES_REP'"`
	AccountStatus string `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	Score         int    `gorm:"not null;default:0"`
	Status        string `gorm:"type:varchar(10);not null;default:'OFFLINE'"`
	LastSeen      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
