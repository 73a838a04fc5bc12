// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Role describes what a user account is allowed to do.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleSalesRep Role = "SALES_REP"
)

// AccountStatus is the administrative state of an account, independent of
// realtime presence.
type AccountStatus string

const (
	AccountActive   AccountStatus = "ACTIVE"
	AccountInactive AccountStatus = "INACTIVE"
	AccountDeleted  AccountStatus = "DELETED"
)

// User is a sales representative or administrator. Score is the accumulated
// weighted sum of the user's activities; it is only ever adjusted through
// atomic increments at the store.
type User struct {
	ID            int64
	Email         string
	Name          string
	PasswordHash  string
	Role          Role
	AccountStatus AccountStatus
	Score         int
	Presence      Presence
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActive reports whether the account may authenticate.
func (u *User) IsActive() bool {
	return u.AccountStatus == AccountActive
}

// LeaderboardEntry is a read-model row for the dashboard leaderboard.
type LeaderboardEntry struct {
	ID              int64
	Name            string
	Email           string
	Score           int
	ActivitiesCount int
}
