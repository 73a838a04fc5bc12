package entity

import "time"

// ActivityActor is the denormalized actor snapshot joined onto an activity
// record for transport. Read-only from the core's perspective.
type ActivityActor struct {
	ID    int64
	Name  string
	Email string
	Score int
}

// ActivityProperty is the denormalized property snapshot joined onto an
// activity record.
type ActivityProperty struct {
	ID        int64
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

// ActivityTypeInfo is the denormalized activity-type snapshot joined onto an
// activity record.
type ActivityTypeInfo struct {
	ID          int64
	Name        string
	Weight      int
	Icon        string
	Description string
}

// UserActivity is one logged field action: an actor did something of a given
// type against a property. The record itself is immutable once created except
// for the property/type/note fields, each mutation of which carries a
// compensating score adjustment.
type UserActivity struct {
	ID             int64
	UserID         int64
	PropertyID     int64
	ActivityTypeID int64
	Note           string
	Latitude       *float64
	Longitude      *float64
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined snapshots, populated by queries that denormalize for transport.
	Actor    *ActivityActor
	Property *ActivityProperty
	Type     *ActivityTypeInfo
}

// ActivityFilters narrows activity list queries. Nil fields are ignored.
type ActivityFilters struct {
	UserID         *int64
	ActivityTypeID *int64
	After          *time.Time
	DateFrom       *time.Time
	DateTo         *time.Time
}
