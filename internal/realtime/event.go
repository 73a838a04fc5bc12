// Package realtime implements the websocket-facing presence and activity
// subsystem: a connection registry, a durable presence directory, an event
// bus and a paced replay engine. It is transport-agnostic; the websocket
// delivery owns the sockets and feeds connections in through the Sender
// interface.
package realtime

import (
	"time"

	"tracker/internal/domain/entity"
)

// Event is one member of the closed outbound event set. EventName is the
// wire-level discriminator clients subscribe on.
type Event interface {
	EventName() string
}

// Envelope is the wire frame every outbound event travels in. Timestamp is
// stamped by the bus at emission time.
type Envelope struct {
	Event     string    `json:"event"`
	Data      Event     `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// PresenceChanged announces a durable presence transition to every client.
type PresenceChanged struct {
	UserID    int64                 `json:"userId"`
	Status    entity.PresenceStatus `json:"status"`
	UserEmail string                `json:"userEmail"`
}

func (PresenceChanged) EventName() string { return "presence-changed" }

// ActorPayload is the wire form of the joined actor snapshot.
type ActorPayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Score int    `json:"score"`
}

// PropertyPayload is the wire form of the joined property snapshot.
type PropertyPayload struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ActivityTypePayload is the wire form of the joined activity-type snapshot.
type ActivityTypePayload struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Weight      int    `json:"weight"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

// ActivityPayload is the wire form of one activity record with its joined
// snapshots.
type ActivityPayload struct {
	ID             int64                `json:"id"`
	UserID         int64                `json:"userId"`
	PropertyID     int64                `json:"propertyId"`
	ActivityTypeID int64                `json:"activityTypeId"`
	Note           string               `json:"note,omitempty"`
	Latitude       *float64             `json:"latitude,omitempty"`
	Longitude      *float64             `json:"longitude,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
	User           *ActorPayload        `json:"user,omitempty"`
	Property       *PropertyPayload     `json:"property,omitempty"`
	ActivityType   *ActivityTypePayload `json:"activityType,omitempty"`
}

// NewActivityPayload maps a domain activity record onto its wire form.
func NewActivityPayload(activity *entity.UserActivity) ActivityPayload {
	payload := ActivityPayload{
		ID:             activity.ID,
		UserID:         activity.UserID,
		PropertyID:     activity.PropertyID,
		ActivityTypeID: activity.ActivityTypeID,
		Note:           activity.Note,
		Latitude:       activity.Latitude,
		Longitude:      activity.Longitude,
		CreatedAt:      activity.CreatedAt,
	}

	if activity.Actor != nil {
		payload.User = &ActorPayload{
			ID:    activity.Actor.ID,
			Name:  activity.Actor.Name,
			Email: activity.Actor.Email,
			Score: activity.Actor.Score,
		}
	}
	if activity.Property != nil {
		payload.Property = &PropertyPayload{
			ID:        activity.Property.ID,
			Name:      activity.Property.Name,
			Address:   activity.Property.Address,
			Latitude:  activity.Property.Latitude,
			Longitude: activity.Property.Longitude,
		}
	}
	if activity.Type != nil {
		payload.ActivityType = &ActivityTypePayload{
			ID:          activity.Type.ID,
			Name:        activity.Type.Name,
			Weight:      activity.Type.Weight,
			Icon:        activity.Type.Icon,
			Description: activity.Type.Description,
		}
	}

	return payload
}

// LiveActivity carries a freshly ingested activity record to every client.
// Type distinguishes live records from replayed ones on the client side.
type LiveActivity struct {
	ActivityPayload
	Type string `json:"type"`
}

func (LiveActivity) EventName() string { return "live-activity" }

// NewLiveActivity wraps a record as a live "created" event.
func NewLiveActivity(activity *entity.UserActivity) LiveActivity {
	return LiveActivity{
		ActivityPayload: NewActivityPayload(activity),
		Type:            "created",
	}
}

// Notification types.
const (
	NotificationMilestone  = "milestone"
	NotificationHighImpact = "high-impact"
)

// Notification is a broadcast achievement announcement.
type Notification struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Type    string `json:"type"`
}

func (Notification) EventName() string { return "notification" }

// ReplayStart opens a paced replay of missed activity.
type ReplayStart struct {
	TotalCount int   `json:"totalCount"`
	IntervalMs int64 `json:"intervalMs"`
}

func (ReplayStart) EventName() string { return "replay-start" }

// ReplayActivity carries one missed record. ReplayIndex is 1-based.
type ReplayActivity struct {
	Record      ActivityPayload `json:"record"`
	ReplayIndex int             `json:"replayIndex"`
	TotalCount  int             `json:"totalCount"`
}

func (ReplayActivity) EventName() string { return "replay-activity" }

// ReplayEnd closes a replay.
type ReplayEnd struct {
	TotalCount      int   `json:"totalCount"`
	TotalDurationMs int64 `json:"totalDurationMs"`
}

func (ReplayEnd) EventName() string { return "replay-end" }

// OnlineUser is one row of the online-users response.
type OnlineUser struct {
	ID       int64                 `json:"id"`
	Name     string                `json:"name"`
	Email    string                `json:"email"`
	Status   entity.PresenceStatus `json:"status"`
	Score    int                   `json:"score"`
	LastSeen *time.Time            `json:"lastSeen"`
}

// OnlineUsers answers a get-online-users request.
type OnlineUsers struct {
	Users []OnlineUser `json:"users"`
	Count int          `json:"count"`
}

func (OnlineUsers) EventName() string { return "online-users" }

// Pong answers a ping request.
type Pong struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    int64     `json:"userId"`
}

func (Pong) EventName() string { return "pong" }
