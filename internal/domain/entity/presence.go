package entity

import "time"

// PresenceStatus is the durable two-valued presence state of a user.
type PresenceStatus string

const (
	StatusOnline  PresenceStatus = "ONLINE"
	StatusOffline PresenceStatus = "OFFLINE"
)

// Presence is an explicit Online | OfflineSince(timestamp) union. The offline
// timestamp doubles as the replay watermark, so "online" deliberately carries
// no timestamp at all instead of a nullable lastSeen field.
type Presence struct {
	status       PresenceStatus
	offlineSince time.Time
}

// Online returns the presence of a currently connected user.
func Online() Presence {
	return Presence{status: StatusOnline}
}

// OfflineSince returns the presence of a user last seen at t.
func OfflineSince(t time.Time) Presence {
	return Presence{status: StatusOffline, offlineSince: t}
}

// Status returns the two-valued status. The zero value reads as OFFLINE.
func (p Presence) Status() PresenceStatus {
	if p.status == StatusOnline {
		return StatusOnline
	}

	return StatusOffline
}

// IsOnline reports whether the user is online.
func (p Presence) IsOnline() bool {
	return p.status == StatusOnline
}

// LastSeen returns the offline watermark. ok is false while the user is
// online, or when no disconnect was ever recorded.
func (p Presence) LastSeen() (lastSeen time.Time, ok bool) {
	if p.status == StatusOnline || p.offlineSince.IsZero() {
		return time.Time{}, false
	}

	return p.offlineSince, true
}
