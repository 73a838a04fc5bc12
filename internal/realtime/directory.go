package realtime

import "sync"

// PresenceDirectory maps authenticated user IDs to their current connection
// ID. A user has at most one current connection; a reconnect overwrites the
// previous entry, and the guarded Remove keeps the late disconnect of an
// overwritten connection from evicting its successor.
type PresenceDirectory struct {
	mu     sync.Mutex
	byUser map[int64]string
}

// NewPresenceDirectory creates an empty directory.
func NewPresenceDirectory() *PresenceDirectory {
	return &PresenceDirectory{
		byUser: make(map[int64]string),
	}
}

// Record makes connID the user's current connection, unconditionally
// replacing any previous one.
func (d *PresenceDirectory) Record(userID int64, connID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.byUser[userID] = connID
}

// Lookup returns the user's current connection ID, if any.
func (d *PresenceDirectory) Lookup(userID int64) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	connID, ok := d.byUser[userID]

	return connID, ok
}

// Remove drops the user's entry only if connID is still the current one.
// It reports whether an entry was removed; a stale connID is a no-op.
func (d *PresenceDirectory) Remove(userID int64, connID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	current, ok := d.byUser[userID]
	if !ok || current != connID {
		return false
	}

	delete(d.byUser, userID)

	return true
}

// Len returns the number of users with a current connection.
func (d *PresenceDirectory) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.byUser)
}
