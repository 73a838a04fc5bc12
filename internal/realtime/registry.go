package realtime

import "sync"

// Sender delivers envelopes to a single live connection. The websocket
// delivery implements it on top of a buffered per-connection send channel;
// Send must never block the caller indefinitely.
type Sender interface {
	Send(envelope Envelope) error
	Close()
}

// Registry is the live connection map. The websocket transport owns the
// additions and removals; the bus only reads it. It is handed around by
// reference so every collaborator observes one shared map.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]Sender
}

// NewRegistry creates an empty connection registry.
func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[string]Sender),
	}
}

// Add registers a live connection under its connection ID.
func (r *Registry) Add(connID string, sender Sender) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conns[connID] = sender
}

// Remove drops a connection from the registry.
func (r *Registry) Remove(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.conns, connID)
}

// Get returns the sender for a connection ID, if it is still live.
func (r *Registry) Get(connID string) (Sender, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sender, ok := r.conns[connID]

	return sender, ok
}

// Each calls fn for every live connection. The snapshot is taken under the
// read lock so fn runs without holding it.
func (r *Registry) Each(fn func(connID string, sender Sender)) {
	r.mu.RLock()
	snapshot := make(map[string]Sender, len(r.conns))
	for connID, sender := range r.conns {
		snapshot[connID] = sender
	}
	r.mu.RUnlock()

	for connID, sender := range snapshot {
		fn(connID, sender)
	}
}

// Len returns the number of live connections.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.conns)
}
