package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresenceDirectory_RecordAndLookup(t *testing.T) {
	directory := NewPresenceDirectory()

	_, ok := directory.Lookup(1)
	assert.False(t, ok)

	directory.Record(1, "conn-a")

	connID, ok := directory.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "conn-a", connID)
	assert.Equal(t, 1, directory.Len())
}

func TestPresenceDirectory_ReconnectOverwrites(t *testing.T) {
	directory := NewPresenceDirectory()

	directory.Record(1, "conn-a")
	directory.Record(1, "conn-b")

	connID, ok := directory.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "conn-b", connID)
	assert.Equal(t, 1, directory.Len())
}

func TestPresenceDirectory_RemoveCurrent(t *testing.T) {
	directory := NewPresenceDirectory()

	directory.Record(1, "conn-a")

	assert.True(t, directory.Remove(1, "conn-a"))

	_, ok := directory.Lookup(1)
	assert.False(t, ok)
	assert.Equal(t, 0, directory.Len())
}

func TestPresenceDirectory_RemoveStaleIsNoOp(t *testing.T) {
	directory := NewPresenceDirectory()

	// conn-a was superseded by a reconnect; its late removal must not evict
	// the successor.
	directory.Record(1, "conn-a")
	directory.Record(1, "conn-b")

	assert.False(t, directory.Remove(1, "conn-a"))

	connID, ok := directory.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "conn-b", connID)
}

func TestPresenceDirectory_RemoveUnknownUser(t *testing.T) {
	directory := NewPresenceDirectory()

	assert.False(t, directory.Remove(42, "conn-a"))
}
