package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"tracker/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_WireShape(t *testing.T) {
	lat := 25.03
	lng := 121.56
	record := &entity.UserActivity{
		ID:             42,
		UserID:         7,
		PropertyID:     3,
		ActivityTypeID: 2,
		Note:           "spoke with owner",
		Latitude:       &lat,
		Longitude:      &lng,
		CreatedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Actor:          &entity.ActivityActor{ID: 7, Name: "Ada", Email: "ada@example.com", Score: 50},
		Property:       &entity.ActivityProperty{ID: 3, Name: "Hilltop Duplex", Address: "12 Hill Rd"},
		Type:           &entity.ActivityTypeInfo{ID: 2, Name: "visit", Weight: 3, Icon: "🏠"},
	}

	envelope := Envelope{
		Event:     "live-activity",
		Data:      NewLiveActivity(record),
		Timestamp: time.Date(2026, 3, 1, 12, 0, 1, 0, time.UTC),
	}

	raw, err := json.Marshal(envelope)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "live-activity", decoded["event"])
	assert.Contains(t, decoded, "timestamp")

	data, ok := decoded["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "created", data["type"])
	assert.Equal(t, float64(42), data["id"])
	assert.Equal(t, "spoke with owner", data["note"])

	actor, ok := data["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ada", actor["name"])

	property, ok := data["property"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Hilltop Duplex", property["name"])

	activityType, ok := data["activityType"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), activityType["weight"])
}

func TestEvent_Names(t *testing.T) {
	cases := map[string]Event{
		"presence-changed": PresenceChanged{},
		"live-activity":    LiveActivity{},
		"notification":     Notification{},
		"replay-start":     ReplayStart{},
		"replay-activity":  ReplayActivity{},
		"replay-end":       ReplayEnd{},
		"online-users":     OnlineUsers{},
		"pong":             Pong{},
	}

	for name, event := range cases {
		assert.Equal(t, name, event.EventName())
	}
}

func TestHandshake_TokenPrecedence(t *testing.T) {
	h := Handshake{
		Auth:          &AuthPayload{Token: "payload-token"},
		Authorization: "Bearer header-token",
	}
	assert.Equal(t, "payload-token", h.token())

	h = Handshake{Authorization: "bearer header-token"}
	assert.Equal(t, "header-token", h.token())

	h = Handshake{Authorization: "Basic abc"}
	assert.Equal(t, "", h.token())

	assert.Equal(t, "", Handshake{}.token())
}
