package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/turmas/internal/domain"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "turmas.player.added", Subject("turmas", PlayerAdded))
	assert.Equal(t, "group.removed", Subject("", GroupRemoved))
}

func TestEventJSON(t *testing.T) {
	at := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	event := Event{
		Type:       PlayerAdded,
		Group:      "U11",
		Player:     &domain.Player{Name: "Alice", Team: domain.TeamA},
		OccurredAt: at,
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "player.added",
		"group": "U11",
		"player": {"name": "Alice", "team": "Time A"},
		"occurred_at": "2024-03-10T12:00:00Z"
	}`, string(data))

	data, err = json.Marshal(Event{Type: GroupRemoved, Group: "U11", OccurredAt: at})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "player")
}

func TestDeviceContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, DeviceFrom(ctx))

	ctx = WithDevice(ctx, "phone-1")
	assert.Equal(t, "phone-1", DeviceFrom(ctx))

	data, err := json.Marshal(Event{Type: GroupCreated, Group: "U11", Device: DeviceFrom(ctx)})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"device":"phone-1"`)
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NotPanics(t, func() { p.Publish(context.Background(), Event{Type: GroupCreated}) })
}
