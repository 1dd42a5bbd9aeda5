// Package events publishes roster change notifications.
package events

import (
	"context"
	"time"

	"github.com/aidar/turmas/internal/domain"
)

// Type identifies what happened to a group or roster.
type Type string

const (
	GroupCreated  Type = "group.created"
	GroupRemoved  Type = "group.removed"
	GroupShuffled Type = "group.shuffled"
	PlayerAdded   Type = "player.added"
	PlayerRemoved Type = "player.removed"
)

// Event is the JSON payload published for every successful mutation.
type Event struct {
	Type       Type           `json:"type"`
	Group      string         `json:"group"`
	Player     *domain.Player `json:"player,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
	// Device is the authenticated device that made the change, if any.
	Device string `json:"device,omitempty"`
}

type deviceKey struct{}

// WithDevice attaches the acting device id to ctx.
func WithDevice(ctx context.Context, deviceID string) context.Context {
	return context.WithValue(ctx, deviceKey{}, deviceID)
}

// DeviceFrom returns the device id set by WithDevice, or "".
func DeviceFrom(ctx context.Context) string {
	deviceID, _ := ctx.Value(deviceKey{}).(string)
	return deviceID
}

// Publisher delivers events. Implementations never fail the caller:
// delivery problems are logged.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, Event) {}

// Subject builds the broker subject for an event type.
func Subject(prefix string, eventType Type) string {
	if prefix == "" {
		return string(eventType)
	}
	return prefix + "." + string(eventType)
}
