// Package webhook decodes the lifecycle events the platform POSTs to the
// application and fans them out to registered callbacks.
package webhook

import (
	"errors"

	json "github.com/goccy/go-json"
)

// ErrMissingEventType is returned for payloads without an "event" field.
var ErrMissingEventType = errors.New("webhook payload missing event type")

type EventType string

const (
	SessionCreated            EventType = "sessionCreated"
	SessionDestroyed          EventType = "sessionDestroyed"
	ParticipantJoined         EventType = "participantJoined"
	ParticipantLeft           EventType = "participantLeft"
	WebRTCConnectionCreated   EventType = "webrtcConnectionCreated"
	WebRTCConnectionDestroyed EventType = "webrtcConnectionDestroyed"
	RecordingStatusChanged    EventType = "recordingStatusChanged"
)

// Event is one webhook delivery. Only Event and Timestamp are common to all
// types; the rest is populated per type and zero otherwise.
type Event struct {
	Event        EventType `json:"event"`
	Timestamp    int64     `json:"timestamp,omitempty"`
	SessionID    string    `json:"sessionId,omitempty"`
	ConnectionID string    `json:"connectionId,omitempty"`
	Platform     string    `json:"platform,omitempty"`
	Location     string    `json:"location,omitempty"`
	Reason       string    `json:"reason,omitempty"`
	RecordingID  string    `json:"id,omitempty"`
	Status       string    `json:"status,omitempty"`
	Duration     float64   `json:"duration,omitempty"`
	Size         int64     `json:"size,omitempty"`
}

// ParseEvent decodes a webhook body. The event type must be present; every
// other field is optional and passes through unvalidated.
func ParseEvent(data []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, err
	}
	if ev.Event == "" {
		return nil, ErrMissingEventType
	}
	return &ev, nil
}
