package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent(t *testing.T) {
	ev, err := ParseEvent([]byte(`{
		"event": "recordingStatusChanged",
		"timestamp": 1700000000000,
		"sessionId": "ses_1",
		"id": "rec_1",
		"status": "available",
		"duration": 42.5,
		"size": 1048576
	}`))
	require.NoError(t, err)

	assert.Equal(t, RecordingStatusChanged, ev.Event)
	assert.Equal(t, int64(1700000000000), ev.Timestamp)
	assert.Equal(t, "ses_1", ev.SessionID)
	assert.Equal(t, "rec_1", ev.RecordingID)
	assert.Equal(t, "available", ev.Status)
	assert.Equal(t, 42.5, ev.Duration)
	assert.Equal(t, int64(1048576), ev.Size)
}

func TestParseEventParticipant(t *testing.T) {
	ev, err := ParseEvent([]byte(`{
		"event": "participantLeft",
		"sessionId": "ses_1",
		"connectionId": "con_1",
		"reason": "disconnect"
	}`))
	require.NoError(t, err)

	assert.Equal(t, ParticipantLeft, ev.Event)
	assert.Equal(t, "con_1", ev.ConnectionID)
	assert.Equal(t, "disconnect", ev.Reason)
}

func TestParseEventMissingType(t *testing.T) {
	_, err := ParseEvent([]byte(`{"sessionId":"ses_1"}`))
	assert.ErrorIs(t, err, ErrMissingEventType)
}

func TestParseEventBadJSON(t *testing.T) {
	_, err := ParseEvent([]byte(`{"event":`))
	assert.Error(t, err)
}
