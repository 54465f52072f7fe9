package openvidu

import (
	"errors"

	json "github.com/goccy/go-json"
)

// ErrRecordingIDMissing is returned when a recording map lacks "id".
var ErrRecordingIDMissing = errors.New("recording map missing id")

// Recording is a snapshot of a platform recording: identity, where it is in
// its lifecycle, and the properties it was started with.
type Recording struct {
	ID         string
	SessionID  string
	CreatedAt  *int64
	Size       int64
	Duration   float64
	URL        string
	Status     RecordingStatus
	Properties RecordingProperties
}

// RecordingFromMap builds a Recording from a decoded JSON map. "id" is
// required; the property keys run through BuildRecordingProperties so a
// partial payload picks up the same defaults the builder documents.
func RecordingFromMap(m map[string]any) (*Recording, error) {
	if _, ok := m["id"]; !ok {
		return nil, ErrRecordingIDMissing
	}
	props := BuildRecordingProperties(m)
	return &Recording{
		ID:         stringAt(m, "id", ""),
		SessionID:  stringAt(m, "sessionId", ""),
		CreatedAt:  int64PtrAt(m, "createdAt"),
		Size:       int64(floatAt(m, "size")),
		Duration:   floatAt(m, "duration"),
		URL:        stringAt(m, "url", ""),
		Status:     RecordingStatus(stringAt(m, "status", "")),
		Properties: *props,
	}, nil
}

// RecordingFromJSON builds a Recording from JSON text.
func RecordingFromJSON(data []byte) (*Recording, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return RecordingFromMap(m)
}

// ToMap serializes the recording with the same nil/empty-string pruning as
// the other value objects.
func (r *Recording) ToMap() map[string]any {
	m := map[string]any{
		"id":              r.ID,
		"sessionId":       r.SessionID,
		"createdAt":       int64OrNil(r.CreatedAt),
		"size":            r.Size,
		"duration":        r.Duration,
		"url":             r.URL,
		"status":          string(r.Status),
		"hasAudio":        r.Properties.HasAudio,
		"hasVideo":        r.Properties.HasVideo,
		"name":            r.Properties.Name,
		"outputMode":      string(r.Properties.OutputMode),
		"recordingLayout": string(r.Properties.RecordingLayout),
		"customLayout":    r.Properties.CustomLayout,
		"resolution":      r.Properties.Resolution,
	}
	pruneEmpty(m)
	return m
}
