package openvidu

// RecordingProperties is the parameter bag sent when starting a recording.
// Immutable by convention: built once, read via its fields, never mutated.
type RecordingProperties struct {
	HasAudio        bool
	HasVideo        bool
	Name            string
	OutputMode      OutputMode
	RecordingLayout RecordingLayout
	CustomLayout    string
	Resolution      string
}

// BuildRecordingProperties fills a RecordingProperties from a decoded JSON
// map. Absent keys get the documented defaults; present keys win verbatim,
// even when the decoded value is nil (a mistyped value decays to the zero
// value rather than the default). Anything that is not a map[string]any
// yields nil.
//
// CustomLayout defaults to the media-mode constant ROUTED. That mirrors the
// upstream API client byte for byte; see DESIGN.md before "fixing" it.
func BuildRecordingProperties(v any) *RecordingProperties {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return &RecordingProperties{
		HasAudio:        boolAt(m, "hasAudio", true),
		HasVideo:        boolAt(m, "hasVideo", true),
		Name:            stringAt(m, "name", string(RecordingLayoutBestFit)),
		OutputMode:      OutputMode(stringAt(m, "outputMode", string(OutputModeComposed))),
		RecordingLayout: RecordingLayout(stringAt(m, "recordingLayout", string(RecordingLayoutBestFit))),
		CustomLayout:    stringAt(m, "customLayout", string(MediaModeRouted)),
		Resolution:      stringAt(m, "resolution", ""),
	}
}

// boolAt returns m[key] when the key exists, def otherwise. Presence is what
// matters: an explicit false (or a nil that decays to false) is never
// replaced by the default.
func boolAt(m map[string]any, key string, def bool) bool {
	raw, ok := m[key]
	if !ok {
		return def
	}
	v, _ := raw.(bool)
	return v
}

func stringAt(m map[string]any, key string, def string) string {
	raw, ok := m[key]
	if !ok {
		return def
	}
	v, _ := raw.(string)
	return v
}
