package openvidu

// SessionProperties is the session-wide configuration bag: media routing,
// recording policy and the layout defaults recordings inherit.
type SessionProperties struct {
	MediaMode              MediaMode
	RecordingMode          RecordingMode
	DefaultOutputMode      OutputMode
	DefaultRecordingLayout RecordingLayout
	CustomSessionID        string
	DefaultCustomLayout    string
}

// BuildSessionProperties fills a SessionProperties from a decoded JSON map,
// with the same presence-then-default rule as BuildRecordingProperties.
// Non-map input yields nil.
func BuildSessionProperties(v any) *SessionProperties {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return &SessionProperties{
		MediaMode:              MediaMode(stringAt(m, "mediaMode", string(MediaModeRouted))),
		RecordingMode:          RecordingMode(stringAt(m, "recordingMode", string(RecordingModeManual))),
		DefaultOutputMode:      OutputMode(stringAt(m, "defaultOutputMode", string(OutputModeComposed))),
		DefaultRecordingLayout: RecordingLayout(stringAt(m, "defaultRecordingLayout", string(RecordingLayoutBestFit))),
		CustomSessionID:        stringAt(m, "customSessionId", ""),
		DefaultCustomLayout:    stringAt(m, "defaultCustomLayout", ""),
	}
}
