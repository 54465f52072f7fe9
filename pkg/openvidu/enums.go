package openvidu

// The platform treats these as opaque string tokens; builders never reject an
// unknown value. Valid() is there for callers who want to fail early instead
// of letting the server bounce the request.

type MediaMode string

const (
	MediaModeRouted  MediaMode = "ROUTED"
	MediaModeRelayed MediaMode = "RELAYED"
)

func (m MediaMode) Valid() bool {
	return m == MediaModeRouted || m == MediaModeRelayed
}

type RecordingMode string

const (
	RecordingModeAlways RecordingMode = "ALWAYS"
	RecordingModeManual RecordingMode = "MANUAL"
)

func (m RecordingMode) Valid() bool {
	return m == RecordingModeAlways || m == RecordingModeManual
}

type OutputMode string

const (
	OutputModeComposed   OutputMode = "COMPOSED"
	OutputModeIndividual OutputMode = "INDIVIDUAL"
)

func (m OutputMode) Valid() bool {
	return m == OutputModeComposed || m == OutputModeIndividual
}

type RecordingLayout string

const (
	RecordingLayoutBestFit                RecordingLayout = "BEST_FIT"
	RecordingLayoutPictureInPicture       RecordingLayout = "PICTURE_IN_PICTURE"
	RecordingLayoutVerticalPresentation   RecordingLayout = "VERTICAL_PRESENTATION"
	RecordingLayoutHorizontalPresentation RecordingLayout = "HORIZONTAL_PRESENTATION"
	RecordingLayoutCustom                 RecordingLayout = "CUSTOM"
)

func (l RecordingLayout) Valid() bool {
	switch l {
	case RecordingLayoutBestFit,
		RecordingLayoutPictureInPicture,
		RecordingLayoutVerticalPresentation,
		RecordingLayoutHorizontalPresentation,
		RecordingLayoutCustom:
		return true
	}
	return false
}

// Role is the permission level a token grants inside a session.
type Role string

const (
	RoleSubscriber Role = "SUBSCRIBER"
	RolePublisher  Role = "PUBLISHER"
	RoleModerator  Role = "MODERATOR"
)

func (r Role) Valid() bool {
	return r == RoleSubscriber || r == RolePublisher || r == RoleModerator
}

// RecordingStatus follows a recording through its lifecycle on the platform.
type RecordingStatus string

const (
	RecordingStatusStarting  RecordingStatus = "starting"
	RecordingStatusStarted   RecordingStatus = "started"
	RecordingStatusStopped   RecordingStatus = "stopped"
	RecordingStatusAvailable RecordingStatus = "available"
	RecordingStatusFailed    RecordingStatus = "failed"
)

func (s RecordingStatus) Valid() bool {
	switch s {
	case RecordingStatusStarting,
		RecordingStatusStarted,
		RecordingStatusStopped,
		RecordingStatusAvailable,
		RecordingStatusFailed:
		return true
	}
	return false
}
