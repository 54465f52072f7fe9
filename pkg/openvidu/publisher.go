package openvidu

import "errors"

// ErrStreamIDMissing is returned when a publisher map lacks "streamId".
var ErrStreamIDMissing = errors.New("publisher map missing streamId")

// Publisher is a media stream a connection sends into a session.
type Publisher struct {
	streamID        string
	createdAt       *int64
	hasAudio        bool
	hasVideo        bool
	audioActive     bool
	videoActive     bool
	frameRate       int
	typeOfVideo     string
	videoDimensions string
}

// PublisherParams spells out every Publisher field. No hidden defaults.
type PublisherParams struct {
	StreamID        string
	CreatedAt       *int64
	HasAudio        bool
	HasVideo        bool
	AudioActive     bool
	VideoActive     bool
	FrameRate       int
	TypeOfVideo     string
	VideoDimensions string
}

func NewPublisher(p PublisherParams) *Publisher {
	return &Publisher{
		streamID:        p.StreamID,
		createdAt:       p.CreatedAt,
		hasAudio:        p.HasAudio,
		hasVideo:        p.HasVideo,
		audioActive:     p.AudioActive,
		videoActive:     p.VideoActive,
		frameRate:       p.FrameRate,
		typeOfVideo:     p.TypeOfVideo,
		videoDimensions: p.VideoDimensions,
	}
}

func (p *Publisher) StreamID() string        { return p.streamID }
func (p *Publisher) CreatedAt() *int64       { return p.createdAt }
func (p *Publisher) HasAudio() bool          { return p.hasAudio }
func (p *Publisher) HasVideo() bool          { return p.hasVideo }
func (p *Publisher) AudioActive() bool       { return p.audioActive }
func (p *Publisher) VideoActive() bool       { return p.videoActive }
func (p *Publisher) FrameRate() int          { return p.frameRate }
func (p *Publisher) TypeOfVideo() string     { return p.typeOfVideo }
func (p *Publisher) VideoDimensions() string { return p.videoDimensions }

// ToMap serializes the publisher sparsely: keys whose value is nil or an
// empty string are omitted, same rule as Connection.ToMap.
func (p *Publisher) ToMap() map[string]any {
	m := map[string]any{
		"streamId":        p.streamID,
		"createdAt":       int64OrNil(p.createdAt),
		"hasAudio":        p.hasAudio,
		"hasVideo":        p.hasVideo,
		"audioActive":     p.audioActive,
		"videoActive":     p.videoActive,
		"frameRate":       p.frameRate,
		"typeOfVideo":     p.typeOfVideo,
		"videoDimensions": p.videoDimensions,
	}
	pruneEmpty(m)
	return m
}

// PublisherFromMap builds a fresh Publisher from a decoded JSON map.
// "streamId" is the only required key.
func PublisherFromMap(m map[string]any) (*Publisher, error) {
	if _, ok := m["streamId"]; !ok {
		return nil, ErrStreamIDMissing
	}
	return &Publisher{
		streamID:        stringAt(m, "streamId", ""),
		createdAt:       int64PtrAt(m, "createdAt"),
		hasAudio:        boolAt(m, "hasAudio", false),
		hasVideo:        boolAt(m, "hasVideo", false),
		audioActive:     boolAt(m, "audioActive", false),
		videoActive:     boolAt(m, "videoActive", false),
		frameRate:       int(floatAt(m, "frameRate")),
		typeOfVideo:     stringAt(m, "typeOfVideo", ""),
		videoDimensions: stringAt(m, "videoDimensions", ""),
	}, nil
}
