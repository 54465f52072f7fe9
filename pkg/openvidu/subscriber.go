package openvidu

// Subscriber is the stream identifier of the publisher this connection
// receives. On the wire it is a bare string inside the "subscribers" array;
// the identifier must match some other connection's publisher streamId, an
// invariant the platform maintains, not this type.
type Subscriber string

// PublisherStreamID returns the identifier of the publisher stream being
// received.
func (s Subscriber) PublisherStreamID() string { return string(s) }
