package openvidu

import (
	"errors"

	json "github.com/goccy/go-json"
)

// ErrConnectionIDMissing is returned when a connection map lacks
// "connectionId", the only hard-required key.
var ErrConnectionIDMissing = errors.New("connection map missing connectionId")

// Connection is one participant's link to a session. Fields are reachable
// only through accessors; the struct changes through Unpublish, Unsubscribe
// and the Apply* overlays, nothing else. Not safe for concurrent use.
type Connection struct {
	connectionID string
	createdAt    *int64
	role         Role
	token        string
	location     string
	platform     string
	serverData   string
	clientData   string
	publishers   []*Publisher
	subscribers  []Subscriber
}

// ConnectionParams spells out every Connection field. The constructor fills
// nothing in: what you pass is what you get, empty collections included.
type ConnectionParams struct {
	ConnectionID string
	CreatedAt    *int64
	Role         Role
	Token        string
	Location     string
	Platform     string
	ServerData   string
	ClientData   string
	Publishers   []*Publisher
	Subscribers  []Subscriber
}

func NewConnection(p ConnectionParams) *Connection {
	return &Connection{
		connectionID: p.ConnectionID,
		createdAt:    p.CreatedAt,
		role:         p.Role,
		token:        p.Token,
		location:     p.Location,
		platform:     p.Platform,
		serverData:   p.ServerData,
		clientData:   p.ClientData,
		publishers:   p.Publishers,
		subscribers:  p.Subscribers,
	}
}

func (c *Connection) ConnectionID() string      { return c.connectionID }
func (c *Connection) CreatedAt() *int64         { return c.createdAt }
func (c *Connection) Role() Role                { return c.role }
func (c *Connection) Token() string             { return c.token }
func (c *Connection) Location() string          { return c.location }
func (c *Connection) Platform() string          { return c.platform }
func (c *Connection) ServerData() string        { return c.serverData }
func (c *Connection) ClientData() string        { return c.clientData }
func (c *Connection) Publishers() []*Publisher  { return c.publishers }
func (c *Connection) Subscribers() []Subscriber { return c.subscribers }

// Unpublish drops every publisher whose streamId equals the argument.
// Remaining order is preserved; no match is a no-op.
func (c *Connection) Unpublish(streamID string) {
	kept := c.publishers[:0]
	for _, p := range c.publishers {
		if p.StreamID() != streamID {
			kept = append(kept, p)
		}
	}
	c.publishers = kept
}

// Unsubscribe drops every subscriber whose publisher stream id equals the
// argument, with the same order/no-match semantics as Unpublish.
func (c *Connection) Unsubscribe(streamID string) {
	if len(c.subscribers) == 0 {
		return
	}
	kept := c.subscribers[:0]
	for _, s := range c.subscribers {
		if s.PublisherStreamID() != streamID {
			kept = append(kept, s)
		}
	}
	c.subscribers = kept
}

// ToMap serializes the connection sparsely: after the map is built, every
// key holding nil or an empty string is removed outright, so "absent" and
// "empty" collapse into omission. Publishers serialize recursively.
func (c *Connection) ToMap() map[string]any {
	pubs := make([]map[string]any, 0, len(c.publishers))
	for _, p := range c.publishers {
		pubs = append(pubs, p.ToMap())
	}
	m := map[string]any{
		"connectionId": c.connectionID,
		"createdAt":    int64OrNil(c.createdAt),
		"role":         string(c.role),
		"token":        c.token,
		"location":     c.location,
		"platform":     c.platform,
		"serverData":   c.serverData,
		"clientData":   c.clientData,
		"subscribers":  c.subscribers,
		"publishers":   pubs,
	}
	pruneEmpty(m)
	return m
}

// ToJSON encodes ToMap compactly.
func (c *Connection) ToJSON() ([]byte, error) {
	return json.Marshal(c.ToMap())
}

// ToJSONIndent encodes ToMap with MarshalIndent formatting.
func (c *Connection) ToJSONIndent(prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(c.ToMap(), prefix, indent)
}

// ApplyMap overlays the decoded map onto the receiver, in place. Every
// holder of this *Connection observes the change. Scalar fields absent from
// the map are reset to their null form even if currently set; subscribers
// are replaced only when the key is present; publishers are never read back
// (the wire format emits them, the overlay ignores them). "connectionId"
// must be present.
func (c *Connection) ApplyMap(m map[string]any) error {
	if _, ok := m["connectionId"]; !ok {
		return ErrConnectionIDMissing
	}
	c.connectionID = stringAt(m, "connectionId", "")
	c.createdAt = int64PtrAt(m, "createdAt")
	c.role = Role(stringAt(m, "role", ""))
	c.token = stringAt(m, "token", "")
	c.location = stringAt(m, "location", "")
	c.platform = stringAt(m, "platform", "")
	c.serverData = stringAt(m, "serverData", "")
	c.clientData = stringAt(m, "clientData", "")
	if raw, ok := m["subscribers"]; ok {
		c.subscribers = toSubscribers(raw)
	}
	return nil
}

// ApplyJSON decodes the JSON object and overlays it via ApplyMap.
func (c *Connection) ApplyJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	return c.ApplyMap(m)
}

// ConnectionFromMap builds a fresh Connection from a decoded map. Prefer
// this over ApplyMap unless you need to update an existing instance.
func ConnectionFromMap(m map[string]any) (*Connection, error) {
	c := &Connection{}
	if err := c.ApplyMap(m); err != nil {
		return nil, err
	}
	return c, nil
}

// ConnectionFromJSON builds a fresh Connection from JSON text.
func ConnectionFromJSON(data []byte) (*Connection, error) {
	c := &Connection{}
	if err := c.ApplyJSON(data); err != nil {
		return nil, err
	}
	return c, nil
}

func toSubscribers(raw any) []Subscriber {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	subs := make([]Subscriber, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			subs = append(subs, Subscriber(s))
		}
	}
	return subs
}

// pruneEmpty removes every key holding nil or "". Runs after the map is
// fully built so the rule applies uniformly.
func pruneEmpty(m map[string]any) {
	for k, v := range m {
		if v == nil || v == "" {
			delete(m, k)
		}
	}
}

func int64OrNil(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

// int64PtrAt reads an epoch-milliseconds value. JSON decoding hands numbers
// over as float64; native ints show up when the map was built in Go.
func int64PtrAt(m map[string]any, key string) *int64 {
	raw, ok := m[key]
	if !ok {
		return nil
	}
	var n int64
	switch v := raw.(type) {
	case float64:
		n = int64(v)
	case int64:
		n = v
	case int:
		n = int64(v)
	default:
		return nil
	}
	return &n
}

func floatAt(m map[string]any, key string) float64 {
	raw, ok := m[key]
	if !ok {
		return 0
	}
	switch v := raw.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}
