package webhook

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Dispatcher routes parsed events to callbacks. Register everything before
// serving starts; registration is not synchronized against Dispatch.
type Dispatcher struct {
	byType   map[EventType][]func(*Event)
	catchAll []func(*Event)
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{byType: make(map[EventType][]func(*Event))}
}

// On registers a callback for one event type.
func (d *Dispatcher) On(t EventType, fn func(*Event)) {
	d.byType[t] = append(d.byType[t], fn)
}

// OnAny registers a callback that sees every event, after the typed ones.
func (d *Dispatcher) OnAny(fn func(*Event)) {
	d.catchAll = append(d.catchAll, fn)
}

func (d *Dispatcher) Dispatch(ev *Event) {
	for _, fn := range d.byType[ev.Event] {
		fn(ev)
	}
	for _, fn := range d.catchAll {
		fn(ev)
	}
}

// Handler returns the gin endpoint for webhook deliveries. Each delivery
// gets a uuid so its log lines correlate.
func Handler(d *Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		delivery := uuid.NewString()
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
			return
		}
		ev, err := ParseEvent(body)
		if err != nil {
			log.Warn().Str("module", "webhook").Str("delivery", delivery).Err(err).Msg("rejected payload")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Info().
			Str("module", "webhook").
			Str("delivery", delivery).
			Str("event", string(ev.Event)).
			Str("session", ev.SessionID).
			Msg("event received")
		d.Dispatch(ev)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// RouterConfig carries the listener knobs SetupRouter needs.
type RouterConfig struct {
	Mode string
	Path string
}

// SetupRouter builds the gin engine with the webhook route mounted.
func SetupRouter(cfg RouterConfig, d *Dispatcher) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	path := cfg.Path
	if path == "" {
		path = "/webhook"
	}
	r.POST(path, Handler(d))

	log.Info().Str("module", "webhook").Str("path", path).Msg("router setup")
	return r
}
