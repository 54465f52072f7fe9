package webhook

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherOrdering(t *testing.T) {
	d := NewDispatcher()
	var calls []string
	d.On(SessionCreated, func(ev *Event) { calls = append(calls, "typed") })
	d.OnAny(func(ev *Event) { calls = append(calls, "any") })

	d.Dispatch(&Event{Event: SessionCreated})
	assert.Equal(t, []string{"typed", "any"}, calls)

	// A type nobody registered still reaches the catch-alls.
	calls = nil
	d.Dispatch(&Event{Event: SessionDestroyed})
	assert.Equal(t, []string{"any"}, calls)
}

func TestHandlerDispatchesEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	d := NewDispatcher()
	var got *Event
	d.On(ParticipantJoined, func(ev *Event) { got = ev })

	r := SetupRouter(RouterConfig{Path: "/openvidu/webhook"}, d)

	body := `{"event":"participantJoined","sessionId":"ses_1","connectionId":"con_1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/openvidu/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, "ses_1", got.SessionID)
	assert.Equal(t, "con_1", got.ConnectionID)
}

func TestHandlerRejectsBadPayloads(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(RouterConfig{}, NewDispatcher())

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "not json"},
		{name: "no event type", body: `{"sessionId":"ses_1"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSetupRouterDefaultPath(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(RouterConfig{}, NewDispatcher())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"event":"sessionCreated"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
