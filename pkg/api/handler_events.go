package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reflexhq/reflex/pkg/events"
)

// catchupLimit bounds the Last-Event-ID backlog replayed on reconnect.
const catchupLimit = 200

// heartbeatInterval keeps intermediaries from reaping idle streams.
const heartbeatInterval = 30 * time.Second

// streamEvents handles GET /events: an SSE stream of pipeline events,
// optionally filtered to one instance with ?instance=. Reconnecting
// clients replay missed persisted events via Last-Event-ID.
func (s *Server) streamEvents(c *gin.Context) {
	if s.deps.Hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event stream not configured"})
		return
	}

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.Flush()

	sub, cancel := s.deps.Hub.Subscribe(c.Query("instance"))
	defer cancel()
	s.trackSubscribers()
	defer s.trackSubscribers()

	writeFrame(c.Writer, 0, []byte(`{"type":"connected"}`))
	c.Writer.Flush()

	if err := s.replayMissedEvents(c); err != nil {
		return
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case payload, ok := <-sub.Ch:
			if !ok {
				// Dropped by the hub for falling behind; the client
				// reconnects with Last-Event-ID and catches up.
				return
			}
			writeFrame(c.Writer, eventID(payload), payload)
			c.Writer.Flush()
		case <-heartbeat.C:
			fmt.Fprint(c.Writer, ": ping\n\n")
			c.Writer.Flush()
		}
	}
}

// replayMissedEvents writes the persisted backlog after the client's
// Last-Event-ID, when one was sent.
func (s *Server) replayMissedEvents(c *gin.Context) error {
	if s.deps.Events == nil {
		return nil
	}
	lastID, err := strconv.Atoi(c.GetHeader("Last-Event-ID"))
	if err != nil || lastID <= 0 {
		return nil
	}

	missed, err := s.deps.Events.GetEventsSince(c.Request.Context(), events.ChannelEvents, lastID, catchupLimit)
	if err != nil {
		return err
	}

	instanceFilter := c.Query("instance")
	for _, e := range missed {
		payload, err := json.Marshal(e.Payload)
		if err != nil {
			continue
		}
		if instanceFilter != "" {
			if id, _ := e.Payload["instance_id"].(string); id != "" && id != instanceFilter {
				continue
			}
		}
		writeFrame(c.Writer, e.ID, payload)
	}
	c.Writer.Flush()
	return nil
}

// writeFrame emits one SSE frame. id 0 means no id line.
func writeFrame(w io.Writer, id int, payload []byte) {
	if id > 0 {
		fmt.Fprintf(w, "id: %d\n", id)
	}
	fmt.Fprintf(w, "data: %s\n\n", payload)
}

// eventID pulls the persisted row ID out of a live frame so clients can
// resume from it.
func eventID(payload []byte) int {
	var probe struct {
		DBEventID int `json:"db_event_id"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return 0
	}
	return probe.DBEventID
}

func (s *Server) trackSubscribers() {
	if s.deps.Metrics != nil && s.deps.Hub != nil {
		s.deps.Metrics.SetSSESubscribers(s.deps.Hub.ActiveSubscribers())
	}
}
