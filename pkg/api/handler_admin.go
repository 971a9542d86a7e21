package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reflexhq/reflex/ent/failedevent"
	"github.com/reflexhq/reflex/pkg/services"
)

// syncGroups handles POST /admin/sync-groups/:instance. It pulls the
// provider's group listing and reconciles subjects, owners, and
// descriptions into the chat_groups table.
func (s *Server) syncGroups(c *gin.Context) {
	if s.deps.Provider == nil || s.deps.Messaging == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "provider not configured"})
		return
	}
	instanceID := c.Param("instance")

	groups, err := s.deps.Provider.FetchAllGroups(c.Request.Context(), instanceID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	synced, failed := 0, 0
	for _, g := range groups {
		subject := g.Subject
		in := services.GroupInput{
			GroupJID:    g.ID,
			InstanceID:  instanceID,
			Subject:     &subject,
			OwnerJID:    g.Owner,
			Description: g.Desc,
		}
		if g.Creation > 0 {
			ts := time.Unix(g.Creation, 0)
			in.CreationTs = &ts
		}
		if _, err := s.deps.Messaging.UpsertGroup(c.Request.Context(), in); err != nil {
			failed++
			continue
		}
		synced++
	}

	c.JSON(http.StatusOK, gin.H{
		"instance_id": instanceID,
		"fetched":     len(groups),
		"synced":      synced,
		"failed":      failed,
	})
}

// reprocess handles POST /admin/reprocess: dead-lettered queue items go
// back to pending and matching change rows are reset for re-capture.
func (s *Server) reprocess(c *gin.Context) {
	var req ReprocessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	since := time.Now().Add(-24 * time.Hour)
	if req.Since != "" {
		parsed, err := time.Parse(time.RFC3339, req.Since)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "since must be RFC3339"})
			return
		}
		since = parsed
	}

	requeued := 0
	if s.deps.Queue != nil {
		n, err := s.deps.Queue.ReprocessDeadLetters(c.Request.Context(), req.EntityType, since)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		requeued = n
	}

	resetChanges := 0
	if s.deps.Changes != nil {
		n, err := s.deps.Changes.ResetForReprocess(c.Request.Context(), req.EntityType, since)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		resetChanges = n
	}

	c.JSON(http.StatusOK, gin.H{
		"requeued_items": requeued,
		"reset_changes":  resetChanges,
		"since":          since,
	})
}

// listFailedEvents handles GET /admin/failed-events with optional
// ?kind= and ?limit= filters.
func (s *Server) listFailedEvents(c *gin.Context) {
	if s.deps.Recovery == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recovery not configured"})
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be 1..500"})
			return
		}
		limit = parsed
	}

	entries, err := s.deps.Recovery.ListUnresolved(c.Request.Context(), failedevent.ErrorKind(c.Query("kind")), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]FailedEventResponse, 0, len(entries))
	for _, fe := range entries {
		out = append(out, failedEventResponse(fe))
	}
	c.JSON(http.StatusOK, gin.H{"failed_events": out, "count": len(out)})
}

// retryFailedEvent handles POST /admin/failed-events/:id/retry. It puts
// the entry back in the auto-retry rotation regardless of kind.
func (s *Server) retryFailedEvent(c *gin.Context) {
	if s.deps.Recovery == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recovery not configured"})
		return
	}

	if err := s.deps.Recovery.ResetForRetry(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "scheduled"})
}
