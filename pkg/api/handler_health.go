package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reflexhq/reflex/pkg/database"
)

// health handles GET /health: DB connectivity, queue depth by status,
// and worker pool state. Degraded components flip the response to 503
// so orchestrators can rotate the pod.
func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	healthy := true
	body := gin.H{}

	if s.deps.DB != nil {
		dbHealth, err := database.Health(ctx, s.deps.DB.DB())
		body["database"] = dbHealth
		if err != nil {
			healthy = false
		}
	}

	if s.deps.Queue != nil {
		stats, err := s.deps.Queue.Stats(ctx)
		if err != nil {
			healthy = false
			body["queue_error"] = err.Error()
		} else {
			body["queue"] = stats
		}
	}

	if s.deps.Pool != nil {
		pool := s.deps.Pool.Health()
		body["workers"] = pool
		if !pool.IsHealthy {
			healthy = false
		}
	}

	if s.deps.Hub != nil {
		body["sse_subscribers"] = s.deps.Hub.ActiveSubscribers()
	}

	status := http.StatusOK
	body["status"] = "healthy"
	if !healthy {
		status = http.StatusServiceUnavailable
		body["status"] = "unhealthy"
	}
	c.JSON(status, body)
}
