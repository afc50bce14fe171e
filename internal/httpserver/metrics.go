package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"moodmeter-srv/internal/aggregator"
	"moodmeter-srv/pkg/response"
)

// metrics exposes hub and aggregation counters.
func (srv *HTTPServer) metrics(c *gin.Context) {
	schedulerStats := aggregator.Stats{}
	if srv.scheduler != nil {
		schedulerStats = srv.scheduler.Stats()
	}

	response.OK(c, gin.H{
		"uptime_seconds": int64(time.Since(srv.startedAt).Seconds()),
		"websocket":      srv.hub.GetStats(),
		"aggregator":     schedulerStats,
	})
}
