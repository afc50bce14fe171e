package httpserver

import (
	"github.com/gin-gonic/gin"

	"moodmeter-srv/pkg/response"
)

const (
	serviceName    = "moodmeter-srv"
	serviceVersion = "1.0.0"
)

// healthCheck reports overall health, including the stores the meter
// depends on.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.redis.Ping(ctx); err != nil {
		response.ServiceUnavailable(c, "Redis connection failed")
		return
	}

	hubStats := srv.hub.GetStats()
	response.OK(c, gin.H{
		"status":             "healthy",
		"service":            serviceName,
		"version":            serviceVersion,
		"active_connections": hubStats.ActiveConnections,
		"active_rooms":       hubStats.ActiveRooms,
		"redis":              "connected",
	})
}

// readyCheck reports whether the service is ready to serve traffic.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.redis.Ping(ctx); err != nil {
		response.ServiceUnavailable(c, "Redis connection not available")
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": serviceName,
		"version": serviceVersion,
		"redis":   "connected",
	})
}

// liveCheck reports process liveness only.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
		"version": serviceVersion,
	})
}
