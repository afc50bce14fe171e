package httpserver

import (
	"moodmeter-srv/internal/middleware"
)

const Api = "/api"

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.logger, srv.discord))

	corsConfig := middleware.DefaultCORSConfig()
	srv.gin.Use(middleware.CORS(corsConfig))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", srv.metrics)

	// WebSocket entry point
	srv.gin.GET("/ws", srv.wsHandler.HandleWebSocket)

	// API routes
	api := srv.gin.Group(Api)
	api.GET("/sentiment/:channel/history", srv.getHistory)
	api.GET("/sentiment/:channel/messages", srv.getMessages)
	api.GET("/session/:channel/report.json", srv.getReportJSON)
	api.GET("/session/:channel/report.csv", srv.getReportCSV)
	api.GET("/alerts/:channel", srv.getAlertConfig)
	api.POST("/alerts/:channel", srv.setAlertConfig)
	api.POST("/calibration/:channel", srv.postCalibration)

	return nil
}
