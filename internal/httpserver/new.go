package httpserver

import (
	"time"

	"github.com/friendsofgo/errors"
	"github.com/gin-gonic/gin"

	"moodmeter-srv/internal/aggregator"
	"moodmeter-srv/internal/sentiment"
	"moodmeter-srv/internal/websocket"
	"moodmeter-srv/pkg/discord"
	"moodmeter-srv/pkg/log"
	pkgRedis "moodmeter-srv/pkg/redis"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for HTTP serving and shutdown.
type HTTPServer struct {
	// Server configuration
	gin         *gin.Engine
	logger      log.Logger
	port        int
	environment string

	// Domain core
	uc           sentiment.UseCase
	reportWindow time.Duration

	// WebSocket
	hub       *websocket.Hub
	wsHandler *websocket.Handler

	// Aggregation loop, for the metrics endpoint
	scheduler *aggregator.Scheduler

	// External services
	redis   pkgRedis.IRedis
	discord discord.IDiscord

	startedAt time.Time
	now       func() time.Time
}

// Config is the constructor input for HTTPServer.
// Keep this minimal: only fields really needed by HTTPServer.
type Config struct {
	// Server configuration
	Port        int
	Environment string

	// Domain core
	UseCase      sentiment.UseCase
	ReportWindow time.Duration

	// WebSocket
	Hub      *websocket.Hub
	WSConfig websocket.WSConfig

	// Aggregation loop
	Scheduler *aggregator.Scheduler

	// External services
	Redis   pkgRedis.IRedis
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run() to start serving.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Environment) // cfg.Environment should map to gin mode by convention

	srv := &HTTPServer{
		gin:         gin.New(),
		logger:      logger,
		port:        cfg.Port,
		environment: cfg.Environment,

		uc:           cfg.UseCase,
		reportWindow: cfg.ReportWindow,

		hub:       cfg.Hub,
		scheduler: cfg.Scheduler,

		redis:   cfg.Redis,
		discord: cfg.Discord,

		startedAt: time.Now(),
		now:       time.Now,
	}
	srv.wsHandler = websocket.NewHandler(cfg.Hub, logger, cfg.WSConfig, cfg.UseCase)

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (s *HTTPServer) validate() error {
	if s.logger == nil {
		return errors.New("logger is required")
	}
	if s.port == 0 {
		return errors.New("port is required")
	}
	if s.uc == nil {
		return errors.New("sentiment use case is required")
	}
	if s.hub == nil {
		return errors.New("websocket hub is required")
	}
	if s.redis == nil {
		return errors.New("Redis client is required")
	}
	if s.reportWindow <= 0 {
		return errors.New("report window is required")
	}

	return nil
}
