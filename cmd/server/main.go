package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moodmeter-srv/config"
	"moodmeter-srv/internal/aggregator"
	"moodmeter-srv/internal/alert"
	"moodmeter-srv/internal/channel"
	"moodmeter-srv/internal/httpserver"
	"moodmeter-srv/internal/sentiment"
	repoMemory "moodmeter-srv/internal/sentiment/repository/memory"
	repoRedis "moodmeter-srv/internal/sentiment/repository/redis"
	sentimentUC "moodmeter-srv/internal/sentiment/usecase"
	"moodmeter-srv/internal/twitch"
	ws "moodmeter-srv/internal/websocket"
	"moodmeter-srv/pkg/discord"
	"moodmeter-srv/pkg/log"
	pkgRedis "moodmeter-srv/pkg/redis"
	pkgSentiment "moodmeter-srv/pkg/sentiment"
)

// @title       Mood Meter Service
// @description Real-time Twitch chat sentiment aggregation and alerting
// @version     1.0
// @host        localhost:8080
// @schemes     ws http
// @BasePath    /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Mood Meter Service...")

	// Initialize Discord webhook (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookURL != "" {
		discordClient, err = discord.New(logger, cfg.Discord.WebhookURL)
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		} else {
			logger.Info(ctx, "Discord webhook initialized")
		}
	}

	// Redis - sentiment series, alert config, calibration
	redisClient, err := pkgRedis.New(pkgRedis.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer redisClient.Close()
	logger.Info(ctx, "Redis client initialized")

	// WebSocket hub (rooms per channel + panel)
	hub := ws.NewHub(logger, cfg.WebSocket.MaxConnections)
	go hub.Run()
	logger.Info(ctx, "WebSocket Hub started")

	// Stores
	aliases := channel.NewAliasMap()
	seriesRepo := repoRedis.NewSeriesRepo(redisClient, cfg.Sentiment.SeriesTTL)
	calibrationRepo := repoRedis.NewCalibrationRepo(redisClient, cfg.Sentiment.CalibrationTTL)
	configRepo := repoRedis.NewConfigRepo(redisClient)
	sampleRepo := repoMemory.NewSampleRepo()

	// Domain core
	uc := sentimentUC.New(logger, sentiment.Config{
		HistoryWindow: cfg.Sentiment.HistoryWindow,
		ReportWindow:  cfg.Sentiment.ReportWindow,
	}, sentimentUC.Deps{
		Series:      seriesRepo,
		Samples:     sampleRepo,
		Calibration: calibrationRepo,
		Config:      configRepo,
		Aliases:     aliases,
		Broadcaster: hub,
	})

	// Alerting
	monitor := alert.NewMonitor(logger, configRepo, hub, discordClient)

	// Aggregation loop
	buffer := aggregator.NewBuffer()
	scheduler := aggregator.NewScheduler(
		logger,
		aggregator.Config{
			TickInterval: cfg.Sentiment.TickInterval,
			SampleWindow: cfg.Sentiment.HistoryWindow,
		},
		buffer,
		pkgSentiment.New(),
		seriesRepo,
		sampleRepo,
		monitor,
		hub,
	)
	go scheduler.Run(ctx)
	logger.Info(ctx, "Aggregation scheduler started")

	// Chat ingestion
	connector := twitch.New(logger, twitch.Config{
		Username: cfg.Twitch.Username,
		OAuth:    cfg.Twitch.OAuth,
		Channels: cfg.Twitch.Channels,
	}, buffer, aliases)
	go func() {
		if err := connector.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Errorf(ctx, "Twitch connector stopped: %v", err)
		}
	}()

	// HTTP server (blocks until shutdown signal)
	srv, err := httpserver.New(logger, httpserver.Config{
		Port:         cfg.Server.Port,
		Environment:  cfg.Server.Mode,
		UseCase:      uc,
		ReportWindow: cfg.Sentiment.ReportWindow,
		Hub:          hub,
		WSConfig: ws.WSConfig{
			PongWait:       cfg.WebSocket.PongWait,
			PingPeriod:     cfg.WebSocket.PingInterval,
			WriteWait:      cfg.WebSocket.WriteWait,
			MaxMessageSize: cfg.WebSocket.MaxMessageSize,
		},
		Scheduler: scheduler,
		Redis:     redisClient,
		Discord:   discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to build HTTP server: %v", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "HTTP server error: %v", err)
	}

	// Drain the hub after HTTP stops accepting traffic.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := hub.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "Hub shutdown error: %v", err)
	}

	logger.Info(ctx, "Mood Meter Service stopped")
}
