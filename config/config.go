package config

import (
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	// Server Configuration
	Server ServerConfig
	Logger LoggerConfig

	// Redis Configuration
	Redis RedisConfig

	// WebSocket Configuration
	WebSocket WebSocketConfig

	// Chat ingestion Configuration
	Twitch TwitchConfig

	// Aggregation & analytics Configuration
	Sentiment SentimentConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// ServerConfig is the configuration for the HTTP server
type ServerConfig struct {
	Host string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"SERVER_PORT" envDefault:"8080"`
	Mode string `env:"SERVER_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"true"`
}

// RedisConfig is the configuration for Redis
// Note: Only standalone mode is supported
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// WebSocketConfig is the configuration for WebSocket connections
type WebSocketConfig struct {
	PingInterval   time.Duration `env:"WS_PING_INTERVAL" envDefault:"54s"`
	PongWait       time.Duration `env:"WS_PONG_WAIT" envDefault:"60s"`
	WriteWait      time.Duration `env:"WS_WRITE_WAIT" envDefault:"10s"`
	MaxMessageSize int64         `env:"WS_MAX_MESSAGE_SIZE" envDefault:"512"`
	MaxConnections int           `env:"WS_MAX_CONNECTIONS" envDefault:"10000"`
}

// TwitchConfig is the configuration for the chat connection. Without a
// username the connector joins anonymously (read-only).
type TwitchConfig struct {
	Username string   `env:"TWITCH_USERNAME"`
	OAuth    string   `env:"TWITCH_OAUTH"`
	Channels []string `env:"TWITCH_CHANNELS" envSeparator:","`
}

// SentimentConfig is the configuration for the aggregation pipeline
type SentimentConfig struct {
	TickInterval  time.Duration `env:"SENTIMENT_TICK_INTERVAL" envDefault:"10s"`
	HistoryWindow time.Duration `env:"SENTIMENT_HISTORY_WINDOW" envDefault:"30m"`
	ReportWindow  time.Duration `env:"SENTIMENT_REPORT_WINDOW" envDefault:"4h"`
	SeriesTTL     time.Duration `env:"SENTIMENT_SERIES_TTL" envDefault:"4h"`
	// CalibrationTTL makes manual votes decay once panels go idle.
	CalibrationTTL time.Duration `env:"SENTIMENT_CALIBRATION_TTL" envDefault:"1h"`
}

// DiscordConfig is the configuration for Discord webhook notifications
type DiscordConfig struct {
	WebhookURL string `env:"DISCORD_WEBHOOK_URL"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
