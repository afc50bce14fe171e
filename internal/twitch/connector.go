package twitch

import (
	"context"
	"strings"

	twitchirc "github.com/gempir/go-twitch-irc/v4"

	"moodmeter-srv/internal/channel"
	"moodmeter-srv/pkg/log"
)

// Sink receives raw chat messages keyed by canonical channel.
type Sink interface {
	Append(key, message string)
}

// Config holds the chat connection settings. With an empty Username the
// connector reads anonymously, which Twitch permits for chat ingestion.
type Config struct {
	Username string
	OAuth    string
	Channels []string
}

// Connector feeds Twitch chat into the aggregation buffer.
type Connector struct {
	l       log.Logger
	cfg     Config
	sink    Sink
	aliases *channel.AliasMap
	client  *twitchirc.Client
}

func New(l log.Logger, cfg Config, sink Sink, aliases *channel.AliasMap) *Connector {
	return &Connector{
		l:       l,
		cfg:     cfg,
		sink:    sink,
		aliases: aliases,
	}
}

// Run connects to Twitch IRC and blocks until ctx is canceled. The
// underlying client reconnects on its own; Run only returns on shutdown.
func (c *Connector) Run(ctx context.Context) error {
	if c.cfg.Username != "" {
		c.client = twitchirc.NewClient(c.cfg.Username, c.cfg.OAuth)
	} else {
		c.client = twitchirc.NewAnonymousClient()
	}

	c.client.OnPrivateMessage(c.onPrivateMessage)
	c.client.OnConnect(func() {
		c.l.Info(ctx, "twitch: connected")
	})
	c.client.OnReconnectMessage(func(twitchirc.ReconnectMessage) {
		c.l.Warn(ctx, "twitch: server requested reconnect")
	})

	for _, ch := range c.cfg.Channels {
		c.client.Join(strings.TrimPrefix(ch, "#"))
		c.l.Infof(ctx, "twitch: joined channel %s", ch)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- c.client.Connect()
	}()

	select {
	case <-ctx.Done():
		c.l.Info(ctx, "twitch: disconnecting")
		if err := c.client.Disconnect(); err != nil {
			c.l.Warnf(ctx, "twitch: disconnect: %v", err)
		}
		<-errCh
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// onPrivateMessage buffers one chat line. Messages sent by the bot's own
// account are skipped so the meter never scores itself.
func (c *Connector) onPrivateMessage(msg twitchirc.PrivateMessage) {
	if c.cfg.Username != "" && strings.EqualFold(msg.User.Name, c.cfg.Username) {
		return
	}

	key := channel.Canonical(msg.Channel)
	// Room IDs show up in tags on every message; keep the alias fresh so
	// lookups by numeric ID resolve to the same series.
	c.aliases.Register(msg.RoomID, key)

	c.sink.Append(key, msg.Message)
}
