package sentiment

import (
	"context"

	"moodmeter-srv/internal/model"
)

// UseCase answers analytical queries and applies commands over the stored
// sentiment data. Channel arguments may be raw identifiers or aliases;
// they are resolved to the canonical key at this boundary.
type UseCase interface {
	// History returns the score points of the trailing live-history window.
	History(ctx context.Context, channel string) ([]model.ScorePoint, error)
	// Samples returns up to a handful of raw messages for one bucket.
	// Unknown or expired buckets yield an empty slice.
	Samples(channel string, ts int64) []string
	// BuildReport summarizes [from, to]. Returns ErrNoData when the range
	// holds no points.
	BuildReport(ctx context.Context, channel string, from, to int64) (model.SessionReport, error)
	GetAlertConfig(ctx context.Context, channel string) (model.AlertConfig, error)
	SetAlertConfig(ctx context.Context, channel string, cfg model.AlertConfig) error
	// Vote applies one manual calibration vote and notifies the panel room.
	Vote(ctx context.Context, channel string, vote Vote) error
}

// Broadcaster fans events out to WebSocket rooms. ToPanel reaches only the
// privacy-restricted panel audience of the channel.
type Broadcaster interface {
	ToChannel(key string, event string, payload any)
	ToPanel(key string, event string, payload any)
}
