package repository

import (
	"context"

	"moodmeter-srv/internal/model"
)

// SeriesRepo is the bounded-retention store of score points per channel.
type SeriesRepo interface {
	// Append stores one point. Appends refresh the series TTL so the
	// whole series expires together once a channel goes quiet.
	Append(ctx context.Context, key string, point model.ScorePoint) error
	// Range returns points with from <= ts <= to, ordered by ts ascending.
	Range(ctx context.Context, key string, from, to int64) ([]model.ScorePoint, error)
}

// SampleRepo retains a capped sample of raw messages per aggregation bucket.
type SampleRepo interface {
	// Record keeps at most the first MaxPerBucket messages for the bucket.
	Record(key string, ts int64, messages []string)
	// Lookup returns up to LookupLimit samples, or an empty slice if the
	// bucket is unknown or expired. Never an error.
	Lookup(key string, ts int64) []string
	// Prune drops buckets with ts older than oldest for the channel.
	Prune(key string, oldest int64)
}

// CalibrationRepo is the decaying per-channel feedback accumulator.
type CalibrationRepo interface {
	// Add applies a vote delta and refreshes the value's TTL.
	Add(ctx context.Context, key string, delta float64) (float64, error)
	// Get returns the current value, or 0 if absent or expired.
	Get(ctx context.Context, key string) (float64, error)
}

// ConfigRepo stores per-channel alert configuration.
type ConfigRepo interface {
	SetAlert(ctx context.Context, key string, cfg model.AlertConfig) error
	// GetAlert returns the stored configuration, or the defaults when the
	// channel has none.
	GetAlert(ctx context.Context, key string) (model.AlertConfig, error)
}
