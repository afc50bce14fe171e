package redis

import (
	"time"

	"moodmeter-srv/internal/sentiment/repository"
	pkgRedis "moodmeter-srv/pkg/redis"
)

// Key prefixes, kept compatible with the panel frontend's expectations.
const (
	seriesKeyPrefix      = "sentiment:"
	alertKeyPrefix       = "alerts:"
	calibrationKeyPrefix = "calibration:"
)

// NewSeriesRepo returns a Redis-backed score series store.
// ttl bounds retention to the longest consumer's horizon (the 4h session
// report); the whole per-channel set expires together.
func NewSeriesRepo(client pkgRedis.IRedis, ttl time.Duration) repository.SeriesRepo {
	return &seriesRepo{client: client, ttl: ttl}
}

// NewCalibrationRepo returns a Redis-backed calibration accumulator whose
// value expires ttl after the most recent vote.
func NewCalibrationRepo(client pkgRedis.IRedis, ttl time.Duration) repository.CalibrationRepo {
	return &calibrationRepo{client: client, ttl: ttl}
}

// NewConfigRepo returns a Redis-backed alert configuration store.
func NewConfigRepo(client pkgRedis.IRedis) repository.ConfigRepo {
	return &configRepo{client: client}
}
