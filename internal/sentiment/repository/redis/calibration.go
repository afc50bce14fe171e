package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/friendsofgo/errors"

	pkgRedis "moodmeter-srv/pkg/redis"
)

type calibrationRepo struct {
	client pkgRedis.IRedis
	ttl    time.Duration
}

func (r *calibrationRepo) Add(ctx context.Context, key string, delta float64) (float64, error) {
	redisKey := calibrationKeyPrefix + key
	value, err := r.client.IncrByFloat(ctx, redisKey, delta)
	if err != nil {
		return 0, errors.Wrap(err, "apply calibration vote")
	}
	// Every vote refreshes the decay window.
	if err := r.client.Expire(ctx, redisKey, r.ttl); err != nil {
		return value, errors.Wrap(err, "refresh calibration ttl")
	}
	return value, nil
}

func (r *calibrationRepo) Get(ctx context.Context, key string) (float64, error) {
	raw, err := r.client.Get(ctx, calibrationKeyPrefix+key)
	if err != nil {
		if errors.Is(err, pkgRedis.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "read calibration value")
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse calibration value")
	}
	return value, nil
}
