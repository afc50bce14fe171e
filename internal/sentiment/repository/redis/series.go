package redis

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/friendsofgo/errors"

	"moodmeter-srv/internal/model"
	pkgRedis "moodmeter-srv/pkg/redis"
)

type seriesRepo struct {
	client pkgRedis.IRedis
	ttl    time.Duration
}

// Members are "<ts>:<score>" so two ticks with an identical average never
// collide in the set, and a [T,T] range round-trips the exact pair.
func seriesMember(point model.ScorePoint) string {
	return strconv.FormatInt(point.Ts, 10) + ":" + strconv.FormatFloat(point.Score, 'f', -1, 64)
}

func parseSeriesMember(member string, zscore float64) (model.ScorePoint, error) {
	tsPart, scorePart, found := strings.Cut(member, ":")
	if !found {
		return model.ScorePoint{}, errors.New("series member missing separator")
	}
	ts, err := strconv.ParseInt(tsPart, 10, 64)
	if err != nil {
		return model.ScorePoint{}, errors.Wrap(err, "parse member timestamp")
	}
	score, err := strconv.ParseFloat(scorePart, 64)
	if err != nil {
		return model.ScorePoint{}, errors.Wrap(err, "parse member score")
	}
	// The set score is authoritative for ordering; they should agree.
	if int64(zscore) != ts {
		ts = int64(zscore)
	}
	return model.ScorePoint{Ts: ts, Score: score}, nil
}

func (r *seriesRepo) Append(ctx context.Context, key string, point model.ScorePoint) error {
	redisKey := seriesKeyPrefix + key
	if err := r.client.ZAdd(ctx, redisKey, float64(point.Ts), seriesMember(point)); err != nil {
		return errors.Wrap(err, "append score point")
	}
	if err := r.client.Expire(ctx, redisKey, r.ttl); err != nil {
		return errors.Wrap(err, "refresh series ttl")
	}
	return nil
}

func (r *seriesRepo) Range(ctx context.Context, key string, from, to int64) ([]model.ScorePoint, error) {
	members, err := r.client.ZRangeByScoreWithScores(ctx, seriesKeyPrefix+key, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "range score points")
	}
	points := make([]model.ScorePoint, 0, len(members))
	for _, m := range members {
		point, err := parseSeriesMember(m.Member, m.Score)
		if err != nil {
			// Skip malformed members rather than failing the whole query.
			continue
		}
		points = append(points, point)
	}
	return points, nil
}
