package aggregator

import (
	"context"
	"sync/atomic"
	"time"

	"moodmeter-srv/internal/alert"
	"moodmeter-srv/internal/model"
	"moodmeter-srv/internal/sentiment/repository"
	"moodmeter-srv/pkg/log"
	pkgSentiment "moodmeter-srv/pkg/sentiment"
)

// Broadcaster fans aggregation results out to connected clients.
type Broadcaster interface {
	ToChannel(key string, event string, payload any)
	ToPanel(key string, event string, payload any)
}

type Config struct {
	// TickInterval is the aggregation cadence.
	TickInterval time.Duration
	// SampleWindow bounds how long raw message samples are retained.
	SampleWindow time.Duration
}

// Stats are cumulative scheduler counters.
type Stats struct {
	Ticks          int64 `json:"ticks"`
	BucketsWritten int64 `json:"buckets_written"`
	BucketsDropped int64 `json:"buckets_dropped"`
}

// Scheduler drives the aggregation loop: every tick it drains all
// channel buffers, scores each batch, persists the point, and fans the
// update out. Ticks run on a single goroutine, so the work for one tick
// always finishes before the next starts.
type Scheduler struct {
	l           log.Logger
	cfg         Config
	buffer      *Buffer
	analyzer    pkgSentiment.IAnalyzer
	series      repository.SeriesRepo
	samples     repository.SampleRepo
	monitor     alert.Monitor
	broadcaster Broadcaster

	now func() time.Time

	ticks          atomic.Int64
	bucketsWritten atomic.Int64
	bucketsDropped atomic.Int64
}

func NewScheduler(
	l log.Logger,
	cfg Config,
	buffer *Buffer,
	analyzer pkgSentiment.IAnalyzer,
	series repository.SeriesRepo,
	samples repository.SampleRepo,
	monitor alert.Monitor,
	broadcaster Broadcaster,
) *Scheduler {
	return &Scheduler{
		l:           l,
		cfg:         cfg,
		buffer:      buffer,
		analyzer:    analyzer,
		series:      series,
		samples:     samples,
		monitor:     monitor,
		broadcaster: broadcaster,
		now:         time.Now,
	}
}

// Run blocks until ctx is canceled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	s.l.Infof(ctx, "aggregator: running, interval %s", s.cfg.TickInterval)
	for {
		select {
		case <-ctx.Done():
			s.l.Info(ctx, "aggregator: stopped")
			return
		case <-ticker.C:
			s.tick(ctx, s.now())
		}
	}
}

// Stats returns a snapshot of the scheduler counters.
func (s *Scheduler) Stats() Stats {
	return Stats{
		Ticks:          s.ticks.Load(),
		BucketsWritten: s.bucketsWritten.Load(),
		BucketsDropped: s.bucketsDropped.Load(),
	}
}

func (s *Scheduler) tick(ctx context.Context, now time.Time) {
	s.ticks.Add(1)
	for key, msgs := range s.buffer.DrainAll() {
		if len(msgs) == 0 {
			continue
		}
		s.tickChannel(ctx, key, msgs, now)
	}
}

// tickChannel processes one channel's batch. A failure here must not take
// down the tick for other channels, so panics from scoring are contained.
func (s *Scheduler) tickChannel(ctx context.Context, key string, msgs []string, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			s.bucketsDropped.Add(1)
			s.l.Errorf(ctx, "aggregator: panic processing %s, bucket dropped: %v", key, r)
		}
	}()

	stats := s.analyzer.BatchStats(msgs)
	ts := now.UnixMilli()

	point := model.ScorePoint{Ts: ts, Score: stats.Avg}
	if err := s.series.Append(ctx, key, point); err != nil {
		s.bucketsDropped.Add(1)
		s.l.Warnf(ctx, "aggregator: append point for %s failed, bucket lost: %v", key, err)
		return
	}
	s.bucketsWritten.Add(1)

	s.samples.Record(key, ts, msgs)
	s.samples.Prune(key, now.Add(-s.cfg.SampleWindow).UnixMilli())

	update := model.SentimentUpdate{
		Channel: key,
		Score:   stats.Avg,
		Counts:  model.Counts{Pos: stats.Pos, Neu: stats.Neu, Neg: stats.Neg},
		Ts:      ts,
	}
	s.broadcaster.ToChannel(key, model.EventSentimentUpdate, update)
	s.broadcaster.ToPanel(key, model.EventSentimentUpdate, update)

	s.monitor.Evaluate(ctx, key, stats.Avg, now)
}
