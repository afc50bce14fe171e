package aggregator

import (
	"context"
	"testing"
	"time"

	"moodmeter-srv/internal/alert"
	"moodmeter-srv/internal/model"
	pkgSentiment "moodmeter-srv/pkg/sentiment"
)

type mockLogger struct{}

func (mockLogger) Debug(context.Context, ...any) {}
func (mockLogger) Debugf(context.Context, string, ...any) {}
func (mockLogger) Info(context.Context, ...any) {}
func (mockLogger) Infof(context.Context, string, ...any) {}
func (mockLogger) Warn(context.Context, ...any) {}
func (mockLogger) Warnf(context.Context, string, ...any) {}
func (mockLogger) Error(context.Context, ...any) {}
func (mockLogger) Errorf(context.Context, string, ...any) {}
func (mockLogger) Fatal(context.Context, ...any) {}
func (mockLogger) Fatalf(context.Context, string, ...any) {}

type fakeSeries struct {
	points map[string][]model.ScorePoint
	err    error
}

func (f *fakeSeries) Append(_ context.Context, key string, p model.ScorePoint) error {
	if f.err != nil {
		return f.err
	}
	f.points[key] = append(f.points[key], p)
	return nil
}

func (f *fakeSeries) Range(context.Context, string, int64, int64) ([]model.ScorePoint, error) {
	return nil, nil
}

type recordCall struct {
	Key  string
	Ts   int64
	Msgs []string
}

type fakeSamples struct {
	records []recordCall
	pruned  map[string]int64
}

func (f *fakeSamples) Record(key string, ts int64, msgs []string) {
	f.records = append(f.records, recordCall{Key: key, Ts: ts, Msgs: msgs})
}

func (f *fakeSamples) Lookup(string, int64) []string { return []string{} }

func (f *fakeSamples) Prune(key string, oldest int64) {
	f.pruned[key] = oldest
}

type evalCall struct {
	Key   string
	Score float64
}

type fakeMonitor struct {
	calls []evalCall
}

func (f *fakeMonitor) Evaluate(_ context.Context, key string, score float64, _ time.Time) {
	f.calls = append(f.calls, evalCall{Key: key, Score: score})
}

func (f *fakeMonitor) State(string) alert.State { return alert.State{} }

type sentEvent struct {
	Room  string
	Event string
}

type fakeBroadcaster struct {
	events []sentEvent
}

func (f *fakeBroadcaster) ToChannel(key, event string, _ any) {
	f.events = append(f.events, sentEvent{Room: key, Event: event})
}

func (f *fakeBroadcaster) ToPanel(key, event string, _ any) {
	f.events = append(f.events, sentEvent{Room: "panel:" + key, Event: event})
}

type fixture struct {
	scheduler   *Scheduler
	buffer      *Buffer
	series      *fakeSeries
	samples     *fakeSamples
	monitor     *fakeMonitor
	broadcaster *fakeBroadcaster
}

func newFixture(scorer pkgSentiment.ScoreFunc) *fixture {
	f := &fixture{
		buffer:      NewBuffer(),
		series:      &fakeSeries{points: make(map[string][]model.ScorePoint)},
		samples:     &fakeSamples{pruned: make(map[string]int64)},
		monitor:     &fakeMonitor{},
		broadcaster: &fakeBroadcaster{},
	}
	f.scheduler = NewScheduler(
		mockLogger{},
		Config{TickInterval: 10 * time.Second, SampleWindow: 30 * time.Minute},
		f.buffer,
		pkgSentiment.NewWithScorer(scorer),
		f.series,
		f.samples,
		f.monitor,
		f.broadcaster,
	)
	return f
}

func TestTickPipeline(t *testing.T) {
	ctx := context.Background()
	now := time.UnixMilli(5_000_000)

	scores := map[string]float64{"good": 0.8, "bad": -0.8, "meh": 0}
	f := newFixture(func(text string) float64 { return scores[text] })

	f.buffer.Append("chan", "good")
	f.buffer.Append("chan", "bad")
	f.buffer.Append("chan", "meh")
	f.scheduler.tick(ctx, now)

	pts := f.series.points["chan"]
	if len(pts) != 1 {
		t.Fatalf("series got %d points, want 1", len(pts))
	}
	if pts[0].Ts != now.UnixMilli() || pts[0].Score != 0 {
		t.Errorf("point = %+v, want ts=%d score=0", pts[0], now.UnixMilli())
	}

	if len(f.samples.records) != 1 {
		t.Fatalf("samples got %d records, want 1", len(f.samples.records))
	}
	rec := f.samples.records[0]
	if rec.Key != "chan" || rec.Ts != now.UnixMilli() || len(rec.Msgs) != 3 {
		t.Errorf("sample record = %+v", rec)
	}
	wantOldest := now.Add(-30 * time.Minute).UnixMilli()
	if f.samples.pruned["chan"] != wantOldest {
		t.Errorf("pruned before %d, want %d", f.samples.pruned["chan"], wantOldest)
	}

	want := []sentEvent{
		{Room: "chan", Event: model.EventSentimentUpdate},
		{Room: "panel:chan", Event: model.EventSentimentUpdate},
	}
	if len(f.broadcaster.events) != len(want) {
		t.Fatalf("broadcast %d events, want %d", len(f.broadcaster.events), len(want))
	}
	for i, ev := range want {
		if f.broadcaster.events[i] != ev {
			t.Errorf("event[%d] = %+v, want %+v", i, f.broadcaster.events[i], ev)
		}
	}

	if len(f.monitor.calls) != 1 || f.monitor.calls[0].Key != "chan" || f.monitor.calls[0].Score != 0 {
		t.Errorf("monitor calls = %+v, want one for chan at 0", f.monitor.calls)
	}

	if f.buffer.Len("chan") != 0 {
		t.Error("buffer not drained after tick")
	}
}

func TestTickSkipsSilentChannels(t *testing.T) {
	f := newFixture(func(string) float64 { return 1 })
	f.scheduler.tick(context.Background(), time.Now())

	if len(f.series.points) != 0 || len(f.broadcaster.events) != 0 || len(f.monitor.calls) != 0 {
		t.Error("tick with no traffic produced output")
	}
	if s := f.scheduler.Stats(); s.Ticks != 1 || s.BucketsWritten != 0 {
		t.Errorf("stats = %+v, want 1 tick and no buckets", s)
	}
}

func TestTickSeriesFailureDropsBucket(t *testing.T) {
	f := newFixture(func(string) float64 { return 0.5 })
	f.series.err = context.DeadlineExceeded

	f.buffer.Append("chan", "hello")
	f.scheduler.tick(context.Background(), time.Now())

	if len(f.samples.records) != 0 {
		t.Error("samples recorded despite series failure")
	}
	if len(f.broadcaster.events) != 0 {
		t.Error("update broadcast despite series failure")
	}
	if len(f.monitor.calls) != 0 {
		t.Error("alert evaluated despite series failure")
	}
	if s := f.scheduler.Stats(); s.BucketsDropped != 1 {
		t.Errorf("BucketsDropped = %d, want 1", s.BucketsDropped)
	}
}

func TestTickPanicIsolation(t *testing.T) {
	f := newFixture(func(text string) float64 {
		if text == "boom" {
			panic("scorer blew up")
		}
		return 0.5
	})

	f.buffer.Append("broken", "boom")
	f.buffer.Append("healthy", "fine")
	f.scheduler.tick(context.Background(), time.Now())

	if len(f.series.points["healthy"]) != 1 {
		t.Error("panic in one channel starved the others")
	}
	if len(f.series.points["broken"]) != 0 {
		t.Error("panicking channel still wrote a point")
	}
	if s := f.scheduler.Stats(); s.BucketsDropped != 1 || s.BucketsWritten != 1 {
		t.Errorf("stats = %+v, want 1 written and 1 dropped", s)
	}
}
