package alert

import (
	"context"
	"testing"
	"time"

	"moodmeter-srv/internal/model"
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

type fakeConfig struct {
	cfg model.AlertConfig
	err error
}

func (f *fakeConfig) SetAlert(_ context.Context, _ string, cfg model.AlertConfig) error {
	f.cfg = cfg
	return nil
}

func (f *fakeConfig) GetAlert(context.Context, string) (model.AlertConfig, error) {
	if f.err != nil {
		return model.AlertConfig{}, f.err
	}
	return f.cfg, nil
}

type fakeBroadcaster struct {
	events []model.AlertEvent
	rooms  []string
}

func (f *fakeBroadcaster) ToPanel(key, event string, payload any) {
	if event != model.EventAlertTriggered {
		return
	}
	f.rooms = append(f.rooms, "panel:"+key)
	f.events = append(f.events, payload.(model.AlertEvent))
}

func TestEvaluateDebounce(t *testing.T) {
	ctx := context.Background()
	base := time.UnixMilli(1_000_000)

	newMonitor := func() (*fakeBroadcaster, Monitor) {
		b := &fakeBroadcaster{}
		m := NewMonitor(mockLogger{}, &fakeConfig{cfg: model.AlertConfig{Threshold: -0.5, Duration: 30}}, b, nil)
		return b, m
	}

	t.Run("fires once after sustained breach", func(t *testing.T) {
		b, m := newMonitor()

		// Ticks every 10s, all below threshold. The clock starts at the
		// first breach, so the alert fires at t=30s, not before.
		for i := 0; i <= 2; i++ {
			m.Evaluate(ctx, "chan", -0.6, base.Add(time.Duration(i*10)*time.Second))
		}
		if len(b.events) != 0 {
			t.Fatalf("alert fired after %d events at t=20s, want none", len(b.events))
		}

		m.Evaluate(ctx, "chan", -0.7, base.Add(30*time.Second))
		if len(b.events) != 1 {
			t.Fatalf("got %d alert events, want exactly 1", len(b.events))
		}
		ev := b.events[0]
		if ev.Channel != "chan" || ev.Score != -0.7 || ev.Threshold != -0.5 || ev.Duration != 30 {
			t.Errorf("unexpected alert event: %+v", ev)
		}
		if b.rooms[0] != "panel:chan" {
			t.Errorf("alert went to %s, want panel:chan", b.rooms[0])
		}

		// Still below: debounced, no repeat.
		m.Evaluate(ctx, "chan", -0.8, base.Add(40*time.Second))
		if len(b.events) != 1 {
			t.Errorf("got %d alert events after continued breach, want 1", len(b.events))
		}
	})

	t.Run("recovery resets instantly", func(t *testing.T) {
		b, m := newMonitor()
		m.Evaluate(ctx, "chan", -0.9, base)
		m.Evaluate(ctx, "chan", -0.5, base.Add(10*time.Second)) // at threshold counts as recovered
		m.Evaluate(ctx, "chan", -0.9, base.Add(20*time.Second))
		m.Evaluate(ctx, "chan", -0.9, base.Add(45*time.Second))

		if len(b.events) != 0 {
			t.Fatalf("interrupted breach fired %d alerts, want none", len(b.events))
		}
		if st := m.State("chan"); st.Active || !st.BelowSince.Equal(base.Add(20*time.Second)) {
			t.Errorf("state after restart = %+v", st)
		}
	})

	t.Run("recovery after firing re-arms", func(t *testing.T) {
		b, m := newMonitor()
		m.Evaluate(ctx, "chan", -0.9, base)
		m.Evaluate(ctx, "chan", -0.9, base.Add(30*time.Second))
		m.Evaluate(ctx, "chan", 0.1, base.Add(40*time.Second))
		m.Evaluate(ctx, "chan", -0.9, base.Add(50*time.Second))
		m.Evaluate(ctx, "chan", -0.9, base.Add(80*time.Second))

		if len(b.events) != 2 {
			t.Fatalf("got %d alert events across two breaches, want 2", len(b.events))
		}
	})

	t.Run("channels are independent", func(t *testing.T) {
		b, m := newMonitor()
		m.Evaluate(ctx, "a", -0.9, base)
		m.Evaluate(ctx, "b", 0.5, base)
		m.Evaluate(ctx, "a", -0.9, base.Add(30*time.Second))
		m.Evaluate(ctx, "b", -0.9, base.Add(30*time.Second))

		if len(b.events) != 1 || b.events[0].Channel != "a" {
			t.Fatalf("events = %+v, want one for channel a only", b.events)
		}
	})
}

func TestEvaluateConfigFallback(t *testing.T) {
	ctx := context.Background()
	base := time.UnixMilli(0)
	b := &fakeBroadcaster{}
	cfg := &fakeConfig{err: context.DeadlineExceeded}
	m := NewMonitor(mockLogger{}, cfg, b, nil)

	// Config store down: defaults (-0.5 for 30s) still apply.
	m.Evaluate(ctx, "chan", -0.6, base)
	m.Evaluate(ctx, "chan", -0.6, base.Add(30*time.Second))

	if len(b.events) != 1 {
		t.Fatalf("got %d alert events with config store down, want 1", len(b.events))
	}
	if b.events[0].Threshold != -0.5 || b.events[0].Duration != 30 {
		t.Errorf("fallback event carries %+v, want default config", b.events[0])
	}
}
