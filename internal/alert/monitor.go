package alert

import (
	"context"
	"fmt"
	"sync"
	"time"

	"moodmeter-srv/internal/model"
	"moodmeter-srv/internal/sentiment/repository"
	"moodmeter-srv/pkg/discord"
	"moodmeter-srv/pkg/log"
)

type monitor struct {
	l           log.Logger
	config      repository.ConfigRepo
	broadcaster Broadcaster
	discord     discord.IDiscord

	mu     sync.Mutex
	states map[string]*State
}

// NewMonitor builds the alert monitor. discord may be nil when no
// operator webhook is configured.
func NewMonitor(l log.Logger, config repository.ConfigRepo, broadcaster Broadcaster, d discord.IDiscord) Monitor {
	return &monitor{
		l:           l,
		config:      config,
		broadcaster: broadcaster,
		discord:     d,
		states:      make(map[string]*State),
	}
}

func (m *monitor) Evaluate(ctx context.Context, key string, score float64, now time.Time) {
	cfg, err := m.config.GetAlert(ctx, key)
	if err != nil {
		m.l.Warnf(ctx, "alert: read config for %s failed, using defaults: %v", key, err)
		cfg = model.DefaultAlertConfig()
	}

	m.mu.Lock()
	st := m.states[key]
	if st == nil {
		st = &State{}
		m.states[key] = st
	}

	if score >= cfg.Threshold {
		st.BelowSince = time.Time{}
		st.Active = false
		m.mu.Unlock()
		return
	}

	if st.BelowSince.IsZero() {
		st.BelowSince = now
	}
	if st.Active || now.Sub(st.BelowSince) < time.Duration(cfg.Duration)*time.Second {
		m.mu.Unlock()
		return
	}
	st.Active = true
	m.mu.Unlock()

	m.fire(ctx, key, score, now, cfg)
}

func (m *monitor) State(key string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st := m.states[key]; st != nil {
		return *st
	}
	return State{}
}

func (m *monitor) fire(ctx context.Context, key string, score float64, now time.Time, cfg model.AlertConfig) {
	event := model.AlertEvent{
		Channel:   key,
		Score:     score,
		Ts:        now.UnixMilli(),
		Threshold: cfg.Threshold,
		Duration:  cfg.Duration,
	}
	m.l.Infof(ctx, "alert: %s sustained below %.2f for %ds (score %.3f)", key, cfg.Threshold, cfg.Duration, score)
	m.broadcaster.ToPanel(key, model.EventAlertTriggered, event)

	if m.discord != nil {
		title := fmt.Sprintf("Sentiment alert: %s", key)
		desc := fmt.Sprintf("Score %.3f below threshold %.2f for over %d seconds.", score, cfg.Threshold, cfg.Duration)
		if err := m.discord.SendWarning(ctx, title, desc); err != nil {
			m.l.Warnf(ctx, "alert: discord notification for %s failed: %v", key, err)
		}
	}
}
