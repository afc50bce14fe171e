package alert

import (
	"context"
	"time"
)

// Monitor is the per-channel alert debounce state machine. Evaluate is
// called once per aggregation tick for every channel that produced a
// score; it reads the channel's alert configuration on every call so
// changes apply between ticks without a restart.
type Monitor interface {
	Evaluate(ctx context.Context, key string, score float64, now time.Time)
	// State returns a copy of the channel's debounce state, primarily for
	// introspection and tests.
	State(key string) State
}

// Broadcaster delivers alert events to the panel-only audience.
type Broadcaster interface {
	ToPanel(key string, event string, payload any)
}
