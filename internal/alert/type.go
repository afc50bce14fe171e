package alert

import "time"

// State is the debounce state of one channel.
//
// Idle: BelowSince zero, Active false. A score under the threshold starts
// the debounce clock; once continuously below for the configured duration
// the state flips to Active and exactly one alert event fires. Any score
// at or above the threshold resets to idle immediately.
type State struct {
	BelowSince time.Time
	Active     bool
}
