package model

// AlertConfig is the per-channel alert threshold configuration.
// Duration is the debounce in seconds: the score must stay below
// Threshold continuously for at least that long before an alert fires.
type AlertConfig struct {
	Threshold float64 `json:"threshold"`
	Duration  int     `json:"duration"`
}

// DefaultAlertConfig applies when a channel has no stored configuration.
func DefaultAlertConfig() AlertConfig {
	return AlertConfig{Threshold: -0.5, Duration: 30}
}
