package model

// SessionReport summarizes a channel's score series over a time range.
type SessionReport struct {
	Channel     string       `json:"channel"`
	From        int64        `json:"from"`
	To          int64        `json:"to"`
	Avg         float64      `json:"avg"`
	Min         float64      `json:"min"`
	Max         float64      `json:"max"`
	Spikes      []ScorePoint `json:"spikes"`
	Calibration float64      `json:"calibration"`
	Data        []ScorePoint `json:"data"`
}
