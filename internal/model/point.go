package model

// ScorePoint is one aggregated sentiment sample for a channel.
// Ts is epoch milliseconds; Score is the batch average in [-1, 1].
// Immutable once stored; one point per channel per tick.
type ScorePoint struct {
	Ts    int64   `json:"ts"`
	Score float64 `json:"score"`
}
