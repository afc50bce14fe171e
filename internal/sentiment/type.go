package sentiment

import "time"

// Vote is a manual calibration direction.
type Vote string

const (
	VoteHappy   Vote = "happy"
	VoteSad     Vote = "sad"
	VoteNeutral Vote = "neutral"
)

// Valid reports whether the vote is one of the accepted directions.
func (v Vote) Valid() bool {
	switch v {
	case VoteHappy, VoteSad, VoteNeutral:
		return true
	}
	return false
}

// Delta is the accumulator contribution of the vote.
func (v Vote) Delta() float64 {
	switch v {
	case VoteHappy:
		return 1
	case VoteSad:
		return -1
	default:
		return 0
	}
}

// Config holds the query horizons.
type Config struct {
	// HistoryWindow is the live-history horizon served by History.
	HistoryWindow time.Duration
	// ReportWindow is the default session report horizon.
	ReportWindow time.Duration
}
