package model

// WebSocket event names. Sentiment updates go to both the channel room and
// the panel room; alert and calibration events are panel-only.
const (
	EventSentimentUpdate   = "sentiment:update"
	EventAlertTriggered    = "alert:triggered"
	EventCalibrationUpdate = "calibration:update"
)

// Counts is the positive/neutral/negative classification of one bucket.
type Counts struct {
	Pos int `json:"pos"`
	Neu int `json:"neu"`
	Neg int `json:"neg"`
}

// SentimentUpdate is broadcast on every tick for channels with traffic.
type SentimentUpdate struct {
	Channel string  `json:"channel"`
	Score   float64 `json:"score"`
	Counts  Counts  `json:"counts"`
	Ts      int64   `json:"ts"`
}

// AlertEvent is broadcast to the panel room when a sustained low-sentiment
// breach fires.
type AlertEvent struct {
	Channel   string  `json:"channel"`
	Score     float64 `json:"score"`
	Ts        int64   `json:"ts"`
	Threshold float64 `json:"threshold"`
	Duration  int     `json:"duration"`
}

// CalibrationUpdate is broadcast to the panel room after a manual vote.
type CalibrationUpdate struct {
	Channel string `json:"channel"`
	Vote    string `json:"vote"`
}
