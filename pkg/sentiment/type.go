package sentiment

// Classification thresholds on the comparative score of a single message.
const (
	PositiveThreshold = 0.25
	NegativeThreshold = -0.25
)

// Stats summarizes one batch of messages.
// Avg is the arithmetic mean of the comparative scores, not of the
// classified buckets.
type Stats struct {
	Avg float64 `json:"avg"`
	Pos int     `json:"pos"`
	Neu int     `json:"neu"`
	Neg int     `json:"neg"`
}

type analyzerImpl struct {
	score ScoreFunc
}
