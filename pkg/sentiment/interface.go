package sentiment

// IAnalyzer scores free text and reduces message batches to statistics.
// Implementations are safe for concurrent use.
type IAnalyzer interface {
	// Score returns the comparative sentiment of one message in [-1, 1].
	Score(text string) float64
	// BatchStats reduces a batch of messages to aggregate statistics.
	// An empty batch yields a zero Stats without invoking the scorer.
	BatchStats(messages []string) Stats
}

// ScoreFunc maps one message to a comparative sentiment value in [-1, 1].
type ScoreFunc func(text string) float64

// New returns an analyzer backed by the default VADER lexicon scorer.
func New() IAnalyzer {
	return NewWithScorer(vaderScore)
}

// NewWithScorer returns an analyzer backed by a custom scoring function.
func NewWithScorer(score ScoreFunc) IAnalyzer {
	return &analyzerImpl{score: score}
}
