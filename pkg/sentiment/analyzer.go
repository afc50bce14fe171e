package sentiment

import (
	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// vaderScore is the default ScoreFunc. The compound polarity is already
// normalized to [-1, 1].
func vaderScore(text string) float64 {
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	return sentitext.PolarityScore(parsed).Compound
}

func (a *analyzerImpl) Score(text string) float64 {
	return a.score(text)
}

func (a *analyzerImpl) BatchStats(messages []string) Stats {
	if len(messages) == 0 {
		return Stats{}
	}

	var stats Stats
	total := 0.0
	for _, msg := range messages {
		c := a.score(msg)
		switch {
		case c > PositiveThreshold:
			stats.Pos++
		case c < NegativeThreshold:
			stats.Neg++
		default:
			stats.Neu++
		}
		total += c
	}
	stats.Avg = total / float64(len(messages))
	return stats
}
