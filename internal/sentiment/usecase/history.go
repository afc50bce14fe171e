package usecase

import (
	"context"

	"moodmeter-srv/internal/model"
)

// History returns the trailing live-history window for the channel,
// ordered by timestamp ascending.
func (uc *implUseCase) History(ctx context.Context, ch string) ([]model.ScorePoint, error) {
	key := uc.aliases.Resolve(ch)
	now := uc.now().UnixMilli()
	since := now - uc.cfg.HistoryWindow.Milliseconds()
	return uc.series.Range(ctx, key, since, now)
}

// Samples returns up to a handful of raw messages recorded for the bucket.
func (uc *implUseCase) Samples(ch string, ts int64) []string {
	return uc.samples.Lookup(uc.aliases.Resolve(ch), ts)
}
