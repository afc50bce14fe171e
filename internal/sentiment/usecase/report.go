package usecase

import (
	"context"

	"moodmeter-srv/internal/model"
	"moodmeter-srv/internal/sentiment"
)

// BuildReport summarizes the channel's score series over [from, to].
func (uc *implUseCase) BuildReport(ctx context.Context, ch string, from, to int64) (model.SessionReport, error) {
	key := uc.aliases.Resolve(ch)

	points, err := uc.series.Range(ctx, key, from, to)
	if err != nil {
		return model.SessionReport{}, err
	}
	if len(points) == 0 {
		return model.SessionReport{}, sentiment.ErrNoData
	}

	report := model.SessionReport{
		Channel: key,
		From:    from,
		To:      to,
		Min:     points[0].Score,
		Max:     points[0].Score,
		Spikes:  detectSpikes(points),
		Data:    points,
	}

	total := 0.0
	for _, p := range points {
		total += p.Score
		if p.Score < report.Min {
			report.Min = p.Score
		}
		if p.Score > report.Max {
			report.Max = p.Score
		}
	}
	report.Avg = total / float64(len(points))

	// Calibration is a read-only annotation; a lookup failure degrades to
	// the zero value instead of failing the report.
	calibration, err := uc.calibration.Get(ctx, key)
	if err != nil {
		uc.logger.Warnf(ctx, "sentiment.usecase.BuildReport: calibration lookup for %s failed: %v", key, err)
		calibration = 0
	}
	report.Calibration = calibration

	return report, nil
}

// detectSpikes returns interior points that are strict local extrema
// relative to both neighbors.
func detectSpikes(points []model.ScorePoint) []model.ScorePoint {
	spikes := []model.ScorePoint{}
	for i := 1; i < len(points)-1; i++ {
		prev, cur, next := points[i-1].Score, points[i].Score, points[i+1].Score
		if (cur > prev && cur > next) || (cur < prev && cur < next) {
			spikes = append(spikes, points[i])
		}
	}
	return spikes
}
