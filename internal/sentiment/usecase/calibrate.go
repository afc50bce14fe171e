package usecase

import (
	"context"

	"moodmeter-srv/internal/model"
	"moodmeter-srv/internal/sentiment"
)

// Vote applies one manual calibration vote. The outcome is announced only
// to the panel audience of the channel.
func (uc *implUseCase) Vote(ctx context.Context, ch string, vote sentiment.Vote) error {
	if !vote.Valid() {
		return sentiment.ErrInvalidVote
	}

	key := uc.aliases.Resolve(ch)
	if _, err := uc.calibration.Add(ctx, key, vote.Delta()); err != nil {
		return err
	}

	if uc.broadcaster != nil {
		uc.broadcaster.ToPanel(key, model.EventCalibrationUpdate, model.CalibrationUpdate{
			Channel: key,
			Vote:    string(vote),
		})
	}
	return nil
}
