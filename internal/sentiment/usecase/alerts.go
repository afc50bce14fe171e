package usecase

import (
	"context"

	"moodmeter-srv/internal/model"
)

// GetAlertConfig returns the channel's alert configuration, falling back
// to the defaults when none is stored.
func (uc *implUseCase) GetAlertConfig(ctx context.Context, ch string) (model.AlertConfig, error) {
	return uc.config.GetAlert(ctx, uc.aliases.Resolve(ch))
}

// SetAlertConfig stores the channel's alert configuration. Type validation
// of the raw input happens at the HTTP boundary; by the time a config
// reaches here both fields are numeric.
func (uc *implUseCase) SetAlertConfig(ctx context.Context, ch string, cfg model.AlertConfig) error {
	return uc.config.SetAlert(ctx, uc.aliases.Resolve(ch), cfg)
}
